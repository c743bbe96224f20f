package testbed

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShaderWatcherReportsShaderWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewShaderWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	path := filepath.Join(dir, "triangle.vert")
	require.NoError(t, os.WriteFile(path, []byte("#version 450 core\n"), 0o644))

	select {
	case got := <-w.Changed:
		assert.Equal(t, path, got)
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported for shader write")
	}
}

func TestShaderWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewShaderWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	select {
	case got := <-w.Changed:
		t.Fatalf("unexpected change reported: %s", got)
	case <-time.After(300 * time.Millisecond):
	}
}
