package gl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCString(t *testing.T) {
	b := cString("glGenBuffers")
	require.Len(t, b, len("glGenBuffers")+1)
	assert.Equal(t, byte(0), b[len(b)-1])
	assert.Equal(t, "glGenBuffers", string(b[:len(b)-1]))

	empty := cString("")
	require.Len(t, empty, 1)
	assert.Equal(t, byte(0), empty[0])
}

func TestGoString(t *testing.T) {
	buf := []byte("shader info log\x00garbage tail")

	assert.Equal(t, "shader info log", goString(buf, 15))
	assert.Equal(t, "", goString(buf, 0))
	assert.Equal(t, "", goString(buf, -3))

	// A driver reporting more than the buffer holds must not read past
	// the allocation.
	assert.Equal(t, "abc", goString([]byte("abc"), 17))
}

func TestBytePtrToString(t *testing.T) {
	assert.Equal(t, "", bytePtrToString(nil))

	version := []byte("4.6.0 NVIDIA 550.54.14\x00")
	assert.Equal(t, "4.6.0 NVIDIA 550.54.14", bytePtrToString(&version[0]))

	empty := []byte{0}
	assert.Equal(t, "", bytePtrToString(&empty[0]))
}

func TestSliceCount(t *testing.T) {
	assert.Equal(t, int32(3), sliceCount("Uniform1fv", 3, 1))
	assert.Equal(t, int32(2), sliceCount("Uniform4fv", 8, 4))
	assert.Equal(t, int32(1), sliceCount("UniformMatrix4fv", 16, 16))
	assert.Equal(t, int32(2), sliceCount("UniformMatrix3fv", 18, 9))
}

func TestSliceCountEmptySlicePanics(t *testing.T) {
	assert.PanicsWithValue(t, "gl: Uniform4fv called with an empty slice", func() {
		sliceCount("Uniform4fv", 0, 4)
	})
}

func TestSliceCountRemainderPanics(t *testing.T) {
	assert.PanicsWithValue(t, "gl: UniformMatrix4fv called with 15 values, not a multiple of 16", func() {
		sliceCount("UniformMatrix4fv", 15, 16)
	})
}
