package gl

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The binding-point methods live with the rest of the buffer surface.
func TestBufferBindingPointSignatures(t *testing.T) {
	ft := reflect.TypeOf(&Functions{})

	m, ok := ft.MethodByName("BindBufferBase")
	require.True(t, ok)
	assert.Equal(t, "func(*gl.Functions, gl.Enum, int, gl.Buffer)", m.Type.String())

	m, ok = ft.MethodByName("BindBufferRange")
	require.True(t, ok)
	assert.Equal(t, "func(*gl.Functions, gl.Enum, int, gl.Buffer, int, int)", m.Type.String())
}
