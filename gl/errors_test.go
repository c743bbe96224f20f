package gl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingEntryPointsError(t *testing.T) {
	err := &MissingEntryPointsError{
		Library: "libGL.so.1",
		Names:   []string{"glCreateBuffers", "glNamedBufferData"},
	}
	assert.Equal(t,
		"gl: libGL.so.1 is missing 2 entry points: glCreateBuffers, glNamedBufferData",
		err.Error())
}

func TestMissingEntryPointsErrorOpenFailure(t *testing.T) {
	err := &MissingEntryPointsError{Library: "opengl32.dll"}
	assert.Equal(t, "gl: opengl32.dll could not be loaded", err.Error())
}

func TestMissingEntryPointsErrorCarriesLoaderError(t *testing.T) {
	cause := errors.New("libGL.so.1: cannot open shared object file")
	err := &MissingEntryPointsError{Library: "libGL.so.1", Err: cause}

	assert.Equal(t,
		"gl: libGL.so.1 could not be loaded: libGL.so.1: cannot open shared object file",
		err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestErrorName(t *testing.T) {
	assert.Equal(t, "GL_NO_ERROR", ErrorName(NO_ERROR))
	assert.Equal(t, "GL_INVALID_ENUM", ErrorName(INVALID_ENUM))
	assert.Equal(t, "GL_INVALID_OPERATION", ErrorName(INVALID_OPERATION))
	assert.Equal(t, "GL_OUT_OF_MEMORY", ErrorName(OUT_OF_MEMORY))
	assert.Equal(t, "GL_CONTEXT_LOST", ErrorName(CONTEXT_LOST))
	assert.Equal(t, "GL_UNKNOWN_ERROR(0xbeef)", ErrorName(0xBEEF))
}
