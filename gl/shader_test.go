package gl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShaderSourceEmptyStringPanics(t *testing.T) {
	f := &Functions{}
	assert.PanicsWithValue(t, "gl: ShaderSource called with an empty string", func() {
		f.ShaderSource(Shader{1}, "")
	})
}
