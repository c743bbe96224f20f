package gl

import (
	"fmt"
	"strings"
)

// MissingEntryPointsError reports entry points that could not be resolved
// against the driver when New was called. A silently missing GPU function
// is a correctness defect, so resolution fails loudly instead of stubbing.
// An empty Names means the GL library itself could not be loaded; Err then
// carries the loader's own error.
type MissingEntryPointsError struct {
	Library string
	Names   []string
	Err     error
}

func (e *MissingEntryPointsError) Error() string {
	if len(e.Names) == 0 {
		if e.Err != nil {
			return fmt.Sprintf("gl: %s could not be loaded: %v", e.Library, e.Err)
		}
		return fmt.Sprintf("gl: %s could not be loaded", e.Library)
	}
	return fmt.Sprintf("gl: %s is missing %d entry points: %s",
		e.Library, len(e.Names), strings.Join(e.Names, ", "))
}

func (e *MissingEntryPointsError) Unwrap() error {
	return e.Err
}

// ErrorName returns the registry name of a GetError result for log text.
// It performs no translation; the value itself is whatever the driver
// reported.
func ErrorName(e Enum) string {
	switch e {
	case NO_ERROR:
		return "GL_NO_ERROR"
	case INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	case STACK_UNDERFLOW:
		return "GL_STACK_UNDERFLOW"
	case STACK_OVERFLOW:
		return "GL_STACK_OVERFLOW"
	case CONTEXT_LOST:
		return "GL_CONTEXT_LOST"
	default:
		return fmt.Sprintf("GL_UNKNOWN_ERROR(0x%04x)", uint32(e))
	}
}
