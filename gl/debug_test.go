package gl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeDebugMessage(t *testing.T) {
	// The driver's message is length-prefixed and not required to be
	// NUL terminated; bytes past length must be ignored.
	raw := []byte("buffer object 3 will use VIDEO memoryXXXX")
	msg := decodeDebugMessage(
		DEBUG_SOURCE_API, DEBUG_TYPE_OTHER, 131185, DEBUG_SEVERITY_NOTIFICATION,
		37, &raw[0])

	assert.Equal(t, Enum(DEBUG_SOURCE_API), msg.Source)
	assert.Equal(t, Enum(DEBUG_TYPE_OTHER), msg.Type)
	assert.Equal(t, uint32(131185), msg.ID)
	assert.Equal(t, Enum(DEBUG_SEVERITY_NOTIFICATION), msg.Severity)
	assert.Equal(t, "buffer object 3 will use VIDEO memory", msg.Message)
}

func TestDecodeDebugMessageNil(t *testing.T) {
	msg := decodeDebugMessage(DEBUG_SOURCE_API, DEBUG_TYPE_ERROR, 1, DEBUG_SEVERITY_HIGH, 0, nil)
	assert.Equal(t, "", msg.Message)

	raw := []byte("x")
	msg = decodeDebugMessage(DEBUG_SOURCE_API, DEBUG_TYPE_ERROR, 1, DEBUG_SEVERITY_HIGH, -1, &raw[0])
	assert.Equal(t, "", msg.Message)
}

func TestDebugMessageString(t *testing.T) {
	msg := DebugMessage{
		Source:   DEBUG_SOURCE_SHADER_COMPILER,
		Type:     DEBUG_TYPE_ERROR,
		ID:       0x1f,
		Severity: DEBUG_SEVERITY_HIGH,
		Message:  "0:12: 'foo' : undeclared identifier",
	}
	assert.Equal(t,
		"[HIGH] SHADER_COMPILER ERROR (id=0x1f): 0:12: 'foo' : undeclared identifier",
		msg.String())
}

func TestDebugNameHelpers(t *testing.T) {
	assert.Equal(t, "APPLICATION", DebugSourceName(DEBUG_SOURCE_APPLICATION))
	assert.Equal(t, "PERFORMANCE", DebugTypeName(DEBUG_TYPE_PERFORMANCE))
	assert.Equal(t, "NOTIFICATION", DebugSeverityName(DEBUG_SEVERITY_NOTIFICATION))

	// Unknown enums fall back to hex so nothing is ever swallowed.
	assert.Equal(t, "SOURCE(0x0042)", DebugSourceName(0x42))
	assert.Equal(t, "TYPE(0x0042)", DebugTypeName(0x42))
	assert.Equal(t, "SEVERITY(0x0042)", DebugSeverityName(0x42))
}
