package gl

import (
	"fmt"
	"runtime"
	"unsafe"
)

// DebugMessage is one message delivered through the KHR_debug callback.
type DebugMessage struct {
	Source   Enum
	Type     Enum
	ID       uint32
	Severity Enum
	Message  string
}

func (m DebugMessage) String() string {
	return fmt.Sprintf("[%s] %s %s (id=0x%x): %s",
		DebugSeverityName(m.Severity), DebugSourceName(m.Source), DebugTypeName(m.Type), m.ID, m.Message)
}

// DebugCallback receives driver debug output. With
// DEBUG_OUTPUT_SYNCHRONOUS enabled it is invoked on the context thread;
// otherwise the driver may call it from its own threads.
type DebugCallback func(msg DebugMessage)

// decodeDebugMessage builds a DebugMessage from the raw callback
// arguments. The text is length-prefixed on the wire and is not required
// to be NUL terminated, so exactly length bytes are decoded.
func decodeDebugMessage(source, gltype, id, severity uint32, length int32, message *byte) DebugMessage {
	var text string
	if message != nil && length > 0 {
		text = string(unsafe.Slice(message, int(length)))
	}
	return DebugMessage{
		Source:   Enum(source),
		Type:     Enum(gltype),
		ID:       id,
		Severity: Enum(severity),
		Message:  text,
	}
}

// DebugMessageCallback installs cb as the debug output sink. The
// trampoline handed to the driver is retained for the lifetime of f, so
// installing a new callback replaces the previous one. A nil cb disables
// delivery.
func (f *Functions) DebugMessageCallback(cb DebugCallback) {
	if cb == nil {
		f.n.DebugMessageCallback(0, nil)
		f.debugCB = 0
		return
	}
	f.debugCB = newDebugTrampoline(func(source, gltype, id, severity uint32, length int32, message *byte) {
		cb(decodeDebugMessage(source, gltype, id, severity, length, message))
	})
	f.n.DebugMessageCallback(f.debugCB, nil)
}

// DebugMessageControl filters delivery. DONT_CARE for source, gltype or
// severity matches everything; a non-empty ids list restricts the filter
// to those message IDs.
func (f *Functions) DebugMessageControl(source, gltype, severity Enum, ids []uint32, enabled bool) {
	var p unsafe.Pointer
	if len(ids) > 0 {
		p = unsafe.Pointer(&ids[0])
	}
	f.n.DebugMessageControl(uint32(source), uint32(gltype), uint32(severity), int32(len(ids)), p, enabled)
	runtime.KeepAlive(ids)
}

func (f *Functions) DebugMessageInsert(source, gltype Enum, id uint32, severity Enum, message string) {
	buf := []byte(message)
	var p unsafe.Pointer
	if len(buf) > 0 {
		p = unsafe.Pointer(&buf[0])
	}
	f.n.DebugMessageInsert(uint32(source), uint32(gltype), id, uint32(severity), int32(len(buf)), p)
	runtime.KeepAlive(buf)
}

func (f *Functions) PushDebugGroup(source Enum, id uint32, message string) {
	buf := []byte(message)
	var p unsafe.Pointer
	if len(buf) > 0 {
		p = unsafe.Pointer(&buf[0])
	}
	f.n.PushDebugGroup(uint32(source), id, int32(len(buf)), p)
	runtime.KeepAlive(buf)
}

func (f *Functions) PopDebugGroup() {
	f.n.PopDebugGroup()
}

// ObjectLabel attaches a label to the object named by identifier and
// name, for example (BUFFER, b.V). The label shows up in debug output
// and graphics debuggers.
func (f *Functions) ObjectLabel(identifier Enum, name uint32, label string) {
	buf := []byte(label)
	var p unsafe.Pointer
	if len(buf) > 0 {
		p = unsafe.Pointer(&buf[0])
	}
	f.n.ObjectLabel(uint32(identifier), name, int32(len(buf)), p)
	runtime.KeepAlive(buf)
}

func (f *Functions) GetObjectLabel(identifier Enum, name uint32) string {
	max := f.GetInteger(MAX_LABEL_LENGTH)
	if max == 0 {
		return ""
	}
	buf := make([]byte, max)
	var length int32
	f.n.GetObjectLabel(uint32(identifier), name, int32(len(buf)), unsafe.Pointer(&length), unsafe.Pointer(&buf[0]))
	return goString(buf, int(length))
}

// DebugSourceName returns the registry name of a debug source for log text.
func DebugSourceName(e Enum) string {
	switch e {
	case DEBUG_SOURCE_API:
		return "API"
	case DEBUG_SOURCE_WINDOW_SYSTEM:
		return "WINDOW_SYSTEM"
	case DEBUG_SOURCE_SHADER_COMPILER:
		return "SHADER_COMPILER"
	case DEBUG_SOURCE_THIRD_PARTY:
		return "THIRD_PARTY"
	case DEBUG_SOURCE_APPLICATION:
		return "APPLICATION"
	case DEBUG_SOURCE_OTHER:
		return "OTHER"
	default:
		return fmt.Sprintf("SOURCE(0x%04x)", uint32(e))
	}
}

// DebugTypeName returns the registry name of a debug type for log text.
func DebugTypeName(e Enum) string {
	switch e {
	case DEBUG_TYPE_ERROR:
		return "ERROR"
	case DEBUG_TYPE_DEPRECATED_BEHAVIOR:
		return "DEPRECATED_BEHAVIOR"
	case DEBUG_TYPE_UNDEFINED_BEHAVIOR:
		return "UNDEFINED_BEHAVIOR"
	case DEBUG_TYPE_PORTABILITY:
		return "PORTABILITY"
	case DEBUG_TYPE_PERFORMANCE:
		return "PERFORMANCE"
	case DEBUG_TYPE_MARKER:
		return "MARKER"
	case DEBUG_TYPE_PUSH_GROUP:
		return "PUSH_GROUP"
	case DEBUG_TYPE_POP_GROUP:
		return "POP_GROUP"
	case DEBUG_TYPE_OTHER:
		return "OTHER"
	default:
		return fmt.Sprintf("TYPE(0x%04x)", uint32(e))
	}
}

// DebugSeverityName returns the registry name of a debug severity for log
// text.
func DebugSeverityName(e Enum) string {
	switch e {
	case DEBUG_SEVERITY_HIGH:
		return "HIGH"
	case DEBUG_SEVERITY_MEDIUM:
		return "MEDIUM"
	case DEBUG_SEVERITY_LOW:
		return "LOW"
	case DEBUG_SEVERITY_NOTIFICATION:
		return "NOTIFICATION"
	default:
		return fmt.Sprintf("SEVERITY(0x%04x)", uint32(e))
	}
}
