package gl

// Enum is a GLenum or GLbitfield value as defined by the OpenGL
// specification. The integer values are fixed by the registry and cross
// the driver ABI unchanged.
type Enum uint32

// Attrib is a vertex attribute index.
type Attrib uint32

// Object names below are opaque driver handles. The driver owns their
// lifecycle; a name obtained from a Create call is only meaningful inside
// the context that produced it.

type (
	Buffer            struct{ V uint32 }
	Framebuffer       struct{ V uint32 }
	Pipeline          struct{ V uint32 }
	Program           struct{ V uint32 }
	Query             struct{ V uint32 }
	Renderbuffer      struct{ V uint32 }
	Sampler           struct{ V uint32 }
	Shader            struct{ V uint32 }
	Texture           struct{ V uint32 }
	TransformFeedback struct{ V uint32 }
	VertexArray       struct{ V uint32 }
)

// Uniform is a uniform location within a linked program. A location of -1
// is the driver's "not found" value and is silently ignored by uniform
// setters, per the specification.
type Uniform struct{ V int32 }

// Sync is a pointer-sized fence handle returned by FenceSync.
type Sync struct{ V uintptr }

// Object is a generic name used by binding queries.
type Object struct{ V uint32 }

// Valid reports whether the location refers to an active uniform.
func (u Uniform) Valid() bool {
	return u.V != -1
}
