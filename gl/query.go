package gl

import (
	"runtime"
	"unsafe"
)

func (f *Functions) GenQuery() Query {
	var q uint32
	f.n.GenQueries(1, unsafe.Pointer(&q))
	return Query{q}
}

func (f *Functions) DeleteQuery(q Query) {
	f.n.DeleteQueries(1, unsafe.Pointer(&q.V))
}

func (f *Functions) BeginQuery(target Enum, q Query) {
	f.n.BeginQuery(uint32(target), q.V)
}

func (f *Functions) EndQuery(target Enum) {
	f.n.EndQuery(uint32(target))
}

// QueryCounter records the GL time, in nanoseconds, into q. The target
// must be TIMESTAMP.
func (f *Functions) QueryCounter(q Query, target Enum) {
	f.n.QueryCounter(q.V, uint32(target))
}

func (f *Functions) GetQueryObjectuiv(q Query, pname Enum) uint32 {
	var v uint32
	f.n.GetQueryObjectuiv(q.V, uint32(pname), unsafe.Pointer(&v))
	return v
}

func (f *Functions) GetQueryObjectui64(q Query, pname Enum) uint64 {
	var v uint64
	f.n.GetQueryObjectui64v(q.V, uint32(pname), unsafe.Pointer(&v))
	return v
}

func (f *Functions) FenceSync(condition Enum, flags int) Sync {
	return Sync{f.n.FenceSync(uint32(condition), uint32(flags))}
}

func (f *Functions) DeleteSync(s Sync) {
	f.n.DeleteSync(s.V)
}

// ClientWaitSync blocks until s is signaled or timeout nanoseconds
// elapse. Pass TIMEOUT_IGNORED to wait without a deadline.
func (f *Functions) ClientWaitSync(s Sync, flags int, timeout uint64) Enum {
	return Enum(f.n.ClientWaitSync(s.V, uint32(flags), timeout))
}

func (f *Functions) WaitSync(s Sync, flags int, timeout uint64) {
	f.n.WaitSync(s.V, uint32(flags), timeout)
}

func (f *Functions) GenTransformFeedback() TransformFeedback {
	var tf uint32
	f.n.GenTransformFeedbacks(1, unsafe.Pointer(&tf))
	return TransformFeedback{tf}
}

func (f *Functions) DeleteTransformFeedback(tf TransformFeedback) {
	f.n.DeleteTransformFeedbacks(1, unsafe.Pointer(&tf.V))
}

func (f *Functions) BindTransformFeedback(target Enum, tf TransformFeedback) {
	f.n.BindTransformFeedback(uint32(target), tf.V)
}

func (f *Functions) BeginTransformFeedback(primitiveMode Enum) {
	f.n.BeginTransformFeedback(uint32(primitiveMode))
}

func (f *Functions) EndTransformFeedback() {
	f.n.EndTransformFeedback()
}

// TransformFeedbackVaryings declares the outputs captured during
// transform feedback. The program must be relinked afterwards.
func (f *Functions) TransformFeedbackVaryings(p Program, varyings []string, bufferMode Enum) {
	bufs := make([][]byte, len(varyings))
	ptrs := make([]unsafe.Pointer, len(varyings))
	for i, v := range varyings {
		bufs[i] = cString(v)
		ptrs[i] = unsafe.Pointer(&bufs[i][0])
	}
	var p0 unsafe.Pointer
	if len(ptrs) > 0 {
		p0 = unsafe.Pointer(&ptrs[0])
	}
	f.n.TransformFeedbackVaryings(p.V, int32(len(varyings)), p0, uint32(bufferMode))
	runtime.KeepAlive(bufs)
	runtime.KeepAlive(ptrs)
}

func (f *Functions) GetTransformFeedbackVarying(p Program, index int) (name string, size int, ty Enum) {
	bufSize := f.GetProgrami(p, TRANSFORM_FEEDBACK_VARYING_MAX_LENGTH)
	if bufSize == 0 {
		bufSize = 1
	}
	buf := make([]byte, bufSize)
	var length, sz int32
	var xtype uint32
	f.n.GetTransformFeedbackVarying(p.V, uint32(index), int32(len(buf)), unsafe.Pointer(&length), unsafe.Pointer(&sz), unsafe.Pointer(&xtype), unsafe.Pointer(&buf[0]))
	return goString(buf, int(length)), int(sz), Enum(xtype)
}
