// Package gl exposes the OpenGL core-profile entry points of the current
// context's driver. Entry points are resolved by symbol name when New is
// called and every call is forwarded to the driver unmodified: the package
// performs no validation, no error translation and keeps no state of its
// own beyond the resolved dispatch table.
//
// OpenGL contexts are thread-affine. New and every method of Functions
// must be called from the thread that owns the current context; the
// package adds no synchronization.
//
// Errors surface only through the driver's own channels: poll GetError or
// subscribe with DebugMessageCallback.
package gl
