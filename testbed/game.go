package testbed

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/loov/hrtime"

	"github.com/spaghettifunk/opal/containers"
	"github.com/spaghettifunk/opal/core"
	"github.com/spaghettifunk/opal/gl"
)

func init() {
	// GLFW event handling and all GL calls must run on the main OS thread
	runtime.LockOSThread()
}

// debugRingSize bounds how many recent driver debug messages are kept
// for the shutdown report.
const debugRingSize = 64

type Config struct {
	Width     int
	Height    int
	Title     string
	AssetsDir string
	LogLevel  core.Level
}

// App is the demo application: one spinning textured triangle rendered
// through the gl package, with KHR_debug logging and shader hot reload.
type App struct {
	config Config
	window *glfw.Window
	f      *gl.Functions

	shader  *Shader
	texture *Texture
	vao     gl.VertexArray
	vbo     gl.Buffer

	watcher   *ShaderWatcher
	debugRing *containers.RingQueue[gl.DebugMessage]

	// runID distinguishes this process's object labels in captures.
	runID string

	quitOnce sync.Once
	quit     chan struct{}
}

func New(config Config) *App {
	if config.Width == 0 {
		config.Width = 1280
	}
	if config.Height == 0 {
		config.Height = 720
	}
	if config.Title == "" {
		config.Title = "Opal Testbed"
	}
	if config.AssetsDir == "" {
		config.AssetsDir = "assets"
	}
	return &App{
		config:    config,
		debugRing: containers.NewRingQueue[gl.DebugMessage](debugRingSize),
		runID:     uuid.New().String()[:8],
		quit:      make(chan struct{}),
	}
}

func (a *App) Initialize() error {
	core.SetLogLevel(a.config.LogLevel)
	core.LogInfo("booting testbed %s...", a.runID)

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("testbed: initializing glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)

	window, err := glfw.CreateWindow(a.config.Width, a.config.Height, a.config.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("testbed: creating window: %w", err)
	}
	window.MakeContextCurrent()
	a.window = window

	f, err := gl.New()
	if err != nil {
		glfw.Terminate()
		return err
	}
	a.f = f

	core.LogInfo("OpenGL %s on %s", f.GetString(gl.VERSION), f.GetString(gl.RENDERER))

	f.Enable(gl.DEBUG_OUTPUT)
	f.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	f.DebugMessageCallback(a.onDebugMessage)
	f.DebugMessageControl(gl.DONT_CARE, gl.DONT_CARE, gl.DEBUG_SEVERITY_NOTIFICATION, nil, false)

	if err := a.buildPipeline(); err != nil {
		glfw.Terminate()
		return err
	}

	watcher, err := NewShaderWatcher(filepath.Join(a.config.AssetsDir, "shaders"))
	if err != nil {
		core.LogWarn("shader hot reload disabled: %v", err)
	} else {
		a.watcher = watcher
	}

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		a.f.Viewport(0, 0, width, height)
	})

	return nil
}

// Textured triangle, interleaved position (xyz) and texcoord (uv).
var triangleVertices = []float32{
	-0.6, -0.5, 0, 0, 1,
	0.6, -0.5, 0, 1, 1,
	0, 0.6, 0, 0.5, 0,
}

func (a *App) buildPipeline() error {
	f := a.f

	shader, err := a.loadShader()
	if err != nil {
		return err
	}
	a.shader = shader

	texture, err := LoadTexture(f, filepath.Join(a.config.AssetsDir, "textures", "checker.png"))
	if err != nil {
		return err
	}
	a.texture = texture

	a.vao = f.GenVertexArray()
	f.BindVertexArray(a.vao)

	a.vbo = f.GenBuffer()
	f.BindBuffer(gl.ARRAY_BUFFER, a.vbo)
	f.BufferData(gl.ARRAY_BUFFER, f32Bytes(triangleVertices), gl.STATIC_DRAW)

	pos, ok := f.GetAttribLocation(shader.Program(), "Position")
	if !ok {
		return fmt.Errorf("testbed: shader has no Position attribute")
	}
	f.EnableVertexAttribArray(pos)
	f.VertexAttribPointer(pos, 3, gl.FLOAT, false, 5*4, 0)

	uv, ok := f.GetAttribLocation(shader.Program(), "TexCoord")
	if !ok {
		return fmt.Errorf("testbed: shader has no TexCoord attribute")
	}
	f.EnableVertexAttribArray(uv)
	f.VertexAttribPointer(uv, 2, gl.FLOAT, false, 5*4, 3*4)

	a.label(gl.PROGRAM, shader.Program().V, "program")
	a.label(gl.TEXTURE, texture.ID.V, "texture")
	a.label(gl.VERTEX_ARRAY, a.vao.V, "vao")
	a.label(gl.BUFFER, a.vbo.V, "vbo")

	return nil
}

func (a *App) loadShader() (*Shader, error) {
	dir := filepath.Join(a.config.AssetsDir, "shaders")
	vert, err := os.ReadFile(filepath.Join(dir, "triangle.vert"))
	if err != nil {
		return nil, fmt.Errorf("testbed: %w", err)
	}
	frag, err := os.ReadFile(filepath.Join(dir, "triangle.frag"))
	if err != nil {
		return nil, fmt.Errorf("testbed: %w", err)
	}
	return NewShader(a.f, string(vert), string(frag))
}

// reloadShader swaps in freshly compiled sources, keeping the old
// program when compilation fails so the demo keeps rendering.
func (a *App) reloadShader(path string) {
	core.LogInfo("reloading shaders after change to %s", filepath.Base(path))
	shader, err := a.loadShader()
	if err != nil {
		core.LogError("shader reload failed, keeping previous program: %v", err)
		return
	}
	a.shader.Destroy()
	a.shader = shader
	a.label(gl.PROGRAM, shader.Program().V, "program")
}

func (a *App) label(identifier gl.Enum, name uint32, kind string) {
	a.f.ObjectLabel(identifier, name, fmt.Sprintf("testbed/%s/%s", a.runID, kind))
}

func (a *App) onDebugMessage(msg gl.DebugMessage) {
	if a.debugRing.IsFull() {
		a.debugRing.Dequeue()
	}
	a.debugRing.Enqueue(msg)

	switch msg.Severity {
	case gl.DEBUG_SEVERITY_HIGH:
		core.LogError("%s", msg)
	case gl.DEBUG_SEVERITY_MEDIUM:
		core.LogWarn("%s", msg)
	default:
		core.LogDebug("%s", msg)
	}
}

func (a *App) Run() error {
	f := a.f
	f.ClearColor(0.08, 0.08, 0.1, 1)
	f.Enable(gl.DEPTH_TEST)

	var frames int
	var frameTime time.Duration
	lastReport := hrtime.Now()

	for !a.window.ShouldClose() {
		select {
		case <-a.quit:
			a.window.SetShouldClose(true)
			continue
		default:
		}
		if a.watcher != nil {
			select {
			case path := <-a.watcher.Changed:
				a.reloadShader(path)
			default:
			}
		}

		frameStart := hrtime.Now()

		f.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		model := mgl32.HomogRotate3DZ(float32(glfw.GetTime()))
		a.shader.Begin()
		a.shader.UniformMatrix("Model", [16]float32(model))
		a.shader.UniformInt("AlbedoTexture", 0)
		a.texture.Bind(0)
		f.BindVertexArray(a.vao)
		f.DrawArrays(gl.TRIANGLES, 0, 3)
		a.shader.End()

		a.window.SwapBuffers()
		glfw.PollEvents()

		frames++
		frameTime += hrtime.Since(frameStart)
		if now := hrtime.Now(); now-lastReport > 2*time.Second {
			core.LogDebug("%d frames, avg %.2fms", frames, float64(frameTime.Microseconds())/float64(frames)/1000)
			frames = 0
			frameTime = 0
			lastReport = now
		}
	}

	a.cleanup()
	return nil
}

// Shutdown asks the render loop to stop. Safe to call from any
// goroutine; the GL teardown itself happens on the main thread.
func (a *App) Shutdown() error {
	a.quitOnce.Do(func() { close(a.quit) })
	glfw.PostEmptyEvent()
	return nil
}

func (a *App) cleanup() {
	core.LogInfo("shutting down testbed...")
	a.reportDebugMessages()

	if a.watcher != nil {
		a.watcher.Close()
	}
	a.f.DeleteBuffer(a.vbo)
	a.f.DeleteVertexArray(a.vao)
	a.texture.Destroy()
	a.shader.Destroy()
	a.f.DebugMessageCallback(nil)
	glfw.Terminate()
}

func (a *App) reportDebugMessages() {
	if a.debugRing.IsEmpty() {
		return
	}
	core.LogInfo("last %d driver debug messages:", a.debugRing.Len())
	for {
		msg, err := a.debugRing.Dequeue()
		if err != nil {
			break
		}
		core.LogInfo("  %s", msg)
	}
}

// f32Bytes views float32 vertex data as the byte slice the buffer
// upload path takes. The view aliases v and must not outlive it.
func f32Bytes(v []float32) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*4)
}
