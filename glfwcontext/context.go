package glfwcontext

import (
	"log"
	"runtime"

	"github.com/checkers3d/checkers3d/graphics"
	options "github.com/checkers3d/checkers3d/options"
	gl "github.com/go-gl/gl/v4.1-core/gl"
	glfw "github.com/go-gl/glfw/v3.3/glfw"
)

var _ graphics.Context = (*Context)(nil)

// Context owns the GLFW window and the OpenGL context bound to it.
type Context struct {
	window *glfw.Window
	// resized is invoked after the viewport follows a framebuffer resize.
	resized func(width, height int)
}

// New creates a window sized and titled from options, makes its context
// current on the calling thread and keeps the GL viewport in step with the
// framebuffer. GLFW must already be initialized.
func New(options *options.Options, visible bool) (*Context, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, options.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, options.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	if options.ForwardComp {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	if options.Debug != nil && *options.Debug {
		glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	}
	if !visible {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(options.Width, options.Height, options.Title, nil, nil)
	if err != nil {
		return nil, err
	}

	c := &Context{window: win}
	win.MakeContextCurrent()
	win.SetFramebufferSizeCallback(c.framebufferSizeCallback)

	return c, nil
}

// OnResize registers f to run after each framebuffer resize.
func (c *Context) OnResize(f func(width, height int)) {
	c.resized = f
}

func (c *Context) framebufferSizeCallback(w *glfw.Window, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	if c.resized != nil {
		c.resized(width, height)
	}
}

// KeyPressed reports whether key is currently held down in this window.
func (c *Context) KeyPressed(key graphics.Key) bool {
	k, ok := glfwKey(key)
	if !ok {
		return false
	}
	return c.window.GetKey(k) == glfw.Press
}

func glfwKey(key graphics.Key) (glfw.Key, bool) {
	switch key {
	case graphics.KeyEscape:
		return glfw.KeyEscape, true
	default:
		return glfw.KeyUnknown, false
	}
}

// ExtensionSupported reports whether the current context exposes extension.
func (c *Context) ExtensionSupported(extension string) bool {
	return glfw.ExtensionSupported(extension)
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// Shutdown destroys the window. GLFW itself is released by TerminateGraphics.
func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) SetShouldClose(value bool) {
	c.window.SetShouldClose(value)
}

func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

// InitGraphics initializes GLFW. Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		// GLFW may hold partial state after a failed init.
		glfw.Terminate()
		return err
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down GLFW. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}
