package glfwcontext

import (
	"os"
	"runtime"
	"testing"

	"github.com/checkers3d/checkers3d/graphics"
	options "github.com/checkers3d/checkers3d/options"
	gl "github.com/go-gl/gl/v4.1-core/gl"
	glfw "github.com/go-gl/glfw/v3.3/glfw"
)

var initErr error

func TestMain(m *testing.M) {
	runtime.LockOSThread()
	initErr = glfw.Init()
	code := m.Run()
	if initErr == nil {
		glfw.Terminate()
	}
	os.Exit(code)
}

func TestGLFWKeyMapping(t *testing.T) {
	if k, ok := glfwKey(graphics.KeyEscape); !ok || k != glfw.KeyEscape {
		t.Errorf("escape mapped to %v, %v", k, ok)
	}
	if _, ok := glfwKey(graphics.KeyUnknown); ok {
		t.Error("unknown key must not map")
	}
}

func newHidden(t *testing.T) *Context {
	t.Helper()
	if initErr != nil {
		t.Skipf("glfw unavailable: %v", initErr)
	}
	runtime.LockOSThread()
	t.Cleanup(runtime.UnlockOSThread)

	c, err := New(options.Default(), false)
	if err != nil {
		t.Skipf("no OpenGL 4.0 context: %v", err)
	}
	t.Cleanup(func() {
		glfw.DetachCurrentContext()
		c.Shutdown()
	})
	if err := gl.Init(); err != nil {
		t.Skipf("failed to load OpenGL: %v", err)
	}
	return c
}

func TestNewWindow(t *testing.T) {
	c := newHidden(t)

	w, h := c.window.GetSize()
	if w != options.WindowWidth || h != options.WindowHeight {
		t.Errorf("window size = %dx%d, want %dx%d", w, h, options.WindowWidth, options.WindowHeight)
	}
	if major := c.window.GetAttrib(glfw.ContextVersionMajor); major < 4 {
		t.Errorf("context major version = %d, want >= 4", major)
	}
	if profile := c.window.GetAttrib(glfw.OpenGLProfile); profile != glfw.OpenGLCoreProfile {
		t.Errorf("profile = %d, want core", profile)
	}
	if c.KeyPressed(graphics.KeyEscape) {
		t.Error("escape should not be pressed in a hidden window")
	}
}

func TestShouldCloseRoundTrip(t *testing.T) {
	c := newHidden(t)

	if c.ShouldClose() {
		t.Fatal("new window should not be closing")
	}
	c.SetShouldClose(true)
	if !c.ShouldClose() {
		t.Error("expected ShouldClose after SetShouldClose(true)")
	}
}

func TestResizeUpdatesViewport(t *testing.T) {
	c := newHidden(t)

	var gotW, gotH int
	c.OnResize(func(w, h int) { gotW, gotH = w, h })
	c.framebufferSizeCallback(c.window, 320, 240)

	if gotW != 320 || gotH != 240 {
		t.Errorf("resize callback got %dx%d", gotW, gotH)
	}
	var viewport [4]int32
	gl.GetIntegerv(gl.VIEWPORT, &viewport[0])
	if viewport != [4]int32{0, 0, 320, 240} {
		t.Errorf("viewport = %v, want [0 0 320 240]", viewport)
	}
}
