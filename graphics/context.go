package graphics

// Key identifies a keyboard key independently of the windowing library.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
)

// Context defines the interface for an OpenGL context.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	SetShouldClose(bool)
	// KeyPressed reports whether key is currently held down.
	KeyPressed(key Key) bool
	// EndFrame presents the back buffer and processes pending window events.
	EndFrame()
	GetFramebufferSize() (int, int)
	// OnResize registers f to run after each framebuffer resize.
	OnResize(f func(width, height int))
	ExtensionSupported(extension string) bool
}
