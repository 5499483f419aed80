package renderer

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/checkers3d/checkers3d/graphics"
	options "github.com/checkers3d/checkers3d/options"
	shader "github.com/checkers3d/checkers3d/shader"
	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// glInitOnce guards loading the OpenGL function pointers.
var glInitOnce sync.Once

// Drawer renders one frame into the currently bound framebuffer.
type Drawer interface {
	Draw()
}

// Scene is the program and mesh drawn every frame over a cleared background.
type Scene struct {
	Program shader.Program
	Mesh    *Mesh
	Clear   Color
	// Fill is fed to the program's uColor uniform when it has one.
	Fill    Color
	fillLoc int32
}

// NewScene looks up the program's fill uniform once.
func NewScene(program shader.Program, mesh *Mesh, clear, fill Color) *Scene {
	return &Scene{
		Program: program,
		Mesh:    mesh,
		Clear:   clear,
		Fill:    fill,
		fillLoc: program.UniformLocation(fillUniform),
	}
}

// fillUniform is the vec4 the shipped fragment shader colours the mesh with.
const fillUniform = "uColor"

func (s *Scene) Draw() {
	gl.ClearColor(s.Clear[0], s.Clear[1], s.Clear[2], s.Clear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
	s.Program.Use()
	if s.fillLoc != -1 {
		gl.Uniform4f(s.fillLoc, s.Fill[0], s.Fill[1], s.Fill[2], s.Fill[3])
	}
	s.Mesh.Draw()
}

// Destroy releases the scene's GPU objects.
func (s *Scene) Destroy() {
	if s == nil {
		return
	}
	if s.Mesh != nil {
		s.Mesh.Destroy()
	}
	s.Program.Delete()
}

type Renderer struct {
	context           graphics.Context
	scene             *Scene
	offscreenRenderer *OffscreenRenderer
	width             int
	height            int
	maxFrames         int
	debugMode         debugMode
}

// NewRenderer loads OpenGL for the current context and applies the initial
// pipeline state: debug output, viewport and polygon mode.
func NewRenderer(ctx graphics.Context, options *options.Options) (*Renderer, error) {
	r := &Renderer{context: ctx}
	if options.MaxFrames != nil {
		r.maxFrames = *options.MaxFrames
	}

	r.context.MakeCurrent()

	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}
	log.Printf("OpenGL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	if options.Debug != nil && *options.Debug {
		r.debugMode = debugOutputMode(ctx)
		if r.debugMode == debugNone {
			log.Println("Warning: driver debug output is not available on this context.")
		} else {
			enableDebugOutput(r.debugMode, options.Verbose != nil && *options.Verbose)
			log.Printf("Driver debug output enabled (%s)", r.debugMode)
		}
	}

	r.width, r.height = ctx.GetFramebufferSize()
	if r.width <= 0 || r.height <= 0 {
		r.width, r.height = options.Width, options.Height
	}
	r.watchResize()
	gl.Viewport(0, 0, int32(r.width), int32(r.height))
	if options.Wireframe != nil && *options.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}

	return r, nil
}

// watchResize keeps the render size in step with the window's framebuffer.
func (r *Renderer) watchResize() {
	r.context.OnResize(func(width, height int) {
		r.width, r.height = width, height
	})
}

// InitScene compiles the shaders in shaderDir and uploads the cube.
func (r *Renderer) InitScene(shaderDir string) error {
	program, err := shader.LoadProgram(shaderDir)
	if err != nil {
		return fmt.Errorf("failed to create shader program: %w", err)
	}

	mesh, err := NewMesh(CubeVertices, CubeIndices)
	if err != nil {
		program.Delete()
		return fmt.Errorf("failed to upload cube: %w", err)
	}

	r.scene = NewScene(program, mesh, Black, Red)
	log.Printf("Scene ready: %d indices", mesh.IndexCount())
	return nil
}

// ErrNoScene is returned when a render loop starts before InitScene succeeded.
var ErrNoScene = errors.New("no program")

// Run draws frames until the window is asked to close.
func (r *Renderer) Run() error {
	if r.scene == nil {
		return ErrNoScene
	}
	frames := RunLoop(r.context, r.scene, r.maxFrames)
	log.Printf("Render loop finished after %d frames", frames)
	return nil
}

// RunLoop is the interactive loop: draw, honour Escape, present, repeat
// until ctx reports it should close. A positive maxFrames closes the window
// after that many presented frames. It returns the number of frames drawn.
func RunLoop(ctx graphics.Context, scene Drawer, maxFrames int) int {
	frames := 0
	for !ctx.ShouldClose() {
		scene.Draw()
		if ctx.KeyPressed(graphics.KeyEscape) {
			ctx.SetShouldClose(true)
		}
		ctx.EndFrame()
		frames++
		if maxFrames > 0 && frames >= maxFrames {
			ctx.SetShouldClose(true)
		}
	}
	return frames
}

// Shutdown releases GPU objects and the window. GLFW is terminated by the caller.
func (r *Renderer) Shutdown() {
	r.scene.Destroy()
	r.scene = nil
	if r.offscreenRenderer != nil {
		r.offscreenRenderer.Destroy()
		r.offscreenRenderer = nil
	}
	r.context.Shutdown()
}
