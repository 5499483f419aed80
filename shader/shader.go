// Package shader compiles GLSL stages and links them into GPU programs,
// surfacing the driver's diagnostics when either step fails.
package shader

import (
	"errors"
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// maxInfoLog caps how much of a driver info log is fetched.
const maxInfoLog = 1024

// Conventional file names inside a shader directory.
const (
	VertexFile   = "vertex.glsl"
	FragmentFile = "fragment.glsl"
)

var (
	// ErrNoSource is returned when a shader source file cannot be read.
	ErrNoSource = errors.New("no shader source")
	// ErrMissingShader is returned when Link is given an absent shader.
	ErrMissingShader = errors.New("vertex/fragment shader doesn't exist")
)

// Stage selects the pipeline stage a shader is compiled for.
type Stage int

const (
	Vertex Stage = iota
	Fragment
)

func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// glType is the GL shader type enum for the stage.
func (s Stage) glType() uint32 {
	if s == Fragment {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

// Shader is a compiled driver shader object. The zero value means absent.
type Shader uint32

func (s Shader) ID() uint32  { return uint32(s) }
func (s Shader) Valid() bool { return s != 0 }

// Delete releases the driver object. Deleting an absent shader is a no-op.
func (s Shader) Delete() {
	if s.Valid() {
		gl.DeleteShader(uint32(s))
	}
}

// Program is a linked driver program object. The zero value means absent.
type Program uint32

func (p Program) ID() uint32  { return uint32(p) }
func (p Program) Valid() bool { return p != 0 }

// Use installs the program as part of the current rendering state.
func (p Program) Use() {
	gl.UseProgram(uint32(p))
}

// UniformLocation returns the location of the named uniform, or -1 when the
// program has no active uniform of that name.
func (p Program) UniformLocation(name string) int32 {
	return gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00"))
}

// Delete releases the driver object. Deleting an absent program is a no-op.
func (p Program) Delete() {
	if p.Valid() {
		gl.DeleteProgram(uint32(p))
	}
}

// CompileError carries the driver's compile log for a stage.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, e.Log)
}

// LinkError carries the driver's link log.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("program linking failed: %s", e.Log)
}
