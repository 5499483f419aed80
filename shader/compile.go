package shader

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/checkers3d/checkers3d/assets"
	"github.com/checkers3d/checkers3d/translator"
	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// Load reads the source at path and compiles it for stage. A missing file
// yields ErrNoSource without touching the driver.
func Load(path string, stage Stage) (Shader, error) {
	source, ok := assets.FileContents(path)
	if !ok {
		log.Printf("No shader source: %s", path)
		return 0, fmt.Errorf("%w: %s", ErrNoSource, path)
	}
	s, err := Compile(source, stage)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Compile compiles source for stage. GLSL ES 3.00 sources are translated to
// desktop GLSL first.
func Compile(source string, stage Stage) (Shader, error) {
	if translator.IsES(source) {
		translated, err := translator.ToDesktop(source, stage.String())
		if err != nil {
			log.Printf("Shader translation failed: %v", err)
			return 0, &CompileError{Stage: stage, Log: err.Error()}
		}
		source = translated
	}

	id := gl.CreateShader(stage.glType())
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, csources, nil)
	free()
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		infoLog := shaderInfoLog(id)
		gl.DeleteShader(id)
		log.Printf("Shader compilation failed (%s):\n%s", stage, infoLog)
		return 0, &CompileError{Stage: stage, Log: infoLog}
	}
	return Shader(id), nil
}

// Link links a vertex and a fragment shader into a program. Either input
// being absent yields ErrMissingShader without touching the driver.
func Link(vertex, fragment Shader) (Program, error) {
	if !vertex.Valid() || !fragment.Valid() {
		log.Println("Vertex/fragment shader doesn't exist")
		return 0, ErrMissingShader
	}

	id := gl.CreateProgram()
	gl.AttachShader(id, vertex.ID())
	gl.AttachShader(id, fragment.ID())
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		infoLog := programInfoLog(id)
		gl.DeleteProgram(id)
		log.Printf("Program linking failed:\n%s", infoLog)
		return 0, &LinkError{Log: infoLog}
	}

	gl.DetachShader(id, vertex.ID())
	gl.DetachShader(id, fragment.ID())
	return Program(id), nil
}

// LoadProgram compiles dir/vertex.glsl and dir/fragment.glsl and links them.
// The intermediate shader objects are released whatever the outcome.
func LoadProgram(dir string) (Program, error) {
	vs, vsErr := Load(filepath.Join(dir, VertexFile), Vertex)
	defer vs.Delete()
	fs, fsErr := Load(filepath.Join(dir, FragmentFile), Fragment)
	defer fs.Delete()

	p, err := Link(vs, fs)
	if err != nil {
		// Report the root cause rather than the missing-shader symptom.
		if vsErr != nil {
			return 0, vsErr
		}
		if fsErr != nil {
			return 0, fsErr
		}
		return 0, err
	}
	return p, nil
}

func shaderInfoLog(id uint32) string {
	var length int32
	buf := make([]byte, maxInfoLog)
	gl.GetShaderInfoLog(id, maxInfoLog, &length, &buf[0])
	return trimLog(buf, length)
}

func programInfoLog(id uint32) string {
	var length int32
	buf := make([]byte, maxInfoLog)
	gl.GetProgramInfoLog(id, maxInfoLog, &length, &buf[0])
	return trimLog(buf, length)
}

func trimLog(buf []byte, length int32) string {
	if length < 0 {
		length = 0
	}
	if int(length) > len(buf) {
		length = int32(len(buf))
	}
	return strings.TrimRight(string(buf[:length]), "\x00\n")
}
