package options

import (
	"flag"
	"os"
)

// DefaultShaderDir is the directory vertex.glsl and fragment.glsl are read
// from when neither -shaders nor CHECKERS3D_SHADER_DIR is set. Override at
// build time with -ldflags "-X github.com/checkers3d/checkers3d/options.DefaultShaderDir=/path".
var DefaultShaderDir = "shaders"

// ShaderDirEnv names the environment variable consulted when -shaders is empty.
const ShaderDirEnv = "CHECKERS3D_SHADER_DIR"

const (
	WindowWidth  = 800
	WindowHeight = 800
	WindowTitle  = "Checkers3D"
)

type Options struct {
	ShaderDir   *string
	Help        *bool
	Wireframe   *bool
	Debug       *bool // Enable driver debug output when the context supports it
	Verbose     *bool // Also report notification-severity debug messages
	MaxFrames   *int  // Stop the interactive loop after this many frames; 0 runs until closed
	Record      *bool
	Duration    *float64
	FPS         *int
	OutputFile  *string
	FFMPEGPath  *string
	Width       int
	Height      int
	Title       string
	GLMajor     int
	GLMinor     int
	ForwardComp bool
}

// Bind registers the command-line flags on fs and returns the options they fill.
func Bind(fs *flag.FlagSet) *Options {
	return &Options{
		ShaderDir:   fs.String("shaders", "", "Directory holding vertex.glsl and fragment.glsl (from "+ShaderDirEnv+" env var if not set)"),
		Help:        fs.Bool("help", false, "Show help message"),
		Wireframe:   fs.Bool("wireframe", false, "Rasterize polygons as lines"),
		Debug:       fs.Bool("debug", true, "Report OpenGL driver debug messages"),
		Verbose:     fs.Bool("verbose", false, "Report notification-level driver debug messages too"),
		MaxFrames:   fs.Int("frames", 0, "Exit after rendering this many frames (0 = until the window is closed)"),
		Record:      fs.Bool("record", false, "Render offscreen and encode to a video file"),
		Duration:    fs.Float64("duration", 5.0, "Duration to record in seconds"),
		FPS:         fs.Int("fps", 60, "Frames per second for recording"),
		OutputFile:  fs.String("output", "checkers3d.mp4", "Output file name for recording"),
		FFMPEGPath:  fs.String("ffmpeg", "", "Path to ffmpeg executable"),
		Width:       WindowWidth,
		Height:      WindowHeight,
		Title:       WindowTitle,
		GLMajor:     4,
		GLMinor:     0,
		ForwardComp: true,
	}
}

// Default returns options with every flag at its default value.
func Default() *Options {
	return Bind(flag.NewFlagSet(WindowTitle, flag.ContinueOnError))
}

// ResolveShaderDir returns the shader directory: the -shaders flag, then the
// environment, then the build-time default.
func (o *Options) ResolveShaderDir() string {
	if o.ShaderDir != nil && *o.ShaderDir != "" {
		return *o.ShaderDir
	}
	if dir := os.Getenv(ShaderDirEnv); dir != "" {
		return dir
	}
	return DefaultShaderDir
}

// TotalFrames is the number of frames a recording of Duration seconds at FPS contains.
func (o *Options) TotalFrames() int {
	if *o.FPS <= 0 || *o.Duration <= 0 {
		return 0
	}
	return int(*o.Duration * float64(*o.FPS))
}
