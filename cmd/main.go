package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/checkers3d/checkers3d/glfwcontext"
	options "github.com/checkers3d/checkers3d/options"
	renderer "github.com/checkers3d/checkers3d/renderer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	opts := options.Bind(flag.CommandLine)
	flag.Parse()

	if *opts.Help {
		fmt.Println("Checkers3D cube viewer/recorder")
		flag.PrintDefaults()
		return
	}

	os.Exit(run(opts))
}

// run owns GLFW for the lifetime of the process and returns the exit code.
func run(opts *options.Options) int {
	if err := glfwcontext.InitGraphics(); err != nil {
		log.Printf("Failed to initialize GLFW: %v", err)
		return 1
	}
	defer glfwcontext.TerminateGraphics()

	// If recording, the window will be hidden.
	ctx, err := glfwcontext.New(opts, !*opts.Record)
	if err != nil {
		log.Printf("Failed to create GLFW window: %v", err)
		return 1
	}

	r, err := renderer.NewRenderer(ctx, opts)
	if err != nil {
		log.Printf("Failed to create renderer: %v", err)
		ctx.Shutdown()
		return 1
	}
	defer r.Shutdown()

	shaderDir := opts.ResolveShaderDir()
	log.Printf("Loading shaders from %s", shaderDir)
	if err := r.InitScene(shaderDir); err != nil {
		log.Printf("No program: %v", err)
		return 1
	}

	if *opts.Record {
		log.Println("Starting offscreen render loop...")
		if err := r.RunOffscreen(opts); err != nil {
			log.Printf("Offscreen rendering failed: %v", err)
			return 1
		}
		log.Printf("Successfully rendered to %s", *opts.OutputFile)
		return 0
	}

	log.Println("Starting interactive render loop...")
	if err := r.Run(); err != nil {
		log.Printf("Render loop failed: %v", err)
		return 1
	}
	return 0
}
