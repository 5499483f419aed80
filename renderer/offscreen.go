package renderer

import (
	"fmt"
	"io"
	"log"

	options "github.com/checkers3d/checkers3d/options"
	gl "github.com/go-gl/gl/v4.1-core/gl"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Frame is one rendered frame's RGBA pixels, bottom row first.
type Frame struct {
	Pixels []byte
	PTS    int64
}

const (
	bytesPerPixel = 4
	numBuffers    = 3 // frames queued between the render thread and the encoder
)

// OffscreenRenderer is a color+depth framebuffer frames are rendered into
// before being read back for encoding.
type OffscreenRenderer struct {
	fbo               uint32
	textureID         uint32
	depthRenderbuffer uint32
	width             int
	height            int
}

func NewOffscreenRenderer(width, height int) (*OffscreenRenderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid offscreen size %dx%d", width, height)
	}
	or := &OffscreenRenderer{width: width, height: height}

	gl.GenFramebuffers(1, &or.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, or.fbo)

	gl.GenTextures(1, &or.textureID)
	gl.BindTexture(gl.TEXTURE_2D, or.textureID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, or.textureID, 0)

	gl.GenRenderbuffers(1, &or.depthRenderbuffer)
	gl.BindRenderbuffer(gl.RENDERBUFFER, or.depthRenderbuffer)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, int32(width), int32(height))
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, or.depthRenderbuffer)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		or.Destroy()
		return nil, fmt.Errorf("offscreen fbo is not complete (status 0x%x)", status)
	}
	return or, nil
}

// Bind directs rendering into the offscreen framebuffer.
func (or *OffscreenRenderer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, or.fbo)
	gl.Viewport(0, 0, int32(or.width), int32(or.height))
}

// Unbind restores the default framebuffer.
func (or *OffscreenRenderer) Unbind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// ReadPixels copies the current contents of the offscreen color buffer.
func (or *OffscreenRenderer) ReadPixels() []byte {
	pixels := make([]byte, or.width*or.height*bytesPerPixel)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, or.fbo)
	gl.ReadBuffer(gl.COLOR_ATTACHMENT0)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(or.width), int32(or.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	return pixels
}

func (or *OffscreenRenderer) Destroy() {
	gl.DeleteFramebuffers(1, &or.fbo)
	gl.DeleteTextures(1, &or.textureID)
	gl.DeleteRenderbuffers(1, &or.depthRenderbuffer)
}

// encoderArgs builds the ffmpeg arguments for raw RGBA frames of the given
// size arriving on stdin. Frames are read back bottom-up, hence vflip.
func encoderArgs(width, height, fps int) (inputArgs ffmpeg.KwArgs, outputArgs ffmpeg.KwArgs) {
	inputArgs = ffmpeg.KwArgs{
		"f":         "rawvideo",
		"pix_fmt":   "rgba",
		"s":         fmt.Sprintf("%dx%d", width, height),
		"framerate": fps,
	}
	outputArgs = ffmpeg.KwArgs{
		"vf":      "vflip",
		"c:v":     "libx264",
		"pix_fmt": "yuv420p",
	}
	return
}

// runEncoder is the consumer. It pipes frames into ffmpeg until frameChan is
// closed, then reports ffmpeg's outcome on doneChan. It keeps draining
// frameChan after a failure so the producer never blocks.
func runEncoder(opts *options.Options, width, height int, frameChan <-chan *Frame, doneChan chan<- error) {
	pipeReader, pipeWriter := io.Pipe()
	inputArgs, outputArgs := encoderArgs(width, height, *opts.FPS)

	ffmpegCmd := ffmpeg.Input("pipe:", inputArgs).
		Output(*opts.OutputFile, outputArgs).
		OverWriteOutput().WithInput(pipeReader).ErrorToStdOut()
	if *opts.FFMPEGPath != "" {
		ffmpegCmd = ffmpegCmd.SetFfmpegPath(*opts.FFMPEGPath)
	}

	errc := make(chan error, 1)
	go func() {
		err := ffmpegCmd.Run()
		// Unblock any pending write once ffmpeg is gone.
		pipeReader.Close()
		errc <- err
	}()

	var writeErr error
	for frame := range frameChan {
		if writeErr != nil {
			continue
		}
		if _, err := pipeWriter.Write(frame.Pixels); err != nil {
			log.Printf("Error writing frame %d to FFmpeg: %v", frame.PTS, err)
			writeErr = err
		}
	}
	pipeWriter.Close()

	err := <-errc
	if err == nil && writeErr != nil {
		err = fmt.Errorf("ffmpeg stopped reading frames: %w", writeErr)
	}
	doneChan <- err
}

// RunOffscreen renders opts.TotalFrames() frames into an offscreen buffer and
// encodes them to opts.OutputFile.
func (r *Renderer) RunOffscreen(opts *options.Options) error {
	if r.scene == nil {
		return ErrNoScene
	}
	totalFrames := opts.TotalFrames()
	if totalFrames <= 0 {
		return fmt.Errorf("nothing to record: duration %.2fs at %d fps", *opts.Duration, *opts.FPS)
	}

	if or := r.offscreenRenderer; or != nil && (or.width != r.width || or.height != r.height) {
		or.Destroy()
		r.offscreenRenderer = nil
	}
	if r.offscreenRenderer == nil {
		var err error
		r.offscreenRenderer, err = NewOffscreenRenderer(r.width, r.height)
		if err != nil {
			return fmt.Errorf("failed to create offscreen renderer: %w", err)
		}
	}

	log.Printf("Recording %d frames to %s", totalFrames, *opts.OutputFile)
	frameChan := make(chan *Frame, numBuffers)
	encoderDoneChan := make(chan error, 1)

	go runEncoder(opts, r.width, r.height, frameChan, encoderDoneChan)

	for i := 0; i < totalFrames; i++ {
		r.offscreenRenderer.Bind()
		r.scene.Draw()
		pixels := r.offscreenRenderer.ReadPixels()
		r.offscreenRenderer.Unbind()

		frameChan <- &Frame{Pixels: pixels, PTS: int64(i)}
	}
	close(frameChan)

	if err := <-encoderDoneChan; err != nil {
		return fmt.Errorf("encoding failed: %w", err)
	}
	return nil
}
