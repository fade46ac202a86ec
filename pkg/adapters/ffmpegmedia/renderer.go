package ffmpegmedia

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/user/framegrab/pkg/ports"
)

// lastFrameSeekSec is how far before end-of-stream the last-frame render
// starts decoding. Seeking exactly to the probed duration yields no frame
// in many containers, so the final frame is found near the end instead.
const lastFrameSeekSec = 3

// Renderer implements ports.FrameRenderer on top of the ffmpeg binary.
type Renderer struct {
	ffmpegPath string
	logger     ports.Logger
}

// NewRenderer creates a new Renderer using the given ffmpeg binary.
func NewRenderer(ffmpegPath string, logger ports.Logger) *Renderer {
	return &Renderer{
		ffmpegPath: ffmpegPath,
		logger:     logger.WithComponent("ffmpeg"),
	}
}

// RenderAt seeks to the timestamp and emits exactly one still image.
func (r *Renderer) RenderAt(ctx context.Context, videoPath string, timestamp float64, outPath string) error {
	args := []string{
		"-hide_banner",
		"-loglevel", "error",
		"-y",
		"-ss", fmt.Sprintf("%.3f", timestamp),
		"-i", videoPath,
		"-frames:v", "1",
		"-q:v", "2",
		outPath,
	}
	return r.run(ctx, args, "ffmpeg frame extraction failed")
}

// RenderLast seeks backward from end-of-stream and emits the final
// decodable frame.
func (r *Renderer) RenderLast(ctx context.Context, videoPath string, outPath string) error {
	args := []string{
		"-hide_banner",
		"-loglevel", "error",
		"-y",
		"-sseof", fmt.Sprintf("-%d", lastFrameSeekSec),
		"-i", videoPath,
		"-frames:v", "1",
		"-q:v", "2",
		"-update", "1",
		outPath,
	}
	return r.run(ctx, args, "ffmpeg last-frame extraction failed")
}

func (r *Renderer) run(ctx context.Context, args []string, fallbackMsg string) error {
	cmd := exec.CommandContext(ctx, r.ffmpegPath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	r.logger.Debug("Running %s %s", r.ffmpegPath, strings.Join(args, " "))

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = fallbackMsg
		}
		return errors.New(msg)
	}
	return nil
}

var _ ports.FrameRenderer = (*Renderer)(nil)
