package ffmpegmedia

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"

	"github.com/user/framegrab/pkg/ports"
)

// Prober implements ports.MediaProber on top of the ffprobe binary.
type Prober struct {
	ffprobePath string
	logger      ports.Logger
}

// NewProber creates a new Prober using the given ffprobe binary.
func NewProber(ffprobePath string, logger ports.Logger) *Prober {
	return &Prober{
		ffprobePath: ffprobePath,
		logger:      logger.WithComponent("ffprobe"),
	}
}

// ProbeDuration returns the container duration of a video in seconds.
func (p *Prober) ProbeDuration(ctx context.Context, path string) (float64, error) {
	stdout, err := p.run(ctx,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	if err != nil {
		if errors.Is(err, errEmptyStderr) {
			return 0, errors.New("ffprobe failed while probing duration")
		}
		return 0, err
	}
	return parseDurationOutput(stdout)
}

// ProbeStillImage returns codec name and pixel dimensions of the first
// video stream of a still image file.
func (p *Prober) ProbeStillImage(ctx context.Context, path string) (ports.StillImageInfo, error) {
	stdout, err := p.run(ctx,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=codec_name,width,height",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	if err != nil {
		if errors.Is(err, errEmptyStderr) {
			return ports.StillImageInfo{}, errors.New("ffprobe failed on image")
		}
		return ports.StillImageInfo{}, err
	}
	return parseStillImageOutput(stdout)
}

// errEmptyStderr marks a non-zero exit that produced no diagnostic text,
// so callers can substitute an operation-specific fallback message.
var errEmptyStderr = errors.New("ffprobe exited without diagnostics")

func (p *Prober) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, p.ffprobePath, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	p.logger.Debug("Running %s %s", p.ffprobePath, strings.Join(args, " "))

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return "", errEmptyStderr
		}
		return "", errors.New(msg)
	}
	return stdout.String(), nil
}

func parseDurationOutput(stdout string) (float64, error) {
	value := strings.TrimSpace(stdout)
	duration, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("unexpected ffprobe duration output: %q", value)
	}
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration < 0 {
		return 0, fmt.Errorf("invalid duration detected: %v", duration)
	}
	return duration, nil
}

func parseStillImageOutput(stdout string) (ports.StillImageInfo, error) {
	var lines []string
	for _, line := range strings.Split(stdout, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) < 3 {
		return ports.StillImageInfo{}, fmt.Errorf("unexpected ffprobe output: %v", lines)
	}

	width, werr := strconv.Atoi(lines[1])
	height, herr := strconv.Atoi(lines[2])
	if werr != nil || herr != nil {
		return ports.StillImageInfo{}, fmt.Errorf("non-integer dimensions from ffprobe: %v", lines[1:3])
	}

	return ports.StillImageInfo{
		Codec:  strings.ToLower(lines[0]),
		Width:  width,
		Height: height,
	}, nil
}

var _ ports.MediaProber = (*Prober)(nil)
