// Package mp4probe reads MP4 container durations without spawning ffprobe.
// It wraps another prober and only handles the MP4 family of extensions;
// everything else, and any file it cannot parse, falls through to the
// wrapped prober.
package mp4probe

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/Eyevinn/mp4ff/mp4"
	"github.com/user/framegrab/pkg/ports"
)

var mp4Extensions = map[string]struct{}{
	".mp4": {},
	".m4v": {},
	".mov": {},
}

// Prober implements ports.MediaProber with an in-process MP4 fast path.
type Prober struct {
	fallback ports.MediaProber
	logger   ports.Logger
}

// New creates a Prober that delegates to fallback for non-MP4 files and
// for MP4 files it cannot parse.
func New(fallback ports.MediaProber, logger ports.Logger) *Prober {
	return &Prober{
		fallback: fallback,
		logger:   logger.WithComponent("mp4probe"),
	}
}

// ProbeDuration returns the container duration in seconds.
func (p *Prober) ProbeDuration(ctx context.Context, path string) (float64, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := mp4Extensions[ext]; !ok {
		return p.fallback.ProbeDuration(ctx, path)
	}

	duration, err := readMvhdDuration(path)
	if err != nil {
		p.logger.Debug("MP4 fast path failed for %s, falling back to ffprobe: %s", path, err)
		return p.fallback.ProbeDuration(ctx, path)
	}
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration < 0 {
		return p.fallback.ProbeDuration(ctx, path)
	}
	return duration, nil
}

// ProbeStillImage always delegates; mp4ff has no use for JPEG files.
func (p *Prober) ProbeStillImage(ctx context.Context, path string) (ports.StillImageInfo, error) {
	return p.fallback.ProbeStillImage(ctx, path)
}

// readMvhdDuration extracts the movie header duration from the moov box.
func readMvhdDuration(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	mp4File, err := mp4.DecodeFile(f)
	if err != nil {
		return 0, fmt.Errorf("decode mp4: %w", err)
	}

	moov := mp4File.Moov
	if mp4File.IsFragmented() && mp4File.Init != nil {
		moov = mp4File.Init.Moov
	}
	if moov == nil || moov.Mvhd == nil {
		return 0, fmt.Errorf("no movie header found")
	}
	if moov.Mvhd.Timescale == 0 {
		return 0, fmt.Errorf("zero timescale in movie header")
	}
	// Fragmented files conventionally leave the movie header duration at
	// zero; the real duration lives in the fragments. That is not a value
	// worth trusting, so let the wrapped prober handle it.
	if moov.Mvhd.Duration == 0 {
		return 0, fmt.Errorf("zero duration in movie header")
	}

	return float64(moov.Mvhd.Duration) / float64(moov.Mvhd.Timescale), nil
}

var _ ports.MediaProber = (*Prober)(nil)
