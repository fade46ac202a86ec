// Package qa implements post-run sampling validation of extracted frames.
package qa

import (
	"context"
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"

	"github.com/user/framegrab/pkg/pipeline"
	"github.com/user/framegrab/pkg/ports"
)

// Codecs ffprobe reports for structurally valid JPEG files.
var acceptedCodecs = map[string]struct{}{
	"mjpeg": {},
	"jpeg":  {},
}

// Params configures one sampling run.
type Params struct {
	// SampleDirs is how many output directories to sample.
	SampleDirs int

	// SampleImagesPerDir is how many images to validate per sampled
	// directory.
	SampleImagesPerDir int

	// Seed makes the selection reproducible across runs.
	Seed int64
}

// Report is the outcome of one sampling run. Empty sampled directories add
// a warning line without touching the counters.
type Report struct {
	Checked int
	Passed  int
	Lines   []string
}

// Sampler validates a random subset of produced images after the batch has
// fully drained. It only reads; frame files are never mutated or deleted.
type Sampler struct {
	prober ports.MediaProber
	fs     ports.FileSystem
	logger ports.Logger
}

// New creates a new Sampler.
func New(prober ports.MediaProber, fs ports.FileSystem, logger ports.Logger) *Sampler {
	return &Sampler{
		prober: prober,
		fs:     fs,
		logger: logger.WithComponent("qa"),
	}
}

// Run samples directories and images with a generator seeded from params
// and validates each selected image via the prober. The same seed over the
// same candidate pool yields the same selection.
func (s *Sampler) Run(ctx context.Context, results []pipeline.VideoResult, params Params) Report {
	rng := rand.New(rand.NewSource(params.Seed))

	var candidates []string
	for _, res := range results {
		if res.Written == 0 {
			continue
		}
		if ok, err := s.fs.Exists(res.OutputDir); err == nil && ok {
			candidates = append(candidates, res.OutputDir)
		}
	}
	if len(candidates) == 0 {
		return Report{Lines: []string{"No converted directories available for sampling."}}
	}

	dirs := sampleWithoutReplacement(rng, candidates, params.SampleDirs)
	s.logger.Debug("Sampling %d directories for validation", len(dirs))

	var report Report
	for _, dir := range dirs {
		images, err := s.fs.Glob(filepath.Join(dir, "frame_*.jpg"))
		if err != nil || len(images) == 0 {
			report.Lines = append(report.Lines, "[WARN] No JPG images found in sampled folder: "+dir)
			continue
		}

		for _, imagePath := range sampleWithoutReplacement(rng, images, params.SampleImagesPerDir) {
			report.Checked++
			ok, detail := s.validate(ctx, imagePath)
			if ok {
				report.Passed++
				report.Lines = append(report.Lines, fmt.Sprintf("[OK] %s -> %s", imagePath, detail))
			} else {
				report.Lines = append(report.Lines, fmt.Sprintf("[FAIL] %s -> %s", imagePath, detail))
			}
		}
	}

	return report
}

// validate checks a single image: the prober must report a recognized JPEG
// codec and strictly positive dimensions.
func (s *Sampler) validate(ctx context.Context, imagePath string) (bool, string) {
	info, err := s.prober.ProbeStillImage(ctx, imagePath)
	if err != nil {
		return false, err.Error()
	}

	codec := strings.ToLower(info.Codec)
	if _, ok := acceptedCodecs[codec]; !ok {
		return false, fmt.Sprintf("Unexpected codec %s", codec)
	}
	if info.Width <= 0 || info.Height <= 0 {
		return false, fmt.Sprintf("Invalid dimensions %dx%d", info.Width, info.Height)
	}
	return true, fmt.Sprintf("%dx%d, codec=%s", info.Width, info.Height, codec)
}

// sampleWithoutReplacement picks min(k, len(items)) elements from items
// using rng, never repeating an element. The input slice is not modified.
func sampleWithoutReplacement(rng *rand.Rand, items []string, k int) []string {
	if k > len(items) {
		k = len(items)
	}
	if k <= 0 {
		return nil
	}
	pool := append([]string(nil), items...)
	picked := make([]string, 0, k)
	for i := 0; i < k; i++ {
		j := rng.Intn(len(pool))
		picked = append(picked, pool[j])
		pool = append(pool[:j], pool[j+1:]...)
	}
	return picked
}
