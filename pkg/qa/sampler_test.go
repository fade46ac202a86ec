package qa

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/framegrab/pkg/adapters/logger"
	"github.com/user/framegrab/pkg/mocks"
	"github.com/user/framegrab/pkg/pipeline"
	"github.com/user/framegrab/pkg/ports"
)

func seedFrames(fs *mocks.FileSystem, prober *mocks.MediaProber, dir string, count int) pipeline.VideoResult {
	_ = fs.MkdirAll(dir)
	for i := 1; i <= count; i++ {
		path := fmt.Sprintf("%s/frame_%06d_t%dp000.jpg", dir, i, (i-1)*30)
		_ = fs.WriteFile(path, []byte{0xff, 0xd8})
		prober.Images[path] = ports.StillImageInfo{Codec: "mjpeg", Width: 1280, Height: 720}
	}
	return pipeline.VideoResult{OutputDir: dir, Requested: count, Written: count}
}

func TestSampler_Run_AllPass(t *testing.T) {
	fs := mocks.NewFileSystem()
	prober := mocks.NewMediaProber()

	results := []pipeline.VideoResult{
		seedFrames(fs, prober, "/out/a", 5),
		seedFrames(fs, prober, "/out/b", 5),
	}

	sampler := New(prober, fs, logger.NewNoop())
	report := sampler.Run(context.Background(), results, Params{
		SampleDirs:         3,
		SampleImagesPerDir: 3,
		Seed:               42,
	})

	assert.Equal(t, 6, report.Checked)
	assert.Equal(t, 6, report.Passed)
	for _, line := range report.Lines {
		assert.Contains(t, line, "[OK]")
		assert.Contains(t, line, "1280x720, codec=mjpeg")
	}
}

func TestSampler_Run_DeterministicForSeed(t *testing.T) {
	fs := mocks.NewFileSystem()
	prober := mocks.NewMediaProber()

	var results []pipeline.VideoResult
	for i := 0; i < 6; i++ {
		results = append(results, seedFrames(fs, prober, fmt.Sprintf("/out/v%d", i), 8))
	}

	sampler := New(prober, fs, logger.NewNoop())
	params := Params{SampleDirs: 3, SampleImagesPerDir: 3, Seed: 42}

	first := sampler.Run(context.Background(), results, params)
	second := sampler.Run(context.Background(), results, params)

	assert.Equal(t, first, second)
}

func TestSampler_Run_ValidationFailures(t *testing.T) {
	fs := mocks.NewFileSystem()
	prober := mocks.NewMediaProber()

	res := seedFrames(fs, prober, "/out/a", 3)
	prober.Images["/out/a/frame_000001_t0p000.jpg"] = ports.StillImageInfo{Codec: "png", Width: 1280, Height: 720}
	prober.Images["/out/a/frame_000002_t30p000.jpg"] = ports.StillImageInfo{Codec: "mjpeg", Width: 0, Height: 720}

	sampler := New(prober, fs, logger.NewNoop())
	report := sampler.Run(context.Background(), []pipeline.VideoResult{res}, Params{
		SampleDirs:         1,
		SampleImagesPerDir: 3,
		Seed:               7,
	})

	assert.Equal(t, 3, report.Checked)
	assert.Equal(t, 1, report.Passed)

	var failures []string
	for _, line := range report.Lines {
		if strings.HasPrefix(line, "[FAIL]") {
			failures = append(failures, line)
		}
	}
	require.Len(t, failures, 2)

	joined := strings.Join(failures, "\n")
	assert.Contains(t, joined, "Unexpected codec png")
	assert.Contains(t, joined, "Invalid dimensions 0x720")
}

func TestSampler_Run_SkipsUnwrittenAndMissingDirs(t *testing.T) {
	fs := mocks.NewFileSystem()
	prober := mocks.NewMediaProber()

	written := seedFrames(fs, prober, "/out/a", 2)
	results := []pipeline.VideoResult{
		written,
		{OutputDir: "/out/never-written", Requested: 5, Written: 0},
		{OutputDir: "/out/deleted", Requested: 5, Written: 5}, // dir does not exist
	}

	sampler := New(prober, fs, logger.NewNoop())
	report := sampler.Run(context.Background(), results, Params{
		SampleDirs:         3,
		SampleImagesPerDir: 5,
		Seed:               42,
	})

	assert.Equal(t, 2, report.Checked)
	assert.Equal(t, 2, report.Passed)
}

func TestSampler_Run_EmptyDirWarnsWithoutCounting(t *testing.T) {
	fs := mocks.NewFileSystem()
	prober := mocks.NewMediaProber()

	_ = fs.MkdirAll("/out/empty")
	results := []pipeline.VideoResult{
		// Written > 0 but the files are gone by sampling time.
		{OutputDir: "/out/empty", Requested: 3, Written: 3},
	}

	sampler := New(prober, fs, logger.NewNoop())
	report := sampler.Run(context.Background(), results, Params{
		SampleDirs:         1,
		SampleImagesPerDir: 3,
		Seed:               42,
	})

	assert.Zero(t, report.Checked)
	assert.Zero(t, report.Passed)
	require.Len(t, report.Lines, 1)
	assert.Contains(t, report.Lines[0], "[WARN] No JPG images found")
}

func TestSampler_Run_NoCandidates(t *testing.T) {
	sampler := New(mocks.NewMediaProber(), mocks.NewFileSystem(), logger.NewNoop())
	report := sampler.Run(context.Background(), nil, Params{SampleDirs: 3, SampleImagesPerDir: 3, Seed: 42})

	assert.Zero(t, report.Checked)
	require.Len(t, report.Lines, 1)
	assert.Contains(t, report.Lines[0], "No converted directories available")
}

func TestSampleWithoutReplacement(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	rng := rand.New(rand.NewSource(1))
	picked := sampleWithoutReplacement(rng, items, 3)
	require.Len(t, picked, 3)
	seen := map[string]bool{}
	for _, p := range picked {
		assert.False(t, seen[p], "element picked twice: %s", p)
		seen[p] = true
	}

	// Requesting more than available returns everything once.
	rng = rand.New(rand.NewSource(1))
	all := sampleWithoutReplacement(rng, items, 10)
	assert.Len(t, all, 5)

	// The input slice is left intact.
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, items)
}
