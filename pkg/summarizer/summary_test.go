package summarizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/framegrab/pkg/pipeline"
)

func buildTestSummary() *Summary {
	return NewBuilder().
		WithRunID("7b1c").
		WithSettings(Settings{
			InputDir:    "/videos",
			IntervalSec: 30,
			Workers:     4,
			Seed:        42,
		}).
		WithResults([]pipeline.VideoResult{
			{VideoPath: "/videos/a.mp4", OutputDir: "/videos/a", Requested: 5, Written: 5},
			{VideoPath: "/videos/b.mp4", OutputDir: "/videos/b", Requested: 4, Written: 3,
				Errors: []string{"frame_000002_t30p000.jpg: seek failed"}},
		}, 1).
		WithQA(3, 2, []string{
			"[OK] /videos/a/frame_000001_t0p000.jpg -> 1280x720, codec=mjpeg",
			"[FAIL] /videos/b/frame_000001_t0p000.jpg -> Unexpected codec png",
		}).
		Build()
}

func TestBuilder_DerivesTotals(t *testing.T) {
	summary := buildTestSummary()

	assert.Equal(t, 2, summary.Totals.Videos)
	assert.Equal(t, 9, summary.Totals.FramesRequested)
	assert.Equal(t, 8, summary.Totals.FramesWritten)
	assert.Equal(t, 1, summary.Totals.VideosWithIssues)
	assert.Equal(t, 1, summary.Totals.Unexpected)
	assert.False(t, summary.GeneratedAt.IsZero())
}

func TestTextFormatter(t *testing.T) {
	out := NewTextFormatter().Format(buildTestSummary())

	assert.Contains(t, out, "[SUMMARY]")
	assert.Contains(t, out, "- Videos processed: 2")
	assert.Contains(t, out, "- Frames requested: 9")
	assert.Contains(t, out, "- Frames written:   8")
	assert.Contains(t, out, "- Videos with issues: 1")
	assert.Contains(t, out, "[QA SAMPLING]")
	assert.Contains(t, out, "- Images checked: 3")
	assert.Contains(t, out, "- Images passed:  2")
	assert.Contains(t, out, "[FAIL] /videos/b/frame_000001_t0p000.jpg")

	// The summary block comes before the QA block.
	require.Less(t, strings.Index(out, "[SUMMARY]"), strings.Index(out, "[QA SAMPLING]"))
}

func TestMarkdownFormatter(t *testing.T) {
	out := NewMarkdownFormatter().Format(buildTestSummary())

	assert.Contains(t, out, "# Frame Extraction Report")
	assert.Contains(t, out, "Run ID: `7b1c`")
	assert.Contains(t, out, "| Setting | Value |\n|---|---|\n| Input | `/videos` |")
	assert.Contains(t, out, "## Videos")
	assert.Contains(t, out, "| `/videos/b.mp4` | `/videos/b` | 3 / 4 | 1 |")
	assert.Contains(t, out, "## Errors")
	assert.Contains(t, out, "seek failed")
	assert.Contains(t, out, "## QA Sampling")
	assert.Contains(t, out, "(beside each source video)")
}
