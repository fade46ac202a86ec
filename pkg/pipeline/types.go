package pipeline

// =============================================================================
// Batch Types
// =============================================================================

// VideoTask identifies one input video to process. Tasks are created at
// batch start from directory discovery and never mutated afterwards.
type VideoTask struct {
	VideoPath string  // absolute path to the source video
	OutputDir string  // resolved per-video output directory
	Interval  float64 // seconds between sampled timestamps
}

// VideoResult is the finalized outcome for one processed video. It is
// mutated only by the job that owns it and is immutable once handed to the
// batch aggregator.
type VideoResult struct {
	VideoPath string
	OutputDir string

	// Requested is the number of frames the schedule asked for, including
	// the dedicated last-frame render.
	Requested int

	// Written counts frames that exist on disk with non-zero size.
	Written int

	// Errors holds one message per failed frame or probe/schedule failure,
	// in the order the failures occurred.
	Errors []string

	// FramePaths lists the written frame files in render order.
	FramePaths []string
}

// HasIssues reports whether the video needs operator attention: nothing was
// written, something failed, or fewer frames landed than requested.
func (r VideoResult) HasIssues() bool {
	return r.Written == 0 || len(r.Errors) > 0 || r.Written < r.Requested
}

// =============================================================================
// Probe Stage Types
// =============================================================================

// ProbeInput contains parameters for the duration probe.
type ProbeInput struct {
	VideoPath string
}

// ProbeResult contains the probed duration.
type ProbeResult struct {
	DurationSec float64
}

// =============================================================================
// Schedule Stage Types
// =============================================================================

// ScheduleInput contains parameters for timestamp scheduling.
type ScheduleInput struct {
	DurationSec float64
	IntervalSec float64
}

// ScheduleResult contains the ordered, deduplicated sample timestamps.
type ScheduleResult struct {
	Timestamps []float64
}

// =============================================================================
// Render Stage Types
// =============================================================================

// RenderInput contains everything needed to materialize one video's frames.
type RenderInput struct {
	VideoPath   string
	OutputDir   string
	DurationSec float64
	Timestamps  []float64
}

// RenderResult accumulates the outcome of all frame renders for one video.
type RenderResult struct {
	Requested  int
	Written    int
	Errors     []string
	FramePaths []string
}
