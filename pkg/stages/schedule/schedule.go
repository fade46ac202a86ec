// Package schedule implements timestamp scheduling for frame sampling.
package schedule

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/user/framegrab/pkg/pipeline"
)

// Timestamps computes the ordered set of sample timestamps for a video.
// The schedule always contains 0.0, advances by intervalSec while strictly
// below durationSec, and never contains duplicates. A non-positive duration
// still yields the single timestamp 0.0 so that degenerate videos produce
// one frame.
func Timestamps(durationSec, intervalSec float64) ([]float64, error) {
	if intervalSec <= 0 {
		return nil, pipeline.ErrInvalidInterval
	}

	if durationSec <= 0 {
		return []float64{0}, nil
	}

	// A set absorbs duplicate insertions from floating-point accumulation
	// when the interval divides the duration exactly.
	seen := map[float64]struct{}{0: {}}
	timestamps := []float64{0}
	for cursor := intervalSec; cursor < durationSec; cursor += intervalSec {
		if _, ok := seen[cursor]; ok {
			continue
		}
		seen[cursor] = struct{}{}
		timestamps = append(timestamps, cursor)
	}

	sort.Float64s(timestamps)
	return timestamps, nil
}

// FrameName returns the deterministic file name for the frame with the
// given 1-based ordinal at the given timestamp. Two runs over the same
// video with the same interval produce identically-named outputs, e.g.
// frame_000002_t30p000.jpg.
func FrameName(index int, timestamp float64) string {
	ts := strings.ReplaceAll(fmt.Sprintf("%.3f", timestamp), ".", "p")
	return fmt.Sprintf("frame_%06d_t%s.jpg", index, ts)
}

// Stage computes the timestamp schedule as a pipeline stage.
type Stage struct{}

// NewStage creates a new schedule stage.
func NewStage() *Stage {
	return &Stage{}
}

// Execute computes the schedule for the given duration and interval.
func (s *Stage) Execute(ctx context.Context, input pipeline.ScheduleInput) (pipeline.ScheduleResult, error) {
	timestamps, err := Timestamps(input.DurationSec, input.IntervalSec)
	if err != nil {
		return pipeline.ScheduleResult{}, err
	}
	return pipeline.ScheduleResult{Timestamps: timestamps}, nil
}
