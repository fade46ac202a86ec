// Package probe implements the duration probing stage.
package probe

import (
	"context"
	"fmt"

	"github.com/user/framegrab/pkg/pipeline"
	"github.com/user/framegrab/pkg/ports"
)

// Stage asks the media prober for a video's total duration.
type Stage struct {
	prober ports.MediaProber
	logger ports.Logger
}

// NewStage creates a new probe stage.
func NewStage(prober ports.MediaProber, logger ports.Logger) *Stage {
	return &Stage{
		prober: prober,
		logger: logger.WithComponent("probe"),
	}
}

// Execute probes the duration of the input video. A failure here is
// terminal for the video: there is no retry.
func (s *Stage) Execute(ctx context.Context, input pipeline.ProbeInput) (pipeline.ProbeResult, error) {
	s.logger.Debug("Probing duration of %s", input.VideoPath)

	duration, err := s.prober.ProbeDuration(ctx, input.VideoPath)
	if err != nil {
		return pipeline.ProbeResult{}, fmt.Errorf("probe duration: %w", err)
	}

	s.logger.Debug("Duration of %s: %.3f seconds", input.VideoPath, duration)
	return pipeline.ProbeResult{DurationSec: duration}, nil
}
