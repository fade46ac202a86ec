// Package render implements the frame rendering stage.
package render

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/user/framegrab/pkg/pipeline"
	"github.com/user/framegrab/pkg/ports"
	"github.com/user/framegrab/pkg/stages/schedule"
)

// Stage materializes one still image per scheduled timestamp plus the
// dedicated last frame. Individual render failures are recorded and the
// stage continues, maximizing frames recovered from damaged files.
type Stage struct {
	renderer ports.FrameRenderer
	fs       ports.FileSystem
	logger   ports.Logger
}

// NewStage creates a new render stage.
func NewStage(renderer ports.FrameRenderer, fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		fs:       fs,
		logger:   logger.WithComponent("render"),
	}
}

// Execute renders all scheduled frames and the last frame for one video.
// The returned error is non-nil only on context cancellation; per-frame
// failures land in the result's Errors list instead.
func (s *Stage) Execute(ctx context.Context, input pipeline.RenderInput) (pipeline.RenderResult, error) {
	result := pipeline.RenderResult{
		// The last-frame render is always requested on top of the schedule.
		Requested: len(input.Timestamps) + 1,
	}

	s.logger.Debug("Rendering %d frames from %s", result.Requested, input.VideoPath)

	for i, timestamp := range input.Timestamps {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		framePath := filepath.Join(input.OutputDir, schedule.FrameName(i+1, timestamp))
		if err := s.renderer.RenderAt(ctx, input.VideoPath, timestamp, framePath); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", filepath.Base(framePath), err))
			continue
		}
		s.verify(framePath, &result)
	}

	lastPath := filepath.Join(input.OutputDir, schedule.FrameName(len(input.Timestamps)+1, input.DurationSec))
	if err := s.renderer.RenderLast(ctx, input.VideoPath, lastPath); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", filepath.Base(lastPath), err))
		return result, nil
	}
	s.verify(lastPath, &result)

	return result, nil
}

// verify counts the frame as written only if the file exists with non-zero
// size. An empty file is a render failure even when the renderer reported
// success, which catches silent truncation.
func (s *Stage) verify(framePath string, result *pipeline.RenderResult) {
	size, err := s.fs.FileSize(framePath)
	if err != nil || size == 0 {
		result.Errors = append(result.Errors, "Empty frame output: "+framePath)
		return
	}
	result.Written++
	result.FramePaths = append(result.FramePaths, framePath)
}
