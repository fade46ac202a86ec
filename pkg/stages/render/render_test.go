package render

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/framegrab/pkg/adapters/logger"
	"github.com/user/framegrab/pkg/mocks"
	"github.com/user/framegrab/pkg/pipeline"
)

func newInput() pipeline.RenderInput {
	return pipeline.RenderInput{
		VideoPath:   "/videos/clip.mp4",
		OutputDir:   "/videos/clip",
		DurationSec: 95,
		Timestamps:  []float64{0, 30, 60, 90},
	}
}

func TestStage_Execute_AllSucceed(t *testing.T) {
	fs := mocks.NewFileSystem()
	renderer := mocks.NewFrameRenderer()
	renderer.FS = fs

	stage := NewStage(renderer, fs, logger.NewNoop())

	result, err := stage.Execute(context.Background(), newInput())
	require.NoError(t, err)

	assert.Equal(t, 5, result.Requested)
	assert.Equal(t, 5, result.Written)
	assert.Empty(t, result.Errors)
	assert.Len(t, result.FramePaths, 5)

	// The last frame is named after the schedule length + 1 and the
	// probed duration.
	assert.Equal(t, "/videos/clip/frame_000005_t95p000.jpg", result.FramePaths[4])

	calls := renderer.Calls()
	require.Len(t, calls, 5)
	assert.True(t, calls[4].Last)
}

func TestStage_Execute_OneRenderFails(t *testing.T) {
	fs := mocks.NewFileSystem()
	renderer := mocks.NewFrameRenderer()
	renderer.FS = fs
	renderer.RenderAtFunc = func(ctx context.Context, videoPath string, timestamp float64, outPath string) error {
		if timestamp == 60 {
			return errors.New("Invalid data found when processing input")
		}
		_ = fs.WriteFile(outPath, []byte{0xff})
		return nil
	}

	stage := NewStage(renderer, fs, logger.NewNoop())

	result, err := stage.Execute(context.Background(), newInput())
	require.NoError(t, err)

	assert.Equal(t, 5, result.Requested)
	assert.Equal(t, 4, result.Written)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "frame_000003_t60p000.jpg")

	// The last frame is still attempted after a mid-schedule failure.
	require.Len(t, renderer.LastCalls(), 1)
}

func TestStage_Execute_EmptyOutputIsFailure(t *testing.T) {
	fs := mocks.NewFileSystem()
	renderer := mocks.NewFrameRenderer()
	renderer.RenderAtFunc = func(ctx context.Context, videoPath string, timestamp float64, outPath string) error {
		// Renderer claims success but writes an empty file.
		return fs.WriteFile(outPath, nil)
	}
	renderer.RenderLastFunc = func(ctx context.Context, videoPath string, outPath string) error {
		return fs.WriteFile(outPath, []byte{0xff})
	}

	stage := NewStage(renderer, fs, logger.NewNoop())

	result, err := stage.Execute(context.Background(), newInput())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Written)
	assert.Len(t, result.Errors, 4)
	for _, msg := range result.Errors {
		assert.Contains(t, msg, "Empty frame output")
	}
}

func TestStage_Execute_LastFrameFailureRecorded(t *testing.T) {
	fs := mocks.NewFileSystem()
	renderer := mocks.NewFrameRenderer()
	renderer.FS = fs
	renderer.RenderLastFunc = func(ctx context.Context, videoPath string, outPath string) error {
		return errors.New("could not seek to position")
	}

	stage := NewStage(renderer, fs, logger.NewNoop())

	result, err := stage.Execute(context.Background(), newInput())
	require.NoError(t, err)

	assert.Equal(t, 4, result.Written)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "frame_000005_t95p000.jpg")
}

func TestStage_Execute_DegenerateVideo(t *testing.T) {
	fs := mocks.NewFileSystem()
	renderer := mocks.NewFrameRenderer()
	renderer.FS = fs

	stage := NewStage(renderer, fs, logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.RenderInput{
		VideoPath:   "/videos/empty.mp4",
		OutputDir:   "/videos/empty",
		DurationSec: 0,
		Timestamps:  []float64{0},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Requested)
	assert.Equal(t, 2, result.Written)
}

func TestStage_Execute_Cancelled(t *testing.T) {
	fs := mocks.NewFileSystem()
	renderer := mocks.NewFrameRenderer()
	renderer.FS = fs

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stage := NewStage(renderer, fs, logger.NewNoop())

	_, err := stage.Execute(ctx, newInput())
	assert.ErrorIs(t, err, context.Canceled)
}
