package ports

import "context"

// StillImageInfo describes the first video stream of a probed image file.
type StillImageInfo struct {
	Codec  string
	Width  int
	Height int
}

// MediaProber abstracts metadata probing of media files.
type MediaProber interface {
	// ProbeDuration returns the container duration of a video in seconds.
	// The returned value is always finite and non-negative.
	ProbeDuration(ctx context.Context, path string) (float64, error)

	// ProbeStillImage returns codec name and pixel dimensions of a still
	// image file.
	ProbeStillImage(ctx context.Context, path string) (StillImageInfo, error)
}

// FrameRenderer abstracts single-frame extraction from a video file.
type FrameRenderer interface {
	// RenderAt writes one still image sampled at the given timestamp
	// (in seconds) to outPath.
	RenderAt(ctx context.Context, videoPath string, timestamp float64, outPath string) error

	// RenderLast writes the final decodable frame to outPath. Seeking
	// happens backward from end-of-stream because an exact seek to the
	// probed duration yields no frame in many containers.
	RenderLast(ctx context.Context, videoPath string, outPath string) error
}
