// Package mocks provides mock implementations of the ports interfaces.
package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/user/framegrab/pkg/ports"
)

// MediaProber is a mock implementation of ports.MediaProber.
type MediaProber struct {
	mu        sync.Mutex
	Durations map[string]float64
	Images    map[string]ports.StillImageInfo
	probed    []string

	ProbeDurationFunc   func(ctx context.Context, path string) (float64, error)
	ProbeStillImageFunc func(ctx context.Context, path string) (ports.StillImageInfo, error)
}

// NewMediaProber creates a new mock MediaProber.
func NewMediaProber() *MediaProber {
	return &MediaProber{
		Durations: make(map[string]float64),
		Images:    make(map[string]ports.StillImageInfo),
	}
}

func (m *MediaProber) ProbeDuration(ctx context.Context, path string) (float64, error) {
	if m.ProbeDurationFunc != nil {
		return m.ProbeDurationFunc(ctx, path)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.probed = append(m.probed, path)
	if d, ok := m.Durations[path]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("ffprobe failed while probing duration: %s", path)
}

func (m *MediaProber) ProbeStillImage(ctx context.Context, path string) (ports.StillImageInfo, error) {
	if m.ProbeStillImageFunc != nil {
		return m.ProbeStillImageFunc(ctx, path)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if info, ok := m.Images[path]; ok {
		return info, nil
	}
	return ports.StillImageInfo{}, fmt.Errorf("ffprobe failed on image: %s", path)
}

// Probed returns the paths passed to ProbeDuration, in call order.
func (m *MediaProber) Probed() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.probed...)
}

var _ ports.MediaProber = (*MediaProber)(nil)
