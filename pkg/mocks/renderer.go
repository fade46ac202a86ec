package mocks

import (
	"context"
	"sync"

	"github.com/user/framegrab/pkg/ports"
)

// RenderCall records one renderer invocation.
type RenderCall struct {
	VideoPath string
	Timestamp float64
	OutPath   string
	Last      bool
}

// FrameRenderer is a mock implementation of ports.FrameRenderer. Unless
// overridden, every render succeeds and writes a one-byte file to FS (when
// set) so that non-empty verification passes.
type FrameRenderer struct {
	mu    sync.Mutex
	calls []RenderCall

	FS *FileSystem

	RenderAtFunc   func(ctx context.Context, videoPath string, timestamp float64, outPath string) error
	RenderLastFunc func(ctx context.Context, videoPath string, outPath string) error
}

// NewFrameRenderer creates a new mock FrameRenderer.
func NewFrameRenderer() *FrameRenderer {
	return &FrameRenderer{}
}

func (m *FrameRenderer) RenderAt(ctx context.Context, videoPath string, timestamp float64, outPath string) error {
	m.record(RenderCall{VideoPath: videoPath, Timestamp: timestamp, OutPath: outPath})
	if m.RenderAtFunc != nil {
		return m.RenderAtFunc(ctx, videoPath, timestamp, outPath)
	}
	m.writeFrame(outPath)
	return nil
}

func (m *FrameRenderer) RenderLast(ctx context.Context, videoPath string, outPath string) error {
	m.record(RenderCall{VideoPath: videoPath, OutPath: outPath, Last: true})
	if m.RenderLastFunc != nil {
		return m.RenderLastFunc(ctx, videoPath, outPath)
	}
	m.writeFrame(outPath)
	return nil
}

func (m *FrameRenderer) record(call RenderCall) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

func (m *FrameRenderer) writeFrame(outPath string) {
	if m.FS != nil {
		_ = m.FS.WriteFile(outPath, []byte{0xff})
	}
}

// Calls returns all recorded invocations in call order.
func (m *FrameRenderer) Calls() []RenderCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]RenderCall(nil), m.calls...)
}

// LastCalls returns only the RenderLast invocations.
func (m *FrameRenderer) LastCalls() []RenderCall {
	var last []RenderCall
	for _, c := range m.Calls() {
		if c.Last {
			last = append(last, c)
		}
	}
	return last
}

var _ ports.FrameRenderer = (*FrameRenderer)(nil)
