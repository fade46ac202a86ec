package contactsheet

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/framegrab/pkg/adapters/logger"
	"github.com/user/framegrab/pkg/mocks"
)

func encodeTestJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestGenerator_Write(t *testing.T) {
	fs := mocks.NewFileSystem()
	frame := encodeTestJPEG(t, 640, 360)
	paths := []string{
		"/out/clip/frame_000001_t0p000.jpg",
		"/out/clip/frame_000002_t30p000.jpg",
		"/out/clip/frame_000003_t60p000.jpg",
	}
	for _, p := range paths {
		require.NoError(t, fs.WriteFile(p, frame))
	}

	gen := New(fs, logger.NewNoop())
	require.NoError(t, gen.Write(paths, "/out/clip/sheet.jpg"))

	data, err := fs.ReadFile("/out/clip/sheet.jpg")
	require.NoError(t, err)
	require.NotEmpty(t, data)

	sheet, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Positive(t, sheet.Bounds().Dx())
	assert.Positive(t, sheet.Bounds().Dy())
}

func TestGenerator_Write_SkipsUndecodableFrames(t *testing.T) {
	fs := mocks.NewFileSystem()
	require.NoError(t, fs.WriteFile("/out/clip/frame_000001_t0p000.jpg", encodeTestJPEG(t, 320, 180)))
	require.NoError(t, fs.WriteFile("/out/clip/frame_000002_t30p000.jpg", []byte("not a jpeg")))

	gen := New(fs, logger.NewNoop())
	err := gen.Write([]string{
		"/out/clip/frame_000001_t0p000.jpg",
		"/out/clip/frame_000002_t30p000.jpg",
	}, "/out/clip/sheet.jpg")
	require.NoError(t, err)

	exists, err := fs.Exists("/out/clip/sheet.jpg")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestGenerator_Write_AllUndecodable(t *testing.T) {
	fs := mocks.NewFileSystem()
	require.NoError(t, fs.WriteFile("/out/clip/frame_000001_t0p000.jpg", []byte("junk")))

	gen := New(fs, logger.NewNoop())
	err := gen.Write([]string{"/out/clip/frame_000001_t0p000.jpg"}, "/out/clip/sheet.jpg")
	assert.Error(t, err)
}

func TestGenerator_Write_NoFrames(t *testing.T) {
	gen := New(mocks.NewFileSystem(), logger.NewNoop())
	assert.Error(t, gen.Write(nil, "/out/sheet.jpg"))
}
