// Package contactsheet composes extracted frames into a single overview
// image per video.
package contactsheet

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/user/framegrab/pkg/ports"
	xdraw "golang.org/x/image/draw"
)

const (
	cellWidth   = 320
	cellHeight  = 180
	labelHeight = 16
	margin      = 8
	gap         = 8
	maxColumns  = 4
	jpegQuality = 85
)

// Generator renders thumbnail grids through the FileSystem port.
type Generator struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// New creates a new Generator.
func New(fs ports.FileSystem, logger ports.Logger) *Generator {
	return &Generator{
		fs:     fs,
		logger: logger.WithComponent("sheet"),
	}
}

// Write composes the given frame files into a JPEG grid at outPath.
// Frames that fail to decode leave their cell empty; the sheet fails only
// when no frame decodes at all.
func (g *Generator) Write(framePaths []string, outPath string) error {
	if len(framePaths) == 0 {
		return fmt.Errorf("no frames to compose")
	}

	columns := maxColumns
	if len(framePaths) < columns {
		columns = len(framePaths)
	}
	rows := (len(framePaths) + columns - 1) / columns

	width := margin*2 + columns*cellWidth + (columns-1)*gap
	height := margin*2 + rows*(cellHeight+labelHeight) + (rows-1)*gap

	dc := gg.NewContext(width, height)
	dc.SetRGB255(32, 32, 32)
	dc.Clear()

	decoded := 0
	for i, framePath := range framePaths {
		col := i % columns
		row := i / columns
		x := margin + col*(cellWidth+gap)
		y := margin + row*(cellHeight+labelHeight+gap)

		thumb, err := g.thumbnail(framePath)
		if err != nil {
			g.logger.Debug("Skipping frame %s: %s", framePath, err)
		} else {
			decoded++
			bounds := thumb.Bounds()
			dc.DrawImage(thumb, x+(cellWidth-bounds.Dx())/2, y+(cellHeight-bounds.Dy())/2)
		}

		dc.SetRGB255(220, 220, 220)
		dc.DrawString(filepath.Base(framePath), float64(x), float64(y+cellHeight+labelHeight-4))
	}

	if decoded == 0 {
		return fmt.Errorf("no frame could be decoded")
	}

	img := dc.Image()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return fmt.Errorf("encode sheet: %w", err)
	}
	if err := g.fs.WriteFile(outPath, buf.Bytes()); err != nil {
		return fmt.Errorf("write sheet: %w", err)
	}
	return nil
}

// thumbnail decodes one frame and scales it to fit the cell, preserving
// aspect ratio.
func (g *Generator) thumbnail(framePath string) (image.Image, error) {
	data, err := g.fs.ReadFile(framePath)
	if err != nil {
		return nil, err
	}
	src, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode jpeg: %w", err)
	}

	bounds := src.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("empty image")
	}

	scale := float64(cellWidth) / float64(bounds.Dx())
	if s := float64(cellHeight) / float64(bounds.Dy()); s < scale {
		scale = s
	}
	if scale > 1 {
		scale = 1
	}
	w := int(float64(bounds.Dx()) * scale)
	h := int(float64(bounds.Dy()) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
	return dst, nil
}
