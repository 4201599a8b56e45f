package svg

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
)

// MaxSupersample bounds the oversampling factor accepted by Rasterizer.
const MaxSupersample = 8

// Rasterizer renders a Document into square RGBA images.
type Rasterizer struct {
	supersample int
}

// NewRasterizer returns a rasterizer drawing at factor× and downscaling with
// CatmullRom when factor > 1. Factors outside 1..MaxSupersample are clamped.
func NewRasterizer(factor int) *Rasterizer {
	factor = max(1, min(factor, MaxSupersample))
	return &Rasterizer{supersample: factor}
}

// Render draws the document into a size×size image. The artwork is scaled to
// fit, preserving aspect ratio, and centered on a transparent canvas.
func (r *Rasterizer) Render(doc *Document, size int) (img *image.RGBA, err error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size %d", size)
	}
	// rasterx panics on some degenerate paths; surface those as errors.
	defer func() {
		if rec := recover(); rec != nil {
			img, err = nil, fmt.Errorf("rasterize %dx%d: %v", size, size, rec)
		}
	}()

	canvas := size * r.supersample
	full := r.draw(doc, canvas)
	if r.supersample == 1 {
		return full, nil
	}
	out := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(out, out.Bounds(), full, full.Bounds(), draw.Src, nil)
	return out, nil
}

func (r *Rasterizer) draw(doc *Document, size int) *image.RGBA {
	w, h := doc.ViewBox()
	if w <= 0 || h <= 0 {
		w, h = float64(size), float64(size)
	}
	scale := float64(size) / max(w, h)
	outW, outH := w*scale, h*scale
	offX, offY := (float64(size)-outW)/2, (float64(size)-outH)/2

	doc.icon.SetTarget(offX, offY, outW, outH)

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	doc.icon.Draw(raster, 1.0)
	return img
}

// EncodePNG encodes img as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
