package svgbridge

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap represents a rectangular pixel buffer.
// Layout is RGBA, 4 bytes per pixel, row-major, no padding between rows,
// so the backing data is always exactly width*height*4 bytes.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new pixmap with the given dimensions.
// The buffer is zero-initialized (fully transparent black).
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// WrapPixmap creates a pixmap over externally owned memory. The caller
// guarantees data stays valid and exclusively held for the pixmap's lifetime;
// the pixmap never reallocates or releases it. len(data) must be exactly
// width*height*4.
func WrapPixmap(width, height int, data []uint8) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("svgbridge: wrap %dx%d pixmap: %w", width, height, ErrInvalidArgs)
	}
	if len(data) != width*height*4 {
		return nil, fmt.Errorf("svgbridge: wrap %dx%d pixmap: buffer is %d bytes, want %d: %w",
			width, height, len(data), width*height*4, ErrInvalidArgs)
	}
	return &Pixmap{width: width, height: height, data: data}, nil
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// RGBA returns an image.RGBA view sharing the pixmap's backing data.
// Writes through the view are visible in Data and vice versa.
func (p *Pixmap) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// SetPixel sets the raw RGBA bytes of a single pixel.
// Out-of-bounds coordinates are silently ignored.
func (p *Pixmap) SetPixel(x, y int, r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = r
	p.data[i+1] = g
	p.data[i+2] = b
	p.data[i+3] = a
}

// Clear resets every pixel to transparent black.
func (p *Pixmap) Clear() {
	clear(p.data)
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.RGBA())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := (y*p.width + x) * 4
	return color.RGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
