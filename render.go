package svgbridge

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Sentinel errors returned by the render pipeline. The error texts are part
// of the boundary contract: the C surface forwards them verbatim into the
// calling thread's error slot.
var (
	// ErrInvalidArgs reports empty SVG input or a zero output dimension.
	ErrInvalidArgs = errors.New("invalid args")

	// ErrParse reports that the engine rejected the SVG input. It is always
	// wrapped together with the engine's diagnostic text.
	ErrParse = errors.New("parse error")

	// ErrAllocFailed reports that the pixel buffer could not be reserved,
	// typically because width*height*4 is too large.
	ErrAllocFailed = errors.New("alloc pixmap failed")
)

// Parse validates svg and parses it into a Document using the configured
// engine. Engine diagnostics are wrapped as "parse error: <diagnostic>".
func Parse(svg []byte, opts ...RenderOption) (Document, error) {
	o := resolveOptions(opts)
	if len(svg) == 0 {
		return nil, ErrInvalidArgs
	}
	doc, err := o.engine.Parse(svg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return doc, nil
}

// Render rasterizes svg into a freshly allocated width x height pixmap.
//
// It runs a single pass with no retries: validate, parse, allocate, scale,
// rasterize. Any failure returns a nil pixmap and an error wrapping one of
// the sentinel errors. svg is borrowed for the duration of the call only.
func Render(svg []byte, width, height uint32, opts ...RenderOption) (*Pixmap, error) {
	if len(svg) == 0 || width == 0 || height == 0 {
		return nil, ErrInvalidArgs
	}
	doc, err := Parse(svg, opts...)
	if err != nil {
		return nil, err
	}
	if _, ok := PixelBytes(width, height); !ok {
		return nil, ErrAllocFailed
	}
	pm := NewPixmap(int(width), int(height))
	if err := RenderDocument(doc, pm, opts...); err != nil {
		return nil, err
	}
	return pm, nil
}

// RenderInto rasterizes svg into the caller-supplied pixmap, clearing it
// first so the background is transparent black. The pixmap's dimensions
// select the output size.
func RenderInto(svg []byte, dst *Pixmap, opts ...RenderOption) error {
	if dst == nil || dst.Width() == 0 || dst.Height() == 0 {
		return ErrInvalidArgs
	}
	doc, err := Parse(svg, opts...)
	if err != nil {
		return err
	}
	dst.Clear()
	return RenderDocument(doc, dst, opts...)
}

// RenderDocument rasterizes an already parsed document into dst, compositing
// over dst's existing content. Callers that need a transparent background
// must start from a zeroed pixmap (NewPixmap and RenderInto both guarantee
// this).
func RenderDocument(doc Document, dst *Pixmap, opts ...RenderOption) error {
	o := resolveOptions(opts)
	if doc == nil || dst == nil || dst.Width() == 0 || dst.Height() == 0 {
		return ErrInvalidArgs
	}

	tf := scaleTransform(doc, dst.Width(), dst.Height(), o.scaleMode)

	start := time.Now()
	if err := o.engine.Rasterize(doc, tf, dst); err != nil {
		return fmt.Errorf("rasterize: %w", err)
	}
	Logger().Debug("rasterized document",
		"width", dst.Width(), "height", dst.Height(),
		"sx", tf.A, "sy", tf.E,
		"mode", o.scaleMode.String(),
		"elapsed", time.Since(start))
	return nil
}

// scaleTransform computes the scale-only transform mapping the document's
// intrinsic size onto a width x height raster. Intrinsic dimensions are
// floored to 1 unit per axis, so a sizeless document is blown up to fill the
// canvas rather than dividing by zero.
func scaleTransform(doc Document, width, height int, mode ScaleMode) Matrix {
	dw, dh := doc.Size()
	sx := float64(width) / math.Max(dw, 1)
	sy := float64(height) / math.Max(dh, 1)
	if mode == ScaleBestFit {
		s := math.Min(sx, sy)
		return Scale(s, s)
	}
	return Scale(sx, sy)
}

// PixelBytes returns the byte length of a width x height RGBA raster
// (width*height*4) and whether that length fits in an int without overflow.
func PixelBytes(width, height uint32) (int, bool) {
	px := uint64(width) * uint64(height)
	if px > uint64(math.MaxInt)/4 {
		return 0, false
	}
	return int(px * 4), true
}
