package svgbridge

import "github.com/srwiley/oksvg"

// document wraps an oksvg icon parsed by the software engine.
type document struct {
	icon *oksvg.SvgIcon
}

// Size returns the intrinsic dimensions declared by the SVG viewBox
// (or its width/height attributes when no viewBox is present).
func (d *document) Size() (width, height float64) {
	return d.icon.ViewBox.W, d.icon.ViewBox.H
}
