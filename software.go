package svgbridge

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/net/html/charset"
)

// SoftwareEngine is the default Engine: CPU-based scanline rasterization.
// Parsing is done by srwiley/oksvg, drawing by srwiley/rasterx.
//
// The zero value is ready to use. SoftwareEngine is stateless and safe for
// concurrent use (the per-call Document is not, see Document).
type SoftwareEngine struct{}

// NewSoftwareEngine creates a new software engine.
func NewSoftwareEngine() *SoftwareEngine {
	return &SoftwareEngine{}
}

// Parse interprets data as an SVG document with default parse options.
func (e *SoftwareEngine) Parse(data []byte) (Document, error) {
	if err := checkSVGRoot(data); err != nil {
		return nil, err
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &document{icon: icon}, nil
}

// checkSVGRoot verifies data opens with an <svg> document element. oksvg's
// reader consumes rootless input (plain text decodes as bare character data)
// without complaint, yielding an empty icon instead of a parse failure, so
// the root is checked up front. Uses the same charset-aware reader oksvg
// parses with.
func checkSVGRoot(data []byte) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return errors.New("no <svg> root element")
			}
			return err
		}
		if se, ok := tok.(xml.StartElement); ok {
			if se.Name.Local != "svg" {
				return fmt.Errorf("root element is <%s>, want <svg>", se.Name.Local)
			}
			return nil
		}
	}
}

// Rasterize draws doc into dst under the given transform.
// doc must have been produced by a SoftwareEngine.
func (e *SoftwareEngine) Rasterize(doc Document, transform Matrix, dst *Pixmap) error {
	d, ok := doc.(*document)
	if !ok {
		return fmt.Errorf("svgbridge: document of type %T was not produced by the software engine", doc)
	}

	w, h := dst.Width(), dst.Height()
	img := dst.RGBA()
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)

	d.icon.Transform = toMatrix2D(transform)
	d.icon.Draw(dasher, 1.0)
	return nil
}

// toMatrix2D converts a Matrix to rasterx form.
// rasterx uses SVG matrix(a b c d e f) ordering: x' = a*x + c*y + e.
func toMatrix2D(m Matrix) rasterx.Matrix2D {
	return rasterx.Matrix2D{A: m.A, B: m.D, C: m.B, D: m.E, E: m.C, F: m.F}
}
