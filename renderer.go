package svgbridge

// Engine is the interface to the external SVG rendering engine.
// svgbridge treats the engine as an opaque collaborator: it owns SVG
// semantics and rasterization, svgbridge owns validation, scaling and the
// boundary contract.
type Engine interface {
	// Parse interprets raw SVG bytes as a vector document using the
	// engine's default options. The engine must not retain data past the
	// call's return.
	Parse(data []byte) (Document, error)

	// Rasterize draws doc into dst under the given transform, compositing
	// over dst's existing content.
	// Returns an error if the rendering operation fails.
	Rasterize(doc Document, transform Matrix, dst *Pixmap) error
}

// Document is a parsed, in-memory vector document produced by an Engine.
// A Document is not safe for concurrent Rasterize calls.
type Document interface {
	// Size returns the document's intrinsic dimensions in user units.
	// Either dimension may be zero for documents that declare no size.
	Size() (width, height float64)
}
