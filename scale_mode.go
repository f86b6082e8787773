package svgbridge

// ScaleMode controls how a document's intrinsic size is mapped onto the
// requested output dimensions.
//
// The default is ScaleStretch, which is also the only mode the C boundary
// uses: the output is filled exactly, distorting the aspect ratio when it
// differs from the document's. ScaleBestFit is available to Go callers that
// want the conventional aspect-preserving behavior instead.
type ScaleMode int

const (
	// ScaleStretch scales each axis independently so the document fills
	// the requested dimensions exactly (default).
	ScaleStretch ScaleMode = iota

	// ScaleBestFit scales both axes uniformly by the smaller factor,
	// preserving aspect ratio. Content is anchored at the origin; the
	// remaining area stays transparent.
	ScaleBestFit
)

// String returns the scale mode name.
func (m ScaleMode) String() string {
	switch m {
	case ScaleStretch:
		return "stretch"
	case ScaleBestFit:
		return "best-fit"
	default:
		return "unknown"
	}
}
