// Package svgbridge renders SVG documents to RGBA pixel buffers and exposes
// that capability across a C foreign-function boundary.
//
// # Overview
//
// svgbridge is a thin, contract-focused layer around an external SVG engine.
// It does not implement SVG semantics, path rasterization, or color management
// itself; it validates inputs, computes the scale transform, invokes the
// engine, and marshals results and errors across the boundary. The default
// engine parses with srwiley/oksvg and rasterizes with srwiley/rasterx
// scanlines on the CPU.
//
// # Quick Start (Go API)
//
//	import "github.com/gogpu/svgbridge"
//
//	pm, err := svgbridge.Render(svgBytes, 512, 512)
//	if err != nil {
//	    // err wraps one of the sentinel errors (ErrInvalidArgs, ErrParse, ...)
//	}
//	_ = pm.Data() // RGBA bytes, row-major, 4 bytes per pixel, len = w*h*4
//
// # C Boundary
//
// The cmd/libsvgbridge package builds as a C shared library:
//
//	go build -buildmode=c-shared -o libsvgbridge.so ./cmd/libsvgbridge
//
// It exports sb_render_svg_to_rgba, sb_free_image, sb_last_error and
// sb_last_error_copy (see cmd/libsvgbridge/bridge.h for the ABI). Pixel memory
// handed across the boundary is allocated on the C heap and ownership
// transfers exclusively to the caller, who must release it exactly once with
// sb_free_image. Errors are reported through a per-thread slot; no Go panic
// ever crosses the boundary.
//
// # Scaling
//
// The requested output dimensions are filled exactly: horizontal and vertical
// scale factors are computed independently from the document's intrinsic size
// (floored to 1 unit per axis), so a document whose aspect ratio differs from
// the request is stretched. Go callers can opt into aspect-preserving scaling
// with WithScaleMode(ScaleBestFit); the C surface always stretches.
//
// # Concurrency
//
// Rendering is a synchronous, blocking call with no internal goroutines.
// Multiple threads may render concurrently; each calling thread owns an
// isolated error slot at the C boundary, so there is no cross-thread error
// state and no locking.
package svgbridge

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
