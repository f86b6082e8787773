// Command libsvgbridge builds the svgbridge render core as a C shared
// library. The exported surface (see bridge.h) is four functions:
// sb_render_svg_to_rgba, sb_free_image, sb_last_error, sb_last_error_copy.
//
// Build:
//
//	go build -buildmode=c-shared -o libsvgbridge.so ./cmd/libsvgbridge
//
// Ownership contract: pixel memory returned by sb_render_svg_to_rgba is
// allocated on the C heap and owned exclusively by the caller, who releases
// it exactly once with sb_free_image. Error state is per calling thread and
// is reset at the start of every render call.
package main

func main() {}
