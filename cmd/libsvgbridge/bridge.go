package main

/*
#include <stdlib.h>
#include "bridge.h"
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/gogpu/svgbridge"
	"github.com/gogpu/svgbridge/internal/threaderr"
)

// imageHandle is the Go-typed view of an SBImage. The exported shims convert
// between the two; tests (which cannot import "C") drive the Go-typed
// functions directly.
type imageHandle struct {
	ptr    unsafe.Pointer
	size   uintptr
	width  uint32
	height uint32
}

//export sb_render_svg_to_rgba
func sb_render_svg_to_rgba(svgPtr *C.uint8_t, svgLen C.size_t, width, height C.uint32_t) C.SBImage {
	h := renderSVGToRGBA(unsafe.Pointer(svgPtr), uintptr(svgLen), uint32(width), uint32(height))
	return C.SBImage{
		ptr:    (*C.uint8_t)(h.ptr),
		len:    C.size_t(h.size),
		width:  C.uint32_t(h.width),
		height: C.uint32_t(h.height),
	}
}

//export sb_free_image
func sb_free_image(img C.SBImage) {
	freeImage(imageHandle{
		ptr:    unsafe.Pointer(img.ptr),
		size:   uintptr(img.len),
		width:  uint32(img.width),
		height: uint32(img.height),
	})
}

//export sb_last_error
func sb_last_error() *C.char {
	return (*C.char)(lastError())
}

//export sb_last_error_copy
func sb_last_error_copy(buf *C.char, size C.size_t) C.size_t {
	return C.size_t(copyLastError(unsafe.Pointer(buf), uintptr(size)))
}

// renderSVGToRGBA runs the render pipeline and returns a handle whose pixel
// memory lives on the C heap, so the release obligation transfers cleanly to
// a caller that knows nothing about the Go runtime. The calling thread's
// error slot is cleared first and written on any failure; no panic escapes.
//
// svgPtr is a borrowed, read-only view into caller-owned memory; it is never
// retained past the call's return.
func renderSVGToRGBA(svgPtr unsafe.Pointer, svgLen uintptr, width, height uint32) (h imageHandle) {
	threaderr.Clear()

	var cbuf unsafe.Pointer
	defer func() {
		if r := recover(); r != nil {
			svgbridge.Logger().Warn("render panicked", "panic", r)
			if cbuf != nil {
				C.free(cbuf)
			}
			threaderr.Set(fmt.Sprintf("panic: %v", r))
			h = imageHandle{}
		}
	}()

	if svgPtr == nil || svgLen == 0 || width == 0 || height == 0 {
		threaderr.Set("invalid args")
		return imageHandle{}
	}

	svg := unsafe.Slice((*byte)(svgPtr), svgLen)

	doc, err := svgbridge.Parse(svg)
	if err != nil {
		threaderr.Set(err.Error())
		return imageHandle{}
	}

	size, ok := svgbridge.PixelBytes(width, height)
	if !ok {
		threaderr.Set("alloc pixmap failed")
		return imageHandle{}
	}
	// calloc keeps the background transparent black and reports exhaustion
	// as NULL instead of aborting.
	cbuf = C.calloc(C.size_t(size), 1)
	if cbuf == nil {
		threaderr.Set("alloc pixmap failed")
		return imageHandle{}
	}

	pm, err := svgbridge.WrapPixmap(int(width), int(height), unsafe.Slice((*uint8)(cbuf), size))
	if err != nil {
		C.free(cbuf)
		threaderr.Set(err.Error())
		return imageHandle{}
	}
	if err := svgbridge.RenderDocument(doc, pm); err != nil {
		C.free(cbuf)
		threaderr.Set(err.Error())
		return imageHandle{}
	}

	return imageHandle{ptr: cbuf, size: uintptr(size), width: width, height: height}
}

// freeImage releases the handle's pixel memory iff the handle is non-empty.
// Calling it on an empty handle is a no-op; calling it twice on the same
// live handle is the caller's error, as with any single-owner resource.
func freeImage(h imageHandle) {
	if h.ptr != nil && h.size > 0 {
		C.free(h.ptr)
	}
}

// lastError returns a pointer to the calling thread's NUL-terminated error
// text, or nil when none is stored.
func lastError() unsafe.Pointer {
	return threaderr.Pointer()
}

// copyLastError copies the calling thread's error text into buf (at most
// size bytes including the NUL terminator) and returns the copied length.
func copyLastError(buf unsafe.Pointer, size uintptr) uintptr {
	return threaderr.Copy(buf, size)
}
