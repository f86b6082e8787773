// Package threaderr stores the most recent error message of each calling
// thread in C thread-local storage.
//
// The slot lives on the C side for two reasons: "per thread" means the
// calling OS thread, which Go deliberately does not expose, and the pointer
// returned by Pointer is handed across the C boundary, where a pointer into
// Go memory is forbidden by the cgo pointer rules. A C _Thread_local buffer
// satisfies both at once.
//
// All functions operate on the calling thread's slot, so the caller must be
// locked to an OS thread for state to survive between calls. Calls arriving
// from C through a cgo export run locked to the calling thread for their
// whole duration; Go callers (tests) must use runtime.LockOSThread.
//
// The operations themselves cannot fail; they are pure bookkeeping.
package threaderr

/*
#include "threaderr.h"
*/
import "C"

import "unsafe"

// Cap is the slot capacity in bytes, including the NUL terminator.
// Messages longer than Cap-1 bytes are truncated on Set.
const Cap = C.SB_THREADERR_CAP

// Set stores msg as the calling thread's error, replacing any prior value.
func Set(msg string) {
	if len(msg) == 0 {
		// An empty message still counts as a stored error.
		C.sb_threaderr_set(nil, 0)
		return
	}
	C.sb_threaderr_set((*C.char)(unsafe.Pointer(unsafe.StringData(msg))), C.size_t(len(msg)))
}

// Clear removes the calling thread's error, if any.
func Clear() {
	C.sb_threaderr_clear()
}

// Pointer returns a pointer to the calling thread's NUL-terminated error
// text, or nil when no error is stored. The pointer is valid until the next
// operation on the same thread.
func Pointer() unsafe.Pointer {
	return unsafe.Pointer(C.sb_threaderr_get())
}

// Copy copies the calling thread's error text into buf, writing at most size
// bytes including a NUL terminator. It returns the number of bytes copied
// excluding the terminator; 0 with no write when buf is nil, size is 0, or
// no error is stored.
func Copy(buf unsafe.Pointer, size uintptr) uintptr {
	return uintptr(C.sb_threaderr_copy((*C.char)(buf), C.size_t(size)))
}
