// Package cabi is the C boundary of the analysis pipeline.
//
// Strings cross the boundary as NUL-terminated UTF-8 byte strings. The
// rules are:
//
//   - Inputs are borrowed. They are copied into Go memory before any work
//     starts and are never retained or freed here.
//   - Every string returned by Analyze is allocated with malloc and owned
//     by the caller, who must pass it to Free exactly once.
//   - Failure is reported as an owned empty string, never as NULL.
//   - Free(NULL) is a no-op. Freeing twice, or freeing memory that did not
//     come from Analyze, is undefined behavior.
//
// The pipeline itself never sees a pointer.
package cabi

/*
#include <stdlib.h>
#include <string.h>
*/
import "C"

import (
	"sync/atomic"
	"unicode/utf8"
	"unsafe"

	"github.com/finnestdb/textanalysis"
)

// outstanding counts strings handed out by Analyze and not yet freed.
var outstanding atomic.Int64

// Analyze runs p over the C strings lang and text and returns an owned
// C string holding the JSON-encoded result.
func Analyze(p *textanalysis.Pipeline, lang, text unsafe.Pointer) unsafe.Pointer {
	langStr, ok := borrow(lang)
	if !ok {
		return own(nil)
	}
	textStr, ok := borrow(text)
	if !ok {
		return own(nil)
	}

	b, err := textanalysis.Marshal(p.Analyze(langStr, textStr))
	if err != nil {
		return own(nil)
	}
	return own(b)
}

// Free releases a string returned by Analyze. ptr may be nil.
func Free(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}
	C.free(ptr)
	outstanding.Add(-1)
}

// Outstanding reports how many strings returned by Analyze have not been
// passed to Free.
func Outstanding() int64 {
	return outstanding.Load()
}

// borrow copies a caller-owned C string into Go memory. It fails on NULL
// and on bytes that are not valid UTF-8.
func borrow(p unsafe.Pointer) (string, bool) {
	if p == nil {
		return "", false
	}
	s := C.GoString((*C.char)(p))
	if !utf8.ValidString(s) {
		return "", false
	}
	return s, true
}

// own copies b into a fresh malloc'd, NUL-terminated buffer. A nil or
// empty b gives the empty string, which is still a real allocation.
func own(b []byte) unsafe.Pointer {
	n := len(b)
	p := C.malloc(C.size_t(n + 1))
	if p == nil {
		// malloc failure has no recovery path across the boundary.
		panic("cabi: out of memory")
	}
	if n > 0 {
		C.memcpy(p, unsafe.Pointer(&b[0]), C.size_t(n))
	}
	*(*byte)(unsafe.Add(p, n)) = 0
	outstanding.Add(1)
	return p
}
