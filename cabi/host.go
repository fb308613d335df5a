package cabi

/*
#include <stdlib.h>
*/
import "C"

import (
	"errors"
	"unsafe"

	"github.com/finnestdb/textanalysis"
)

// ErrNoAnalysis is returned by AnalyzeText when the boundary answered
// with the empty sentinel string.
var ErrNoAnalysis = errors.New("cabi: analysis could not be performed")

// CString copies s into malloc'd memory the way a C caller would prepare
// an argument. The caller releases it with FreeCString, not Free.
func CString(s string) unsafe.Pointer {
	return unsafe.Pointer(C.CString(s))
}

// FreeCString releases memory obtained from CString.
func FreeCString(p unsafe.Pointer) {
	C.free(p)
}

// GoString copies a NUL-terminated C string into Go memory. A nil p gives "".
func GoString(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	return C.GoString((*C.char)(p))
}

// AnalyzeText drives one call through the C boundary from Go: it
// allocates both arguments, calls Analyze, copies and frees the result,
// and decodes it.
func AnalyzeText(p *textanalysis.Pipeline, lang, text string) (*textanalysis.AnalysisResult, error) {
	langC := CString(lang)
	defer FreeCString(langC)
	textC := CString(text)
	defer FreeCString(textC)

	resultC := Analyze(p, langC, textC)
	defer Free(resultC)

	out := GoString(resultC)
	if out == "" {
		return nil, ErrNoAnalysis
	}
	return textanalysis.Unmarshal([]byte(out))
}
