// Command libfinnest builds the analysis pipeline as a C shared library:
//
//	go build -buildmode=c-shared -o libfinnest.so ./cmd/libfinnest
//
// It exports two functions:
//
//	char *analyze_text(const char *lang, const char *text);
//	void  free_string(char *ptr);
//
// analyze_text returns JSON, or "" when the input is not valid UTF-8.
// Every returned pointer must be passed to free_string exactly once.
package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"github.com/finnestdb/textanalysis"
	"github.com/finnestdb/textanalysis/cabi"
)

var pipeline = textanalysis.New(nil)

//export analyze_text
func analyze_text(lang, text *C.char) *C.char {
	return (*C.char)(cabi.Analyze(pipeline, unsafe.Pointer(lang), unsafe.Pointer(text)))
}

//export free_string
func free_string(ptr *C.char) {
	cabi.Free(unsafe.Pointer(ptr))
}

func main() {}
