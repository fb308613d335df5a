package cabi

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"unsafe"

	"github.com/finnestdb/textanalysis"
)

// checkBalanced fails the test if it leaves more or fewer owned strings
// alive than it started with.
func checkBalanced(t *testing.T) {
	t.Helper()
	before := Outstanding()
	t.Cleanup(func() {
		if after := Outstanding(); after != before {
			t.Errorf("Outstanding() = %d after test, want %d", after, before)
		}
	})
}

func TestAnalyzeRoundTrip(t *testing.T) {
	checkBalanced(t)
	p := textanalysis.New(nil)

	r, err := AnalyzeText(p, "FI", "Hei. Miten menee? Hyvää!")
	if err != nil {
		t.Fatalf("AnalyzeText: %v", err)
	}
	if len(r.Sentences) != 3 {
		t.Fatalf("got %d sentences, want 3", len(r.Sentences))
	}
	want := [][]string{{"Hei."}, {"Miten", "menee?"}, {"Hyvää!"}}
	for i, s := range r.Sentences {
		if len(s.Tokens) != len(want[i]) {
			t.Errorf("sentence %d has %d tokens, want %d", i, len(s.Tokens), len(want[i]))
			continue
		}
		for j, tok := range s.Tokens {
			if tok.Form != want[i][j] {
				t.Errorf("sentence %d token %d = %q, want %q", i, j, tok.Form, want[i][j])
			}
		}
	}
}

func TestAnalyzeEmptyText(t *testing.T) {
	checkBalanced(t)
	p := textanalysis.New(nil)

	langC, textC := CString("FI"), CString("")
	defer FreeCString(langC)
	defer FreeCString(textC)

	res := Analyze(p, langC, textC)
	if got, want := GoString(res), `{"sentences":[]}`; got != want {
		t.Errorf("Analyze(\"\") = %s, want %s", got, want)
	}
	Free(res)
}

func TestAnalyzeInvalidUTF8(t *testing.T) {
	checkBalanced(t)
	p := textanalysis.New(nil)

	tests := []struct {
		name       string
		lang, text string
	}{
		{"bad text", "FI", "Hei \xff\xfe maailma."},
		{"bad lang", "F\xc3", "Hei."},
		{"truncated rune", "FI", "Hyv\xc3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			langC, textC := CString(tt.lang), CString(tt.text)
			defer FreeCString(langC)
			defer FreeCString(textC)

			res := Analyze(p, langC, textC)
			if res == nil {
				t.Fatal("Analyze returned NULL, want owned empty string")
			}
			if got := GoString(res); got != "" {
				t.Errorf("Analyze = %q, want empty string", got)
			}
			Free(res)
		})
	}

	if _, err := AnalyzeText(p, "FI", "\xff"); !errors.Is(err, ErrNoAnalysis) {
		t.Errorf("AnalyzeText(invalid) error = %v, want ErrNoAnalysis", err)
	}
}

func TestAnalyzeNilInputs(t *testing.T) {
	checkBalanced(t)
	p := textanalysis.New(nil)
	text := CString("Hei.")
	defer FreeCString(text)

	for _, args := range [][2]unsafe.Pointer{{nil, text}, {text, nil}, {nil, nil}} {
		res := Analyze(p, args[0], args[1])
		if res == nil {
			t.Fatal("Analyze returned NULL, want owned empty string")
		}
		if got := GoString(res); got != "" {
			t.Errorf("Analyze with nil input = %q, want empty string", got)
		}
		Free(res)
	}
}

func TestFreeNil(t *testing.T) {
	checkBalanced(t)
	Free(nil)
}

func TestOutstandingCounts(t *testing.T) {
	before := Outstanding()
	p := textanalysis.New(nil)
	langC, textC := CString("ET"), CString("Tere!")
	defer FreeCString(langC)
	defer FreeCString(textC)

	a := Analyze(p, langC, textC)
	b := Analyze(p, langC, textC)
	if got := Outstanding() - before; got != 2 {
		t.Errorf("Outstanding grew by %d, want 2", got)
	}
	if GoString(a) != GoString(b) {
		t.Errorf("Analyze not deterministic: %s vs %s", GoString(a), GoString(b))
	}
	Free(a)
	Free(b)
	if got := Outstanding(); got != before {
		t.Errorf("Outstanding() = %d after Free, want %d", got, before)
	}
}

func TestAnalyzeDoesNotRetainInput(t *testing.T) {
	checkBalanced(t)
	p := textanalysis.New(nil)

	langC, textC := CString("FI"), CString("kirjoittaa")
	res := Analyze(p, langC, textC)
	want := GoString(res)
	// Overwrite then release the inputs; the result must be unaffected.
	buf := unsafe.Slice((*byte)(textC), len("kirjoittaa"))
	for i := range buf {
		buf[i] = 'x'
	}
	FreeCString(langC)
	FreeCString(textC)

	if got := GoString(res); got != want {
		t.Errorf("result changed after inputs were released: %s, want %s", got, want)
	}
	Free(res)
}

func TestAnalyzeConcurrent(t *testing.T) {
	checkBalanced(t)
	p := textanalysis.New(nil)

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			text := fmt.Sprintf("Lause %d. Toinen lause %d!", i, i)
			r, err := AnalyzeText(p, "FI", text)
			if err != nil {
				errs <- err
				return
			}
			if len(r.Sentences) != 2 || r.TokenCount() != 5 {
				errs <- fmt.Errorf("%q: %d sentences, %d tokens", text, len(r.Sentences), r.TokenCount())
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
