package textanalysis

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// isTerminal reports whether r can end a sentence.
func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// Segment splits text into sentences.
//
// A boundary is any '.', '!' or '?' that is followed by whitespace or
// by the end of the text. Abbreviations, decimal numbers and quoted
// punctuation get no special treatment: "klo 9.30 alkaen" stays one
// sentence only because "9.30" has no space after the dot, while
// "esim. näin" is split in two.
//
// Sentences are trimmed of surrounding whitespace and empty ones are
// dropped. Text without terminal punctuation yields one sentence.
// Empty or all-whitespace text yields nil.
func Segment(text string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	for i, r := range text {
		current.WriteRune(r)
		if !isTerminal(r) {
			continue
		}
		next := i + utf8.RuneLen(r)
		if next >= len(text) {
			flush()
			continue
		}
		if nr, _ := utf8.DecodeRuneInString(text[next:]); unicode.IsSpace(nr) {
			flush()
		}
	}
	flush()

	// Unreachable with the rule above, kept so that no non-blank input
	// can ever produce zero sentences.
	if len(sentences) == 0 {
		if s := strings.TrimSpace(text); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}
