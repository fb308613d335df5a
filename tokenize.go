package textanalysis

import "strings"

// Tokenize splits a sentence into word forms on runs of Unicode
// whitespace. Punctuation stays attached to its word: "menee?" is one
// token.
func Tokenize(sentence string) []string {
	return strings.Fields(sentence)
}
