package textanalysis

import "golang.org/x/text/unicode/norm"

// Normalize returns text in Unicode Normalization Form C.
// Decomposed sequences such as "a" + U+0308 become their composed
// form ("ä"), so suffix tests and lower-casing see one code point.
// Normalize is idempotent.
func Normalize(text string) string {
	if norm.NFC.IsNormalString(text) {
		return text
	}
	return norm.NFC.String(text)
}

// IsNormalized reports whether text is already in NFC.
func IsNormalized(text string) bool {
	return norm.NFC.IsNormalString(text)
}
