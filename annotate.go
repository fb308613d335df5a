package textanalysis

import "strings"

// Analyzer maps a word form to its lemma, part of speech and features.
// Implementations must be deterministic and safe for concurrent use.
type Analyzer interface {
	Analyze(form string) Analysis
}

// stubMarker is appended to the POS tag in GrammarLabel for tags guessed
// by HeuristicAnalyzer.
const stubMarker = " (stub)"

// suffixRule assigns pos to any lower-cased form ending in one of suffixes.
type suffixRule struct {
	pos      string
	suffixes []string
}

// suffixRules are checked in order; the first match wins. Because the
// verb endings "in" and "en" come first, the noun endings "nen" and "iin"
// and the adjective ending "inen" never fire. The order is kept as is so
// that tags stay stable for existing callers.
var suffixRules = []suffixRule{
	{POSVerb, []string{"aa", "ää", "oi", "ui", "in", "en"}},
	{POSNoun, []string{"nen", "ssa", "ssä", "lla", "llä", "iin"}},
	{POSAdjective, []string{"inen"}},
}

// HeuristicAnalyzer guesses POS from Finnish/Estonian word endings and
// uses the lower-cased form as lemma. It is a placeholder for a real
// morphological analyzer.
type HeuristicAnalyzer struct{}

// GuessPOS returns the POS tag for form by suffix inspection.
func GuessPOS(form string) string {
	lower := strings.ToLower(form)
	for _, rule := range suffixRules {
		for _, suf := range rule.suffixes {
			if strings.HasSuffix(lower, suf) {
				return rule.pos
			}
		}
	}
	return POSNoun
}

// Analyze implements Analyzer.
func (HeuristicAnalyzer) Analyze(form string) Analysis {
	pos := GuessPOS(form)
	return Analysis{
		Lemma: strings.ToLower(form),
		POS:   pos,
		Feats: map[string]string{},
		Label: pos + stubMarker,
	}
}

// Annotate builds a Token for form with the heuristic analyzer.
func Annotate(form string) Token {
	return annotateWith(HeuristicAnalyzer{}, form)
}

func annotateWith(a Analyzer, form string) Token {
	an := a.Analyze(form)
	feats := an.Feats
	if feats == nil {
		feats = map[string]string{}
	}
	label := an.Label
	if label == "" {
		label = an.POS
	}
	return Token{
		Form:         form,
		Lemma:        an.Lemma,
		POS:          an.POS,
		Feats:        feats,
		GrammarLabel: label,
	}
}
