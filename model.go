package textanalysis

// Part-of-speech tags produced by the built-in analyzers.
// The tag set is open: a LexiconAnalyzer passes through whatever
// tag its data file carries.
const (
	POSNoun      = "NOUN"
	POSVerb      = "VERB"
	POSAdjective = "ADJ"
)

// Token is the analysis of one whitespace-delimited word form.
type Token struct {
	// Form is the surface string exactly as it appeared in the
	// normalized sentence, punctuation included.
	Form string `json:"form"`
	// Lemma is the dictionary form.
	Lemma string `json:"lemma"`
	// POS is the part-of-speech tag, e.g. "NOUN".
	POS string `json:"pos"`
	// Feats holds morphological features (Case=Ine, Number=Sing, ...).
	// It is never nil so that it serializes as {}.
	Feats map[string]string `json:"feats"`
	// GrammarLabel describes how POS was derived. It is diagnostic
	// only and must not be read as a grammatical analysis.
	GrammarLabel string `json:"grammar_label"`
	// MWEID groups tokens of a multi-word expression. Always nil for now.
	MWEID *int `json:"mwe_id"`
}

// Sentence is an ordered list of tokens in reading order.
type Sentence struct {
	Tokens []Token `json:"tokens"`
}

// AnalysisResult is the root value of one analysis call.
type AnalysisResult struct {
	Sentences []Sentence `json:"sentences"`
}

// TokenCount returns the number of tokens across all sentences.
func (r AnalysisResult) TokenCount() int {
	n := 0
	for _, s := range r.Sentences {
		n += len(s.Tokens)
	}
	return n
}

// Analysis is what an Analyzer reports for a single word form.
type Analysis struct {
	Lemma string
	POS   string
	Feats map[string]string
	// Label becomes Token.GrammarLabel; POS is used when empty.
	Label string
}
