// Package textanalysis turns raw Finnish or Estonian text into a tree of
// sentences and annotated tokens.
//
// The pipeline runs four stages in order, each consuming the full output
// of the previous one:
//
//	Normalize -> Segment -> Tokenize -> annotate
//
// Annotation is delegated to an Analyzer chosen when the Pipeline is
// built. HeuristicAnalyzer is the default; LexiconAnalyzer looks forms up
// in a data file.
//
// Nothing in this package deals with pointers or foreign memory; see the
// cabi package for the C boundary.
package textanalysis

// Pipeline holds the Analyzer used for annotation. It keeps no other
// state, so a single Pipeline may serve concurrent calls as long as its
// Analyzer does.
type Pipeline struct {
	analyzer Analyzer
}

// New returns a Pipeline that annotates with a. A nil a selects
// HeuristicAnalyzer.
func New(a Analyzer) *Pipeline {
	if a == nil {
		a = HeuristicAnalyzer{}
	}
	return &Pipeline{analyzer: a}
}

// Analyzer returns the analyzer the pipeline annotates with.
func (p *Pipeline) Analyzer() Analyzer {
	return p.analyzer
}

// Analyze runs the full pipeline over text.
//
// lang is accepted for per-language dispatch but does not change the
// output yet. The returned result never has nil slices, so it always
// serializes with "sentences": [] and "tokens": [].
func (p *Pipeline) Analyze(lang, text string) AnalysisResult {
	sentences := Segment(Normalize(text))
	out := AnalysisResult{Sentences: make([]Sentence, 0, len(sentences))}
	for _, s := range sentences {
		out.Sentences = append(out.Sentences, p.analyzeSentence(s))
	}
	return out
}

// AnnotateWord annotates a single form with the pipeline's analyzer.
// The form is normalized first but not split.
func (p *Pipeline) AnnotateWord(form string) Token {
	return annotateWith(p.analyzer, Normalize(form))
}

func (p *Pipeline) analyzeSentence(sentence string) Sentence {
	forms := Tokenize(sentence)
	tokens := make([]Token, 0, len(forms))
	for _, f := range forms {
		tokens = append(tokens, annotateWith(p.analyzer, f))
	}
	return Sentence{Tokens: tokens}
}
