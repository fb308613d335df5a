package textanalysis

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// clitics are particles that may be glued to the end of any Finnish or
// Estonian word. They are stripped, longest first, when a form is not in
// the lexicon as written.
var clitics = []string{"kaan", "kään", "kin", "han", "hän", "ko", "kö", "pa", "pä", "s"}

// lexiconMarker is appended to the POS tag in GrammarLabel for
// dictionary hits.
const lexiconMarker = " (lexicon)"

// lexEntry is one line of a lexicon file.
type lexEntry struct {
	lemma string
	pos   string
	feats map[string]string
}

// LexiconAnalyzer looks word forms up in a full-form dictionary and
// hands anything it does not know to a fallback Analyzer.
type LexiconAnalyzer struct {
	entries  map[string]lexEntry
	fallback Analyzer
}

// LoadLexicon reads a lexicon file from path. See ReadLexicon for the
// format. A nil fallback selects HeuristicAnalyzer.
func LoadLexicon(path string, fallback Analyzer) (*LexiconAnalyzer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon: %w", err)
	}
	defer f.Close()
	return ReadLexicon(f, path, fallback)
}

// ReadLexicon parses a lexicon from r; name is used in error messages.
//
// Each non-blank line not starting with '#' holds tab-separated fields:
//
//	form	lemma	POS	[feats]
//
// feats is either "_" or a list like "Case=Ine|Number=Sing". When a form
// appears more than once the first line wins.
func ReadLexicon(r io.Reader, name string, fallback Analyzer) (*LexiconAnalyzer, error) {
	if fallback == nil {
		fallback = HeuristicAnalyzer{}
	}
	lx := &LexiconAnalyzer{
		entries:  make(map[string]lexEntry),
		fallback: fallback,
	}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			return nil, fmt.Errorf("%s:%d: want at least 3 tab-separated fields, got %d", name, lineNo, len(fields))
		}
		feats, err := ParseFeats(field(fields, 3))
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, lineNo, err)
		}
		key := lookupKey(fields[0])
		if key == "" {
			continue
		}
		if _, dup := lx.entries[key]; dup {
			continue
		}
		lx.entries[key] = lexEntry{
			lemma: Normalize(strings.TrimSpace(fields[1])),
			pos:   strings.ToUpper(strings.TrimSpace(fields[2])),
			feats: feats,
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return lx, nil
}

func field(fields []string, i int) string {
	if i < len(fields) {
		return strings.TrimSpace(fields[i])
	}
	return ""
}

// ParseFeats parses a feature list of the form "Key=Value|Key=Value".
// "_" and the empty string yield an empty map.
func ParseFeats(s string) (map[string]string, error) {
	feats := map[string]string{}
	if s == "" || s == "_" {
		return feats, nil
	}
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		k, v, ok := strings.Cut(part, "=")
		if !ok || k == "" || v == "" {
			return nil, fmt.Errorf("bad feature %q", part)
		}
		feats[k] = v
	}
	return feats, nil
}

// Len returns the number of distinct forms in the lexicon.
func (lx *LexiconAnalyzer) Len() int {
	return len(lx.entries)
}

// Analyze implements Analyzer. Lookup ignores case and punctuation around
// the word; if that misses, one clitic is stripped and the lookup retried
// with Clitic=<particle> added to the features.
func (lx *LexiconAnalyzer) Analyze(form string) Analysis {
	key := lookupKey(form)
	if e, ok := lx.entries[key]; ok {
		return e.analysis(nil)
	}
	for _, c := range clitics {
		stem, ok := strings.CutSuffix(key, c)
		if !ok || stem == "" {
			continue
		}
		if e, ok := lx.entries[stem]; ok {
			return e.analysis(map[string]string{"Clitic": c})
		}
	}
	return lx.fallback.Analyze(form)
}

// analysis copies e into a fresh Analysis so callers cannot mutate the
// lexicon through the returned feature map.
func (e lexEntry) analysis(extra map[string]string) Analysis {
	feats := make(map[string]string, len(e.feats)+len(extra))
	for k, v := range e.feats {
		feats[k] = v
	}
	for k, v := range extra {
		feats[k] = v
	}
	return Analysis{
		Lemma: e.lemma,
		POS:   e.pos,
		Feats: feats,
		Label: e.pos + lexiconMarker,
	}
}

// lookupKey lower-cases form and strips punctuation around it, so
// "Talossa," and "talossa" share a key.
func lookupKey(form string) string {
	trimmed := strings.TrimFunc(Normalize(strings.TrimSpace(form)), unicode.IsPunct)
	// Casers keep state, so each call gets its own.
	return cases.Lower(language.Und).String(trimmed)
}
