// Command server exposes the text analysis pipeline as a JSON REST API.
//
// Endpoints:
//
//	POST /api/analyze          body: {"lang":"FI","text":"..."}
//	GET  /api/annotate?form=<word>
//	GET  /api/languages
package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"strings"

	"github.com/rs/cors"

	"github.com/finnestdb/textanalysis"
)

// languages lists the tags accepted in the "lang" field.
var languages = map[string]string{
	"FI": "Finnish",
	"ET": "Estonian",
}

const defaultLang = "FI"

// maxBodyBytes caps the size of an analyze request.
const maxBodyBytes = 1 << 20

// ---- JSON response types ------------------------------------------------

type languagesResponse struct {
	Languages map[string]string `json:"languages"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// resolveLang upper-cases tag and checks it against languages.
// The empty tag resolves to defaultLang.
func resolveLang(tag string) (string, bool) {
	tag = strings.ToUpper(strings.TrimSpace(tag))
	if tag == "" {
		return defaultLang, true
	}
	_, ok := languages[tag]
	return tag, ok
}

// ---- handlers -----------------------------------------------------------

func handleAnalyze(p *textanalysis.Pipeline) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body struct {
			Lang string `json:"lang"`
			Text string `json:"text"`
		}
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "body must be JSON with 'lang' and 'text' fields")
			return
		}
		lang, ok := resolveLang(body.Lang)
		if !ok {
			writeError(w, http.StatusBadRequest, "lang must be FI or ET")
			return
		}
		writeJSON(w, http.StatusOK, p.Analyze(lang, body.Text))
	}
}

func handleAnnotate(p *textanalysis.Pipeline) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		form := strings.TrimSpace(r.URL.Query().Get("form"))
		if form == "" {
			writeError(w, http.StatusBadRequest, "missing 'form' query parameter")
			return
		}
		if len(strings.Fields(form)) != 1 {
			writeError(w, http.StatusBadRequest, "'form' must be a single word")
			return
		}
		writeJSON(w, http.StatusOK, p.AnnotateWord(form))
	}
}

func handleLanguages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		writeJSON(w, http.StatusOK, languagesResponse{Languages: languages})
	}
}

// newHandler wires the routes behind the CORS middleware. An empty
// origins list allows any origin.
func newHandler(p *textanalysis.Pipeline, origins []string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/analyze", handleAnalyze(p))
	mux.HandleFunc("/api/annotate", handleAnnotate(p))
	mux.HandleFunc("/api/languages", handleLanguages())

	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(mux)
}

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// ---- main ---------------------------------------------------------------

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	lexicon := flag.String("lexicon", "", "path to a tab-separated lexicon file (optional)")
	origins := flag.String("cors-origins", "", "comma-separated list of allowed CORS origins (default: any)")
	flag.Parse()

	var analyzer textanalysis.Analyzer
	if *lexicon != "" {
		log.Printf("loading lexicon from %s …", *lexicon)
		lx, err := textanalysis.LoadLexicon(*lexicon, nil)
		if err != nil {
			log.Fatalf("failed to load lexicon: %v", err)
		}
		log.Printf("lexicon loaded: %d forms", lx.Len())
		analyzer = lx
	}
	p := textanalysis.New(analyzer)

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, newHandler(p, splitOrigins(*origins))); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
