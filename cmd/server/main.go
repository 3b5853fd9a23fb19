// Command server exposes Turkish morphological analysis and generation as
// a JSON REST API.
//
// Endpoints:
//
//	GET  /api/analyze?word=<word>
//	GET  /api/decompose?analysis=<analysis string>
//	POST /api/generate   body: {"analysis":"..."} or {"ig":[...]}
//	GET  /api/tagset
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"time"

	morphology "github.com/google-research/turkish-morphology"
	"github.com/rs/cors"
)

// ---- JSON response types ------------------------------------------------

type analyzeResponse struct {
	Word     string   `json:"word"`
	Analyses []string `json:"analyses"`
}

type decomposeResponse struct {
	Analysis string               `json:"analysis"`
	Record   *morphology.Analysis `json:"record"`
}

type generateRequest struct {
	Analysis string                         `json:"analysis"`
	IGs      []morphology.InflectionalGroup `json:"ig"`
}

type generateResponse struct {
	Analysis string   `json:"analysis"`
	Forms    []string `json:"forms"`
}

type errorResponse struct {
	Error string `json:"error"`
	Class string `json:"class"`
	Kind  string `json:"kind,omitempty"`
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
	writeJSON(w, status, errorResponse{Error: msg, Class: "request"})
}

// writeFailure maps a library error onto a status code: malformed
// analyses are the client's fault, everything else is ours.
func writeFailure(w http.ResponseWriter, err error) {
	class := morphology.Classify(err)
	resp := errorResponse{Error: err.Error(), Class: class.String()}
	status := http.StatusInternalServerError
	if me, ok := morphology.AsMalformed(err); ok {
		status = http.StatusBadRequest
		resp.Kind = me.Kind.String()
	} else {
		log.Printf("%s error: %v", class, err)
	}
	writeJSON(w, status, resp)
}

type result[T any] struct {
	v   T
	err error
}

// withTimeout runs fn and gives up after d. A late result is dropped;
// d <= 0 waits for fn.
func withTimeout[T any](ctx context.Context, d time.Duration, fn func() (T, error)) (T, error) {
	if d <= 0 {
		return fn()
	}
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	done := make(chan result[T], 1)
	go func() {
		v, err := fn()
		done <- result[T]{v, err}
	}()
	select {
	case r := <-done:
		return r.v, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// ---- handlers -----------------------------------------------------------

type server struct {
	m       *morphology.Morphology
	timeout time.Duration
}

// run calls fn under the request timeout and writes the failure, if any.
// It reports whether the handler should go on.
func run[T any](s *server, w http.ResponseWriter, r *http.Request, fn func() (T, error)) (T, bool) {
	v, err := withTimeout(r.Context(), s.timeout, fn)
	switch {
	case err == context.DeadlineExceeded:
		writeError(w, http.StatusGatewayTimeout, "request timed out")
		return v, false
	case err == context.Canceled:
		return v, false
	case err != nil:
		writeFailure(w, err)
		return v, false
	}
	return v, true
}

func (s *server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	word := r.URL.Query().Get("word")
	if word == "" {
		writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
		return
	}
	analyses, ok := run(s, w, r, func() ([]string, error) { return s.m.Analyze(word) })
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, analyzeResponse{Word: word, Analyses: nonNil(analyses)})
}

func (s *server) handleDecompose(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	analysis := r.URL.Query().Get("analysis")
	a, ok := run(s, w, r, func() (*morphology.Analysis, error) { return s.m.Decompose(analysis) })
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, decomposeResponse{Analysis: analysis, Record: a})
}

func (s *server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var body generateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "body must be JSON with an 'analysis' string or an 'ig' list")
		return
	}
	forms, ok := run(s, w, r, func() ([]string, error) {
		if body.IGs != nil {
			return s.m.Generate(&morphology.Analysis{IGs: body.IGs})
		}
		return s.m.GenerateString(body.Analysis)
	})
	if !ok {
		return
	}
	src := body.Analysis
	if body.IGs != nil {
		src = (&morphology.Analysis{IGs: body.IGs}).String()
	}
	writeJSON(w, http.StatusOK, generateResponse{Analysis: src, Forms: nonNil(forms)})
}

func (s *server) handleTagset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	writeJSON(w, http.StatusOK, s.m.Model().Tagset())
}

func (s *server) routes(origins []string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/analyze", s.handleAnalyze)
	mux.HandleFunc("/api/decompose", s.handleDecompose)
	mux.HandleFunc("/api/generate", s.handleGenerate)
	mux.HandleFunc("/api/tagset", s.handleTagset)
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(mux)
}

// ---- main ---------------------------------------------------------------

func main() {
	configFile := flag.String("config", "", "YAML configuration file")
	far := flag.String("far", "", "automaton archive (overrides the config)")
	addr := flag.String("addr", "", "listen address (overrides the config)")
	flag.Parse()

	cfg := morphology.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = morphology.LoadConfig(*configFile); err != nil {
			log.Fatalf("failed to read config: %v", err)
		}
	}
	if *far != "" {
		cfg.Archive = *far
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	log.Printf("loading %s from %s …", cfg.Fst, cfg.Archive)
	m, err := morphology.New(cfg)
	if err != nil {
		log.Fatalf("failed to load model: %v", err)
	}
	log.Println("model loaded")

	s := &server{m: m, timeout: cfg.Server.Timeout}
	log.Printf("listening on %s", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, s.routes(cfg.Server.AllowedOrigins)); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
