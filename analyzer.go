package morphology

import (
	"sort"
	"strings"

	"github.com/google-research/turkish-morphology/fst"
)

// properSuffixes are the annotations the analyzer appends to the last
// inflectional group.
var properSuffixes = []string{"+[Proper=True]", "+[Proper=False]"}

// Analyzer maps surface forms to analysis strings.
type Analyzer struct {
	model  *Model
	proper bool
}

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*Analyzer)

// WithoutProperFeature strips the +[Proper=True] and +[Proper=False]
// annotations from every analysis.
func WithoutProperFeature() AnalyzerOption {
	return func(a *Analyzer) { a.proper = false }
}

// NewAnalyzer returns an Analyzer over m.
func NewAnalyzer(m *Model, opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{model: m, proper: true}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Analyze returns every analysis of word in sorted order. A word the
// analyzer does not accept, including "", gives an empty result and a
// nil error; errors are reserved for a broken model.
func (a *Analyzer) Analyze(word string) ([]string, error) {
	input := fst.CompileBytes(word, a.model.analyzer.InputSymbols())
	analyses, err := a.model.paths(input, a.model.analyzer)
	if err != nil || a.proper {
		return analyses, err
	}
	return dropProper(analyses), nil
}

func dropProper(analyses []string) []string {
	seen := make(map[string]bool, len(analyses))
	out := analyses[:0]
	for _, s := range analyses {
		for _, suffix := range properSuffixes {
			s = strings.TrimSuffix(s, suffix)
		}
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

// Stems returns the distinct roots of the analyses of word.
func (a *Analyzer) Stems(word string) ([]string, error) {
	analyses, err := a.Analyze(word)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var stems []string
	for _, s := range analyses {
		i := strings.IndexByte(s, groupOpen)
		if i <= 0 || seen[s[:i]] {
			continue
		}
		seen[s[:i]] = true
		stems = append(stems, s[:i])
	}
	sort.Strings(stems)
	return stems, nil
}
