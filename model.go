package morphology

import (
	"sort"

	"github.com/google-research/turkish-morphology/fst"
	"github.com/pkg/errors"
)

// Model is the loaded transducer pair and the tables that go with it.
// It is built once and only read afterwards, so one Model serves any
// number of goroutines.
type Model struct {
	analyzer  *fst.Fst
	generator *fst.Fst
	tagset    *Tagset
	maxDepth  int
}

// NewModel wraps an analyzer transducer (surface bytes to analysis
// symbols). When generator is nil it is the inverse of analyzer. Both are
// arc-sorted on input labels here and must not be changed by the caller
// afterwards.
func NewModel(analyzer, generator *fst.Fst, tagset *Tagset, maxDepth int) (*Model, error) {
	if analyzer == nil || analyzer.Start() == fst.NoState {
		return nil, errors.New("analyzer transducer is empty")
	}
	if generator == nil {
		generator = fst.Invert(analyzer)
	}
	if !fst.CompatSymbols(analyzer.OutputSymbols(), generator.InputSymbols()) {
		return nil, errors.Wrap(fst.ErrIncompatibleAlphabet, "generator input does not match analyzer output")
	}
	if tagset == nil {
		tagset = DefaultTagset()
	} else if tagset.tags == nil {
		tagset.Index()
	}
	if maxDepth <= 0 {
		maxDepth = fst.DefaultMaxDepth
	}
	analyzer.ArcSort(fst.InputOrder)
	generator.ArcSort(fst.InputOrder)
	return &Model{
		analyzer:  analyzer,
		generator: generator,
		tagset:    tagset,
		maxDepth:  maxDepth,
	}, nil
}

// LoadModel reads the analyzer, the optional generator and the tagset
// named by cfg.
func LoadModel(cfg Config) (*Model, error) {
	archive, err := fst.ReadArchive(cfg.Archive)
	if err != nil {
		return nil, err
	}
	name := cfg.Fst
	if name == "" {
		name = DefaultAnalyzerName
	}
	analyzer, err := archive.Get(name)
	if err != nil {
		return nil, err
	}
	var generator *fst.Fst
	if cfg.Generator != "" {
		if generator, err = archive.Get(cfg.Generator); err != nil {
			return nil, err
		}
	}

	tagset := DefaultTagset()
	if cfg.Tagset != "" {
		if tagset, err = LoadTagset(cfg.Tagset); err != nil {
			return nil, err
		}
	}
	return NewModel(analyzer, generator, tagset, cfg.MaxDepth)
}

// Tagset returns the tables analyses are validated against.
func (m *Model) Tagset() *Tagset {
	return m.tagset
}

// Symbols returns the analysis-side symbol table.
func (m *Model) Symbols() *fst.SymbolTable {
	return m.analyzer.OutputSymbols()
}

// paths composes input with t, trims the result and renders the output
// side of every accepted path. The result is sorted and free of
// duplicates.
func (m *Model) paths(input, t *fst.Fst) ([]string, error) {
	composed, err := fst.Compose(input, t)
	if err != nil {
		return nil, err
	}
	out := fst.Project(fst.Connect(composed), fst.ProjectOutput)
	labels, err := fst.Paths(out, m.maxDepth)
	if err != nil {
		return nil, err
	}
	syms := t.OutputSymbols()
	seen := make(map[string]bool, len(labels))
	var results []string
	for _, p := range labels {
		s, err := syms.Render(p)
		if err != nil {
			return nil, err
		}
		if !seen[s] {
			seen[s] = true
			results = append(results, s)
		}
	}
	sort.Strings(results)
	return results, nil
}
