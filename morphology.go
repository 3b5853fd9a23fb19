// Package morphology analyzes Turkish word forms into morphological
// analyses and generates word forms back from them, using a precompiled
// finite-state transducer.
//
// An analysis string reads
//
//	yaşa[VB]+[Polarity=Pos][NOMP]-DHk[Derivation=PastNom]+lAr[PersonNumber=A3pl]
//
// and Decompose turns it into an Analysis record that Generate accepts.
package morphology

// Morphology bundles the three operations over one loaded Model.
type Morphology struct {
	model      *Model
	analyzer   *Analyzer
	decomposer *Decomposer
	generator  *Generator
}

// New loads the model described by cfg and returns a ready-to-use
// Morphology.
func New(cfg Config) (*Morphology, error) {
	m, err := LoadModel(cfg)
	if err != nil {
		return nil, err
	}
	return NewWithModel(m, cfg), nil
}

// NewWithModel wires the operations over an already loaded model. Only
// the query options of cfg are read.
func NewWithModel(m *Model, cfg Config) *Morphology {
	var aopts []AnalyzerOption
	if !cfg.ProperFeature {
		aopts = append(aopts, WithoutProperFeature())
	}
	var gopts []GeneratorOption
	if cfg.Lowercase {
		gopts = append(gopts, WithTurkishLowercase())
	}
	return &Morphology{
		model:      m,
		analyzer:   NewAnalyzer(m, aopts...),
		decomposer: NewDecomposer(m.tagset, cfg.Cache.TTL, cfg.Cache.Cleanup),
		generator:  NewGenerator(m, gopts...),
	}
}

// Model returns the loaded model.
func (m *Morphology) Model() *Model {
	return m.model
}

// Analyze returns the sorted analyses of word.
func (m *Morphology) Analyze(word string) ([]string, error) {
	return m.analyzer.Analyze(word)
}

// Stems returns the distinct roots word can be analyzed into.
func (m *Morphology) Stems(word string) ([]string, error) {
	return m.analyzer.Stems(word)
}

// Decompose parses and validates an analysis string.
func (m *Morphology) Decompose(s string) (*Analysis, error) {
	return m.decomposer.Decompose(s)
}

// Generate returns the sorted surface forms of a.
func (m *Morphology) Generate(a *Analysis) ([]string, error) {
	return m.generator.Generate(a)
}

// GenerateString decomposes s and generates its surface forms.
func (m *Morphology) GenerateString(s string) ([]string, error) {
	a, err := m.decomposer.Decompose(s)
	if err != nil {
		return nil, err
	}
	return m.generator.Generate(a)
}
