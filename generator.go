package morphology

import (
	"sort"

	"github.com/google-research/turkish-morphology/fst"
)

const properCategory = "Proper"

// Generator maps structured analyses back to surface forms.
type Generator struct {
	model     *Model
	lowercase bool
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithTurkishLowercase lowercases generated forms with Turkish casing.
func WithTurkishLowercase() GeneratorOption {
	return func(g *Generator) { g.lowercase = true }
}

// NewGenerator returns a Generator over m.
func NewGenerator(m *Model, opts ...GeneratorOption) *Generator {
	g := &Generator{model: m}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Generate returns the sorted surface forms of a. An analysis the model
// cannot realise gives an empty result and a nil error. A structurally
// invalid a gives a *MalformedAnalysisError.
func (g *Generator) Generate(a *Analysis) ([]string, error) {
	if err := a.Check(); err != nil {
		return nil, err
	}
	src := a.String()
	if err := g.model.tagset.Validate(a, src); err != nil {
		return nil, err
	}

	candidates := []string{src}
	if g.model.tagset.HasCategory(properCategory) && !a.lastHas(properCategory) {
		candidates = append(candidates, withProper(a).String())
	}

	seen := make(map[string]bool)
	var forms []string
	for _, s := range candidates {
		input := fst.CompileSymbols(s, g.model.generator.InputSymbols())
		out, err := g.model.paths(input, g.model.generator)
		if err != nil {
			return nil, err
		}
		for _, w := range out {
			if g.lowercase {
				w = TurkishLower(w)
			}
			if !seen[w] {
				seen[w] = true
				forms = append(forms, w)
			}
		}
	}
	sort.Strings(forms)
	return forms, nil
}

// withProper returns a copy of a whose last group carries the Proper
// feature: True for proper nouns, False otherwise.
func withProper(a *Analysis) *Analysis {
	c := a.Clone()
	last := &c.IGs[len(c.IGs)-1]
	value := "False"
	if last.POS == "NNP" {
		value = "True"
	}
	last.Inflections = append(last.Inflections, Affix{
		Feature: Feature{Category: properCategory, Value: value},
	})
	return c
}
