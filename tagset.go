package morphology

import (
	"fmt"
	"os"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Tagset holds the closed vocabularies a decomposed analysis is checked
// against: the part-of-speech tags, the value set of every feature
// category, and which tag a derivation may lead to from a given tag.
type Tagset struct {
	Tags        []string            `json:"tags" yaml:"tags"`
	Features    map[string][]string `json:"features" yaml:"features"`
	Derivations map[string][]string `json:"derivations" yaml:"derivations"`

	tags     map[string]bool
	features map[string]map[string]bool
	derives  map[string]map[string]bool
}

var personNumber = []string{
	"A1sg", "A2sg", "A3sg", "A1pl", "A2pl", "A3pl",
	"V1sg", "V2sg", "V3sg", "V1pl", "V2pl", "V3pl",
}

// nominal tags that verbs and nominals derive into.
var nominalTargets = []string{"NN", "NNP", "NOMP", "JJ", "RB", "VN", "PRF", "PRD", "PRI", "CD"}

// DefaultTagset returns the Turkish fine tagset and feature inventory the
// bundled analyzer emits.
func DefaultTagset() *Tagset {
	t := &Tagset{
		Tags: []string{
			"JJ", "JJN", "IN", "RB", "WRB", "PFX", "CC", "DT", "PDT", "WDT", "EX",
			"ADD", "NN", "NNP", "CD", "DUP", "PRD", "PRI", "PRP", "PRP$", "PRR", "WP",
			"EP", "OP", "RPC", "RPNEG", "RPQ", "NOMP", "VB", "VN", "PRF",
			"FW", "GW", "LS", "NFP", "SYM", "UH", "XX",
			".", ",", ":", "(", ")", "``", "'", "-",
		},
		Features: map[string][]string{
			"Apostrophe":      {"True"},
			"Case":            {"Nom", "Bare", "Acc", "Abl", "Dat", "Gen", "Ins", "Loc", "Equ"},
			"ComplementType":  {"CAbl", "CAcc", "CBare", "CDat", "CFin", "CGen", "CIns", "CNum"},
			"ConjunctionType": {"Adv", "Coor", "Par", "Sub"},
			"Copula":          {"PresCop", "PastCop", "EvidCop", "CondCop"},
			"Derivation": {
				"PastNom", "PresNom", "FutNom", "Inf", "Dim", "Ly", "Pron", "Rel",
				"Sim", "Agt", "Ness", "With", "Without", "Become", "Acquire",
				"Caus", "Pass", "Recip", "Reflex", "Able", "Adv", "Zero",
			},
			"DeterminerType":  {"Def", "Dem", "Dir", "Ind"},
			"Emphasis":        {"True"},
			"Number":          {"Sing", "Plur"},
			"NumberInf":       {"Ord", "Dist"},
			"PersonNumber":    personNumber,
			"Polarity":        {"Pos", "Neg"},
			"Possessive":      {"Pnon", "P1sg", "P2sg", "P3sg", "P1pl", "P2pl", "P3pl"},
			"Proper":          {"True", "False"},
			"TenseAspectMood": {"Nar", "Past", "Aor", "Fut", "Prog", "Cond", "Imp", "Opt", "Necess", "Desr"},
			"Temporal":        {"True"},
		},
		Derivations: map[string][]string{
			"VB":   append([]string{"VB"}, nominalTargets...),
			"NN":   append([]string{"VB"}, nominalTargets...),
			"NNP":  append([]string{"VB"}, nominalTargets...),
			"NOMP": append([]string{"VB"}, nominalTargets...),
			"JJ":   append([]string{"VB"}, nominalTargets...),
			"VN":   append([]string{"VB"}, nominalTargets...),
			"PRF":  nominalTargets,
			"CD":   nominalTargets,
			"PRD":  nominalTargets,
			"PRI":  nominalTargets,
			"PRP":  nominalTargets,
			"RB":   {"JJ", "NN", "NOMP", "RB"},
		},
	}
	t.Index()
	return t
}

// LoadTagset reads a tagset from a YAML file of the form
//
//	tags: [NN, VB]
//	features:
//	  Case: [Nom, Loc]
//	derivations:
//	  VB: [NN]
func LoadTagset(path string) (*Tagset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read tagset")
	}
	t := &Tagset{}
	if err := yaml.Unmarshal(b, t); err != nil {
		return nil, errors.Wrapf(err, "parse tagset %s", path)
	}
	t.Index()
	return t, nil
}

// Index builds the lookup sets. Call it after filling a Tagset by hand;
// DefaultTagset and LoadTagset already do.
func (t *Tagset) Index() {
	t.tags = make(map[string]bool, len(t.Tags))
	for _, tag := range t.Tags {
		t.tags[tag] = true
	}
	t.features = make(map[string]map[string]bool, len(t.Features))
	for cat, vals := range t.Features {
		set := make(map[string]bool, len(vals))
		for _, v := range vals {
			set[v] = true
		}
		t.features[cat] = set
	}
	t.derives = make(map[string]map[string]bool, len(t.Derivations))
	for from, tos := range t.Derivations {
		set := make(map[string]bool, len(tos))
		for _, to := range tos {
			set[to] = true
		}
		t.derives[from] = set
	}
}

// HasCategory reports whether the tagset declares a feature category.
func (t *Tagset) HasCategory(cat string) bool {
	_, ok := t.features[cat]
	return ok
}

// Categories returns the declared feature categories in sorted order.
func (t *Tagset) Categories() []string {
	out := make([]string, 0, len(t.Features))
	for cat := range t.Features {
		out = append(out, cat)
	}
	sort.Strings(out)
	return out
}

// Validate checks a against the tagset. src is the analysis string a was
// decoded from and is only used in the error.
func (t *Tagset) Validate(a *Analysis, src string) error {
	fail := func(kind MalformedKind, group int, format string, args ...interface{}) error {
		return &MalformedAnalysisError{
			Kind:     kind,
			Analysis: src,
			Offset:   -1,
			Group:    group,
			Detail:   fmt.Sprintf(format, args...),
		}
	}
	for i := range a.IGs {
		ig := &a.IGs[i]
		if len(t.tags) > 0 && !t.tags[ig.POS] {
			return fail(UnknownPartOfSpeech, i, "unknown part-of-speech tag %q", ig.POS)
		}
		if i > 0 && len(t.derives) > 0 {
			prev := a.IGs[i-1].POS
			if !t.derives[prev][ig.POS] {
				return fail(IllegalDerivationAdjacency, i, "%s cannot derive %s", prev, ig.POS)
			}
		}
		if ig.Derivation != nil {
			if kind := t.checkFeature(ig.Derivation.Feature); kind != 0 {
				return fail(kind, i, "feature %s=%s", ig.Derivation.Feature.Category, ig.Derivation.Feature.Value)
			}
		}
		for _, inf := range ig.Inflections {
			if kind := t.checkFeature(inf.Feature); kind != 0 {
				return fail(kind, i, "feature %s=%s", inf.Feature.Category, inf.Feature.Value)
			}
		}
	}
	return nil
}

func (t *Tagset) checkFeature(f Feature) MalformedKind {
	if len(t.features) == 0 {
		return 0
	}
	vals, ok := t.features[f.Category]
	switch {
	case !ok:
		return UnknownFeatureCategory
	case !vals[f.Value]:
		return UnknownFeatureValue
	}
	return 0
}
