package morphology

// Feature is a morphological feature such as Case=Loc.
type Feature struct {
	Category string `json:"category" yaml:"category"`
	Value    string `json:"value" yaml:"value"`
}

// Affix is a feature together with the meta-morpheme that realises it,
// e.g. lAr for PersonNumber=A3pl. The meta-morpheme is morphophonemic
// markup from the grammar and may be empty.
type Affix struct {
	MetaMorpheme string  `json:"meta_morpheme,omitempty" yaml:"meta_morpheme,omitempty"`
	Feature      Feature `json:"feature" yaml:"feature"`
}

// InflectionalGroup is a span of a word sharing one part-of-speech tag.
type InflectionalGroup struct {
	// POS is the fine part-of-speech tag, e.g. "NN".
	POS string `json:"pos" yaml:"pos"`
	// Root is the stem; set on the first group only.
	Root string `json:"root,omitempty" yaml:"root,omitempty"`
	// Derivation links a non-initial group to the one before it. A
	// non-initial group without one follows an inflectional boundary.
	Derivation *Affix `json:"derivation,omitempty" yaml:"derivation,omitempty"`
	// Inflections are the inflectional affixes, in surface order.
	Inflections []Affix `json:"inflections,omitempty" yaml:"inflections,omitempty"`
}

// Analysis is a full morphological decomposition of one word.
type Analysis struct {
	IGs []InflectionalGroup `json:"ig" yaml:"ig"`
}

// Root returns the stem of the analysis.
func (a *Analysis) Root() string {
	if len(a.IGs) == 0 {
		return ""
	}
	return a.IGs[0].Root
}

// Clone returns a deep copy of a.
func (a *Analysis) Clone() *Analysis {
	if a == nil {
		return nil
	}
	out := &Analysis{}
	if a.IGs != nil {
		out.IGs = make([]InflectionalGroup, len(a.IGs))
	}
	for i, ig := range a.IGs {
		c := ig
		if ig.Derivation != nil {
			d := *ig.Derivation
			c.Derivation = &d
		}
		if ig.Inflections != nil {
			c.Inflections = make([]Affix, len(ig.Inflections))
			copy(c.Inflections, ig.Inflections)
		}
		out.IGs[i] = c
	}
	return out
}

// lastHas reports whether the last group carries an inflection of
// the given category.
func (a *Analysis) lastHas(category string) bool {
	if len(a.IGs) == 0 {
		return false
	}
	for _, inf := range a.IGs[len(a.IGs)-1].Inflections {
		if inf.Feature.Category == category {
			return true
		}
	}
	return false
}
