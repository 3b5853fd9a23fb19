package morphology

import "strings"

// Delimiters of the analysis notation. None of them may occur inside a
// tag, category or value.
const (
	groupOpen     = '['
	groupClose    = ']'
	inflectionSep = '+'
	derivationSep = '-'
	featureSep    = '='
)

// String renders a in the canonical analysis notation, e.g.
//
//	ev[NN]+[Number=Plur]
//	yaşa[VB]+[Polarity=Pos][NOMP]-DHk[Derivation=PastNom]+lAr[PersonNumber=A3pl]
//
// Parse(a.String()) equals a for every analysis that passes Check.
func (a *Analysis) String() string {
	var sb strings.Builder
	for i := range a.IGs {
		writeGroup(&sb, &a.IGs[i], i == 0)
	}
	return sb.String()
}

func writeGroup(sb *strings.Builder, ig *InflectionalGroup, first bool) {
	if first {
		sb.WriteString(ig.Root)
	}
	sb.WriteByte(groupOpen)
	sb.WriteString(ig.POS)
	sb.WriteByte(groupClose)
	if ig.Derivation != nil && !first {
		writeAffix(sb, derivationSep, ig.Derivation)
	}
	for i := range ig.Inflections {
		writeAffix(sb, inflectionSep, &ig.Inflections[i])
	}
}

func writeAffix(sb *strings.Builder, sep byte, a *Affix) {
	sb.WriteByte(sep)
	sb.WriteString(a.MetaMorpheme)
	sb.WriteByte(groupOpen)
	sb.WriteString(a.Feature.Category)
	sb.WriteByte(featureSep)
	sb.WriteString(a.Feature.Value)
	sb.WriteByte(groupClose)
}

// Check verifies that a has the shape the notation can express without
// ambiguity: at least one group, a root on the first group only, no
// derivation on the first group, a meta-morpheme on every derivation, and
// no delimiter inside any token.
func (a *Analysis) Check() error {
	record := func(kind MalformedKind, group int, detail string) error {
		return &MalformedAnalysisError{Kind: kind, Offset: -1, Group: group, Detail: detail}
	}
	if a == nil || len(a.IGs) == 0 {
		return record(MissingGroup, -1, "analysis has no inflectional groups")
	}
	for i := range a.IGs {
		ig := &a.IGs[i]
		if i == 0 {
			if ig.Root == "" {
				return record(MissingRoot, i, "first inflectional group has no root")
			}
			if strings.ContainsAny(ig.Root, "[]") {
				return record(UnexpectedCharacter, i, "root contains a bracket")
			}
			if ig.Derivation != nil {
				return record(MisplacedDerivation, i, "first inflectional group cannot be derived")
			}
		} else if ig.Root != "" {
			return record(UnexpectedCharacter, i, "root on a non-initial inflectional group")
		}
		if ig.POS == "" {
			return record(MissingTag, i, "missing part-of-speech tag")
		}
		if !isToken(ig.POS) {
			return record(UnexpectedCharacter, i, "part-of-speech tag contains a delimiter")
		}
		if ig.Derivation != nil {
			if ig.Derivation.MetaMorpheme == "" {
				return record(MalformedFeature, i, "derivation has no meta-morpheme")
			}
			if err := checkAffix(ig.Derivation); err != "" {
				return record(MalformedFeature, i, err)
			}
		}
		for j := range ig.Inflections {
			if err := checkAffix(&ig.Inflections[j]); err != "" {
				return record(MalformedFeature, i, err)
			}
		}
	}
	return nil
}

func checkAffix(a *Affix) string {
	switch {
	case a.Feature.Category == "" || a.Feature.Value == "":
		return "feature needs both a category and a value"
	case !isToken(a.Feature.Category) || !isToken(a.Feature.Value):
		return "feature contains a delimiter"
	case !isMeta(a.MetaMorpheme):
		return "meta-morpheme contains a delimiter"
	}
	return ""
}

func isToken(s string) bool {
	return !strings.ContainsAny(s, "[]+=")
}

func isMeta(s string) bool {
	return !strings.ContainsAny(s, "[]+-=")
}
