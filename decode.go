package morphology

import "strings"

// scanner is a single left-to-right pass over an analysis string. The
// notation is delimited by reserved bytes, so no backtracking is needed.
type scanner struct {
	src string
	pos int
}

func (s *scanner) fail(kind MalformedKind, at int, detail string) error {
	return &MalformedAnalysisError{Kind: kind, Analysis: s.src, Offset: at, Group: -1, Detail: detail}
}

func (s *scanner) done() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() byte {
	return s.src[s.pos]
}

// Parse decodes an analysis string into its structured form. It checks
// the notation only; Decomposer.Decompose also checks the tagset.
func Parse(src string) (*Analysis, error) {
	s := &scanner{src: src}
	if src == "" {
		return nil, s.fail(EmptyAnalysis, 0, "analysis is empty")
	}

	open := strings.IndexByte(src, groupOpen)
	if c := strings.IndexByte(src, groupClose); c >= 0 && (open < 0 || c < open) {
		return nil, s.fail(UnexpectedCharacter, c, "']' before the first group")
	}
	switch {
	case open < 0:
		return nil, s.fail(MissingGroup, len(src), "no inflectional group after the root")
	case open == 0:
		return nil, s.fail(MissingRoot, 0, "no root before the first group")
	}

	a := &Analysis{}
	root := src[:open]
	s.pos = open
	for !s.done() {
		if s.peek() != groupOpen {
			return nil, s.fail(UnexpectedCharacter, s.pos, "expected '[' to open an inflectional group")
		}
		ig, err := s.group(len(a.IGs) == 0)
		if err != nil {
			return nil, err
		}
		a.IGs = append(a.IGs, ig)
	}
	a.IGs[0].Root = root
	return a, nil
}

// group reads "[TAG]", an optional derivation and any inflections.
func (s *scanner) group(first bool) (InflectionalGroup, error) {
	var ig InflectionalGroup
	start := s.pos
	tag, err := s.bracket()
	if err != nil {
		return ig, err
	}
	if tag == "" {
		return ig, s.fail(MissingTag, start, "empty part-of-speech tag")
	}
	if strings.ContainsAny(tag, "+=") {
		return ig, s.fail(UnexpectedCharacter, start, "part-of-speech tag contains a delimiter")
	}
	ig.POS = tag

	if !s.done() && s.peek() == derivationSep {
		if first {
			return ig, s.fail(MisplacedDerivation, s.pos, "first inflectional group cannot be derived")
		}
		d, err := s.affix()
		if err != nil {
			return ig, err
		}
		ig.Derivation = &d
	}
	for !s.done() && s.peek() == inflectionSep {
		inf, err := s.affix()
		if err != nil {
			return ig, err
		}
		ig.Inflections = append(ig.Inflections, inf)
	}
	return ig, nil
}

// affix reads "+meta[Category=Value]" or "-meta[Category=Value]".
func (s *scanner) affix() (Affix, error) {
	var a Affix
	sepAt := s.pos
	s.pos++
	open := strings.IndexByte(s.src[s.pos:], groupOpen)
	if open < 0 {
		return a, s.fail(MalformedFeature, sepAt, "affix has no [Category=Value] feature")
	}
	meta := s.src[s.pos : s.pos+open]
	if !isMeta(meta) {
		return a, s.fail(MalformedFeature, s.pos, "meta-morpheme contains a delimiter")
	}
	if meta == "" && s.src[sepAt] == derivationSep {
		return a, s.fail(MalformedFeature, s.pos, "derivation has no meta-morpheme")
	}
	a.MetaMorpheme = meta
	s.pos += open

	start := s.pos
	body, err := s.bracket()
	if err != nil {
		return a, err
	}
	eq := strings.IndexByte(body, featureSep)
	if eq <= 0 || eq == len(body)-1 {
		return a, s.fail(MalformedFeature, start, "feature must read [Category=Value]")
	}
	a.Feature = Feature{Category: body[:eq], Value: body[eq+1:]}
	if !isToken(a.Feature.Category) || !isToken(a.Feature.Value) {
		return a, s.fail(MalformedFeature, start, "feature contains a delimiter")
	}
	return a, nil
}

// bracket reads "[...]" at the current position and returns its content.
func (s *scanner) bracket() (string, error) {
	start := s.pos
	s.pos++
	for i := s.pos; i < len(s.src); i++ {
		switch s.src[i] {
		case groupClose:
			body := s.src[s.pos:i]
			s.pos = i + 1
			return body, nil
		case groupOpen:
			return "", s.fail(UnterminatedGroup, start, "'[' is not closed before the next '['")
		}
	}
	return "", s.fail(UnterminatedGroup, start, "'[' is never closed")
}
