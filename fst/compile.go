package fst

// CompileBytes returns the linear acceptor of s: one state per byte, one
// arc per byte labelled with the byte value, the last state final. This
// is the byte token type the archive's analyzers consume.
func CompileBytes(s string, syms *SymbolTable) *Fst {
	f := New()
	f.isyms, f.osyms = syms, syms
	cur := f.AddState()
	f.SetStart(cur)
	for i := 0; i < len(s); i++ {
		next := f.AddState()
		l := Label(s[i])
		f.AddArc(cur, Arc{ILabel: l, OLabel: l, Weight: One, Next: next})
		cur = next
	}
	f.SetFinal(cur, One)
	f.order = InputOrder
	return f
}

// CompileSymbols returns an acyclic acceptor over every way of cutting s
// into symbols of syms. State i stands for the byte offset i; an arc from
// i to j carries the label of s[i:j]. Single bytes are always available
// through their byte labels, so every string has at least one path.
func CompileSymbols(s string, syms *SymbolTable) *Fst {
	f := New()
	f.isyms, f.osyms = syms, syms
	for i := 0; i <= len(s); i++ {
		f.AddState()
	}
	f.SetStart(0)
	f.SetFinal(StateID(len(s)), One)

	maxLen := 1
	if syms != nil && syms.MaxSymbolLen() > maxLen {
		maxLen = syms.MaxSymbolLen()
	}
	for i := 0; i < len(s); i++ {
		byteLabel := Label(s[i])
		f.AddArc(StateID(i), Arc{ILabel: byteLabel, OLabel: byteLabel, Weight: One, Next: StateID(i + 1)})
		if syms == nil {
			continue
		}
		for j := i + 1; j <= len(s) && j-i <= maxLen; j++ {
			l, ok := syms.Lookup(s[i:j])
			if !ok || l == Epsilon || l == byteLabel {
				continue
			}
			f.AddArc(StateID(i), Arc{ILabel: l, OLabel: l, Weight: One, Next: StateID(j)})
		}
	}
	return f
}
