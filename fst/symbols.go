package fst

import (
	"bufio"
	"hash/fnv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// EpsilonSymbol is the symbol printed for label 0.
const EpsilonSymbol = "<eps>"

// firstSymbolLabel is the first label handed out to multi-byte symbols.
// Labels 1..255 are reserved for single bytes.
const firstSymbolLabel Label = 256

// SymbolTable maps arc labels to the symbols they stand for and back.
// The mapping is injective: a symbol has exactly one label.
type SymbolTable struct {
	name    string
	symbols map[Label]string
	labels  map[string]Label
	next    Label
	maxLen  int
}

// NewSymbolTable returns a table holding only the epsilon symbol.
func NewSymbolTable(name string) *SymbolTable {
	t := &SymbolTable{
		name:    name,
		symbols: make(map[Label]string),
		labels:  make(map[string]Label),
		next:    firstSymbolLabel,
	}
	t.symbols[Epsilon] = EpsilonSymbol
	t.labels[EpsilonSymbol] = Epsilon
	return t
}

// Name returns the table name.
func (t *SymbolTable) Name() string {
	return t.name
}

// Len returns the number of symbols, epsilon included.
func (t *SymbolTable) Len() int {
	return len(t.symbols)
}

// AddSymbol returns the label of sym, adding it if needed. A one-byte
// symbol gets the byte value as its label.
func (t *SymbolTable) AddSymbol(sym string) Label {
	if l, ok := t.labels[sym]; ok {
		return l
	}
	if len(sym) == 1 {
		l := Label(sym[0])
		if _, taken := t.symbols[l]; !taken {
			t.set(sym, l)
			return l
		}
	}
	for {
		if _, taken := t.symbols[t.next]; !taken {
			break
		}
		t.next++
	}
	l := t.next
	t.set(sym, l)
	return l
}

// AddSymbolAt binds sym to label. It fails when either is already bound
// to something else.
func (t *SymbolTable) AddSymbolAt(sym string, label Label) error {
	if label < 0 {
		return errors.Errorf("symbol table %s: negative label %d for %q", t.name, label, sym)
	}
	if sym == "" {
		return errors.Errorf("symbol table %s: empty symbol for label %d", t.name, label)
	}
	if l, ok := t.labels[sym]; ok {
		if l == label {
			return nil
		}
		return errors.Errorf("symbol table %s: symbol %q bound to both %d and %d", t.name, sym, l, label)
	}
	if label == Epsilon {
		// Archives spell epsilon as "<eps>" or "<epsilon>".
		delete(t.labels, t.symbols[Epsilon])
		t.set(sym, Epsilon)
		return nil
	}
	if s, ok := t.symbols[label]; ok {
		return errors.Errorf("symbol table %s: label %d bound to both %q and %q", t.name, label, s, sym)
	}
	t.set(sym, label)
	return nil
}

func (t *SymbolTable) set(sym string, label Label) {
	t.symbols[label] = sym
	t.labels[sym] = label
	if len(sym) > t.maxLen {
		t.maxLen = len(sym)
	}
	if label >= t.next {
		t.next = label + 1
	}
}

// Find returns the symbol bound to label.
func (t *SymbolTable) Find(label Label) (string, bool) {
	s, ok := t.symbols[label]
	return s, ok
}

// Lookup returns the label bound to sym.
func (t *SymbolTable) Lookup(sym string) (Label, bool) {
	l, ok := t.labels[sym]
	return l, ok
}

// MaxSymbolLen is the byte length of the longest symbol.
func (t *SymbolTable) MaxSymbolLen() int {
	return t.maxLen
}

// Labels returns every bound label in increasing order.
func (t *SymbolTable) Labels() []Label {
	out := make([]Label, 0, len(t.symbols))
	for l := range t.symbols {
		out = append(out, l)
	}
	sortLabels(out)
	return out
}

// Checksum hashes the (label, symbol) pairs. Two tables with equal
// checksums describe the same alphabet.
func (t *SymbolTable) Checksum() uint64 {
	h := fnv.New64a()
	for _, l := range t.Labels() {
		io.WriteString(h, strconv.Itoa(int(l)))
		h.Write([]byte{'\t'})
		io.WriteString(h, t.symbols[l])
		h.Write([]byte{'\n'})
	}
	return h.Sum64()
}

// Render concatenates the symbols of labels. Labels 1..255 missing from
// the table are taken as raw bytes; any other unknown label is an error.
// A nil table renders bytes only.
func (t *SymbolTable) Render(labels []Label) (string, error) {
	var (
		sb      strings.Builder
		symbols map[Label]string
	)
	if t != nil {
		symbols = t.symbols
	}
	for _, l := range labels {
		if l == Epsilon {
			continue
		}
		if s, ok := symbols[l]; ok {
			sb.WriteString(s)
			continue
		}
		if l < firstSymbolLabel && l > 0 {
			sb.WriteByte(byte(l))
			continue
		}
		return "", errors.Wrapf(ErrUnknownLabel, "label %d in table %s", l, tableName(t))
	}
	return sb.String(), nil
}

// CompatSymbols reports whether a and b describe the same alphabet. A nil
// table matches anything.
func CompatSymbols(a, b *SymbolTable) bool {
	if a == nil || b == nil || a == b {
		return true
	}
	return a.Checksum() == b.Checksum()
}

// ReadSymbols reads a table in the OpenFst text format: one
// "symbol<whitespace>label" pair per line.
func ReadSymbols(r io.Reader, name string) (*SymbolTable, error) {
	t := NewSymbolTable(name)
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, errors.Errorf("symbols %s:%d: want 2 fields, got %d", name, lineNo, len(fields))
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, errors.Wrapf(err, "symbols %s:%d", name, lineNo)
		}
		if err := t.AddSymbolAt(fields[0], Label(n)); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "read symbols %s", name)
	}
	return t, nil
}
