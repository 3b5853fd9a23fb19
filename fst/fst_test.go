package fst

import (
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"github.com/pkg/errors"
)

// linear builds a transducer with one path through the given label pairs.
func linear(syms *SymbolTable, pairs ...[2]Label) *Fst {
	f := New()
	f.SetInputSymbols(syms)
	f.SetOutputSymbols(syms)
	cur := f.AddState()
	f.SetStart(cur)
	for _, p := range pairs {
		next := f.AddState()
		f.AddArc(cur, Arc{ILabel: p[0], OLabel: p[1], Weight: One, Next: next})
		cur = next
	}
	f.SetFinal(cur, One)
	return f
}

func rendered(t *testing.T, f *Fst, syms *SymbolTable) []string {
	t.Helper()
	paths, err := Paths(f, 0)
	if err != nil {
		t.Fatalf("Paths: %v", err)
	}
	var out []string
	for _, p := range paths {
		s, err := syms.Render(p)
		if err != nil {
			t.Fatalf("Render(%v): %v", p, err)
		}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func TestSymbolTable(t *testing.T) {
	syms := NewSymbolTable("test")
	if l := syms.AddSymbol("e"); l != 'e' {
		t.Errorf("AddSymbol(e) = %d, want %d", l, 'e')
	}
	nn := syms.AddSymbol("[NN]")
	if nn < 256 {
		t.Errorf("AddSymbol([NN]) = %d, want >= 256", nn)
	}
	if again := syms.AddSymbol("[NN]"); again != nn {
		t.Errorf("AddSymbol is not idempotent: %d then %d", nn, again)
	}
	if s, ok := syms.Find(Epsilon); !ok || s != EpsilonSymbol {
		t.Errorf("Find(0) = %q, %v", s, ok)
	}
	if err := syms.AddSymbolAt("[VB]", nn); err == nil {
		t.Error("AddSymbolAt accepted a label that is already bound")
	}
	if err := syms.AddSymbolAt("[NN]", nn+1); err == nil {
		t.Error("AddSymbolAt accepted a symbol that is already bound")
	}
	if got := syms.MaxSymbolLen(); got != 4 {
		t.Errorf("MaxSymbolLen() = %d, want 4", got)
	}

	got, err := syms.Render([]Label{'e', 'v', Epsilon, nn})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "ev[NN]" {
		t.Errorf("Render = %q, want %q", got, "ev[NN]")
	}
	if _, err := syms.Render([]Label{9999}); errors.Cause(err) != ErrUnknownLabel {
		t.Errorf("Render(9999) error = %v, want ErrUnknownLabel", err)
	}
}

func TestReadSymbolsAndCompat(t *testing.T) {
	file, err := os.Open(filepath.Join("testdata", "small.syms"))
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	syms, err := ReadSymbols(file, "small")
	if err != nil {
		t.Fatalf("ReadSymbols: %v", err)
	}
	if s, _ := syms.Find(Epsilon); s != "<epsilon>" {
		t.Errorf("epsilon spelled %q, want <epsilon>", s)
	}
	if l, ok := syms.Lookup("[NN]"); !ok || l != 256 {
		t.Errorf("Lookup([NN]) = %d, %v", l, ok)
	}

	same := NewSymbolTable("other")
	for _, l := range syms.Labels() {
		s, _ := syms.Find(l)
		if err := same.AddSymbolAt(s, l); err != nil {
			t.Fatal(err)
		}
	}
	if !CompatSymbols(syms, same) {
		t.Error("tables with equal bindings are not compatible")
	}
	same.AddSymbol("[VB]")
	if CompatSymbols(syms, same) {
		t.Error("tables with different bindings are compatible")
	}
	if !CompatSymbols(nil, syms) {
		t.Error("nil table must match anything")
	}
}

func TestComposeMatches(t *testing.T) {
	syms := NewSymbolTable("test")
	in := CompileBytes("ab", syms)
	rel := linear(syms, [2]Label{'a', 'x'}, [2]Label{'b', 'y'})

	out, err := Compose(in, rel)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if got := rendered(t, out, syms); !reflect.DeepEqual(got, []string{"xy"}) {
		t.Errorf("paths = %q, want [xy]", got)
	}

	none, err := Compose(CompileBytes("ba", syms), rel)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if c := Connect(none); c.Start() != NoState || c.NumStates() != 0 {
		t.Errorf("Connect of a rejecting composition has start %d and %d states", c.Start(), c.NumStates())
	}
}

func TestComposeEpsilonFilter(t *testing.T) {
	syms := NewSymbolTable("test")
	// a emits nothing while b emits without reading: three interleavings
	// exist without a filter, exactly one survives with it.
	a := linear(syms, [2]Label{'x', Epsilon})
	b := linear(syms, [2]Label{Epsilon, 'y'})

	out, err := Compose(a, b)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	paths, err := Paths(out, 0)
	if err != nil {
		t.Fatalf("Paths: %v", err)
	}
	if !reflect.DeepEqual(paths, [][]Label{{'y'}}) {
		t.Errorf("paths = %v, want [[y]]", paths)
	}
	if n := Connect(out).NumStates(); n != 2 {
		t.Errorf("connected composition has %d states, want 2", n)
	}
}

func TestComposeSortedAndUnsortedAgree(t *testing.T) {
	syms := NewSymbolTable("test")
	rel := New()
	rel.SetInputSymbols(syms)
	rel.SetOutputSymbols(syms)
	s0, s1 := rel.AddState(), rel.AddState()
	rel.SetStart(s0)
	rel.SetFinal(s1, One)
	for _, l := range []Label{'c', 'b', 'a'} {
		rel.AddArc(s0, Arc{ILabel: l, OLabel: l + 1, Weight: One, Next: s1})
	}
	rel.AddArc(s0, Arc{ILabel: 'b', OLabel: 'z', Weight: One, Next: s1})

	unsorted, err := Compose(CompileBytes("b", syms), rel)
	if err != nil {
		t.Fatal(err)
	}
	want := rendered(t, unsorted, syms)

	rel.ArcSort(InputOrder)
	sorted, err := Compose(CompileBytes("b", syms), rel)
	if err != nil {
		t.Fatal(err)
	}
	if got := rendered(t, sorted, syms); !reflect.DeepEqual(got, want) {
		t.Errorf("sorted paths = %q, unsorted = %q", got, want)
	}
	if !reflect.DeepEqual(want, []string{"c", "z"}) {
		t.Errorf("paths = %q, want [c z]", want)
	}
}

func TestComposeIncompatibleAlphabet(t *testing.T) {
	left := NewSymbolTable("left")
	left.AddSymbol("[NN]")
	right := NewSymbolTable("right")
	right.AddSymbol("[VB]")

	a := linear(left, [2]Label{'a', 'a'})
	b := linear(right, [2]Label{'a', 'a'})
	if _, err := Compose(a, b); errors.Cause(err) != ErrIncompatibleAlphabet {
		t.Errorf("Compose error = %v, want ErrIncompatibleAlphabet", err)
	}
}

func TestPaths(t *testing.T) {
	f := New()
	s0, s1, s2 := f.AddState(), f.AddState(), f.AddState()
	f.SetStart(s0)
	f.SetFinal(s2, One)
	f.AddArc(s0, Arc{ILabel: 'a', OLabel: Epsilon, Next: s1})
	f.AddArc(s1, Arc{ILabel: 'b', OLabel: 'c', Next: s2})
	f.AddArc(s0, Arc{ILabel: 'x', OLabel: 'd', Next: s2})

	paths, err := Paths(f, 0)
	if err != nil {
		t.Fatalf("Paths: %v", err)
	}
	if want := [][]Label{{'c'}, {'d'}}; !reflect.DeepEqual(paths, want) {
		t.Errorf("Paths = %v, want %v", paths, want)
	}

	f.SetFinal(s0, One)
	paths, _ = Paths(f, 0)
	if len(paths) != 3 || len(paths[0]) != 0 {
		t.Errorf("final start state must yield the empty path first, got %v", paths)
	}

	if paths, err := Paths(New(), 0); err != nil || paths != nil {
		t.Errorf("Paths(empty) = %v, %v", paths, err)
	}
}

func TestPathsDepthBound(t *testing.T) {
	f := New()
	s := f.AddState()
	f.SetStart(s)
	f.SetFinal(s, One)
	f.AddArc(s, Arc{ILabel: 'a', OLabel: 'a', Next: s})

	if _, err := Paths(f, 10); errors.Cause(err) != ErrUnboundedPathSpace {
		t.Errorf("Paths on a cycle: error = %v, want ErrUnboundedPathSpace", err)
	}

	word := linear(NewSymbolTable("t"), [2]Label{'a', 'a'}, [2]Label{'b', 'b'}, [2]Label{'c', 'c'})
	if _, err := Paths(word, 3); err != nil {
		t.Errorf("path of exactly the bound rejected: %v", err)
	}
	if _, err := Paths(word, 2); errors.Cause(err) != ErrUnboundedPathSpace {
		t.Errorf("path over the bound: error = %v", err)
	}
}

func TestCompileSymbols(t *testing.T) {
	syms := NewSymbolTable("test")
	nn := syms.AddSymbol("[NN]")
	f := CompileSymbols("a[NN]", syms)

	paths, err := Paths(f, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]Label{
		{'a', '[', 'N', 'N', ']'},
		{'a', nn},
	}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("lattice paths = %v, want %v", paths, want)
	}
	for _, s := range rendered(t, f, syms) {
		if s != "a[NN]" {
			t.Errorf("lattice path renders as %q", s)
		}
	}
}

func TestInvertAndProject(t *testing.T) {
	syms := NewSymbolTable("test")
	f := linear(syms, [2]Label{'a', 'x'})

	inv := Invert(f)
	if a := inv.Arcs(inv.Start())[0]; a.ILabel != 'x' || a.OLabel != 'a' {
		t.Errorf("Invert arc = %+v", a)
	}
	in := Project(f, ProjectInput)
	if a := in.Arcs(in.Start())[0]; a.ILabel != 'a' || a.OLabel != 'a' {
		t.Errorf("Project(input) arc = %+v", a)
	}
	out := Project(f, ProjectOutput)
	if a := out.Arcs(out.Start())[0]; a.ILabel != 'x' || a.OLabel != 'x' {
		t.Errorf("Project(output) arc = %+v", a)
	}
	if a := f.Arcs(f.Start())[0]; a.ILabel != 'a' || a.OLabel != 'x' {
		t.Errorf("derived copies modified the original: %+v", a)
	}
}

func TestReadText(t *testing.T) {
	sf, err := os.Open(filepath.Join("testdata", "small.syms"))
	if err != nil {
		t.Fatal(err)
	}
	defer sf.Close()
	syms, err := ReadSymbols(sf, "small")
	if err != nil {
		t.Fatal(err)
	}
	ff, err := os.Open(filepath.Join("testdata", "small.fst.txt"))
	if err != nil {
		t.Fatal(err)
	}
	defer ff.Close()
	f, err := ReadText(ff, syms, syms)
	if err != nil {
		t.Fatalf("ReadText: %v", err)
	}

	if f.NumStates() != 4 || f.Start() != 0 {
		t.Fatalf("got %d states, start %d", f.NumStates(), f.Start())
	}
	if w := f.Final(3); w != 1.5 {
		t.Errorf("Final(3) = %v, want 1.5", w)
	}
	if f.IsFinal(1) {
		t.Error("state 1 must not be final")
	}
	if got := rendered(t, f, syms); !reflect.DeepEqual(got, []string{"[NN]", "xy"}) {
		t.Errorf("paths = %q", got)
	}
}

func TestArchive(t *testing.T) {
	syms := NewSymbolTable("test")
	nn := syms.AddSymbol("[NN]")
	f := linear(syms, [2]Label{'e', 'e'}, [2]Label{'v', 'v'}, [2]Label{Epsilon, nn})
	f.ArcSort(InputOrder)

	path := filepath.Join(t.TempDir(), "test.far")
	if err := WriteArchiveFile(path, map[string]*Fst{"analyzer": f}); err != nil {
		t.Fatalf("WriteArchiveFile: %v", err)
	}

	a, err := ReadArchive(path)
	if err != nil {
		t.Fatalf("ReadArchive: %v", err)
	}
	if names := a.Names(); !reflect.DeepEqual(names, []string{"analyzer"}) {
		t.Errorf("Names() = %q", names)
	}
	got, err := a.Get("analyzer")
	if err != nil {
		t.Fatal(err)
	}
	if got.NumStates() != f.NumStates() || got.NumArcs() != f.NumArcs() || got.Order() != InputOrder {
		t.Errorf("read back %d states/%d arcs, order %d", got.NumStates(), got.NumArcs(), got.Order())
	}
	if got.InputSymbols() != got.OutputSymbols() {
		t.Error("shared symbol table was split")
	}
	if paths := rendered(t, got, got.OutputSymbols()); !reflect.DeepEqual(paths, []string{"ev[NN]"}) {
		t.Errorf("paths = %q", paths)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.far"), "analyzer"); errors.Cause(err) != ErrArchiveNotFound {
		t.Errorf("missing archive: error = %v", err)
	}
	if _, err := Load(path, "generator"); errors.Cause(err) != ErrEntryNotFound {
		t.Errorf("missing entry: error = %v", err)
	}

	corrupt := filepath.Join(t.TempDir(), "corrupt.far")
	if err := os.WriteFile(corrupt, []byte("not an archive"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadArchive(corrupt); errors.Cause(err) != ErrCorruptArchive {
		t.Errorf("corrupt archive: error = %v", err)
	}
}
