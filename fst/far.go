package fst

import (
	"bufio"
	"encoding/gob"
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
)

const (
	archiveMagic   = "turkish-morphology/far"
	archiveVersion = 1
)

type farSymbol struct {
	Symbol string
	Label  Label
}

type farSymbols struct {
	Name    string
	Symbols []farSymbol
}

type farState struct {
	Final  bool
	Weight float32
	Arcs   []Arc
}

type farEntry struct {
	Name         string
	Start        StateID
	Order        ArcOrder
	States       []farState
	ISymbols     *farSymbols
	OSymbols     *farSymbols
	SharedTables bool
}

type farFile struct {
	Magic   string
	Version int
	Entries []farEntry
}

// Archive is a set of named transducers read from one file.
type Archive struct {
	path    string
	entries map[string]*Fst
}

// ReadArchive reads every entry of the archive at path.
func ReadArchive(path string) (*Archive, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrArchiveNotFound, "open %s: %v", path, err)
	}
	defer file.Close()

	a, err := DecodeArchive(bufio.NewReader(file))
	if err != nil {
		return nil, errors.Wrapf(ErrCorruptArchive, "read archive %s: %v", path, err)
	}
	a.path = path
	return a, nil
}

// DecodeArchive reads an archive from r.
func DecodeArchive(r io.Reader) (*Archive, error) {
	var ff farFile
	if err := gob.NewDecoder(r).Decode(&ff); err != nil {
		return nil, errors.Wrap(err, "decode archive")
	}
	if ff.Magic != archiveMagic {
		return nil, errors.Errorf("not an fst archive (magic %q)", ff.Magic)
	}
	if ff.Version != archiveVersion {
		return nil, errors.Errorf("unsupported archive version %d", ff.Version)
	}
	a := &Archive{entries: make(map[string]*Fst, len(ff.Entries))}
	for _, e := range ff.Entries {
		f, err := e.fst()
		if err != nil {
			return nil, errors.Wrapf(err, "entry %q", e.Name)
		}
		a.entries[e.Name] = f
	}
	return a, nil
}

// Names returns the entry names in sorted order.
func (a *Archive) Names() []string {
	names := make([]string, 0, len(a.entries))
	for n := range a.entries {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Get returns the entry called name.
func (a *Archive) Get(name string) (*Fst, error) {
	f, ok := a.entries[name]
	if !ok {
		return nil, errors.Wrapf(ErrEntryNotFound, "%q in %s", name, a.path)
	}
	return f, nil
}

// Load reads the archive at path and returns its entry called name.
func Load(path, name string) (*Fst, error) {
	a, err := ReadArchive(path)
	if err != nil {
		return nil, err
	}
	return a.Get(name)
}

// WriteArchive encodes entries to w, in name order.
func WriteArchive(w io.Writer, entries map[string]*Fst) error {
	names := make([]string, 0, len(entries))
	for n := range entries {
		names = append(names, n)
	}
	sort.Strings(names)

	ff := farFile{Magic: archiveMagic, Version: archiveVersion}
	for _, n := range names {
		ff.Entries = append(ff.Entries, newFarEntry(n, entries[n]))
	}
	return errors.Wrap(gob.NewEncoder(w).Encode(&ff), "encode archive")
}

// WriteArchiveFile writes entries to a new archive at path.
func WriteArchiveFile(path string, entries map[string]*Fst) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	bw := bufio.NewWriter(file)
	if err := WriteArchive(bw, entries); err != nil {
		file.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		file.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	return errors.Wrapf(file.Close(), "close %s", path)
}

func newFarEntry(name string, f *Fst) farEntry {
	e := farEntry{
		Name:   name,
		Start:  f.start,
		Order:  f.order,
		States: make([]farState, len(f.states)),
	}
	for i, s := range f.states {
		fs := farState{Arcs: s.arcs}
		if !s.final.IsZero() {
			fs.Final = true
			fs.Weight = float32(s.final)
		}
		e.States[i] = fs
	}
	e.ISymbols = newFarSymbols(f.isyms)
	if f.isyms != nil && f.isyms == f.osyms {
		e.SharedTables = true
	} else {
		e.OSymbols = newFarSymbols(f.osyms)
	}
	return e
}

func newFarSymbols(t *SymbolTable) *farSymbols {
	if t == nil {
		return nil
	}
	fs := &farSymbols{Name: t.name}
	for _, l := range t.Labels() {
		fs.Symbols = append(fs.Symbols, farSymbol{Symbol: t.symbols[l], Label: l})
	}
	return fs
}

func (e farEntry) fst() (*Fst, error) {
	f := New()
	for _, s := range e.States {
		id := f.AddState()
		if s.Final {
			f.SetFinal(id, Weight(s.Weight))
		}
		for _, a := range s.Arcs {
			if a.Next < 0 || int(a.Next) >= len(e.States) {
				return nil, errors.Errorf("state %d: arc to missing state %d", id, a.Next)
			}
		}
		f.states[id].arcs = s.Arcs
	}
	if e.Start != NoState && (e.Start < 0 || int(e.Start) >= len(e.States)) {
		return nil, errors.Errorf("start state %d out of range", e.Start)
	}
	f.start = e.Start
	f.order = e.Order

	var err error
	if f.isyms, err = e.ISymbols.table(); err != nil {
		return nil, err
	}
	if e.SharedTables {
		f.osyms = f.isyms
	} else if f.osyms, err = e.OSymbols.table(); err != nil {
		return nil, err
	}
	return f, nil
}

func (fs *farSymbols) table() (*SymbolTable, error) {
	if fs == nil {
		return nil, nil
	}
	t := NewSymbolTable(fs.Name)
	for _, s := range fs.Symbols {
		if err := t.AddSymbolAt(s.Symbol, s.Label); err != nil {
			return nil, err
		}
	}
	return t, nil
}
