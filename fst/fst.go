// Package fst implements the small part of weighted finite-state
// transducer machinery needed to run a precompiled morphological analyzer:
// symbol tables, an arena-backed transducer, lazy composition with an
// epsilon filter, projection, inversion, trimming and bounded path
// enumeration, plus a named-entry archive format.
//
// A Fst is built once and then only read; all read methods are safe for
// concurrent use.
package fst

import (
	"math"
	"sort"
)

// Label is an arc label, an index into a SymbolTable.
type Label int32

// StateID indexes a state of a Fst.
type StateID int32

const (
	// Epsilon is the empty label.
	Epsilon Label = 0
	// NoState marks a missing state, e.g. the start of an empty Fst.
	NoState StateID = -1
)

// Weight is a tropical weight: paths combine by sum, Zero means "no path".
type Weight float32

var (
	Zero = Weight(math.Inf(1))
	One  = Weight(0)
)

// IsZero reports whether w is the tropical zero.
func (w Weight) IsZero() bool {
	return math.IsInf(float64(w), 1)
}

// Times is the semiring product.
func Times(a, b Weight) Weight {
	if a.IsZero() || b.IsZero() {
		return Zero
	}
	return a + b
}

// Arc is a transition to Next consuming ILabel and emitting OLabel.
type Arc struct {
	ILabel Label
	OLabel Label
	Weight Weight
	Next   StateID
}

type state struct {
	final Weight
	arcs  []Arc
}

// ArcOrder names the key arcs are sorted on.
type ArcOrder int

const (
	Unsorted ArcOrder = iota
	InputOrder
	OutputOrder
)

// Fst is a weighted transducer whose states live in a slice and refer to
// each other by index.
type Fst struct {
	start  StateID
	states []state
	isyms  *SymbolTable
	osyms  *SymbolTable
	order  ArcOrder
}

// New returns an empty Fst.
func New() *Fst {
	return &Fst{start: NoState}
}

// AddState appends a non-final state and returns its id.
func (f *Fst) AddState() StateID {
	f.states = append(f.states, state{final: Zero})
	return StateID(len(f.states) - 1)
}

// SetStart marks s as the start state.
func (f *Fst) SetStart(s StateID) {
	f.start = s
}

// SetFinal sets the final weight of s. Zero makes s non-final.
func (f *Fst) SetFinal(s StateID, w Weight) {
	f.states[s].final = w
}

// AddArc adds an arc leaving s.
func (f *Fst) AddArc(s StateID, a Arc) {
	f.states[s].arcs = append(f.states[s].arcs, a)
	f.order = Unsorted
}

func (f *Fst) SetInputSymbols(t *SymbolTable)  { f.isyms = t }
func (f *Fst) SetOutputSymbols(t *SymbolTable) { f.osyms = t }
func (f *Fst) InputSymbols() *SymbolTable      { return f.isyms }
func (f *Fst) OutputSymbols() *SymbolTable     { return f.osyms }

// Start returns the start state, NoState if f is empty.
func (f *Fst) Start() StateID {
	return f.start
}

// NumStates returns the number of states.
func (f *Fst) NumStates() int {
	return len(f.states)
}

// NumArcs returns the total number of arcs.
func (f *Fst) NumArcs() int {
	n := 0
	for i := range f.states {
		n += len(f.states[i].arcs)
	}
	return n
}

// Final returns the final weight of s.
func (f *Fst) Final(s StateID) Weight {
	return f.states[s].final
}

// IsFinal reports whether s is a final state.
func (f *Fst) IsFinal(s StateID) bool {
	return !f.states[s].final.IsZero()
}

// Arcs returns the arcs leaving s. The slice must not be modified.
func (f *Fst) Arcs(s StateID) []Arc {
	return f.states[s].arcs
}

// Order returns the key the arcs are currently sorted on.
func (f *Fst) Order() ArcOrder {
	return f.order
}

// ArcSort sorts the arcs of every state on the given key.
func (f *Fst) ArcSort(order ArcOrder) {
	for i := range f.states {
		arcs := f.states[i].arcs
		switch order {
		case InputOrder:
			sort.SliceStable(arcs, func(a, b int) bool {
				if arcs[a].ILabel != arcs[b].ILabel {
					return arcs[a].ILabel < arcs[b].ILabel
				}
				return arcs[a].OLabel < arcs[b].OLabel
			})
		case OutputOrder:
			sort.SliceStable(arcs, func(a, b int) bool {
				if arcs[a].OLabel != arcs[b].OLabel {
					return arcs[a].OLabel < arcs[b].OLabel
				}
				return arcs[a].ILabel < arcs[b].ILabel
			})
		}
	}
	f.order = order
}

// inputRange returns the arcs of s whose input label is l. It
// binary-searches when f is sorted on input labels.
func (f *Fst) inputRange(s StateID, l Label) []Arc {
	arcs := f.states[s].arcs
	if f.order != InputOrder {
		var out []Arc
		for _, a := range arcs {
			if a.ILabel == l {
				out = append(out, a)
			}
		}
		return out
	}
	lo := sort.Search(len(arcs), func(i int) bool { return arcs[i].ILabel >= l })
	hi := lo
	for hi < len(arcs) && arcs[hi].ILabel == l {
		hi++
	}
	return arcs[lo:hi]
}

// Invert returns a copy of f with input and output swapped.
func Invert(f *Fst) *Fst {
	out := f.copyWith(func(a Arc) Arc {
		a.ILabel, a.OLabel = a.OLabel, a.ILabel
		return a
	})
	out.isyms, out.osyms = f.osyms, f.isyms
	return out
}

// ProjectSide selects which labels Project keeps.
type ProjectSide int

const (
	ProjectInput ProjectSide = iota
	ProjectOutput
)

// Project returns an acceptor copy of f that keeps one side's labels on
// both sides of every arc.
func Project(f *Fst, side ProjectSide) *Fst {
	out := f.copyWith(func(a Arc) Arc {
		if side == ProjectInput {
			a.OLabel = a.ILabel
		} else {
			a.ILabel = a.OLabel
		}
		return a
	})
	if side == ProjectInput {
		out.osyms = f.isyms
	} else {
		out.isyms = f.osyms
	}
	return out
}

func (f *Fst) copyWith(fn func(Arc) Arc) *Fst {
	out := &Fst{
		start:  f.start,
		states: make([]state, len(f.states)),
		isyms:  f.isyms,
		osyms:  f.osyms,
	}
	for i := range f.states {
		arcs := make([]Arc, len(f.states[i].arcs))
		for j, a := range f.states[i].arcs {
			arcs[j] = fn(a)
		}
		out.states[i] = state{final: f.states[i].final, arcs: arcs}
	}
	return out
}

// Connect returns a copy of f without the states that are not reachable
// from the start or cannot reach a final state. The result is empty
// (Start() == NoState) when no path is accepted.
func Connect(f *Fst) *Fst {
	out := New()
	out.isyms, out.osyms = f.isyms, f.osyms
	if f.start == NoState || len(f.states) == 0 {
		return out
	}

	access := make([]bool, len(f.states))
	stack := []StateID{f.start}
	access[f.start] = true
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, a := range f.states[s].arcs {
			if !access[a.Next] {
				access[a.Next] = true
				stack = append(stack, a.Next)
			}
		}
	}

	reverse := make([][]StateID, len(f.states))
	for s := range f.states {
		for _, a := range f.states[s].arcs {
			reverse[a.Next] = append(reverse[a.Next], StateID(s))
		}
	}
	coaccess := make([]bool, len(f.states))
	for s := range f.states {
		if f.IsFinal(StateID(s)) {
			coaccess[s] = true
			stack = append(stack, StateID(s))
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range reverse[s] {
			if !coaccess[p] {
				coaccess[p] = true
				stack = append(stack, p)
			}
		}
	}

	if !coaccess[f.start] {
		return out
	}
	remap := make([]StateID, len(f.states))
	for s := range f.states {
		remap[s] = NoState
		if access[s] && coaccess[s] {
			remap[s] = out.AddState()
		}
	}
	for s := range f.states {
		ns := remap[s]
		if ns == NoState {
			continue
		}
		out.states[ns].final = f.states[s].final
		for _, a := range f.states[s].arcs {
			if remap[a.Next] == NoState {
				continue
			}
			a.Next = remap[a.Next]
			out.states[ns].arcs = append(out.states[ns].arcs, a)
		}
	}
	out.start = remap[f.start]
	out.order = f.order
	return out
}

func sortLabels(ls []Label) {
	sort.Slice(ls, func(i, j int) bool { return ls[i] < ls[j] })
}
