package fst

import "github.com/pkg/errors"

// DefaultMaxDepth bounds the number of arcs on an enumerated path. It is
// far above the label count of any real word and its analysis.
const DefaultMaxDepth = 256

type pathFrame struct {
	state StateID
	next  int
	label Label
}

// Paths returns the output-label sequence of every path from the start
// state of f to a final state, epsilons dropped. Sequences come out in
// arc order and may repeat. A path longer than maxDepth arcs aborts the
// walk with ErrUnboundedPathSpace; maxDepth <= 0 means DefaultMaxDepth.
func Paths(f *Fst, maxDepth int) ([][]Label, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if f.start == NoState {
		return nil, nil
	}

	var (
		paths  [][]Label
		labels []Label
	)
	emit := func() {
		p := make([]Label, len(labels))
		copy(p, labels)
		paths = append(paths, p)
	}

	stack := []pathFrame{{state: f.start, label: Epsilon}}
	if f.IsFinal(f.start) {
		emit()
	}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		arcs := f.Arcs(top.state)
		if top.next == len(arcs) {
			if top.label != Epsilon {
				labels = labels[:len(labels)-1]
			}
			stack = stack[:len(stack)-1]
			continue
		}
		arc := arcs[top.next]
		top.next++
		if len(stack) > maxDepth {
			return nil, errors.Wrapf(ErrUnboundedPathSpace, "path longer than %d arcs", maxDepth)
		}
		stack = append(stack, pathFrame{state: arc.Next, label: arc.OLabel})
		if arc.OLabel != Epsilon {
			labels = append(labels, arc.OLabel)
		}
		if f.IsFinal(arc.Next) {
			emit()
		}
	}
	return paths, nil
}
