package fst

import "github.com/pkg/errors"

// Epsilon filter states. After a move where only one side advanced on an
// epsilon, the other side may not advance alone until a real match.
type filterState uint8

const (
	filterFree filterState = iota
	filterLeftAlone
	filterRightAlone
)

type composeTuple struct {
	a, b StateID
	f    filterState
}

type composer struct {
	a, b  *Fst
	out   *Fst
	ids   map[composeTuple]StateID
	queue []composeTuple
}

// Compose returns a ∘ b: the relation mapping x to z whenever a maps x to
// some y and b maps y to z. Only states reachable from the start pair are
// built. When b is sorted on input labels, matching uses binary search.
func Compose(a, b *Fst) (*Fst, error) {
	if !CompatSymbols(a.osyms, b.isyms) {
		return nil, errors.Wrapf(ErrIncompatibleAlphabet, "compose: output %s vs input %s", tableName(a.osyms), tableName(b.isyms))
	}
	c := &composer{
		a:   a,
		b:   b,
		out: New(),
		ids: make(map[composeTuple]StateID),
	}
	c.out.isyms, c.out.osyms = a.isyms, b.osyms
	if a.start == NoState || b.start == NoState {
		return c.out, nil
	}
	c.out.SetStart(c.state(composeTuple{a.start, b.start, filterFree}))
	for len(c.queue) > 0 {
		t := c.queue[0]
		c.queue = c.queue[1:]
		c.expand(t)
	}
	return c.out, nil
}

// state returns the id of t, enqueueing it the first time it is seen.
func (c *composer) state(t composeTuple) StateID {
	if id, ok := c.ids[t]; ok {
		return id
	}
	id := c.out.AddState()
	c.ids[t] = id
	c.out.SetFinal(id, Times(c.a.Final(t.a), c.b.Final(t.b)))
	c.queue = append(c.queue, t)
	return id
}

func (c *composer) expand(t composeTuple) {
	src := c.ids[t]
	for _, aa := range c.a.Arcs(t.a) {
		if aa.OLabel == Epsilon {
			if t.f != filterRightAlone {
				c.arc(src, aa.ILabel, Epsilon, aa.Weight, composeTuple{aa.Next, t.b, filterLeftAlone})
			}
			if t.f == filterFree {
				for _, ba := range c.b.inputRange(t.b, Epsilon) {
					c.arc(src, aa.ILabel, ba.OLabel, Times(aa.Weight, ba.Weight), composeTuple{aa.Next, ba.Next, filterFree})
				}
			}
			continue
		}
		for _, ba := range c.b.inputRange(t.b, aa.OLabel) {
			c.arc(src, aa.ILabel, ba.OLabel, Times(aa.Weight, ba.Weight), composeTuple{aa.Next, ba.Next, filterFree})
		}
	}
	if t.f == filterLeftAlone {
		return
	}
	for _, ba := range c.b.inputRange(t.b, Epsilon) {
		c.arc(src, Epsilon, ba.OLabel, ba.Weight, composeTuple{t.a, ba.Next, filterRightAlone})
	}
}

func (c *composer) arc(src StateID, il, ol Label, w Weight, next composeTuple) {
	c.out.AddArc(src, Arc{ILabel: il, OLabel: ol, Weight: w, Next: c.state(next)})
}

func tableName(t *SymbolTable) string {
	if t == nil {
		return "<none>"
	}
	return t.name
}
