package fst

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ReadText reads a transducer in the AT&T text format printed by fstprint:
//
//	src dst ilabel olabel [weight]
//	state [weight]
//
// The source state of the first arc line is the start state. Labels are
// looked up in isyms and osyms when given, and parsed as integers
// otherwise. One-byte symbols missing from a table take their byte value.
func ReadText(r io.Reader, isyms, osyms *SymbolTable) (*Fst, error) {
	f := New()
	f.isyms, f.osyms = isyms, osyms
	ensure := func(s StateID) {
		for int(s) >= len(f.states) {
			f.AddState()
		}
	}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch len(fields) {
		case 1, 2:
			s, err := parseState(fields[0])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNo)
			}
			w := One
			if len(fields) == 2 {
				if w, err = parseWeight(fields[1]); err != nil {
					return nil, errors.Wrapf(err, "line %d", lineNo)
				}
			}
			ensure(s)
			f.SetFinal(s, w)
		case 4, 5:
			src, err := parseState(fields[0])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNo)
			}
			dst, err := parseState(fields[1])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNo)
			}
			il, err := parseLabel(fields[2], isyms)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNo)
			}
			ol, err := parseLabel(fields[3], osyms)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNo)
			}
			w := One
			if len(fields) == 5 {
				if w, err = parseWeight(fields[4]); err != nil {
					return nil, errors.Wrapf(err, "line %d", lineNo)
				}
			}
			ensure(src)
			ensure(dst)
			if f.start == NoState {
				f.start = src
			}
			f.AddArc(src, Arc{ILabel: il, OLabel: ol, Weight: w, Next: dst})
		default:
			return nil, errors.Errorf("line %d: unexpected %d fields", lineNo, len(fields))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read fst text")
	}
	if f.start == NoState && len(f.states) > 0 {
		f.start = 0
	}
	return f, nil
}

func parseState(s string) (StateID, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return NoState, errors.Errorf("bad state %q", s)
	}
	return StateID(n), nil
}

func parseWeight(s string) (Weight, error) {
	if s == "Infinity" || s == "inf" {
		return Zero, nil
	}
	w, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return Zero, errors.Errorf("bad weight %q", s)
	}
	return Weight(w), nil
}

func parseLabel(s string, syms *SymbolTable) (Label, error) {
	if syms == nil {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return Epsilon, errors.Errorf("bad label %q", s)
		}
		return Label(n), nil
	}
	if l, ok := syms.Lookup(s); ok {
		return l, nil
	}
	if len(s) == 1 {
		return Label(s[0]), nil
	}
	return Epsilon, errors.Wrapf(ErrUnknownLabel, "symbol %q", s)
}
