package fst

import "github.com/pkg/errors"

var (
	// ErrArchiveNotFound is returned when the archive file cannot be opened.
	ErrArchiveNotFound = errors.New("fst archive not found")
	// ErrCorruptArchive is returned when the archive file opens but does
	// not decode.
	ErrCorruptArchive = errors.New("corrupt fst archive")
	// ErrEntryNotFound is returned when the archive has no entry of that name.
	ErrEntryNotFound = errors.New("fst archive entry not found")
	// ErrIncompatibleAlphabet is returned by Compose when the output
	// symbols of the left operand differ from the input symbols of the right.
	ErrIncompatibleAlphabet = errors.New("incompatible symbol tables")
	// ErrUnboundedPathSpace is returned by Paths when a path grows past the
	// depth bound, which only happens on a cyclic transducer.
	ErrUnboundedPathSpace = errors.New("unbounded path space")
	// ErrUnknownLabel is returned when a label has no symbol.
	ErrUnknownLabel = errors.New("label not in symbol table")
)
