package morphology

import (
	"fmt"

	"github.com/google-research/turkish-morphology/fst"
	"github.com/pkg/errors"
)

// MalformedKind classifies why an analysis string or record is rejected.
type MalformedKind int

const (
	EmptyAnalysis MalformedKind = iota + 1
	MissingRoot
	MissingGroup
	UnterminatedGroup
	MissingTag
	MalformedFeature
	MisplacedDerivation
	UnexpectedCharacter
	UnknownPartOfSpeech
	UnknownFeatureCategory
	UnknownFeatureValue
	IllegalDerivationAdjacency
)

var malformedKindNames = map[MalformedKind]string{
	EmptyAnalysis:              "EmptyAnalysis",
	MissingRoot:                "MissingRoot",
	MissingGroup:               "MissingGroup",
	UnterminatedGroup:          "UnterminatedGroup",
	MissingTag:                 "MissingTag",
	MalformedFeature:           "MalformedFeature",
	MisplacedDerivation:        "MisplacedDerivation",
	UnexpectedCharacter:        "UnexpectedCharacter",
	UnknownPartOfSpeech:        "UnknownPartOfSpeech",
	UnknownFeatureCategory:     "UnknownFeatureCategory",
	UnknownFeatureValue:        "UnknownFeatureValue",
	IllegalDerivationAdjacency: "IllegalDerivationAdjacency",
}

func (k MalformedKind) String() string {
	if s, ok := malformedKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("MalformedKind(%d)", int(k))
}

// MalformedAnalysisError reports an analysis that is structurally invalid
// or breaks the tagset. It is always the caller's input that is at fault.
type MalformedAnalysisError struct {
	Kind     MalformedKind
	Analysis string
	// Offset is the byte offset of the problem in Analysis, -1 when the
	// error was found on a structured record.
	Offset int
	// Group is the 0-based inflectional group involved, -1 if none.
	Group  int
	Detail string
}

func (e *MalformedAnalysisError) Error() string {
	where := ""
	switch {
	case e.Offset >= 0:
		where = fmt.Sprintf(" at offset %d", e.Offset)
	case e.Group >= 0:
		where = fmt.Sprintf(" in inflectional group %d", e.Group+1)
	}
	return fmt.Sprintf("malformed analysis %q (%s)%s: %s", e.Analysis, e.Kind, where, e.Detail)
}

// AsMalformed returns the *MalformedAnalysisError behind err, if any.
func AsMalformed(err error) (*MalformedAnalysisError, bool) {
	m, ok := errors.Cause(err).(*MalformedAnalysisError)
	return m, ok
}

// ErrorClass separates the failure categories callers must not conflate.
type ErrorClass int

const (
	// NoError: the call succeeded; an empty result is still a success.
	NoError ErrorClass = iota
	// Malformed: the input analysis was structurally invalid.
	Malformed
	// Internal: the model broke an invariant (cyclic paths, unknown
	// labels, mismatched alphabets).
	Internal
	// LoadFailure: the model could not be loaded.
	LoadFailure
)

func (c ErrorClass) String() string {
	switch c {
	case NoError:
		return "ok"
	case Malformed:
		return "malformed"
	case Internal:
		return "internal"
	case LoadFailure:
		return "load"
	}
	return fmt.Sprintf("ErrorClass(%d)", int(c))
}

// Classify returns the class of err.
func Classify(err error) ErrorClass {
	if err == nil {
		return NoError
	}
	switch errors.Cause(err) {
	case fst.ErrArchiveNotFound, fst.ErrCorruptArchive, fst.ErrEntryNotFound:
		return LoadFailure
	}
	if _, ok := AsMalformed(err); ok {
		return Malformed
	}
	return Internal
}
