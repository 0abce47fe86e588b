// Package exec defines the contract between the substitution core and a
// native pattern executor, plus pure-Go executors implementing it.
//
// A Pattern is an opaque, immutable, compiled regular expression. Its one
// operation is a single-shot match attempt against a byte buffer at a
// given start offset, reporting results through a flat int32 offset
// vector in the PCRE stride-3 convention (see package capture). This
// keeps the calling core independent of any particular engine: the
// default executor wraps the coregx engine, and a second executor wraps
// regexp2 for patterns needing lookaround or backreferences.
//
// Executors are read-only after construction and safe for concurrent use
// against distinct or shared subjects.
package exec

import (
	"errors"
	"fmt"
)

// Flags control a single match invocation. The zero value is the default
// behavior: subjects are validated as UTF-8 and empty matches are
// permitted.
type Flags uint32

const (
	// FlagNoUTF8Check skips subject encoding validation. Use when the
	// subject is already known to be valid UTF-8; with this flag set a
	// malformed subject produces engine-defined offsets instead of a
	// CodeBadUTF8 fault.
	FlagNoUTF8Check Flags = 1 << iota

	// FlagNotEmpty refuses zero-width matches. The executor keeps
	// searching past each empty match and reports only a non-empty one,
	// or no match at all.
	FlagNotEmpty
)

// Exec result codes. A positive return is the count of filled offset
// pairs; zero means the offset vector was too small for the pattern's
// pairs; NoMatch is the normal absence of a match; anything below
// NoMatch is an engine fault. The numbering mirrors the PCRE error
// codes the convention comes from.
const (
	// NoMatch reports that the pattern did not match at or after the
	// start offset. It is an expected outcome, never a fault.
	NoMatch = -1

	// CodeMatchLimit reports that the engine gave up before completing
	// the match attempt (e.g. a match timeout expired).
	CodeMatchLimit = -8

	// CodeBadUTF8 reports a malformed UTF-8 subject under strict
	// encoding validation.
	CodeBadUTF8 = -10

	// CodeBadOffset reports a start offset that does not lie on a
	// character boundary of the subject.
	CodeBadOffset = -11

	// CodeInternal reports an unclassified executor failure.
	CodeInternal = -14
)

// Pattern is an opaque compiled regular expression handle.
//
// Implementations must not retain or mutate the subject, and must remain
// usable from multiple goroutines at once; all mutable per-call state
// lives in the caller-owned offset vector.
type Pattern interface {
	// Exec runs one match attempt against subject starting at byte
	// offset start, writing offset pairs into ovec.
	//
	// Return value:
	//   n > 0   number of filled pairs; ovec[0:2n] is meaningful and
	//           pair 0 spans the full match
	//   n == 0  ovec is smaller than the pattern requires (caller bug;
	//           size it with capture.VectorLen(CaptureCount()))
	//   n == NoMatch  no match at or after start
	//   n < NoMatch   fault code (CodeBadUTF8, CodeMatchLimit, ...)
	Exec(subject []byte, start int, flags Flags, ovec []int32) int

	// CaptureCount reports the number of capture groups the pattern
	// declares, excluding the implicit pair 0 for the full match.
	CaptureCount() int
}

// ErrFault is the sentinel all engine faults match via errors.Is. It is
// never returned directly; faults are *FaultError values.
var ErrFault = errors.New("regex engine fault")

// FaultError is a runtime executor failure distinct from "no match":
// the engine could not complete the match attempt at all. Callers that
// need the class of failure inspect Code.
type FaultError struct {
	Code    int    // one of the Code* constants
	Pattern string // source text of the failing pattern
}

// NewFault builds a FaultError from an Exec result code.
func NewFault(code int, pattern string) *FaultError {
	return &FaultError{Code: code, Pattern: pattern}
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("regex engine fault (%s) executing pattern %q", codeName(e.Code), e.Pattern)
}

// Is reports a match against the ErrFault sentinel.
func (e *FaultError) Is(target error) bool {
	return target == ErrFault
}

func codeName(code int) string {
	switch code {
	case CodeMatchLimit:
		return "match limit exceeded"
	case CodeBadUTF8:
		return "malformed UTF-8 subject"
	case CodeBadOffset:
		return "start offset not on a character boundary"
	case CodeInternal:
		return "internal error"
	default:
		return fmt.Sprintf("code %d", code)
	}
}
