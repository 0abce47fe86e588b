package pcreheavy

import (
	"fmt"

	"github.com/nilninull/pcre-heavy/capture"
	"github.com/nilninull/pcre-heavy/exec"
)

// Match is one successful match: the full-match span plus one span per
// capture group, over a borrowed haystack.
//
// The haystack is referenced, not copied. Callers that outlive the
// buffer must copy the bytes they keep.
type Match struct {
	haystack []byte
	spans    []capture.Span
}

func newMatch(haystack []byte, spans []capture.Span) *Match {
	return &Match{haystack: haystack, spans: spans}
}

// Start returns the inclusive byte offset where the full match begins.
func (m *Match) Start() int { return int(m.spans[0].Start) }

// End returns the exclusive byte offset where the full match ends.
func (m *Match) End() int { return int(m.spans[0].End) }

// Len returns the full match length in bytes.
func (m *Match) Len() int { return m.spans[0].Len() }

// IsEmpty reports whether the full match is zero-width.
func (m *Match) IsEmpty() bool { return m.spans[0].IsEmpty() }

// Span returns the full-match offset pair.
func (m *Match) Span() capture.Span { return m.spans[0] }

// Bytes returns the matched bytes as a view into the haystack.
func (m *Match) Bytes() []byte { return m.spans[0].In(m.haystack) }

// String returns the matched text, copying it out of the haystack.
func (m *Match) String() string { return string(m.Bytes()) }

// NumGroups reports the number of capture groups in the match.
func (m *Match) NumGroups() int { return len(m.spans) - 1 }

// GroupSpan returns the offset pair for group i. Index 0 is the full
// match; 1..NumGroups are the capture groups in declaration order.
func (m *Match) GroupSpan(i int) capture.Span {
	if i < 0 || i >= len(m.spans) {
		panic(fmt.Sprintf("pcreheavy: group index %d out of range [0, %d]", i, len(m.spans)-1))
	}
	return m.spans[i]
}

// Group returns the text of group i, nil if the group did not
// participate in the match. Index 0 is the full match.
func (m *Match) Group(i int) []byte {
	return m.GroupSpan(i).In(m.haystack)
}

// GroupString returns the text of group i, "" if the group did not
// participate. Use Group to distinguish absence from an empty capture.
func (m *Match) GroupString(i int) string {
	return string(m.Group(i))
}

// Groups returns the capture group texts (group 0 excluded), with nil
// entries for non-participating groups.
func (m *Match) Groups() [][]byte {
	groups := make([][]byte, m.NumGroups())
	for i := range groups {
		groups[i] = m.spans[i+1].In(m.haystack)
	}
	return groups
}

// GroupStrings returns the capture group texts as strings, with ""
// entries for non-participating groups.
func (m *Match) GroupStrings() []string {
	groups := make([]string, m.NumGroups())
	for i := range groups {
		groups[i] = string(m.spans[i+1].In(m.haystack))
	}
	return groups
}

// FirstMatchAt runs one match attempt at or after the given start
// offset.
//
// It returns (nil, nil) when the pattern does not match — absence is a
// normal outcome, not an error — and a *exec.FaultError when the
// executor could not complete the attempt at all.
func (re *Regexp) FirstMatchAt(buf []byte, start int, flags exec.Flags) (*Match, error) {
	if start < 0 || start > len(buf) {
		return nil, exec.NewFault(exec.CodeBadOffset, re.source)
	}
	if re.pre != nil && re.pre.Find(buf, start) < 0 {
		// No required literal remains, so no match can exist.
		return nil, nil
	}

	ovec := capture.NewVector(re.pat.CaptureCount())
	n := re.pat.Exec(buf, start, flags, ovec)
	switch {
	case n == exec.NoMatch:
		return nil, nil
	case n < 0:
		return nil, exec.NewFault(n, re.source)
	case n == 0:
		// The vector is sized from the pattern's own capture count;
		// an executor rejecting it is broken.
		panic("pcreheavy: executor reported offset vector too small")
	}
	return newMatch(buf, capture.Decode(ovec, n)), nil
}

// FirstMatch returns the leftmost match in buf, or (nil, nil) if there
// is none.
func (re *Regexp) FirstMatch(buf []byte) (*Match, error) {
	return re.FirstMatchAt(buf, 0, 0)
}

// FirstMatchString is FirstMatch at the string boundary.
func (re *Regexp) FirstMatchString(s string) (*Match, error) {
	return re.FirstMatch([]byte(s))
}

// Matches reports whether the pattern matches anywhere in buf.
func (re *Regexp) Matches(buf []byte) (bool, error) {
	m, err := re.FirstMatch(buf)
	return m != nil, err
}

// MatchesString is Matches at the string boundary.
func (re *Regexp) MatchesString(s string) (bool, error) {
	return re.Matches([]byte(s))
}
