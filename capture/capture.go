// Package capture decodes the flat offset vector produced by a native
// pattern executor into structured byte-offset pairs.
//
// The vector follows the PCRE convention: for a pattern with c declared
// capture groups the executor needs 3*(c+1) int32 slots of working space,
// but only the first 2*n slots are meaningful after a match that reported
// n pairs. Pair 0 always spans the full match; pairs 1..n-1 are the
// capture groups in left-to-right declaration order. A group that did not
// participate in the match is encoded as the pair (-1, -1), which is
// distinct from a zero-width match at a real position.
package capture

// Span is a (start, end) byte range into a subject buffer.
//
// Offsets satisfy 0 <= Start <= End <= len(subject) for present spans.
// The zero-width span (p, p) is a valid empty match at offset p. An
// absent capture group is represented as (-1, -1).
type Span struct {
	Start int32
	End   int32
}

// absentOffset marks a capture group that did not participate in a match.
const absentOffset = -1

// Absent reports whether the span denotes a non-participating group.
func (s Span) Absent() bool {
	return s.Start == absentOffset && s.End == absentOffset
}

// Len returns the number of bytes the span covers, or 0 if absent.
func (s Span) Len() int {
	if s.Absent() {
		return 0
	}
	return int(s.End - s.Start)
}

// In returns the sub-slice of buf bounded by the span, without copying.
// It returns nil for an absent span.
//
// A present span outside [0, len(buf)] indicates a bug in the executor
// or the decoder, never a property of caller input, so In panics on it
// rather than returning an error.
func (s Span) In(buf []byte) []byte {
	if s.Absent() {
		return nil
	}
	if s.Start < 0 || s.Start > s.End || int(s.End) > len(buf) {
		panic("capture: span out of buffer bounds")
	}
	return buf[s.Start:s.End]
}

// IsEmpty reports whether the span is present and zero-width.
func (s Span) IsEmpty() bool {
	return !s.Absent() && s.Start == s.End
}

// VectorLen returns the required offset-vector capacity for a pattern
// with the given number of declared capture groups.
//
// The extra third of the vector is executor working space and is never
// read back by Decode.
func VectorLen(captureCount int) int {
	return 3 * (captureCount + 1)
}

// NewVector allocates an offset vector sized for captureCount groups.
func NewVector(captureCount int) []int32 {
	return make([]int32, VectorLen(captureCount))
}

// Decode converts the first n reported pairs of an offset vector into
// spans. It returns nil when n <= 0, which is the executor's way of
// reporting no match (or a fault, which the caller distinguishes before
// decoding).
//
// Exactly 2*n slots are read; trailing working-space slots may hold
// garbage and are never touched.
func Decode(ovec []int32, n int) []Span {
	if n <= 0 {
		return nil
	}
	if 2*n > len(ovec) {
		panic("capture: reported pair count exceeds vector length")
	}
	spans := make([]Span, n)
	for i := 0; i < n; i++ {
		spans[i] = Span{Start: ovec[2*i], End: ovec[2*i+1]}
	}
	return spans
}
