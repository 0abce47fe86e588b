package pcreheavy

import (
	"unicode/utf8"

	"github.com/nilninull/pcre-heavy/exec"
)

// Scanner lazily enumerates all non-overlapping matches in a buffer,
// left to right. Each Scan call costs exactly one executor invocation,
// so a consumer needing only the first element pays for only one.
//
// The sequence is finite and not restartable: once Scan returns false
// the scanner is exhausted. Err distinguishes the natural end of the
// sequence (nil) from an engine fault, which stops the scan and is
// never folded into end-of-sequence.
type Scanner struct {
	re    *Regexp
	buf   []byte
	flags exec.Flags
	pos   int
	cur   *Match
	err   error
	done  bool
}

// Scanner returns a scanner over buf starting at offset 0.
func (re *Regexp) Scanner(buf []byte) *Scanner {
	return re.ScannerFlags(buf, 0)
}

// ScannerFlags is Scanner with per-invocation executor flags.
func (re *Regexp) ScannerFlags(buf []byte, flags exec.Flags) *Scanner {
	return &Scanner{re: re, buf: buf, flags: flags}
}

// Scan advances to the next match, returning false at the end of the
// sequence or on an engine fault (check Err).
//
// The search resumes at the maximum end offset across all reported
// pairs of the previous match — a capture group may extend past the
// reported full-match end under some engine semantics, and resuming
// before it would re-report overlapping matches. When that rule yields
// no forward progress (a zero-width match), the scanner advances by one
// rune instead; the "maximum of ends" rule alone does not terminate on
// patterns that match the empty string.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}

	m, err := s.re.FirstMatchAt(s.buf, s.pos, s.flags)
	if err != nil {
		s.err = err
		s.cur = nil
		s.done = true
		return false
	}
	if m == nil {
		s.cur = nil
		s.done = true
		return false
	}

	next := 0
	for _, sp := range m.spans {
		if !sp.Absent() && int(sp.End) > next {
			next = int(sp.End)
		}
	}
	if next <= s.pos {
		if s.pos < len(s.buf) {
			_, w := utf8.DecodeRune(s.buf[s.pos:])
			next = s.pos + w
		} else {
			// Zero-width match at the end of the buffer: emit it and
			// exhaust the sequence.
			s.done = true
			next = s.pos
		}
	}
	s.pos = next
	s.cur = m
	return true
}

// Match returns the current match. Valid until the next Scan call only
// in the sense that the scanner no longer refers to it; the Match stays
// usable as long as the buffer does.
func (s *Scanner) Match() *Match { return s.cur }

// Err returns the engine fault that stopped the scan, or nil after a
// normal end of sequence.
func (s *Scanner) Err() error { return s.err }

// ScanAll eagerly collects all matches in buf. On an engine fault it
// returns (nil, err) — partial results are not reported.
func (re *Regexp) ScanAll(buf []byte) ([]*Match, error) {
	var out []*Match
	sc := re.Scanner(buf)
	for sc.Scan() {
		out = append(out, sc.Match())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ScannedString is one scanned match at the string boundary: the full
// match text and the capture group texts ("" for a non-participating
// group).
type ScannedString struct {
	Match  string
	Groups []string
}

// ScanStrings collects all matches in s as strings.
func (re *Regexp) ScanStrings(s string) ([]ScannedString, error) {
	matches, err := re.ScanAll([]byte(s))
	if err != nil {
		return nil, err
	}
	out := make([]ScannedString, len(matches))
	for i, m := range matches {
		out[i] = ScannedString{Match: m.String(), Groups: m.GroupStrings()}
	}
	return out, nil
}
