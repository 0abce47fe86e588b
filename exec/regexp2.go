package exec

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dlclark/regexp2"

	"github.com/nilninull/pcre-heavy/capture"
	"github.com/nilninull/pcre-heavy/internal/conv"
)

// Regexp2Pattern is the fallback executor, backed by regexp2. It covers
// PCRE-only features the default executor rejects (lookaround,
// backreferences, atomic groups) at the cost of backtracking execution.
//
// regexp2 matches over runes, so the adapter maintains a rune/byte
// offset table per call and reports byte offsets like every other
// executor. A configured match timeout surfaces as a CodeMatchLimit
// fault, which makes this executor the usual producer of engine faults
// in practice.
type Regexp2Pattern struct {
	re       *regexp2.Regexp
	captures int
	source   string
}

// CompileRegexp2 compiles pattern with regexp2. A timeout of zero
// disables the match deadline.
func CompileRegexp2(pattern string, timeout time.Duration) (*Regexp2Pattern, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("exec: compiling %q: %w", pattern, err)
	}
	if timeout > 0 {
		re.MatchTimeout = timeout
	}
	// Group numbers include the implicit group 0.
	captures := len(re.GetGroupNumbers()) - 1
	if captures < 0 {
		captures = 0
	}
	return &Regexp2Pattern{re: re, captures: captures, source: pattern}, nil
}

// CaptureCount implements Pattern.
func (p *Regexp2Pattern) CaptureCount() int { return p.captures }

// Source returns the pattern text the executor was compiled from.
func (p *Regexp2Pattern) Source() string { return p.source }

// Exec implements Pattern.
func (p *Regexp2Pattern) Exec(subject []byte, start int, flags Flags, ovec []int32) int {
	if start < 0 || start > len(subject) {
		return CodeBadOffset
	}
	if len(ovec) < capture.VectorLen(p.captures) {
		return 0
	}
	if flags&FlagNoUTF8Check == 0 && !utf8.Valid(subject) {
		return CodeBadUTF8
	}

	runes, byteOf := decodeSubject(subject)
	runeStart := runeIndex(byteOf, start)
	if runeStart < 0 {
		return CodeBadOffset
	}

	for {
		m, err := p.re.FindRunesMatchStartingAt(runes, runeStart)
		if err != nil {
			return faultCode(err)
		}
		if m == nil {
			return NoMatch
		}
		if flags&FlagNotEmpty != 0 && m.Length == 0 {
			if m.Index >= len(runes) {
				return NoMatch
			}
			runeStart = m.Index + 1
			continue
		}

		groups := m.Groups()
		n := len(groups)
		if n > p.captures+1 {
			n = p.captures + 1
		}
		for i := 0; i < n; i++ {
			caps := groups[i].Captures
			if len(caps) == 0 {
				ovec[2*i], ovec[2*i+1] = -1, -1
				continue
			}
			// The final capture is the group's reported value.
			c := caps[len(caps)-1]
			ovec[2*i] = conv.IntToInt32(byteOf[c.Index])
			ovec[2*i+1] = conv.IntToInt32(byteOf[c.Index+c.Length])
		}
		return n
	}
}

// decodeSubject converts subject to runes and records the byte offset of
// each rune. byteOf has len(runes)+1 entries; the last is len(subject).
// Invalid bytes decode to U+FFFD with width 1, so byte offsets into the
// original buffer stay exact even on malformed input (reachable only
// with FlagNoUTF8Check).
func decodeSubject(subject []byte) (runes []rune, byteOf []int) {
	runes = make([]rune, 0, len(subject))
	byteOf = make([]int, 0, len(subject)+1)
	for i := 0; i < len(subject); {
		r, w := utf8.DecodeRune(subject[i:])
		runes = append(runes, r)
		byteOf = append(byteOf, i)
		i += w
	}
	byteOf = append(byteOf, len(subject))
	return runes, byteOf
}

// runeIndex finds the rune index whose byte offset equals off, or -1 if
// off falls inside a multi-byte sequence.
func runeIndex(byteOf []int, off int) int {
	lo, hi := 0, len(byteOf)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		switch {
		case byteOf[mid] == off:
			return mid
		case byteOf[mid] < off:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return -1
}

// faultCode classifies a regexp2 search error.
func faultCode(err error) int {
	if strings.Contains(strings.ToLower(err.Error()), "timeout") {
		return CodeMatchLimit
	}
	return CodeInternal
}
