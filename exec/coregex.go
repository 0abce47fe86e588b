package exec

import (
	"fmt"
	"unicode/utf8"

	coregex "github.com/coregx/coregex"

	"github.com/nilninull/pcre-heavy/capture"
	"github.com/nilninull/pcre-heavy/internal/conv"
)

// CoregexPattern is the default executor, backed by the coregx engine.
// It covers RE2-compatible syntax with guaranteed linear-time matching
// and works in byte offsets natively.
type CoregexPattern struct {
	re       *coregex.Regex
	captures int
	source   string
}

// CompileCoregex compiles pattern with the coregx engine.
func CompileCoregex(pattern string) (*CoregexPattern, error) {
	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("exec: compiling %q: %w", pattern, err)
	}
	// coregex counts the implicit full-match group in NumSubexp.
	captures := re.NumSubexp() - 1
	if captures < 0 {
		captures = 0
	}
	return &CoregexPattern{re: re, captures: captures, source: pattern}, nil
}

// CaptureCount implements Pattern.
func (p *CoregexPattern) CaptureCount() int { return p.captures }

// Source returns the pattern text the executor was compiled from.
func (p *CoregexPattern) Source() string { return p.source }

// Exec implements Pattern.
//
// The engine has no native start-offset parameter, so the attempt runs
// on subject[start:] and reported offsets are rebased. Start-of-text
// anchors therefore bind to the search position, as they do in the
// engine's own FindAll driver.
func (p *CoregexPattern) Exec(subject []byte, start int, flags Flags, ovec []int32) int {
	if start < 0 || start > len(subject) {
		return CodeBadOffset
	}
	if len(ovec) < capture.VectorLen(p.captures) {
		return 0
	}
	if flags&FlagNoUTF8Check == 0 && !utf8.Valid(subject) {
		return CodeBadUTF8
	}

	base := start
	for {
		idx := p.re.FindSubmatchIndex(subject[base:])
		if idx == nil {
			return NoMatch
		}
		if flags&FlagNotEmpty != 0 && idx[0] == idx[1] {
			at := base + idx[0]
			if at >= len(subject) {
				return NoMatch
			}
			_, w := utf8.DecodeRune(subject[at:])
			base = at + w
			continue
		}
		n := len(idx) / 2
		if n > p.captures+1 {
			n = p.captures + 1
		}
		for i := 0; i < n; i++ {
			if idx[2*i] < 0 {
				ovec[2*i], ovec[2*i+1] = -1, -1
				continue
			}
			ovec[2*i] = conv.IntToInt32(base + idx[2*i])
			ovec[2*i+1] = conv.IntToInt32(base + idx[2*i+1])
		}
		return n
	}
}
