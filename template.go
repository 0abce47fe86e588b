package pcreheavy

import (
	"fmt"
	"strings"
)

// templateSegment is one piece of a parsed replacement template: either
// literal text or a group reference (0 = full match).
type templateSegment struct {
	text  []byte
	group int // -1 for literal text
}

// Template parses a replacement template into a Replacement.
//
// Template syntax:
//   - $0 or ${0}: the full match
//   - $1..$99 or ${n}: capture group by index
//   - $$: a literal dollar sign
//   - everything else: literal text
//
// A reference to a group the pattern does not declare, or to a group
// that did not participate in a match, expands to nothing. The result
// is an ordinary MatchGroupsFunc-shaped Replacement; the template adds
// no fifth replacement shape.
func Template(tmpl string) (Replacement, error) {
	segs, err := parseTemplate(tmpl)
	if err != nil {
		return Replacement{}, err
	}

	// Pure-literal templates collapse to a constant.
	if len(segs) == 1 && segs[0].group < 0 {
		return Literal(segs[0].text), nil
	}

	return MatchGroupsFunc(func(match []byte, groups [][]byte) []byte {
		var out []byte
		for _, seg := range segs {
			switch {
			case seg.group < 0:
				out = append(out, seg.text...)
			case seg.group == 0:
				out = append(out, match...)
			case seg.group <= len(groups):
				out = append(out, groups[seg.group-1]...)
			}
		}
		return out
	}), nil
}

// MustTemplate is like Template but panics on a malformed template.
func MustTemplate(tmpl string) Replacement {
	repl, err := Template(tmpl)
	if err != nil {
		panic("pcreheavy: Template(`" + tmpl + "`): " + err.Error())
	}
	return repl
}

func parseTemplate(tmpl string) ([]templateSegment, error) {
	var segs []templateSegment
	var lit []byte

	flush := func() {
		if len(lit) > 0 {
			segs = append(segs, templateSegment{text: lit, group: -1})
			lit = nil
		}
	}

	i := 0
	for i < len(tmpl) {
		c := tmpl[i]
		if c != '$' {
			lit = append(lit, c)
			i++
			continue
		}
		if i+1 >= len(tmpl) {
			// Trailing $ is literal.
			lit = append(lit, '$')
			i++
			continue
		}

		switch next := tmpl[i+1]; {
		case next == '$':
			lit = append(lit, '$')
			i += 2

		case next >= '0' && next <= '9':
			group := int(next - '0')
			consumed := 2
			if group > 0 && i+2 < len(tmpl) && tmpl[i+2] >= '0' && tmpl[i+2] <= '9' {
				group = group*10 + int(tmpl[i+2]-'0')
				consumed = 3
			}
			flush()
			segs = append(segs, templateSegment{group: group})
			i += consumed

		case next == '{':
			close := strings.IndexByte(tmpl[i:], '}')
			if close < 0 {
				return nil, fmt.Errorf("pcreheavy: template position %d: unclosed ${", i)
			}
			group, err := parseGroupNumber(tmpl[i+2 : i+close])
			if err != nil {
				return nil, fmt.Errorf("pcreheavy: template position %d: %w", i, err)
			}
			flush()
			segs = append(segs, templateSegment{group: group})
			i += close + 1

		default:
			// Lone $ followed by a non-reference: literal.
			lit = append(lit, '$')
			i++
		}
	}
	flush()

	if segs == nil {
		// Empty template: one empty literal keeps Template total.
		segs = []templateSegment{{group: -1}}
	}
	return segs, nil
}

func parseGroupNumber(s string) (int, error) {
	if len(s) == 0 {
		return 0, fmt.Errorf("empty ${} reference")
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("invalid group reference ${%s}", s)
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, nil
}
