package pcreheavy

import (
	"unicode/utf8"

	"github.com/nilninull/pcre-heavy/exec"
)

// subOnce performs one substitution step: find the first match at or
// after start, resolve the replacement, and splice
// prefix + replacement + suffix into a fresh buffer.
//
// spliceEnd is the offset just past the inserted replacement in the new
// buffer: the continuation point for a global driver. Resuming anywhere
// earlier would rescan the inserted text (and loop forever once the
// replacement itself matches the pattern); resuming at the old match
// end instead would land at a shifted position whenever the replacement
// and match lengths differ. empty reports a zero-width match, which the
// global driver must additionally step over. found is false when there
// was no match, in which case out is buf itself, untouched.
func (re *Regexp) subOnce(buf []byte, start int, repl Replacement, flags exec.Flags) (out []byte, spliceEnd int, empty, found bool, err error) {
	m, err := re.FirstMatchAt(buf, start, flags)
	if err != nil {
		return nil, 0, false, false, err
	}
	if m == nil {
		return buf, 0, false, false, nil
	}

	b, e := m.Start(), m.End()
	var groups [][]byte
	if repl.needsGroups() {
		groups = m.Groups()
	}
	rep := repl.resolve(m.Bytes(), groups)

	out = make([]byte, 0, len(buf)-(e-b)+len(rep))
	out = append(out, buf[:b]...)
	out = append(out, rep...)
	out = append(out, buf[e:]...)
	return out, b + len(rep), e == b, true, nil
}

// Sub replaces the first match of the pattern in buf and returns the
// resulting buffer. When the pattern does not match, buf itself is
// returned unchanged — absence of a match is a normal, silent outcome,
// distinct from the engine faults reported through err.
func (re *Regexp) Sub(buf []byte, repl Replacement) ([]byte, error) {
	out, _, _, _, err := re.subOnce(buf, 0, repl, 0)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SubString is Sub at the string boundary.
func (re *Regexp) SubString(s string, repl Replacement) (string, error) {
	out, err := re.Sub([]byte(s), repl)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Gsub replaces every match of the pattern in buf, always operating on
// the latest spliced buffer and continuing just past the inserted
// replacement. Inserted text is never rescanned, so each iteration
// strictly consumes subject bytes and the loop terminates on any finite
// buffer: a non-empty match consumes at least one byte, and a zero-width
// match additionally steps over one rune (the pattern would otherwise
// match at its own start again, in the spliced buffer as in the
// original).
func (re *Regexp) Gsub(buf []byte, repl Replacement) ([]byte, error) {
	cur := buf
	pos := 0
	for pos <= len(cur) {
		out, spliceEnd, empty, found, err := re.subOnce(cur, pos, repl, 0)
		if err != nil {
			return nil, err
		}
		if !found {
			break
		}
		cur = out
		if !empty {
			pos = spliceEnd
			continue
		}
		// Zero-width match: skip the inserted text and the rune after
		// it.
		if spliceEnd >= len(cur) {
			break
		}
		_, w := utf8.DecodeRune(cur[spliceEnd:])
		pos = spliceEnd + w
	}
	return cur, nil
}

// GsubString is Gsub at the string boundary.
func (re *Regexp) GsubString(s string, repl Replacement) (string, error) {
	out, err := re.Gsub([]byte(s), repl)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
