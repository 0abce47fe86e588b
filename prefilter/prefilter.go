// Package prefilter provides fast candidate filtering for match scanning
// using caller-supplied required literals.
//
// A prefilter answers one question: at or after a given offset, does any
// of the literals still occur? Every match of the associated pattern must
// contain at least one of them, so when the prefilter finds no occurrence
// the scanner can stop without invoking the exec primitive at all. The
// reported offset is where a literal occurs, not where a match starts; a
// match may begin before its required literal, so callers use the result
// as an existence gate rather than a search start position.
//
// Strategy selection follows the literal count:
//   - one literal  -> substring search (bytes.Index)
//   - several      -> Aho-Corasick automaton
//
// A prefilter match is only a candidate; the executor still verifies it.
package prefilter

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/coregx/ahocorasick"
)

// ErrEmptyLiteral rejects a zero-length literal, which would make every
// position a candidate and defeat the filter.
var ErrEmptyLiteral = errors.New("prefilter: empty literal")

// Prefilter finds candidate match positions.
type Prefilter interface {
	// Find returns the byte offset of the first literal occurrence at or
	// after start, or -1 if none exists. start may equal len(haystack).
	Find(haystack []byte, start int) int
}

// New builds a prefilter for the given literals. It returns (nil, nil)
// for an empty set, meaning no filtering is possible.
func New(literals [][]byte) (Prefilter, error) {
	for _, lit := range literals {
		if len(lit) == 0 {
			return nil, ErrEmptyLiteral
		}
	}
	switch len(literals) {
	case 0:
		return nil, nil
	case 1:
		needle := make([]byte, len(literals[0]))
		copy(needle, literals[0])
		return &substring{needle: needle}, nil
	default:
		builder := ahocorasick.NewBuilder()
		for _, lit := range literals {
			builder.AddPattern(lit)
		}
		auto, err := builder.Build()
		if err != nil {
			return nil, fmt.Errorf("prefilter: building automaton: %w", err)
		}
		return &automaton{auto: auto}, nil
	}
}

// NewStrings is New over string literals.
func NewStrings(literals []string) (Prefilter, error) {
	bs := make([][]byte, len(literals))
	for i, lit := range literals {
		bs[i] = []byte(lit)
	}
	return New(bs)
}

// substring scans for a single required literal.
type substring struct {
	needle []byte
}

func (p *substring) Find(haystack []byte, start int) int {
	if start < 0 || start > len(haystack) {
		return -1
	}
	i := bytes.Index(haystack[start:], p.needle)
	if i < 0 {
		return -1
	}
	return start + i
}

// automaton scans for any of several required literals in one pass.
type automaton struct {
	auto *ahocorasick.Automaton
}

func (p *automaton) Find(haystack []byte, start int) int {
	if start < 0 || start > len(haystack) {
		return -1
	}
	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}
