package pcreheavy

// replKind tags the active shape of a Replacement.
type replKind int

const (
	replLiteral replKind = iota
	replMatchFunc
	replGroupsFunc
	replMatchGroupsFunc
)

// Replacement is the closed set of replacement strategies for Sub and
// Gsub: constant text, a function of the full match, a function of the
// capture groups, or a function of both. Construct values with Literal,
// LiteralString, MatchFunc, GroupsFunc, MatchGroupsFunc, or Template —
// no other shape is representable, so there is no runtime dispatch
// failure to handle.
//
// The zero value is an empty literal.
type Replacement struct {
	kind     replKind
	literal  []byte
	matchFn  func(match []byte) []byte
	groupsFn func(groups [][]byte) []byte
	bothFn   func(match []byte, groups [][]byte) []byte
}

// Literal replaces every match with the same bytes.
func Literal(text []byte) Replacement {
	return Replacement{kind: replLiteral, literal: text}
}

// LiteralString is Literal at the string boundary.
func LiteralString(text string) Replacement {
	return Literal([]byte(text))
}

// MatchFunc computes the replacement from the full match text.
func MatchFunc(fn func(match []byte) []byte) Replacement {
	return Replacement{kind: replMatchFunc, matchFn: fn}
}

// GroupsFunc computes the replacement from the capture group texts, in
// declaration order, with nil entries for non-participating groups.
func GroupsFunc(fn func(groups [][]byte) []byte) Replacement {
	return Replacement{kind: replGroupsFunc, groupsFn: fn}
}

// MatchGroupsFunc computes the replacement from both the full match
// text and the capture group texts.
func MatchGroupsFunc(fn func(match []byte, groups [][]byte) []byte) Replacement {
	return Replacement{kind: replMatchGroupsFunc, bothFn: fn}
}

// resolve produces the literal replacement bytes for one match. The
// group slices are views into the subject; functions must not retain
// them past the call.
func (r Replacement) resolve(match []byte, groups [][]byte) []byte {
	switch r.kind {
	case replMatchFunc:
		if r.matchFn == nil {
			return nil
		}
		return r.matchFn(match)
	case replGroupsFunc:
		if r.groupsFn == nil {
			return nil
		}
		return r.groupsFn(groups)
	case replMatchGroupsFunc:
		if r.bothFn == nil {
			return nil
		}
		return r.bothFn(match, groups)
	default:
		return r.literal
	}
}

// needsGroups reports whether resolving will read the group texts,
// letting the substitutor skip extracting them for constant and
// match-only shapes.
func (r Replacement) needsGroups() bool {
	return r.kind == replGroupsFunc || r.kind == replMatchGroupsFunc
}
