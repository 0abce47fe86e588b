// Package pcreheavy provides match scanning and substitution over byte
// buffers, driven by an external compiled-pattern executor.
//
// The package is a driver, not an engine: pattern compilation and the
// single-shot match primitive live behind the exec.Pattern contract
// (PCRE-style stride-3 offset vectors), and everything here is the logic
// around it — decoding capture vectors, enumerating all non-overlapping
// matches without looping on zero-width results, and splicing
// replacements into the gaps between matches.
//
// Basic usage:
//
//	re, err := pcreheavy.Compile(`\d+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Enumerate matches lazily
//	sc := re.Scanner([]byte("1 2 3"))
//	for sc.Scan() {
//	    fmt.Println(sc.Match().String())
//	}
//	if err := sc.Err(); err != nil {
//	    log.Fatal(err) // engine fault, never plain "no match"
//	}
//
//	// Global substitution
//	out, err := re.GsubString("Copyright (c) 2015", pcreheavy.LiteralString("!!!NUMBER!!!"))
//	// out = "Copyright (c) !!!NUMBER!!!"
//
// Replacement strategies form a closed set constructed by Literal,
// MatchFunc, GroupsFunc, MatchGroupsFunc, or Template; no other shape
// exists.
//
// Two executors are bundled. The default covers RE2-compatible syntax
// with the coregx engine; patterns needing lookaround or backreferences
// fall back to regexp2 automatically (or explicitly via Options.Engine).
// Callers with their own engine binding implement exec.Pattern and hand
// it to FromPattern.
//
// A Regexp is immutable after compilation and safe for concurrent use.
// Substitution never mutates its input; every step produces a fresh
// buffer.
package pcreheavy

import (
	"time"

	"github.com/nilninull/pcre-heavy/exec"
	"github.com/nilninull/pcre-heavy/prefilter"
)

// Engine selects which bundled executor compiles a pattern.
type Engine int

const (
	// EngineAuto tries the coregx executor first and falls back to
	// regexp2 when the pattern needs features coregx rejects.
	EngineAuto Engine = iota

	// EngineCoregex forces the coregx executor (RE2-compatible syntax,
	// linear-time matching).
	EngineCoregex

	// EngineRegexp2 forces the regexp2 executor (lookaround,
	// backreferences, match timeouts).
	EngineRegexp2
)

// Options configures compilation. The zero value is the default
// behavior.
type Options struct {
	// Engine selects the executor. Default: EngineAuto.
	Engine Engine

	// MatchTimeout bounds a single match attempt. Only the regexp2
	// executor honors it; an expired timeout surfaces as an engine
	// fault with code exec.CodeMatchLimit. Zero disables the deadline.
	MatchTimeout time.Duration

	// Literals are required-literal hints for scanning: every match of
	// the pattern must contain at least one of them. When set, searches
	// skip the exec primitive entirely once no literal occurs in the
	// remaining subject. Candidates are still verified by the executor,
	// so a wrong hint can only hide matches, never invent them.
	Literals []string
}

// DefaultOptions returns the default compilation options.
func DefaultOptions() Options {
	return Options{Engine: EngineAuto}
}

// Regexp is a compiled pattern handle plus the scanning and substitution
// driver around it. Safe for concurrent use.
type Regexp struct {
	pat    exec.Pattern
	pre    prefilter.Prefilter
	source string
}

// Compile compiles a pattern with default options.
func Compile(pattern string) (*Regexp, error) {
	return CompileWithOptions(pattern, DefaultOptions())
}

// MustCompile is like Compile but panics on error. It simplifies safe
// initialization of global variables holding compiled patterns.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic("pcreheavy: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithOptions compiles a pattern with explicit options.
func CompileWithOptions(pattern string, opts Options) (*Regexp, error) {
	var (
		pat exec.Pattern
		err error
	)
	switch opts.Engine {
	case EngineCoregex:
		pat, err = exec.CompileCoregex(pattern)
	case EngineRegexp2:
		pat, err = exec.CompileRegexp2(pattern, opts.MatchTimeout)
	default:
		pat, err = exec.CompileCoregex(pattern)
		if err != nil {
			pat, err = exec.CompileRegexp2(pattern, opts.MatchTimeout)
		}
	}
	if err != nil {
		return nil, err
	}

	pre, err := prefilter.NewStrings(opts.Literals)
	if err != nil {
		return nil, err
	}
	return &Regexp{pat: pat, pre: pre, source: pattern}, nil
}

// FromPattern wraps an already-compiled executor handle. The handle is
// borrowed read-only; the driver never mutates or releases it.
func FromPattern(p exec.Pattern) *Regexp {
	re := &Regexp{pat: p}
	if s, ok := p.(interface{ Source() string }); ok {
		re.source = s.Source()
	}
	return re
}

// String returns the source text the pattern was compiled from, or the
// empty string for a FromPattern handle that does not expose it.
func (re *Regexp) String() string {
	return re.source
}

// CaptureCount reports the number of capture groups the pattern
// declares.
func (re *Regexp) CaptureCount() int {
	return re.pat.CaptureCount()
}
