package pcreheavy

import (
	"errors"
	"reflect"
	"testing"

	"github.com/nilninull/pcre-heavy/exec"
)

func TestScanEntries(t *testing.T) {
	re := MustCompile(`\s*entry (\d+) (\w+)\s*&?`)
	got, err := re.ScanStrings(" entry 1 hello  &entry 2 hi")
	if err != nil {
		t.Fatal(err)
	}
	want := []ScannedString{
		{Match: " entry 1 hello  &", Groups: []string{"1", "hello"}},
		{Match: "entry 2 hi", Groups: []string{"2", "hi"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ScanStrings:\n  got  %v\n  want %v", got, want)
	}
}

func TestScanZeroGroupPatterns(t *testing.T) {
	// A pattern without capture groups always yields empty group lists.
	re := MustCompile(`\w{2}`)
	matches, err := re.ScanAll([]byte("a a ab abc ba"))
	if err != nil {
		t.Fatal(err)
	}
	var spans [][2]int
	for _, m := range matches {
		if m.NumGroups() != 0 {
			t.Errorf("match %q has %d groups, want 0", m, m.NumGroups())
		}
		spans = append(spans, [2]int{m.Start(), m.End()})
	}
	want := [][2]int{{4, 6}, {7, 9}, {11, 13}}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("spans = %v, want %v", spans, want)
	}
}

func TestScanEmptyMatches(t *testing.T) {
	// The max-of-ends advance rule alone never terminates here; the
	// one-rune guard must.
	re := MustCompile(`a*`)
	matches, err := re.ScanAll([]byte("aaa bb cc"))
	if err != nil {
		t.Fatal(err)
	}
	var spans [][2]int
	for _, m := range matches {
		spans = append(spans, [2]int{m.Start(), m.End()})
	}
	want := [][2]int{{0, 3}, {3, 3}, {4, 4}, {5, 5}, {6, 6}, {7, 7}, {8, 8}, {9, 9}}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("spans = %v, want %v", spans, want)
	}
}

func TestScanEmptyMatchAdvancesByRune(t *testing.T) {
	// The forward-progress step must not split a multi-byte rune.
	re := MustCompile(`x*`)
	matches, err := re.ScanAll([]byte("héy"))
	if err != nil {
		t.Fatal(err)
	}
	var spans [][2]int
	for _, m := range matches {
		spans = append(spans, [2]int{m.Start(), m.End()})
	}
	want := [][2]int{{0, 0}, {1, 1}, {3, 3}, {4, 4}}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("spans = %v, want %v", spans, want)
	}
}

func TestScanEmptyBuffer(t *testing.T) {
	re := MustCompile(`a*`)
	matches, err := re.ScanAll(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 || !matches[0].IsEmpty() || matches[0].Start() != 0 {
		t.Errorf("matches = %v, want one empty match at 0", matches)
	}
}

func TestScanIsLazy(t *testing.T) {
	fake := &fakePattern{
		fn: func(subject []byte, start int, flags exec.Flags, ovec []int32) int {
			if start+2 > len(subject) {
				return exec.NoMatch
			}
			ovec[0], ovec[1] = int32(start), int32(start+2)
			return 1
		},
	}
	sc := FromPattern(fake).Scanner([]byte("abcdef"))
	if !sc.Scan() {
		t.Fatal("Scan = false, want a match")
	}
	if fake.execs != 1 {
		t.Errorf("first element cost %d exec calls, want 1", fake.execs)
	}
	for sc.Scan() {
	}
	if err := sc.Err(); err != nil {
		t.Fatal(err)
	}
	// 3 matches plus the final no-match probe.
	if fake.execs != 4 {
		t.Errorf("full scan cost %d exec calls, want 4", fake.execs)
	}
}

func TestScanAdvancesPastGroupEnd(t *testing.T) {
	// A capture pair may end past the reported full-match end; resuming
	// before it would re-report overlap, so the scanner advances to the
	// maximum end across all pairs.
	fake := &fakePattern{
		captures: 1,
		fn: func(subject []byte, start int, flags exec.Flags, ovec []int32) int {
			if start > 0 {
				return exec.NoMatch
			}
			ovec[0], ovec[1] = 0, 2 // full match
			ovec[2], ovec[3] = 1, 4 // group extending past it
			return 2
		},
	}
	sc := FromPattern(fake).Scanner([]byte("abcdef"))
	if !sc.Scan() {
		t.Fatal("no match")
	}
	if sc.Scan() {
		t.Error("second Scan = true, want resume at offset 4 and no second match")
	}
	if err := sc.Err(); err != nil {
		t.Fatal(err)
	}
}

func TestScanAbsentPairsIgnoredByAdvance(t *testing.T) {
	// Absent (-1,-1) pairs must not drag the resume offset to -1.
	re := MustCompile(`(x)?y`)
	matches, err := re.ScanAll([]byte("yy"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
}

func TestScanStopsOnFault(t *testing.T) {
	fault := &fakePattern{
		fn: func(subject []byte, start int, flags exec.Flags, ovec []int32) int {
			if start == 0 {
				ovec[0], ovec[1] = 0, 1
				return 1
			}
			return exec.CodeBadUTF8
		},
	}
	sc := FromPattern(fault).Scanner([]byte("abc"))
	if !sc.Scan() {
		t.Fatal("first Scan = false, want one match before the fault")
	}
	if sc.Scan() {
		t.Fatal("Scan = true after engine fault")
	}
	if !errors.Is(sc.Err(), exec.ErrFault) {
		t.Errorf("Err = %v, want engine fault (fault must not read as end-of-sequence)", sc.Err())
	}
	// ScanAll reports the fault, not partial results.
	if _, err := FromPattern(fault).ScanAll([]byte("abc")); !errors.Is(err, exec.ErrFault) {
		t.Errorf("ScanAll err = %v, want engine fault", err)
	}
}

func TestScannerNotRestartable(t *testing.T) {
	re := MustCompile(`a`)
	sc := re.Scanner([]byte("a"))
	for sc.Scan() {
	}
	if sc.Scan() {
		t.Error("Scan = true after exhaustion")
	}
	if sc.Match() != nil {
		t.Error("Match != nil after exhaustion")
	}
}

func TestScanDeterministic(t *testing.T) {
	re := MustCompile(`\d+`)
	buf := []byte("1 22 333")
	first, err := re.ScanAll(buf)
	if err != nil {
		t.Fatal(err)
	}
	second, err := re.ScanAll(buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != len(second) {
		t.Fatalf("reruns disagree: %d vs %d matches", len(first), len(second))
	}
	for i := range first {
		if first[i].Span() != second[i].Span() {
			t.Errorf("match %d: %v vs %v", i, first[i].Span(), second[i].Span())
		}
	}
}

func TestScanWithPrefilter(t *testing.T) {
	re, err := CompileWithOptions(`\s*entry (\d+) (\w+)\s*&?`, Options{Literals: []string{"entry"}})
	if err != nil {
		t.Fatal(err)
	}
	got, err := re.ScanStrings(" entry 1 hello  &entry 2 hi")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d matches, want 2", len(got))
	}

	// No literal occurrence means no exec call and no match.
	ok, err := re.MatchesString("nothing relevant here")
	if err != nil || ok {
		t.Errorf("Matches = %v, %v, want false, nil", ok, err)
	}
}
