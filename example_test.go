package pcreheavy_test

import (
	"fmt"

	pcreheavy "github.com/nilninull/pcre-heavy"
)

func ExampleRegexp_FirstMatchString() {
	re := pcreheavy.MustCompile(`(\w+)@(\w+)`)
	m, err := re.FirstMatchString("send mail to bob@example today")
	if err != nil {
		panic(err)
	}
	fmt.Println(m.String())
	fmt.Println(m.GroupString(1), m.GroupString(2))
	// Output:
	// bob@example
	// bob example
}

func ExampleRegexp_ScanStrings() {
	re := pcreheavy.MustCompile(`\d+`)
	matches, err := re.ScanStrings("1 plus 22 is 23")
	if err != nil {
		panic(err)
	}
	for _, m := range matches {
		fmt.Println(m.Match)
	}
	// Output:
	// 1
	// 22
	// 23
}

func ExampleRegexp_GsubString() {
	re := pcreheavy.MustCompile(`\d+`)
	out, err := re.GsubString("Copyright (c) 2015 The 000 Group", pcreheavy.LiteralString("N"))
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output:
	// Copyright (c) N The N Group
}

func ExampleRegexp_SubString() {
	re := pcreheavy.MustCompile(`%(\d+)(\w+)`)
	repl := pcreheavy.GroupsFunc(func(groups [][]byte) []byte {
		return []byte(fmt.Sprintf("{%s of %s}", groups[0], groups[1]))
	})
	out, err := re.SubString("Hello, %20thing", repl)
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output:
	// Hello, {20 of thing}
}

func ExampleTemplate() {
	re := pcreheavy.MustCompile(`(\w+)@(\w+)`)
	out, err := re.GsubString("bob@example", pcreheavy.MustTemplate("$2/$1"))
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output:
	// example/bob
}

func ExampleRegexp_Scanner() {
	re := pcreheavy.MustCompile(`\w{2}`)
	sc := re.Scanner([]byte("a a ab abc ba"))
	for sc.Scan() {
		m := sc.Match()
		fmt.Println(m.Start(), m.End(), m.String())
	}
	if err := sc.Err(); err != nil {
		panic(err)
	}
	// Output:
	// 4 6 ab
	// 7 9 ab
	// 11 13 ba
}
