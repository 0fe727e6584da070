// Copyright 2026 The Alonzo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import (
	"fmt"
	"strings"
	"testing"
)

// scan renders the token stream of src, or the first scan error.
func scan(t *testing.T, src string) string {
	t.Helper()
	sc, err := newScanner("test.lam", src)
	if err != nil {
		t.Fatal(err)
	}
	tokens, err := sc.tokenize()
	if err != nil {
		return "error: " + err.Error()
	}
	var buf strings.Builder
	for _, tv := range tokens {
		if buf.Len() > 0 {
			buf.WriteByte(' ')
		}
		switch tv.tok {
		case EOF:
			buf.WriteString("EOF")
		case VAR, ALIAS:
			buf.WriteString(tv.raw)
		case STRING:
			fmt.Fprintf(&buf, "%q", tv.string)
		default:
			buf.WriteString(tv.raw)
		}
	}
	return buf.String()
}

func TestScanner(t *testing.T) {
	for _, test := range []struct {
		input, want string
	}{
		{``, "EOF"},
		{`x => x`, "x => x EOF"},
		{`Suc n`, "Suc n EOF"},
		{`(x, y) => x;`, "( x , y ) => x ; EOF"},
		{`import { Y } from "combinators";`, `import { Y } from "combinators" ; EOF`},
		{`Zero? n' fib* a+b`, "Zero? n' fib* a+b EOF"},
		{`A=b`, "A = b EOF"},
		{`A=>b`, "A => b EOF"}, // => wins over = even without spaces
		{"x # applied to\ny", "x y EOF"},
		{"# a file of nothing\n# but comments\n", "EOF"},
		{`"a\"b\\c"`, `"a\"b\\c" EOF`},
		{`x $ y`, `error: test.lam:1:3: unexpected input character '$'`},
		{`"abc`, `error: test.lam:1:1: unterminated string literal`},
		{"\"ab\ncd\"", `error: test.lam:1:1: unterminated string literal`},
	} {
		if got := scan(t, test.input); got != test.want {
			t.Errorf("scan(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestScannerPosition(t *testing.T) {
	sc, err := newScanner("test.lam", "I = x =>\n  x;\n")
	if err != nil {
		t.Fatal(err)
	}
	tokens, err := sc.tokenize()
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, tv := range tokens {
		got = append(got, tv.pos.String())
	}
	want := []string{
		"test.lam:1:1", // I
		"test.lam:1:3", // =
		"test.lam:1:5", // x
		"test.lam:1:7", // =>
		"test.lam:2:3", // x
		"test.lam:2:4", // ;
		"test.lam:3:1", // EOF
	}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d at %s, want %s", i, got[i], want[i])
		}
	}

	end := tokens[3].endPos() // after the arrow
	if got, want := end.String(), "test.lam:1:9"; got != want {
		t.Errorf("endPos of arrow = %s, want %s", got, want)
	}
}

func TestIsAliasName(t *testing.T) {
	for _, test := range []struct {
		name string
		want bool
	}{
		{"Suc", true},
		{"Zero?", true},
		{"x", false},
		{"n'", false},
		{"", false},
	} {
		if got := IsAliasName(test.name); got != test.want {
			t.Errorf("IsAliasName(%q) = %v, want %v", test.name, got, test.want)
		}
	}
}
