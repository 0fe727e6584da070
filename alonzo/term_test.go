// Copyright 2026 The Alonzo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alonzo_test

import (
	"testing"

	"go.alonzo.net/alonzo"
	"go.alonzo.net/syntax"
)

func compileString(t *testing.T, src string) alonzo.Term {
	t.Helper()
	expr, err := syntax.ParseExpr("test.lam", src)
	if err != nil {
		t.Fatal(err)
	}
	return alonzo.Compile(expr)
}

func TestCompileAndPrint(t *testing.T) {
	for _, test := range []struct {
		input, want string
	}{
		// desugaring
		{`(x, y) => x y`, `x => y => x y`},
		{`(f, g, x) => f (g x)`, `f => g => x => f (g x)`},
		{`(x)`, `x`},

		// parenthesization in printed output
		{`f a b`, `f a b`},
		{`f (a b)`, `f (a b)`},
		{`(x => x x) x => x x`, `(x => x x) (x => x x)`},
		{`f x => y`, `f (x => y)`},
		{`x => x x`, `x => x x`},
	} {
		got := compileString(t, test.input).String()
		if got != test.want {
			t.Errorf("Compile(`%s`).String() = `%s`, want `%s`", test.input, got, test.want)
		}

		// The printed form re-parses to a term that prints identically.
		if again := compileString(t, got).String(); again != got {
			t.Errorf("`%s` does not round-trip: reprints as `%s`", got, again)
		}
	}
}
