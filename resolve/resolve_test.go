// Copyright 2026 The Alonzo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resolve_test

import (
	"testing"

	"go.alonzo.net/internal/chunkedfile"
	"go.alonzo.net/resolve"
	"go.alonzo.net/syntax"
)

func TestResolveErrors(t *testing.T) {
	filename := "testdata/resolve.lam"
	for _, chunk := range chunkedfile.Read(filename, t) {
		f, err := syntax.ParseFile(filename, chunk.Source)
		if err != nil {
			t.Error(err)
			continue
		}
		if err := resolve.File(f); err != nil {
			for _, e := range err.(resolve.ErrorList) {
				chunk.GotError(int(e.Pos.Line), e.Msg)
			}
		}
		chunk.Done()
	}
}

func TestExpr(t *testing.T) {
	for _, test := range []struct {
		input string
		ok    bool
	}{
		{`x => x`, true},
		{`Suc Zero`, true}, // alias existence is deferred
		{`x`, false},
		{`(x, y) => z`, false},
	} {
		expr, err := syntax.ParseExpr("<test>", test.input)
		if err != nil {
			t.Fatal(err)
		}
		err = resolve.Expr(expr)
		if (err == nil) != test.ok {
			t.Errorf("Expr(`%s`) = %v, want ok=%v", test.input, err, test.ok)
		}
	}
}

// The innermost binder wins.
func TestShadowing(t *testing.T) {
	expr, err := syntax.ParseExpr("<test>", `x => x => x`)
	if err != nil {
		t.Fatal(err)
	}
	if err := resolve.Expr(expr); err != nil {
		t.Fatal(err)
	}
	outer := expr.(*syntax.LambdaExpr)
	inner := outer.Body.(*syntax.LambdaExpr)
	use := inner.Body.(*syntax.Ident)
	if use.Binding == nil || use.Binding.Binder != inner.Params[0] {
		t.Errorf("x resolved to %v, want the inner parameter", use.Binding)
	}
	if use.Binding.Scope != syntax.ParamScope {
		t.Errorf("x has scope %v, want ParamScope", use.Binding.Scope)
	}
}
