// Copyright 2026 The Alonzo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alonzo

// This file defines the core term representation and the compilation
// (desugaring) of surface syntax into it. Core terms are immutable
// once built; the evaluator and the quotation pass share them freely.

import (
	"strings"

	"go.alonzo.net/syntax"
)

// A Term is a core lambda term: a variable, an abstraction, or an
// application. Multi-parameter abstractions and multi-argument
// applications exist only in the surface syntax; Compile curries them.
type Term interface {
	// String returns the term in source notation.
	String() string
	// Pos returns the term's position, if known.
	Pos() syntax.Position
	term()
}

func (*Var) term() {}
func (*Abs) term() {}
func (*App) term() {}

// A Var is an occurrence of a name: a lambda-bound variable or a
// module-level alias, distinguished by syntax.IsAliasName.
type Var struct {
	Name    string
	NamePos syntax.Position
}

func (v *Var) Pos() syntax.Position { return v.NamePos }

// An Abs is a single-parameter abstraction.
type Abs struct {
	Param  string
	Body   Term
	AbsPos syntax.Position
}

func (a *Abs) Pos() syntax.Position { return a.AbsPos }

// An App is the application of Fn to exactly one argument.
type App struct {
	Fn  Term
	Arg Term
}

func (a *App) Pos() syntax.Position { return a.Fn.Pos() }

// Compile translates a resolved surface expression into a core term,
// desugaring as it goes: (a, b) => body becomes a => b => body, and
// f x y becomes (f x) y.
func Compile(e syntax.Expr) Term {
	switch e := e.(type) {
	case *syntax.Ident:
		return &Var{Name: e.Name, NamePos: e.NamePos}

	case *syntax.ParenExpr:
		return Compile(e.X)

	case *syntax.LambdaExpr:
		t := Compile(e.Body)
		for i := len(e.Params) - 1; i >= 0; i-- {
			t = &Abs{Param: e.Params[i].Name, Body: t, AbsPos: syntax.Start(e)}
		}
		return t

	case *syntax.CallExpr:
		t := Compile(e.Fn)
		for _, arg := range e.Args {
			t = &App{Fn: t, Arg: Compile(arg)}
		}
		return t
	}
	panic(e)
}

func (v *Var) String() string { return v.Name }

func (a *Abs) String() string {
	var buf strings.Builder
	writeTerm(&buf, a, false)
	return buf.String()
}

func (a *App) String() string {
	var buf strings.Builder
	writeTerm(&buf, a, false)
	return buf.String()
}

// writeTerm prints t; operand controls parenthesization.
// Abstractions and applications in operand position are parenthesized
// so that the output re-parses to the same tree; an abstraction in
// operator position always needs parentheses.
func writeTerm(buf *strings.Builder, t Term, operand bool) {
	switch t := t.(type) {
	case *Var:
		buf.WriteString(t.Name)
	case *Abs:
		if operand {
			buf.WriteByte('(')
		}
		buf.WriteString(t.Param)
		buf.WriteString(" => ")
		writeTerm(buf, t.Body, false)
		if operand {
			buf.WriteByte(')')
		}
	case *App:
		if operand {
			buf.WriteByte('(')
		}
		if _, ok := t.Fn.(*Abs); ok {
			writeTerm(buf, t.Fn, true)
		} else {
			writeTerm(buf, t.Fn, false)
		}
		buf.WriteByte(' ')
		writeTerm(buf, t.Arg, true)
		if operand {
			buf.WriteByte(')')
		}
	}
}
