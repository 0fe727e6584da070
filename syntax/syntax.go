// Copyright 2026 The Alonzo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package syntax provides an Alonzo parser and abstract syntax tree.
//
// Alonzo is an untyped lambda calculus with named module-level
// bindings, cross-file imports, and nothing else: the only expression
// forms are identifiers, abstractions, and juxtaposed applications.
package syntax // import "go.alonzo.net/syntax"

// A Node is a node in an Alonzo syntax tree.
type Node interface {
	// Span returns the start and end position of the expression.
	Span() (start, end Position)
}

// Start returns the start position of the expression.
func Start(n Node) Position {
	start, _ := n.Span()
	return start
}

// End returns the end position of the expression.
func End(n Node) Position {
	_, end := n.Span()
	return end
}

// A File represents one Alonzo source file: a sequence of import
// declarations and definitions, each terminated by a semicolon.
type File struct {
	Path    string
	Imports []*Import
	Defs    []*Def
}

func (x *File) Span() (start, end Position) {
	switch {
	case len(x.Imports) > 0 && len(x.Defs) > 0:
		start, _ = x.Imports[0].Span()
		_, end = x.Defs[len(x.Defs)-1].Span()
	case len(x.Imports) > 0:
		start, _ = x.Imports[0].Span()
		_, end = x.Imports[len(x.Imports)-1].Span()
	case len(x.Defs) > 0:
		start, _ = x.Defs[0].Span()
		_, end = x.Defs[len(x.Defs)-1].Span()
	}
	return start, end
}

// An Import binds names exported by another module:
//
//	import { Cons, Fst, Snd } from "prelude/pairs";
type Import struct {
	ImportPos Position
	Names     []*Ident // imported aliases, bound under the same names
	Path      string   // decoded module path
	PathPos   Position
	PathEnd   Position
}

func (x *Import) Span() (start, end Position) { return x.ImportPos, x.PathEnd }

// A Def associates a module-level alias with a term:
//
//	Suc = n => (s, z) => s (n s z);
type Def struct {
	Name  *Ident
	EqPos Position
	Body  Expr
}

func (x *Def) Span() (start, end Position) {
	start, _ = x.Name.Span()
	_, end = x.Body.Span()
	return start, end
}

// An Expr is an Alonzo term.
type Expr interface {
	Node
	expr()
}

func (*Ident) expr()      {}
func (*LambdaExpr) expr() {}
func (*CallExpr) expr()   {}
func (*ParenExpr) expr()  {}

// An Ident represents an identifier: a lambda-bound variable
// (lowercase-first) or a module-level alias (uppercase-first).
type Ident struct {
	NamePos Position
	Name    string

	Binding *Binding // set by resolver
}

func (x *Ident) Span() (start, end Position) {
	return x.NamePos, x.NamePos.add(x.Name)
}

// IsAlias reports whether the identifier names a module-level binding.
func (x *Ident) IsAlias() bool { return IsAliasName(x.Name) }

// A LambdaExpr represents an abstraction: x => Body or (a, b) => Body.
//
// A multi-parameter abstraction is surface sugar for nested
// single-parameter abstractions; the desugaring is performed during
// compilation to core terms, not by the parser.
type LambdaExpr struct {
	Lparen Position // position of '(', invalid for the single-parameter form
	Params []*Ident
	Arrow  Position
	Body   Expr
}

func (x *LambdaExpr) Span() (start, end Position) {
	if x.Lparen.IsValid() {
		start = x.Lparen
	} else {
		start, _ = x.Params[0].Span()
	}
	_, end = x.Body.Span()
	return start, end
}

// A CallExpr represents a juxtaposed application: Fn Args[0] Args[1] ...
// Application is left-associative; the parser collects one whole
// juxtaposition sequence into a single CallExpr.
type CallExpr struct {
	Fn   Expr
	Args []Expr // len(Args) >= 1
}

func (x *CallExpr) Span() (start, end Position) {
	start, _ = x.Fn.Span()
	_, end = x.Args[len(x.Args)-1].Span()
	return start, end
}

// A ParenExpr represents a parenthesized subterm: (X).
type ParenExpr struct {
	Lparen Position
	X      Expr
	Rparen Position
}

func (x *ParenExpr) Span() (start, end Position) {
	return x.Lparen, x.Rparen.add(")")
}
