// Copyright 2026 The Alonzo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resolve performs the static checks of an Alonzo syntax tree.
//
// Resolution is deliberately shallow: Alonzo bindings may refer to
// aliases defined later in the same file, or in modules that have not
// been loaded yet, so the existence of an alias is checked only when
// its thunk is forced during evaluation. What can be decided here is
// decided here:
//
//   - a module-level name (import or definition) may be bound only
//     once per file;
//   - a lowercase variable must be bound by an enclosing abstraction,
//     since nothing can ever bind it later;
//   - the parameters of one abstraction must be distinct.
//
// The resolver annotates every identifier with its Binding.
package resolve // import "go.alonzo.net/resolve"

import (
	"fmt"

	"go.alonzo.net/syntax"
)

// An Error describes the nature and position of a resolver error.
type Error struct {
	Pos syntax.Position
	Msg string
}

func (e Error) Error() string { return e.Pos.String() + ": " + e.Msg }

// An ErrorList is a non-empty list of resolver error messages.
type ErrorList []Error // len > 0

func (e ErrorList) Error() string { return e[0].Error() }

// File performs the static checks on a parsed file
// and annotates its identifiers.
// It returns an ErrorList if there were errors.
func File(file *syntax.File) error {
	r := new(resolver)

	// Module-level namespace: imports first, then definitions,
	// in source order.
	firstBound := make(map[string]syntax.Position)
	bind := func(id *syntax.Ident) {
		if first, ok := firstBound[id.Name]; ok {
			r.errorf(id.NamePos, "duplicate binding of %s; first bound at %s", id.Name, first)
			return
		}
		firstBound[id.Name] = id.NamePos
	}
	for _, imp := range file.Imports {
		for _, id := range imp.Names {
			bind(id)
			id.Binding = &syntax.Binding{Scope: syntax.GlobalScope}
		}
	}
	for _, def := range file.Defs {
		bind(def.Name)
		def.Name.Binding = &syntax.Binding{Scope: syntax.GlobalScope}
	}

	for _, def := range file.Defs {
		r.expr(def.Body)
	}

	if r.errs != nil {
		return r.errs
	}
	return nil
}

// Expr resolves a single term, such as one line of interactive input.
// No variables are in scope at its root.
func Expr(expr syntax.Expr) error {
	r := new(resolver)
	r.expr(expr)
	if r.errs != nil {
		return r.errs
	}
	return nil
}

type resolver struct {
	env  []*syntax.Ident // enclosing abstraction parameters, innermost last
	errs ErrorList
}

func (r *resolver) errorf(pos syntax.Position, format string, args ...interface{}) {
	r.errs = append(r.errs, Error{pos, fmt.Sprintf(format, args...)})
}

func (r *resolver) expr(e syntax.Expr) {
	switch e := e.(type) {
	case *syntax.Ident:
		r.use(e)

	case *syntax.LambdaExpr:
		for i, param := range e.Params {
			for _, prev := range e.Params[:i] {
				if prev.Name == param.Name {
					r.errorf(param.NamePos, "duplicate parameter %s", param.Name)
				}
			}
			param.Binding = &syntax.Binding{Scope: syntax.ParamScope, Binder: param}
		}
		r.env = append(r.env, e.Params...)
		r.expr(e.Body)
		r.env = r.env[:len(r.env)-len(e.Params)]

	case *syntax.CallExpr:
		r.expr(e.Fn)
		for _, arg := range e.Args {
			r.expr(arg)
		}

	case *syntax.ParenExpr:
		r.expr(e.X)

	default:
		panic(fmt.Sprintf("unexpected expr %T", e))
	}
}

func (r *resolver) use(id *syntax.Ident) {
	if id.IsAlias() {
		// Existence of an alias is deferred to evaluation.
		id.Binding = &syntax.Binding{Scope: syntax.GlobalScope}
		return
	}
	// Innermost binder wins (lexical shadowing).
	for i := len(r.env) - 1; i >= 0; i-- {
		if r.env[i].Name == id.Name {
			id.Binding = r.env[i].Binding
			return
		}
	}
	id.Binding = &syntax.Binding{Scope: syntax.UndefinedScope}
	r.errorf(id.NamePos, "unbound variable %s", id.Name)
}
