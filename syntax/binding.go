// Copyright 2026 The Alonzo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// This file defines resolver data types referenced by the syntax tree.
// We cannot guarantee API stability for these types
// as they are closely tied to the implementation.

// A Binding ties together all identifiers that denote the same variable.
// The resolver computes a binding for every Ident.
type Binding struct {
	Scope Scope

	// Binder is the parameter identifier that introduced the variable,
	// if Scope==ParamScope.
	Binder *Ident
}

// The Scope of Binding indicates what kind of scope it has.
type Scope uint8

const (
	UndefinedScope Scope = iota // name is not defined
	ParamScope                  // name is bound by an enclosing abstraction
	GlobalScope                 // name refers to a module-level binding (possibly not yet defined)
)

var scopeNames = [...]string{
	UndefinedScope: "undefined",
	ParamScope:     "parameter",
	GlobalScope:    "global",
}

func (scope Scope) String() string { return scopeNames[scope] }
