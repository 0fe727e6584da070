// Copyright 2026 The Alonzo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alonzo

import (
	"errors"
	"fmt"
	"strings"

	"go.alonzo.net/syntax"
)

// An EvalError is an Alonzo evaluation error and the chain of forced
// bindings that led to it.
type EvalError struct {
	Msg   string
	Trace []TraceFrame // outermost demand first
	cause error
}

// A TraceFrame records one in-progress force at the moment an error
// occurred.
type TraceFrame struct {
	Name string // binding or operand being forced; "" for anonymous operands
	Pos  syntax.Position
}

func (e *EvalError) Error() string { return e.Msg }

// Unwrap returns the typed cause of the error
// (e.g. *UnboundNameError), if any.
func (e *EvalError) Unwrap() error { return e.cause }

// Backtrace returns a user-friendly error message describing the chain
// of thunks whose forcing was in progress when the error occurred.
func (e *EvalError) Backtrace() string {
	var buf strings.Builder
	buf.WriteString("Evaluation trace (innermost force last):\n")
	for _, fr := range e.Trace {
		name := fr.Name
		if name == "" {
			name = "<operand>"
		}
		fmt.Fprintf(&buf, "  %s: forcing %s\n", fr.Pos, name)
	}
	fmt.Fprintf(&buf, "Error: %s", e.Msg)
	return buf.String()
}

// An UnboundNameError reports a name that was demanded but is bound
// neither by an enclosing abstraction nor at module level.
type UnboundNameError struct {
	Name    string
	Suggest string // nearest visible name, or ""
}

func (e *UnboundNameError) Error() string {
	if e.Suggest != "" {
		return fmt.Sprintf("unbound name %s (did you mean %s?)", e.Name, e.Suggest)
	}
	return fmt.Sprintf("unbound name %s", e.Name)
}

// A NotAFunctionError reports the application of a value that is not
// an abstraction.
type NotAFunctionError struct {
	Value Value
}

func (e *NotAFunctionError) Error() string {
	return fmt.Sprintf("cannot apply non-function value (%s)", e.Value.Type())
}

// A CyclicValueError reports a binding whose value was demanded again
// while it was still being computed. Binding-level cycles (mutual
// recursion through abstractions) are legal; a value that needs itself
// before any abstraction intervenes is not reducible.
type CyclicValueError struct {
	Name string
}

func (e *CyclicValueError) Error() string {
	name := e.Name
	if name == "" {
		name = "<operand>"
	}
	return fmt.Sprintf("cyclic value: %s depends on its own value", name)
}

// A DuplicateBindingError reports an attempt to bind a module-level
// name that is already bound, by an import or a definition.
type DuplicateBindingError struct {
	Name   string
	Module string
}

func (e *DuplicateBindingError) Error() string {
	return fmt.Sprintf("duplicate binding of %s in module %s", e.Name, e.Module)
}

// A CyclicImportError reports a module that transitively imports
// itself. Chain lists the modules along the cycle, first and last
// being the same module.
type CyclicImportError struct {
	Chain []string
}

func (e *CyclicImportError) Error() string {
	return "cyclic import: " + strings.Join(e.Chain, " -> ")
}

// ErrTooManySteps is the cause of the EvalError returned when a
// thread's step budget is exhausted. Non-termination is legal Alonzo
// (forcing a diverging binding is supposed to diverge); the budget is
// an opt-in bound for harnesses and interactive use.
var ErrTooManySteps = errors.New("too many evaluation steps")
