// Copyright 2026 The Alonzo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package alonzo provides the call-by-need evaluator for the Alonzo
// lambda calculus.
//
// Evaluation is normal-order with memoized sharing: an application
// forces only its operator; the operand is wrapped in a thunk and is
// evaluated at most once, if and when the operator's body demands it.
// This is what lets the classical strict fixed-point combinator
//
//	Y = f => (x => f (x x)) x => f (x x)
//
// hand f its self-application as an unforced thunk instead of
// diverging, and what keeps a diverging binding such as
//
//	Loop = (x => x x) x => x x
//
// inert until something demands it.
package alonzo // import "go.alonzo.net/alonzo"

import (
	"fmt"
	"sync/atomic"

	"go.alonzo.net/resolve"
	"go.alonzo.net/syntax"
)

// A Thread holds the state of one evaluation request: the chain of
// thunks being forced (for error traces), the step counter, and the
// client-supplied module loader.
//
// Evaluation is single-threaded and deterministic; a Thread must not
// be used from multiple goroutines at once. The one exception is
// Cancel, which may be called asynchronously.
type Thread struct {
	// Name is an optional name that distinguishes the thread, for debugging.
	Name string

	// Load is the client-supplied implementation of module loading.
	// Repeated calls with the same module path must return the same
	// module or error, and a load that re-enters itself must fail
	// with a *CyclicImportError. See repl.MakeLoad.
	Load func(thread *Thread, module string) (*Module, error)

	steps, maxSteps uint64
	cancelReason    atomic.Value // string
	stack           []TraceFrame
}

// ExecutionSteps returns the number of evaluator steps the thread has
// taken so far. A step is one state transition of the term machine, so
// the counter also measures work: forcing an already-forced thunk
// takes no steps.
func (thread *Thread) ExecutionSteps() uint64 { return thread.steps }

// SetMaxExecutionSteps sets a budget on evaluator steps, after which
// evaluation fails with an error whose cause is ErrTooManySteps.
// Zero means no budget. The budget does not make non-termination an
// error; it bounds how long the caller is willing to wait for it.
func (thread *Thread) SetMaxExecutionSteps(max uint64) { thread.maxSteps = max }

// Cancel causes the current and any future evaluation on this thread
// to fail promptly with the given reason. It is safe to call from
// another goroutine, for example from a signal handler.
func (thread *Thread) Cancel(reason string) { thread.cancelReason.Store(reason) }

// Uncancel clears a previous cancellation, as between one interactive
// input and the next.
func (thread *Thread) Uncancel() { thread.cancelReason.Store("") }

// ResetExecutionSteps clears the step counter so that a configured
// budget applies afresh to the next evaluation request. An exhausted
// budget aborts only the request that exhausted it; after a reset,
// other bindings remain evaluable on the same thread, and memoized
// results are kept.
func (thread *Thread) ResetExecutionSteps() { thread.steps = 0 }

func (thread *Thread) countStep(pos syntax.Position) error {
	thread.steps++
	if thread.maxSteps != 0 && thread.steps > thread.maxSteps {
		return thread.evalError(pos, ErrTooManySteps)
	}
	if reason := thread.cancelReason.Load(); reason != nil && reason.(string) != "" {
		return thread.evalError(pos, fmt.Errorf("evaluation cancelled: %s", reason))
	}
	return nil
}

// evalError wraps cause in an *EvalError carrying the position and a
// snapshot of the forcing chain. An error that is already an
// *EvalError propagates unchanged.
func (thread *Thread) evalError(pos syntax.Position, cause error) error {
	if e, ok := cause.(*EvalError); ok {
		return e
	}
	msg := cause.Error()
	if pos.IsValid() {
		msg = pos.String() + ": " + msg
	}
	trace := make([]TraceFrame, len(thread.stack))
	copy(trace, thread.stack)
	return &EvalError{Msg: msg, Trace: trace, cause: cause}
}

// force demands the value of a thunk, memoizing the result.
// pos is the position of the demanding occurrence.
func (thread *Thread) force(t *Thunk, pos syntax.Position) (Value, error) {
	switch t.state {
	case forced:
		return t.value, nil
	case busy:
		return nil, thread.evalError(pos, &CyclicValueError{Name: t.name})
	}

	t.state = busy
	thread.stack = append(thread.stack, TraceFrame{t.name, pos})
	v, err := thread.eval(t.term, t.env)
	thread.stack = thread.stack[:len(thread.stack)-1]
	if err != nil {
		t.state = unforced
		return nil, err
	}
	if c, ok := v.(*Closure); ok && c.name == "" {
		c.name = t.name
	}
	t.fulfill(v)
	return v, nil
}

// eval reduces a term to a value.
//
// The loop is a small state machine: abstractions are values;
// variables force the thunk they are bound to; applications force the
// operator, delay the operand, and then *become* the operator's body.
// That last step is iterative, not recursive, so a chain of
// applications (however deep the Church numeral) runs in constant Go
// stack.
func (thread *Thread) eval(t Term, env *Environment) (Value, error) {
	for {
		if err := thread.countStep(t.Pos()); err != nil {
			return nil, err
		}

		switch u := t.(type) {
		case *Abs:
			return &Closure{Param: u.Param, Body: u.Body, Env: env}, nil

		case *Var:
			th, ok := env.Lookup(u.Name)
			if !ok {
				return nil, thread.unbound(u, env)
			}
			return thread.force(th, u.NamePos)

		case *App:
			fn, err := thread.eval(u.Fn, env)
			if err != nil {
				return nil, err
			}
			arg := thread.delay(u.Arg, env)
			switch fn := fn.(type) {
			case *Closure:
				// Tail-evaluate the body in the extended environment.
				env = fn.Env.Extend(fn.Param, arg)
				t = fn.Body
			case *Neutral:
				// Only reachable while normalizing under a binder.
				argv, err := thread.force(arg, u.Arg.Pos())
				if err != nil {
					return nil, err
				}
				return &Neutral{Fn: fn, Arg: argv}, nil
			default:
				return nil, thread.evalError(u.Pos(), &NotAFunctionError{Value: fn})
			}

		default:
			panic(fmt.Sprintf("unexpected term %T", t))
		}
	}
}

// delay suspends an operand. A variable operand passes its existing
// thunk through unchanged, so every demand shares one memo cell; an
// abstraction operand is already a value and is closed eagerly; only
// an application operand needs a fresh thunk.
func (thread *Thread) delay(t Term, env *Environment) *Thunk {
	switch u := t.(type) {
	case *Var:
		if th, ok := env.Lookup(u.Name); ok {
			return th
		}
		// Unbound: defer the error until the operand is demanded.
	case *Abs:
		return DoneThunk(&Closure{Param: u.Param, Body: u.Body, Env: env})
	}
	return NewThunk(t, env)
}

func (thread *Thread) unbound(u *Var, env *Environment) error {
	err := &UnboundNameError{Name: u.Name}
	if n := nearest(u.Name, env.visibleNames()); n != "" {
		err.Suggest = n
	}
	return thread.evalError(u.NamePos, err)
}

// EvalExpr resolves and evaluates a term in the scope of a module,
// as for one line of interactive input. The term may use the module's
// bindings but introduces none.
func EvalExpr(thread *Thread, expr syntax.Expr, module *Module) (Value, error) {
	if err := resolve.Expr(expr); err != nil {
		return nil, err
	}
	return thread.eval(Compile(expr), module.root)
}
