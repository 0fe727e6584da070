// Copyright 2026 The Alonzo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alonzo

// A Thunk is a suspended computation: a term paired with the
// environment to evaluate it in, plus a write-once memo cell.
//
// Forcing is idempotent: the first force evaluates the term and
// records the value; later forces return the recorded value without
// re-evaluating. A thunk whose forcing is re-entered before it
// completes has a value that depends on itself with no intervening
// abstraction, which is not reducible; the evaluator reports it as a
// CyclicValueError.
type Thunk struct {
	term Term
	env  *Environment
	name string // top-level binding name, or "" for an application operand

	state thunkState
	value Value
}

type thunkState uint8

const (
	unforced thunkState = iota
	busy                // forcing in progress
	forced
)

// NewThunk returns an unforced thunk for term in env.
func NewThunk(term Term, env *Environment) *Thunk {
	return &Thunk{term: term, env: env}
}

// DoneThunk returns a thunk that is already forced to v.
func DoneThunk(v Value) *Thunk {
	return &Thunk{state: forced, value: v}
}

// fulfill memoizes v and drops the term and environment so that
// everything reachable only through them can be reclaimed.
func (t *Thunk) fulfill(v Value) {
	t.state = forced
	t.value = v
	t.term = nil
	t.env = nil
}
