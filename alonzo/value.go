// Copyright 2026 The Alonzo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alonzo

import "fmt"

// A Value is the result of forcing a thunk.
//
// The only first-class values of the language are closures; Church
// numerals and booleans are closures like everything else. Neutral
// values exist solely so that Quote can normalize under binders.
type Value interface {
	String() string
	Type() string
}

var (
	_ Value = (*Closure)(nil)
	_ Value = (*Neutral)(nil)
)

// A Closure pairs an abstraction with the environment that was active
// when the abstraction was evaluated. It owns a shared reference to
// that environment, which stays alive as long as the closure does.
type Closure struct {
	Param string
	Body  Term
	Env   *Environment

	name string // top-level binding this value was forced from, if any; informational
}

// Name returns the name of the top-level binding whose forcing
// produced this closure, or "lambda" if it was anonymous.
func (c *Closure) Name() string {
	if c.name != "" {
		return c.name
	}
	return "lambda"
}

func (c *Closure) Type() string { return "closure" }

// String prints the closure's code without evaluating anything.
// Use Quote for the normal form.
func (c *Closure) String() string {
	return fmt.Sprintf("<closure %s => %s>", c.Param, c.Body)
}

// A Neutral is a value blocked on a quotation variable: either the
// variable itself (Fn == nil) or an application whose operator is
// neutral. Neutrals never escape Quote.
type Neutral struct {
	Level int      // binder depth at which the variable was introduced
	Fn    *Neutral // operator, or nil if this is a bare variable
	Arg   Value    // operand, if Fn != nil
}

func (n *Neutral) Type() string { return "neutral" }

func (n *Neutral) String() string {
	if n.Fn == nil {
		return fmt.Sprintf("<neutral #%d>", n.Level)
	}
	return fmt.Sprintf("<neutral %s %s>", n.Fn, n.Arg)
}
