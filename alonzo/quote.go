// Copyright 2026 The Alonzo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alonzo

// Quotation (readback): turning a value into the term of its normal
// form. To look under a closure's binder the quoter applies the
// closure to a fresh neutral variable and normalizes the body; the
// neutral value then reads back as a variable occurrence of the
// binder it stands for.
//
// Quotation evaluates, so it inherits the thread's step budget, and
// it diverges on values with no normal form (quoting the value of Y
// itself diverges; quoting a Church numeral does not).

// Quote reads a value back into a normal-form term, inventing fresh
// names (by appending ticks) for binders that would otherwise collide.
func Quote(thread *Thread, v Value) (Term, error) {
	return thread.quote(v, 0, nil)
}

// quote reads back v under depth enclosing binders whose chosen
// names are used (outermost first).
func (thread *Thread) quote(v Value, depth int, used []string) (Term, error) {
	switch v := v.(type) {
	case *Closure:
		fresh := freshen(v.Param, used)
		proxy := DoneThunk(&Neutral{Level: depth + 1})
		body, err := thread.eval(v.Body, v.Env.Extend(v.Param, proxy))
		if err != nil {
			return nil, err
		}
		qbody, err := thread.quote(body, depth+1, append(used, fresh))
		if err != nil {
			return nil, err
		}
		return &Abs{Param: fresh, Body: qbody}, nil

	case *Neutral:
		return thread.quoteNeutral(v, depth, used)
	}
	panic(v)
}

func (thread *Thread) quoteNeutral(n *Neutral, depth int, used []string) (Term, error) {
	if n.Fn == nil {
		// A variable introduced by the binder at n.Level.
		return &Var{Name: used[n.Level-1]}, nil
	}
	fn, err := thread.quoteNeutral(n.Fn, depth, used)
	if err != nil {
		return nil, err
	}
	arg, err := thread.quote(n.Arg, depth, used)
	if err != nil {
		return nil, err
	}
	return &App{Fn: fn, Arg: arg}, nil
}

func freshen(name string, used []string) string {
	candidate := name
	for taken(used, candidate) {
		candidate += "'"
	}
	return candidate
}

func taken(used []string, name string) bool {
	for _, u := range used {
		if u == name {
			return true
		}
	}
	return false
}
