// Copyright 2026 The Alonzo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alonzo

// An Environment maps in-scope names to thunks.
//
// Environments are persistent: Extend layers one binding over an
// existing environment without mutating it, so any number of closures
// may share a parent environment and never observe each other's
// extensions. The root layer of each chain belongs to a Module and
// consults its binding table.
type Environment struct {
	parent *Environment // nil at module root
	name   string
	thunk  *Thunk
	module *Module // set on the root layer only
}

// Extend returns a new environment with name bound to t,
// layered over env. env is not modified.
func (env *Environment) Extend(name string, t *Thunk) *Environment {
	return &Environment{parent: env, name: name, thunk: t}
}

// Lookup returns the thunk bound to name, walking outward through the
// parent chain; the innermost binding wins. The outermost layer is the
// module's top-level binding table.
func (env *Environment) Lookup(name string) (*Thunk, bool) {
	for e := env; e != nil; e = e.parent {
		if e.name == name {
			return e.thunk, true
		}
		if e.parent == nil && e.module != nil {
			if b := e.module.Binding(name); b != nil {
				return b.thunk, true
			}
		}
	}
	return nil, false
}

// visibleNames returns every name in scope, used for
// "did you mean" suggestions on unbound-name errors.
func (env *Environment) visibleNames() []string {
	var names []string
	for e := env; e != nil; e = e.parent {
		if e.name != "" {
			names = append(names, e.name)
		}
		if e.parent == nil && e.module != nil {
			names = append(names, e.module.BindingNames()...)
		}
	}
	return names
}
