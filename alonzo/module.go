// Copyright 2026 The Alonzo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alonzo

import (
	"fmt"
	"sort"

	"go.alonzo.net/resolve"
	"go.alonzo.net/syntax"
)

// A Module is a fully linked set of top-level bindings: the module's
// own definitions plus the names it imports, spliced in as pointers to
// the exporting module's thunks so that memoization is shared across
// modules. Linking performs no evaluation; a binding's term runs only
// when some request (transitively) demands its value.
type Module struct {
	Name string

	names    []string // in binding order
	bindings map[string]*Binding
	root     *Environment
}

// A Binding is a top-level name paired with its (suspended) value.
type Binding struct {
	Name string
	Pos  syntax.Position
	Term Term // nil for imported bindings

	thunk *Thunk
}

// NewModule returns an empty module, as for a fresh REPL session.
func NewModule(name string) *Module {
	m := &Module{Name: name, bindings: make(map[string]*Binding)}
	m.root = &Environment{module: m}
	return m
}

// Binding returns the named binding, or nil if there is none.
func (m *Module) Binding(name string) *Binding { return m.bindings[name] }

// Has reports whether the module binds name.
func (m *Module) Has(name string) bool { return m.bindings[name] != nil }

// BindingNames returns the module's binding names, in binding order.
func (m *Module) BindingNames() []string {
	return append([]string(nil), m.names...)
}

func (m *Module) add(b *Binding) error {
	if prev := m.bindings[b.Name]; prev != nil {
		return &DuplicateBindingError{Name: b.Name, Module: m.Name}
	}
	m.bindings[b.Name] = b
	m.names = append(m.names, b.Name)
	return nil
}

// Define resolves def and adds it to the module, as for one line of
// interactive input. Rebinding an existing name is a
// *DuplicateBindingError. The new binding is not evaluated.
func (m *Module) Define(def *syntax.Def) error {
	if err := resolve.Expr(def.Body); err != nil {
		return err
	}
	term := Compile(def.Body)
	return m.add(&Binding{
		Name:  def.Name.Name,
		Pos:   def.Name.NamePos,
		Term:  term,
		thunk: &Thunk{term: term, env: m.root, name: def.Name.Name},
	})
}

// Force demands the value of the named top-level binding.
// Bindings not (transitively) demanded are never evaluated.
func (m *Module) Force(thread *Thread, name string) (Value, error) {
	b := m.Binding(name)
	if b == nil {
		err := &UnboundNameError{Name: name, Suggest: nearest(name, m.names)}
		return nil, thread.evalError(syntax.Position{}, err)
	}
	return thread.force(b.thunk, b.Pos)
}

// A CompiledImport is one import declaration of a compiled file.
type CompiledImport struct {
	Path  string
	Names []string
	Pos   syntax.Position
}

// A CompiledDef is one definition of a compiled file: a name and its
// desugared core term.
type CompiledDef struct {
	Name string
	Term Term
	Pos  syntax.Position
}

// CompileFile desugars a resolved file into its compiled form.
func CompileFile(f *syntax.File) ([]CompiledImport, []CompiledDef) {
	var imports []CompiledImport
	for _, imp := range f.Imports {
		ci := CompiledImport{Path: imp.Path, Pos: imp.PathPos}
		for _, id := range imp.Names {
			ci.Names = append(ci.Names, id.Name)
		}
		imports = append(imports, ci)
	}
	var defs []CompiledDef
	for _, def := range f.Defs {
		defs = append(defs, CompiledDef{
			Name: def.Name.Name,
			Term: Compile(def.Body),
			Pos:  def.Name.NamePos,
		})
	}
	return imports, defs
}

// LinkFile builds a module from a compiled file: it loads each import
// through thread.Load, splices the exporters' thunks into the local
// namespace, and suspends each definition over the module's root
// environment. No binding is evaluated.
func LinkFile(thread *Thread, name string, imports []CompiledImport, defs []CompiledDef) (*Module, error) {
	m := NewModule(name)

	for _, imp := range imports {
		if thread.Load == nil {
			return nil, fmt.Errorf("%s: load not implemented by this application", imp.Pos)
		}
		exporter, err := thread.Load(thread, imp.Path)
		if err != nil {
			return nil, err
		}
		for _, n := range imp.Names {
			b := exporter.Binding(n)
			if b == nil {
				return nil, fmt.Errorf("%s: module %q does not bind %s", imp.Pos, imp.Path, n)
			}
			if err := m.add(&Binding{Name: n, Pos: imp.Pos, thunk: b.thunk}); err != nil {
				return nil, err
			}
		}
	}

	for _, def := range defs {
		err := m.add(&Binding{
			Name:  def.Name,
			Pos:   def.Pos,
			Term:  def.Term,
			thunk: &Thunk{term: def.Term, env: m.root, name: def.Name},
		})
		if err != nil {
			return nil, err
		}
	}

	return m, nil
}

// ExecFile parses, resolves, and links an Alonzo file. The filename
// and src parameters are as for syntax.ParseFile. Evaluation of the
// module's bindings remains entirely deferred; use Module.Force.
func ExecFile(thread *Thread, filename string, src interface{}) (*Module, error) {
	f, err := syntax.ParseFile(filename, src)
	if err != nil {
		return nil, err
	}
	if err := resolve.File(f); err != nil {
		return nil, err
	}
	imports, defs := CompileFile(f)
	return LinkFile(thread, filename, imports, defs)
}

// String returns the module's bindings, sorted by name, for debugging.
func (m *Module) String() string {
	names := m.BindingNames()
	sort.Strings(names)
	s := "<module " + m.Name
	for _, n := range names {
		s += " " + n
	}
	return s + ">"
}
