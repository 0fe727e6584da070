// Copyright 2026 The Alonzo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package alonzotest defines utilities for testing Alonzo modules.
//
// Tests build a module universe from in-memory sources, force a
// binding of interest, and compare its fully normalized form against
// an expected term. Mismatches are reported as a unified diff.
package alonzotest // import "go.alonzo.net/alonzotest"

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
	"go.alonzo.net/alonzo"
	"go.alonzo.net/repl"
)

// A Reporter is a value to which errors may be reported.
// It is satisfied by *testing.T.
type Reporter interface {
	Error(args ...interface{})
}

// LoadModules installs a loader over the given in-memory sources on
// thread and loads the entry module. Imports between the sources are
// resolved by the same loader, so a path imported by two modules is
// loaded once and its thunks are shared.
func LoadModules(thread *alonzo.Thread, sources map[string]string, entry string) (*alonzo.Module, error) {
	thread.Load = repl.MakeLoad(func(module string) (string, error) {
		src, ok := sources[module]
		if !ok {
			return "", fmt.Errorf("no such module %q", module)
		}
		return src, nil
	})
	return thread.Load(thread, entry)
}

// Normal forces the named binding of module and reads the resulting
// value back as a fully normalized term, printed in source notation.
func Normal(thread *alonzo.Thread, module *alonzo.Module, name string) (string, error) {
	v, err := module.Force(thread, name)
	if err != nil {
		return "", err
	}
	nf, err := alonzo.Quote(thread, v)
	if err != nil {
		return "", err
	}
	return nf.String(), nil
}

// AssertNormal reports an error to r unless the named binding of
// module normalizes to exactly want.
func AssertNormal(r Reporter, thread *alonzo.Thread, module *alonzo.Module, name, want string) {
	got, err := Normal(thread, module, name)
	if err != nil {
		r.Error(err)
		return
	}
	if got != want {
		diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(want + "\n"),
			B:        difflib.SplitLines(got + "\n"),
			FromFile: "want " + name,
			ToFile:   "got " + name,
			Context:  3,
		})
		r.Error(fmt.Sprintf("%s does not normalize to expected form\n%s", name, diff))
	}
}
