// Copyright 2026 The Alonzo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repl_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"go.alonzo.net/alonzo"
	"go.alonzo.net/repl"
)

func mapLoad(sources map[string]string) func(*alonzo.Thread, string) (*alonzo.Module, error) {
	return repl.MakeLoad(func(module string) (string, error) {
		src, ok := sources[module]
		if !ok {
			return "", fmt.Errorf("no such module %q", module)
		}
		return src, nil
	})
}

func TestMakeLoadCycle(t *testing.T) {
	thread := &alonzo.Thread{Name: "test"}
	thread.Load = mapLoad(map[string]string{
		"a": `import { X } from "b"; A = X;`,
		"b": `import { C } from "c"; X = C;`,
		"c": `import { A } from "a"; C = A;`,
	})

	_, err := thread.Load(thread, "a")
	var cycle *alonzo.CyclicImportError
	if !errors.As(err, &cycle) {
		t.Fatalf("Load returned %v, want CyclicImportError", err)
	}
	if got, want := cycle.Error(), "cyclic import: a -> b -> c -> a"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

// A module that imports itself is the smallest cycle.
func TestMakeLoadSelfImport(t *testing.T) {
	thread := &alonzo.Thread{Name: "test"}
	thread.Load = mapLoad(map[string]string{
		"selfish": `import { X } from "selfish"; X = x => x;`,
	})
	_, err := thread.Load(thread, "selfish")
	var cycle *alonzo.CyclicImportError
	if !errors.As(err, &cycle) {
		t.Fatalf("Load returned %v, want CyclicImportError", err)
	}
	if got, want := cycle.Error(), "cyclic import: selfish -> selfish"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

// Loading the same path twice must return the same module, so that
// every importer shares its memoized thunks.
func TestMakeLoadCache(t *testing.T) {
	opens := 0
	thread := &alonzo.Thread{Name: "test"}
	thread.Load = repl.MakeLoad(func(module string) (string, error) {
		opens++
		return `I = x => x;`, nil
	})

	m1, err := thread.Load(thread, "util")
	if err != nil {
		t.Fatal(err)
	}
	m2, err := thread.Load(thread, "util")
	if err != nil {
		t.Fatal(err)
	}
	if m1 != m2 {
		t.Error("loading the same module twice built two modules")
	}
	if opens != 1 {
		t.Errorf("module was opened %d times, want 1", opens)
	}
}

// Diamond imports are not cycles.
func TestMakeLoadDiamond(t *testing.T) {
	thread := &alonzo.Thread{Name: "test"}
	thread.Load = mapLoad(map[string]string{
		"top":   `import { L } from "left"; import { R } from "right"; Main = L R;`,
		"left":  `import { I } from "base"; L = I;`,
		"right": `import { I } from "base"; R = I I;`,
		"base":  `I = x => x;`,
	})
	mod, err := thread.Load(thread, "top")
	if err != nil {
		t.Fatal(err)
	}
	v, err := mod.Force(thread, "Main")
	if err != nil {
		t.Fatal(err)
	}
	nf, err := alonzo.Quote(thread, v)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := nf.String(), "x => x"; got != want {
		t.Errorf("Main normalized to %s, want %s", got, want)
	}
}

func TestMakeLoadOpenError(t *testing.T) {
	thread := &alonzo.Thread{Name: "test"}
	thread.Load = mapLoad(map[string]string{
		"main": `import { X } from "nowhere"; Main = X;`,
	})
	_, err := thread.Load(thread, "main")
	if err == nil || !strings.Contains(err.Error(), `no such module "nowhere"`) {
		t.Errorf("Load returned %v, want missing-module error", err)
	}
}
