// Copyright 2026 The Alonzo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prelude_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.alonzo.net/alonzo"
	"go.alonzo.net/alonzotest"
	"go.alonzo.net/lib/prelude"
)

// sources returns all prelude modules plus the given main module.
func sources(t *testing.T, main string) map[string]string {
	m := map[string]string{"main": main}
	for _, name := range prelude.Names() {
		src, ok := prelude.Source(name)
		require.True(t, ok, "prelude module %s has no source", name)
		m[name] = src
	}
	return m
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"booleans", "combinators", "nat", "pairs"}, prelude.Names())
	assert.True(t, prelude.Has("nat"))
	assert.False(t, prelude.Has("nat.lam"), "Has should accept only bare module names")
	assert.False(t, prelude.Has("lib/nat"))
}

func TestArithmetic(t *testing.T) {
	thread := &alonzo.Thread{Name: "test"}
	mod, err := alonzotest.LoadModules(thread, sources(t, `
import { Sum, Prod, Pow, Pred, Suc, Zero } from "nat";
Two = Suc (Suc Zero);
Three = Suc Two;
Five = Sum Two Three;
Six = Prod Two Three;
Eight = Pow Two Three;
Two' = Pred Three;
`), "main")
	require.NoError(t, err)

	church := func(n int) string {
		s := "z"
		for i := 0; i < n; i++ {
			if s == "z" {
				s = "s z"
			} else {
				s = "s (" + s + ")"
			}
		}
		return "s => z => " + s
	}
	alonzotest.AssertNormal(t, thread, mod, "Five", church(5))
	alonzotest.AssertNormal(t, thread, mod, "Six", church(6))
	alonzotest.AssertNormal(t, thread, mod, "Eight", church(8))
	alonzotest.AssertNormal(t, thread, mod, "Two'", church(2))
}

func TestFactorial(t *testing.T) {
	thread := &alonzo.Thread{Name: "test"}
	thread.SetMaxExecutionSteps(1 << 20)
	mod, err := alonzotest.LoadModules(thread, sources(t, `
import { Fact, Suc, Zero } from "nat";
Three = Suc (Suc (Suc Zero));
Fact3 = Fact Three;
`), "main")
	require.NoError(t, err)
	alonzotest.AssertNormal(t, thread, mod, "Fact3",
		"s => z => s (s (s (s (s (s z)))))")
}

func TestBooleans(t *testing.T) {
	thread := &alonzo.Thread{Name: "test"}
	mod, err := alonzotest.LoadModules(thread, sources(t, `
import { If, And, Or, Not, True, False } from "booleans";
A = If (And True (Not False)) True False;
B = Or False False;
`), "main")
	require.NoError(t, err)
	alonzotest.AssertNormal(t, thread, mod, "A", "t => f => t")
	alonzotest.AssertNormal(t, thread, mod, "B", "t => f => f")
}

// Loop may be imported, passed around, and discarded freely.
// Only forcing it diverges.
func TestLoopUnforced(t *testing.T) {
	thread := &alonzo.Thread{Name: "test"}
	thread.SetMaxExecutionSteps(10000)
	mod, err := alonzotest.LoadModules(thread, sources(t, `
import { K, Loop } from "combinators";
Safe = K (x => x) Loop;
`), "main")
	require.NoError(t, err)
	alonzotest.AssertNormal(t, thread, mod, "Safe", "x => x")
}
