// Copyright 2026 The Alonzo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package repl provides a read/eval/print loop for Alonzo.
//
// It supports readline-style command editing,
// and interrupts through Control-C.
//
// Each input line is either a definition, "Name = term;", which is
// added to the REPL's module, or a term, which is evaluated to weak
// head normal form, read back to a fully normalized term, and
// printed. Reading back a value with no normal form, such as the
// fixed-point combinator applied to itself, runs until the thread's
// step budget is exhausted or the user interrupts it.
package repl // import "go.alonzo.net/repl"

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/chzyer/readline"
	"go.alonzo.net/alonzo"
	"go.alonzo.net/syntax"
)

var interrupted = make(chan os.Signal, 1)

// REPL executes a read, eval, print loop.
//
// Definitions entered at the prompt accumulate in module.
// Before evaluating each input, REPL clears any cancellation
// left over from an earlier interrupt.
func REPL(thread *alonzo.Thread, module *alonzo.Module) {
	signal.Notify(interrupted, os.Interrupt)
	defer signal.Stop(interrupted)

	rl, err := readline.New(">>> ")
	if err != nil {
		PrintError(err)
		return
	}
	defer rl.Close()
	for {
		if err := rep(rl, thread, module); err != nil {
			if err == readline.ErrInterrupt {
				fmt.Println(err)
				continue
			}
			break
		}
	}
	fmt.Println()
}

// rep reads, evaluates, and prints one item.
//
// It returns an error (possibly readline.ErrInterrupt)
// only if the REPL should terminate.
func rep(rl *readline.Instance, thread *alonzo.Thread, module *alonzo.Module) error {
	// Each input is a fresh request: clear any cancellation left by
	// an earlier interrupt, and let the step budget apply anew.
	thread.Uncancel()
	thread.ResetExecutionSteps()

	line, err := rl.Readline()
	if err != nil {
		if err == io.EOF {
			return io.EOF
		}
		return err
	}

	input, err := syntax.ParseREPLInput("<stdin>", line)
	if err != nil {
		PrintError(err)
		return nil
	}

	switch input := input.(type) {
	case nil:
		// blank line (or comment only)
	case *syntax.Def:
		if err := module.Define(input); err != nil {
			PrintError(err)
		}
	case syntax.Expr:
		// Evaluation and readback may not terminate,
		// so allow the user to interrupt them.
		done := make(chan struct{})
		go func() {
			select {
			case <-interrupted:
				thread.Cancel("interrupt")
			case <-done:
			}
		}()
		v, err := alonzo.EvalExpr(thread, input, module)
		var nf alonzo.Term
		if err == nil {
			nf, err = alonzo.Quote(thread, v)
		}
		close(done)
		if err != nil {
			PrintError(err)
			return nil
		}
		fmt.Println(nf)
	}
	return nil
}

// PrintError prints the error to stderr,
// or its backtrace if it is an Alonzo evaluation error.
func PrintError(err error) {
	if evalErr, ok := err.(*alonzo.EvalError); ok {
		fmt.Fprintln(os.Stderr, evalErr.Backtrace())
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
}

// MakeLoad returns a simple sequential implementation of module loading
// suitable for use in the REPL and in tests.
// Each module is open'd, parsed, resolved, and linked only once,
// and the same module value is reused for every import of the same
// path, so memoized work done by one importer is visible to all others.
//
// open maps a module path as written in an import clause to the text
// of the module, typically by reading a file.
//
// The returned function reports a cycle of imports as an
// *alonzo.CyclicImportError naming the modules on the cycle.
func MakeLoad(open func(module string) (string, error)) func(thread *alonzo.Thread, module string) (*alonzo.Module, error) {
	type entry struct {
		mod *alonzo.Module
		err error
	}
	cache := make(map[string]*entry)
	var stack []string // modules whose loading is in progress

	return func(thread *alonzo.Thread, module string) (*alonzo.Module, error) {
		e, ok := cache[module]
		if e == nil {
			if ok {
				// request for module whose loading is in progress
				i := 0
				for stack[i] != module {
					i++
				}
				chain := append(append([]string(nil), stack[i:]...), module)
				return nil, &alonzo.CyclicImportError{Chain: chain}
			}

			// Add a placeholder to indicate "load in progress".
			cache[module] = nil
			stack = append(stack, module)

			var mod *alonzo.Module
			src, err := open(module)
			if err == nil {
				// Load it.
				thread := &alonzo.Thread{Name: "exec " + module, Load: thread.Load}
				mod, err = alonzo.ExecFile(thread, module, src)
			}

			stack = stack[:len(stack)-1]

			// Update the cache.
			e = &entry{mod, err}
			cache[module] = e
		}
		return e.mod, e.err
	}
}
