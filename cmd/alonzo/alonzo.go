// Copyright 2026 The Alonzo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The alonzo command interprets an Alonzo module.
// With no arguments and an interactive terminal on standard input,
// it starts a read-eval-print loop (REPL); if standard input is a
// pipe, it interprets the piped program.
package main // import "go.alonzo.net/cmd/alonzo"

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"go.alonzo.net/alonzo"
	"go.alonzo.net/internal/termcode"
	"go.alonzo.net/lib/prelude"
	"go.alonzo.net/repl"
	"go.alonzo.net/resolve"
	"go.alonzo.net/syntax"
)

// flags
var (
	cpuprofile = flag.String("cpuprofile", "", "gather Go CPU profile in this file")
	memprofile = flag.String("memprofile", "", "gather Go memory profile in this file")
	execprog   = flag.String("c", "", "execute program `prog`")
	entry      = flag.String("e", "Main", "evaluate and print this `binding` of the entry module")
	maxSteps   = flag.Uint64("steps", 0, "abort evaluation after this many steps (0 for no limit)")
	showenv    = flag.Bool("showenv", false, "on success, print the entry module's definitions")
	writeCache = flag.Bool("compile", false, "cache each compiled module in a .lamc file beside its source")
)

func main() {
	os.Exit(doMain())
}

func doMain() int {
	log.SetPrefix("alonzo: ")
	log.SetFlags(0)
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		check(err)
		err = pprof.StartCPUProfile(f)
		check(err)
		defer func() {
			pprof.StopCPUProfile()
			err := f.Close()
			check(err)
		}()
	}
	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		check(err)
		defer func() {
			runtime.GC()
			err := pprof.Lookup("heap").WriteTo(f, 0)
			check(err)
			err = f.Close()
			check(err)
		}()
	}

	var (
		filename string
		src      interface{}
	)
	interactive := false
	switch {
	case flag.NArg() > 1:
		log.Print("want at most one Alonzo file name")
		return 1
	case *execprog != "":
		// Execute provided program.
		filename = "cmdline"
		src = *execprog
	case flag.NArg() == 1:
		// Execute specified file.
		filename = flag.Arg(0)
	case term.IsTerminal(int(os.Stdin.Fd())):
		interactive = true
	default:
		// Execute program piped on stdin.
		data, err := ioutil.ReadAll(os.Stdin)
		check(err)
		filename = "stdin"
		src = data
	}

	// The manifest, if any, lives beside the entry file.
	dir := "."
	if flag.NArg() == 1 {
		dir = filepath.Dir(filename)
	}
	conf, err := loadManifest(dir)
	if err != nil {
		log.Print(err)
		return 1
	}
	if *maxSteps == 0 {
		*maxSteps = conf.Steps
	}

	ld := &loader{
		dirs:       append([]string{dir}, conf.searchDirs(dir)...),
		usePrelude: conf.Prelude == nil || *conf.Prelude,
		writeCache: *writeCache,
	}

	thread := &alonzo.Thread{Load: ld.makeLoad()}
	thread.SetMaxExecutionSteps(*maxSteps)

	if interactive {
		fmt.Println("Welcome to Alonzo (go.alonzo.net)")
		thread.Name = "REPL"
		repl.REPL(thread, alonzo.NewModule("repl"))
		return 0
	}

	thread.Name = "exec " + filename
	mod, err := alonzo.ExecFile(thread, filename, src)
	if err != nil {
		repl.PrintError(err)
		return 1
	}

	if mod.Has(*entry) {
		v, err := mod.Force(thread, *entry)
		if err != nil {
			repl.PrintError(err)
			return 1
		}
		nf, err := alonzo.Quote(thread, v)
		if err != nil {
			repl.PrintError(err)
			return 1
		}
		fmt.Println(nf)
	} else if !*showenv {
		log.Printf("%s does not bind %s", filename, *entry)
		return 1
	}

	// Print the module's own definitions (not its imports).
	if *showenv {
		for _, name := range mod.BindingNames() {
			if b := mod.Binding(name); b.Term != nil {
				fmt.Fprintf(os.Stderr, "%s = %s\n", name, b.Term)
			}
		}
	}

	return 0
}

// A manifest is an optional alonzo.yaml file that configures module
// resolution for the directory it lives in.
type manifest struct {
	Modules []string `yaml:"modules"` // import search path, relative to the manifest
	Prelude *bool    `yaml:"prelude"` // make the embedded prelude importable (default true)
	Steps   uint64   `yaml:"steps"`   // default step budget (0 for no limit)
}

func loadManifest(dir string) (manifest, error) {
	var m manifest
	name := filepath.Join(dir, "alonzo.yaml")
	data, err := ioutil.ReadFile(name)
	if err != nil {
		if os.IsNotExist(err) {
			return m, nil
		}
		return m, err
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("%s: %v", name, err)
	}
	return m, nil
}

func (m *manifest) searchDirs(base string) []string {
	var dirs []string
	for _, d := range m.Modules {
		if !filepath.IsAbs(d) {
			d = filepath.Join(base, d)
		}
		dirs = append(dirs, d)
	}
	return dirs
}

// A loader resolves import paths against the search directories and
// the embedded prelude.
type loader struct {
	dirs       []string
	usePrelude bool
	writeCache bool
}

// find maps an import path to the file that provides it.
func (l *loader) find(module string) (string, bool) {
	for _, dir := range l.dirs {
		name := filepath.Join(dir, module+".lam")
		if _, err := os.Stat(name); err == nil {
			return name, true
		}
	}
	return "", false
}

// makeLoad returns the command's Load implementation. Like
// repl.MakeLoad it loads each module at most once and reports import
// cycles, but it resolves paths against the search directories, falls
// back to the embedded prelude, and prefers a fresh .lamc compiled
// cache over reparsing the source.
func (l *loader) makeLoad() func(thread *alonzo.Thread, module string) (*alonzo.Module, error) {
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
				i := 0
				for stack[i] != module {
					i++
				}
				chain := append(append([]string(nil), stack[i:]...), module)
				return nil, &alonzo.CyclicImportError{Chain: chain}
			}

			cache[module] = nil // load in progress
			stack = append(stack, module)
			loadThread := &alonzo.Thread{Name: "exec " + module, Load: thread.Load}
			mod, err := l.load(loadThread, module)
			stack = stack[:len(stack)-1]

			e = &entry{mod, err}
			cache[module] = e
		}
		return e.mod, e.err
	}
}

func (l *loader) load(thread *alonzo.Thread, module string) (*alonzo.Module, error) {
	filename, ok := l.find(module)
	if !ok {
		if l.usePrelude {
			if src, ok := prelude.Source(module); ok {
				return alonzo.ExecFile(thread, module, src)
			}
		}
		return nil, fmt.Errorf("cannot find module %q", module)
	}

	// Use the compiled cache if it is no older than the source.
	cached := filename + "c"
	if ci, err := os.Stat(cached); err == nil {
		if si, err := os.Stat(filename); err == nil && !ci.ModTime().Before(si.ModTime()) {
			if data, err := ioutil.ReadFile(cached); err == nil {
				if _, imports, defs, err := termcode.Decode(data); err == nil {
					return alonzo.LinkFile(thread, module, imports, defs)
				}
			}
		}
	}

	f, err := syntax.ParseFile(filename, nil)
	if err != nil {
		return nil, err
	}
	if err := resolve.File(f); err != nil {
		return nil, err
	}
	imports, defs := alonzo.CompileFile(f)
	if l.writeCache {
		if err := ioutil.WriteFile(cached, termcode.Encode(filename, imports, defs), 0666); err != nil {
			log.Print(err)
		}
	}
	return alonzo.LinkFile(thread, module, imports, defs)
}

func check(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
