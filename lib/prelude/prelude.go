// Copyright 2026 The Alonzo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prelude provides the standard Alonzo modules, embedded in
// the binary so they can be imported without any files on disk.
//
// A prelude module is imported by its bare name:
//
//	import { Y } from "combinators";
package prelude // import "go.alonzo.net/lib/prelude"

import (
	"embed"
	"sort"
	"strings"
)

//go:embed *.lam
var files embed.FS

// Has reports whether the prelude contains the named module.
func Has(module string) bool {
	_, ok := Source(module)
	return ok
}

// Source returns the text of the named prelude module.
func Source(module string) (string, bool) {
	if strings.ContainsAny(module, "/.") {
		return "", false // only bare names denote prelude modules
	}
	data, err := files.ReadFile(module + ".lam")
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Names returns the names of all prelude modules, sorted.
func Names() []string {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".lam"))
	}
	sort.Strings(names)
	return names
}
