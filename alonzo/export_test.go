// Copyright 2026 The Alonzo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alonzo

// This file exposes various internal hooks to tests.

// BindingThunk returns the memo cell behind a module binding.
func BindingThunk(m *Module, name string) *Thunk {
	if b := m.Binding(name); b != nil {
		return b.thunk
	}
	return nil
}

func ThunkIsForced(t *Thunk) bool   { return t.state == forced }
func ThunkIsUnforced(t *Thunk) bool { return t.state == unforced }
