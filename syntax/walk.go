// Copyright 2026 The Alonzo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// Walk traverses a syntax tree in depth-first order.
// It calls f(n) for each node n before it visits n's children.
// If f returns false, Walk does not visit n's children.
func Walk(n Node, f func(Node) bool) {
	if n == nil {
		panic("nil")
	}
	if !f(n) {
		return
	}

	switch n := n.(type) {
	case *File:
		for _, imp := range n.Imports {
			Walk(imp, f)
		}
		for _, def := range n.Defs {
			Walk(def, f)
		}
	case *Import:
		for _, id := range n.Names {
			Walk(id, f)
		}
	case *Def:
		Walk(n.Name, f)
		Walk(n.Body, f)
	case *Ident:
		// leaf
	case *LambdaExpr:
		for _, param := range n.Params {
			Walk(param, f)
		}
		Walk(n.Body, f)
	case *CallExpr:
		Walk(n.Fn, f)
		for _, arg := range n.Args {
			Walk(arg, f)
		}
	case *ParenExpr:
		Walk(n.X, f)
	default:
		panic(n)
	}
}
