// Copyright 2026 The Alonzo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package termcode defines the serialization of compiled Alonzo
// modules, used for the .lamc compiled-module cache.
//
// A compiled module is stored as a protobuf wire-format message so
// that third parties can inspect and generate the format with stock
// protobuf tooling, though no .proto schema is distributed. The
// message layout is:
//
//	Program:
//	  1  filename  string
//	  2  import    message (repeated)
//	  3  def       message (repeated)
//	Import:
//	  1  path      string
//	  2  name      string (repeated)
//	  3  line      varint
//	  4  col       varint
//	Def:
//	  1  name      string
//	  2  term      message
//	  3  line      varint
//	  4  col       varint
//	Term (exactly one of fields 1-3):
//	  1  var       message {1 name string}
//	  2  abs       message {1 param string, 2 body Term}
//	  3  app       message {1 fn Term, 2 arg Term}
//	  4  line      varint
//	  5  col       varint
//
// The bytes are preceded by a magic header that includes a version
// number; the format is not guaranteed to be stable across versions.
package termcode

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"go.alonzo.net/alonzo"
	"go.alonzo.net/syntax"
)

// Version is incremented whenever the encoding changes incompatibly.
const Version = 1

var magic = []byte{'l', 'a', 'm', 'c', Version}

// Encode serializes a compiled module.
func Encode(filename string, imports []alonzo.CompiledImport, defs []alonzo.CompiledDef) []byte {
	e := encoder{data: append([]byte(nil), magic...)}
	e.string(1, filename)
	for _, imp := range imports {
		var sub encoder
		sub.string(1, imp.Path)
		for _, name := range imp.Names {
			sub.string(2, name)
		}
		sub.position(3, imp.Pos)
		e.message(2, sub.data)
	}
	for _, def := range defs {
		var sub encoder
		sub.string(1, def.Name)
		sub.message(2, encodeTerm(def.Term))
		sub.position(3, def.Pos)
		e.message(3, sub.data)
	}
	return e.data
}

func encodeTerm(t alonzo.Term) []byte {
	var e encoder
	switch t := t.(type) {
	case *alonzo.Var:
		var sub encoder
		sub.string(1, t.Name)
		e.message(1, sub.data)
	case *alonzo.Abs:
		var sub encoder
		sub.string(1, t.Param)
		sub.message(2, encodeTerm(t.Body))
		e.message(2, sub.data)
	case *alonzo.App:
		var sub encoder
		sub.message(1, encodeTerm(t.Fn))
		sub.message(2, encodeTerm(t.Arg))
		e.message(3, sub.data)
	}
	e.position(4, t.Pos())
	return e.data
}

type encoder struct {
	data []byte
}

func (e *encoder) string(num protowire.Number, s string) {
	e.data = protowire.AppendTag(e.data, num, protowire.BytesType)
	e.data = protowire.AppendString(e.data, s)
}

func (e *encoder) message(num protowire.Number, body []byte) {
	e.data = protowire.AppendTag(e.data, num, protowire.BytesType)
	e.data = protowire.AppendBytes(e.data, body)
}

func (e *encoder) varint(num protowire.Number, v uint64) {
	e.data = protowire.AppendTag(e.data, num, protowire.VarintType)
	e.data = protowire.AppendVarint(e.data, v)
}

// position emits line at num and column at num+1, omitting an
// invalid (zero) position entirely.
func (e *encoder) position(num protowire.Number, pos syntax.Position) {
	if pos.Line != 0 {
		e.varint(num, uint64(pos.Line))
		e.varint(num+1, uint64(pos.Col))
	}
}

// Decode reconstructs a compiled module from the output of Encode.
func Decode(data []byte) (filename string, imports []alonzo.CompiledImport, defs []alonzo.CompiledDef, err error) {
	if len(data) < len(magic) || string(data[:len(magic)-1]) != string(magic[:len(magic)-1]) {
		return "", nil, nil, fmt.Errorf("not a compiled module file")
	}
	if data[len(magic)-1] != Version {
		return "", nil, nil, fmt.Errorf("version mismatch: file has %d, want %d", data[len(magic)-1], Version)
	}
	d := decoder{data: data[len(magic):]}
	file := new(string)
	for !d.empty() {
		num, body := d.field()
		switch num {
		case 1:
			filename = d.stringValue(body)
			*file = filename
		case 2:
			imports = append(imports, d.importValue(body, file))
		case 3:
			defs = append(defs, d.defValue(body, file))
		}
	}
	if d.err != nil {
		return "", nil, nil, fmt.Errorf("corrupt compiled module: %v", d.err)
	}
	return filename, imports, defs, nil
}

type decoder struct {
	data   []byte
	varint uint64 // value of the most recent varint field
	err    error
}

func (d *decoder) empty() bool { return len(d.data) == 0 || d.err != nil }

func (d *decoder) fail(n int) {
	if d.err == nil {
		d.err = protowire.ParseError(n)
	}
	d.data = nil
}

// field consumes one field and returns its number and, for
// length-delimited fields, its contents.
func (d *decoder) field() (protowire.Number, []byte) {
	num, typ, n := protowire.ConsumeTag(d.data)
	if n < 0 {
		d.fail(n)
		return 0, nil
	}
	d.data = d.data[n:]
	switch typ {
	case protowire.BytesType:
		v, n := protowire.ConsumeBytes(d.data)
		if n < 0 {
			d.fail(n)
			return 0, nil
		}
		d.data = d.data[n:]
		return num, v
	case protowire.VarintType:
		v, n := protowire.ConsumeVarint(d.data)
		if n < 0 {
			d.fail(n)
			return 0, nil
		}
		d.data = d.data[n:]
		d.varint = v
		return num, nil
	default:
		if d.err == nil {
			d.err = fmt.Errorf("unexpected wire type %d", typ)
		}
		d.data = nil
		return 0, nil
	}
}

func (d *decoder) stringValue(body []byte) string { return string(body) }

func (d *decoder) importValue(body []byte, file *string) alonzo.CompiledImport {
	sub := decoder{data: body}
	var imp alonzo.CompiledImport
	var line, col int32
	for !sub.empty() {
		num, b := sub.field()
		switch num {
		case 1:
			imp.Path = string(b)
		case 2:
			imp.Names = append(imp.Names, string(b))
		case 3:
			line = int32(sub.varint)
		case 4:
			col = int32(sub.varint)
		}
	}
	if sub.err != nil {
		d.err = sub.err
	}
	imp.Pos = syntax.MakePosition(file, line, col)
	return imp
}

func (d *decoder) defValue(body []byte, file *string) alonzo.CompiledDef {
	sub := decoder{data: body}
	var def alonzo.CompiledDef
	var line, col int32
	for !sub.empty() {
		num, b := sub.field()
		switch num {
		case 1:
			def.Name = string(b)
		case 2:
			def.Term = sub.termValue(b, file)
		case 3:
			line = int32(sub.varint)
		case 4:
			col = int32(sub.varint)
		}
	}
	if sub.err != nil {
		d.err = sub.err
	}
	def.Pos = syntax.MakePosition(file, line, col)
	return def
}

func (d *decoder) termValue(body []byte, file *string) alonzo.Term {
	sub := decoder{data: body}
	var t alonzo.Term
	var line, col int32
	for !sub.empty() {
		num, b := sub.field()
		switch num {
		case 1: // var
			v := decoder{data: b}
			tv := new(alonzo.Var)
			for !v.empty() {
				if n, s := v.field(); n == 1 {
					tv.Name = string(s)
				}
			}
			if v.err != nil {
				sub.err = v.err
			}
			t = tv
		case 2: // abs
			v := decoder{data: b}
			ta := new(alonzo.Abs)
			for !v.empty() {
				switch n, s := v.field(); n {
				case 1:
					ta.Param = string(s)
				case 2:
					ta.Body = v.termValue(s, file)
				}
			}
			if v.err != nil {
				sub.err = v.err
			} else if ta.Body == nil {
				sub.err = fmt.Errorf("abstraction with no body")
			}
			t = ta
		case 3: // app
			v := decoder{data: b}
			ta := new(alonzo.App)
			for !v.empty() {
				switch n, s := v.field(); n {
				case 1:
					ta.Fn = v.termValue(s, file)
				case 2:
					ta.Arg = v.termValue(s, file)
				}
			}
			if v.err != nil {
				sub.err = v.err
			} else if ta.Fn == nil || ta.Arg == nil {
				sub.err = fmt.Errorf("application with missing subterm")
			}
			t = ta
		case 4:
			line = int32(sub.varint)
		case 5:
			col = int32(sub.varint)
		}
	}
	if sub.err != nil {
		d.err = sub.err
		return nil
	}
	if t == nil {
		d.err = fmt.Errorf("term with no variant")
		return nil
	}
	pos := syntax.MakePosition(file, line, col)
	switch t := t.(type) {
	case *alonzo.Var:
		t.NamePos = pos
	case *alonzo.Abs:
		t.AbsPos = pos
	}
	return t
}
