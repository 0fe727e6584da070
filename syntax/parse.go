// Copyright 2026 The Alonzo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// This file defines a recursive-descent parser for the Alonzo grammar.
//
// A term is a juxtaposition sequence of operands; application
// associates to the left. An abstraction appearing anywhere in a
// sequence takes the entire remainder of the sequence as its body, so
//
//	(x => x x) x => x x
//
// is the application of x => x x to itself (the diverging Omega term),
// and
//
//	f x => y z
//
// applies f to the single abstraction x => y z.

import "fmt"

// ParseFile parses an Alonzo module.
//
// The filename is used only for position information.
// The src may be a string, a []byte, an io.Reader, or nil,
// in which case the file is read from the filename.
func ParseFile(filename string, src interface{}) (f *File, err error) {
	p, err := newParser(filename, src)
	if err != nil {
		return nil, err
	}
	defer p.recoverError(&err)
	f = p.parseFile()
	f.Path = filename
	return f, nil
}

// ParseExpr parses an Alonzo term.
// It is an error if the input contains anything beyond a single term.
func ParseExpr(filename string, src interface{}) (expr Expr, err error) {
	p, err := newParser(filename, src)
	if err != nil {
		return nil, err
	}
	defer p.recoverError(&err)
	expr = p.parseTerm()
	p.consumeTrailer()
	return expr, nil
}

// ParseREPLInput parses a single line of interactive input:
// either a definition (`Twice = f => x => f (f x)`) or a term.
// The result is a *Def, an Expr, or nil for blank input.
// A trailing semicolon is permitted but not required.
func ParseREPLInput(filename string, src interface{}) (n Node, err error) {
	p, err := newParser(filename, src)
	if err != nil {
		return nil, err
	}
	defer p.recoverError(&err)
	switch {
	case p.tok() == EOF:
		return nil, nil
	case p.tok() == ALIAS && p.peek(1).tok == EQ:
		n = p.parseDef()
	case p.tok() == VAR && p.peek(1).tok == EQ:
		p.errorf(p.pos(), "cannot define %s: only uppercase aliases may be bound at module level", p.val().raw)
	default:
		n = p.parseTerm()
	}
	p.consumeTrailer()
	return n, nil
}

type parser struct {
	tokens []tokenValue
	i      int
}

func newParser(filename string, src interface{}) (*parser, error) {
	sc, err := newScanner(filename, src)
	if err != nil {
		return nil, err
	}
	tokens, err := sc.tokenize()
	if err != nil {
		return nil, err
	}
	return &parser{tokens: tokens}, nil
}

// recoverError turns a panicking Error into a returned error.
// (Other panics are bugs and are re-raised.)
func (p *parser) recoverError(err *error) {
	switch e := recover().(type) {
	case nil:
	case Error:
		*err = e
	default:
		panic(e)
	}
}

func (p *parser) errorf(pos Position, format string, args ...interface{}) {
	panic(Error{pos, fmt.Sprintf(format, args...)})
}

func (p *parser) val() tokenValue { return p.tokens[p.i] }
func (p *parser) tok() Token      { return p.tokens[p.i].tok }
func (p *parser) pos() Position   { return p.tokens[p.i].pos }

func (p *parser) peek(n int) tokenValue {
	if p.i+n >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.i+n]
}

func (p *parser) next() tokenValue {
	tv := p.tokens[p.i]
	if tv.tok != EOF {
		p.i++
	}
	return tv
}

func (p *parser) consume(tok Token) tokenValue {
	if p.tok() != tok {
		p.errorf(p.pos(), "got %s, want %s", p.tok(), tok)
	}
	return p.next()
}

func (p *parser) consumeTrailer() {
	if p.tok() == SEMI {
		p.next()
	}
	if p.tok() != EOF {
		p.errorf(p.pos(), "extraneous input after term: %s", p.tok())
	}
}

// file = { (import | def) ';' } EOF .
func (p *parser) parseFile() *File {
	f := new(File)
	for p.tok() != EOF {
		if p.tok() == VAR && p.val().raw == "import" {
			f.Imports = append(f.Imports, p.parseImport())
		} else {
			f.Defs = append(f.Defs, p.parseDef())
		}
		p.consume(SEMI)
	}
	return f
}

// import = 'import' '{' [alias {',' alias}] '}' 'from' string .
func (p *parser) parseImport() *Import {
	imp := &Import{ImportPos: p.next().pos} // consume 'import'
	p.consume(LBRACE)
	for p.tok() != RBRACE {
		if len(imp.Names) > 0 {
			p.consume(COMMA)
		}
		if p.tok() == VAR {
			p.errorf(p.pos(), "cannot import %s: only uppercase aliases may be imported", p.val().raw)
		}
		id := p.consume(ALIAS)
		imp.Names = append(imp.Names, &Ident{NamePos: id.pos, Name: id.raw})
	}
	p.consume(RBRACE)
	if !(p.tok() == VAR && p.val().raw == "from") {
		p.errorf(p.pos(), "got %s, want 'from'", p.tok())
	}
	p.next()
	path := p.consume(STRING)
	imp.Path = path.string
	imp.PathPos = path.pos
	imp.PathEnd = path.endPos()
	return imp
}

// def = alias '=' term .
func (p *parser) parseDef() *Def {
	if p.tok() == VAR {
		p.errorf(p.pos(), "cannot define %s: only uppercase aliases may be bound at module level", p.val().raw)
	}
	name := p.consume(ALIAS)
	def := &Def{Name: &Ident{NamePos: name.pos, Name: name.raw}}
	def.EqPos = p.consume(EQ).pos
	def.Body = p.parseTerm()
	return def
}

// term = operand { operand } .
// An operand that is an abstraction consumes the rest of the sequence
// as its body, so the loop stops after it naturally.
func (p *parser) parseTerm() Expr {
	x := p.parseOperand()
	if !p.startsOperand() {
		return x
	}
	call := &CallExpr{Fn: x}
	for p.startsOperand() {
		call.Args = append(call.Args, p.parseOperand())
	}
	return call
}

func (p *parser) startsOperand() bool {
	switch p.tok() {
	case VAR, ALIAS, LPAREN:
		return true
	}
	return false
}

// operand = var | alias | lambda | '(' term ')' .
func (p *parser) parseOperand() Expr {
	switch p.tok() {
	case VAR:
		if p.peek(1).tok == ARROW {
			return p.parseLambda()
		}
		id := p.next()
		return &Ident{NamePos: id.pos, Name: id.raw}
	case ALIAS:
		id := p.next()
		return &Ident{NamePos: id.pos, Name: id.raw}
	case LPAREN:
		if p.paramListAhead() {
			return p.parseLambda()
		}
		lparen := p.next().pos
		x := p.parseTerm()
		rparen := p.consume(RPAREN).pos
		return &ParenExpr{Lparen: lparen, X: x, Rparen: rparen}
	default:
		p.errorf(p.pos(), "got %s, want term", p.tok())
		panic("unreachable")
	}
}

// paramListAhead reports whether the tokens from the current '('
// form a parenthesized parameter list: '(' [var {',' var}] ')' '=>'.
func (p *parser) paramListAhead() bool {
	j := 1
	for {
		switch p.peek(j).tok {
		case VAR, COMMA:
			j++
		case RPAREN:
			return p.peek(j + 1).tok == ARROW
		default:
			return false
		}
	}
}

// lambda = var '=>' term | '(' var {',' var} ')' '=>' term .
func (p *parser) parseLambda() Expr {
	lam := new(LambdaExpr)
	if p.tok() == VAR {
		id := p.next()
		lam.Params = []*Ident{{NamePos: id.pos, Name: id.raw}}
	} else {
		lam.Lparen = p.consume(LPAREN).pos
		for p.tok() != RPAREN {
			if len(lam.Params) > 0 {
				p.consume(COMMA)
			}
			id := p.consume(VAR)
			lam.Params = append(lam.Params, &Ident{NamePos: id.pos, Name: id.raw})
		}
		p.consume(RPAREN)
		if len(lam.Params) == 0 {
			p.errorf(lam.Lparen, "abstraction needs at least one parameter")
		}
	}
	lam.Arrow = p.consume(ARROW).pos
	lam.Body = p.parseTerm()
	return lam
}
