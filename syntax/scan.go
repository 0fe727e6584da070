// Copyright 2026 The Alonzo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// A scanner for the Alonzo surface syntax.
//
// The lexical grammar distinguishes two classes of identifier by their
// first letter: lowercase names are lambda-bound variables, uppercase
// names are module-level aliases. Both may continue with letters,
// digits, and the characters * + ' ?. A '#' starts a comment that runs
// to the end of the line. String literals appear only as import paths.

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// A Position describes the location of a rune of input.
type Position struct {
	file *string // filename (indirect for compactness)
	Line int32   // 1-based line number; 0 if unknown
	Col  int32   // 1-based column (rune) number; 0 if unknown
}

// MakePosition returns position with the specified components.
func MakePosition(file *string, line, col int32) Position {
	return Position{file, line, col}
}

// IsValid reports whether the position is valid.
func (p Position) IsValid() bool { return p.file != nil }

// Filename returns the name of the file containing this position.
func (p Position) Filename() string {
	if p.file != nil {
		return *p.file
	}
	return "<invalid>"
}

func (p Position) String() string {
	file := p.Filename()
	if p.Line > 0 {
		if p.Col > 0 {
			return fmt.Sprintf("%s:%d:%d", file, p.Line, p.Col)
		}
		return fmt.Sprintf("%s:%d", file, p.Line)
	}
	return file
}

// add returns the position at the end of s, assuming it contains no newlines.
func (p Position) add(s string) Position {
	p.Col += int32(utf8.RuneCountInString(s))
	return p
}

func (p Position) isBefore(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Col < q.Col
}

// An Error describes the nature and position of a scanner or parser error.
type Error struct {
	Pos Position
	Msg string
}

func (e Error) Error() string { return e.Pos.String() + ": " + e.Msg }

// A Token represents a lexical token.
type Token int8

const (
	ILLEGAL Token = iota
	EOF

	VAR    // x  (lowercase-first identifier)
	ALIAS  // Suc  (uppercase-first identifier)
	STRING // "prelude/nat"  (import path)

	LPAREN // (
	RPAREN // )
	LBRACE // {
	RBRACE // }
	COMMA  // ,
	SEMI   // ;
	EQ     // =
	ARROW  // =>

	maxToken
)

var tokenNames = [...]string{
	ILLEGAL: "illegal token",
	EOF:     "end of file",
	VAR:     "variable",
	ALIAS:   "alias",
	STRING:  "string literal",
	LPAREN:  "(",
	RPAREN:  ")",
	LBRACE:  "{",
	RBRACE:  "}",
	COMMA:   ",",
	SEMI:    ";",
	EQ:      "=",
	ARROW:   "=>",
}

func (tok Token) String() string { return tokenNames[tok] }

// A tokenValue records the position and raw text of each token.
type tokenValue struct {
	tok    Token
	raw    string   // raw text of token
	string string   // decoded value of STRING
	pos    Position // start position of token
}

func (tv tokenValue) endPos() Position { return tv.pos.add(tv.raw) }

// A scanner tokenizes an entire input up front; the parser then reads
// the token buffer with arbitrary lookahead. (Distinguishing a
// parenthesized parameter list from a parenthesized subterm requires
// scanning past the closing parenthesis to the arrow.)
type scanner struct {
	rest     string
	pos      Position
	filename *string
}

func newScanner(filename string, src interface{}) (*scanner, error) {
	data, err := readSource(filename, src)
	if err != nil {
		return nil, err
	}
	f := &filename
	return &scanner{
		rest:     data,
		pos:      MakePosition(f, 1, 1),
		filename: f,
	}, nil
}

func readSource(filename string, src interface{}) (string, error) {
	switch src := src.(type) {
	case string:
		return src, nil
	case []byte:
		return string(src), nil
	case io.Reader:
		data, err := io.ReadAll(src)
		if err != nil {
			return "", err
		}
		return string(data), nil
	case nil:
		data, err := os.ReadFile(filename)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("invalid source: %T", src)
	}
}

// tokenize scans the whole input. The first error encountered is
// reported once; scanning resumes after the offending text so the
// parser still sees the rest of the file.
func (sc *scanner) tokenize() ([]tokenValue, error) {
	var tokens []tokenValue
	var firstErr error
	fail := func(pos Position, format string, args ...interface{}) {
		if firstErr == nil {
			firstErr = Error{pos, fmt.Sprintf(format, args...)}
		}
	}

	for {
		sc.skipSpace()
		pos := sc.pos
		c, ok := sc.peek()
		if !ok {
			tokens = append(tokens, tokenValue{tok: EOF, pos: pos})
			return tokens, firstErr
		}

		switch {
		case c == '(':
			tokens = append(tokens, sc.punct(LPAREN))
		case c == ')':
			tokens = append(tokens, sc.punct(RPAREN))
		case c == '{':
			tokens = append(tokens, sc.punct(LBRACE))
		case c == '}':
			tokens = append(tokens, sc.punct(RBRACE))
		case c == ',':
			tokens = append(tokens, sc.punct(COMMA))
		case c == ';':
			tokens = append(tokens, sc.punct(SEMI))
		case c == '=':
			sc.next()
			if c2, ok := sc.peek(); ok && c2 == '>' {
				sc.next()
				tokens = append(tokens, tokenValue{tok: ARROW, raw: "=>", pos: pos})
			} else {
				tokens = append(tokens, tokenValue{tok: EQ, raw: "=", pos: pos})
			}
		case c == '"':
			tv, err := sc.scanString(pos)
			if err != nil {
				fail(pos, "%s", err)
			}
			tokens = append(tokens, tv)
		case isNameStart(c):
			raw := sc.scanWhile(isNameCont)
			tokens = append(tokens, tokenValue{tok: VAR, raw: raw, pos: pos})
		case isAliasStart(c):
			raw := sc.scanWhile(isNameCont)
			tokens = append(tokens, tokenValue{tok: ALIAS, raw: raw, pos: pos})
		default:
			r, _ := utf8.DecodeRuneInString(sc.rest)
			fail(pos, "unexpected input character %q", r)
			sc.next()
		}
	}
}

func (sc *scanner) punct(tok Token) tokenValue {
	tv := tokenValue{tok: tok, raw: sc.rest[:1], pos: sc.pos}
	sc.next()
	return tv
}

// skipSpace consumes whitespace and comments.
func (sc *scanner) skipSpace() {
	for {
		c, ok := sc.peek()
		if !ok {
			return
		}
		switch c {
		case ' ', '\t', '\r', '\n':
			sc.next()
		case '#':
			for {
				if c, ok := sc.peek(); !ok || c == '\n' {
					break
				}
				sc.next()
			}
		default:
			return
		}
	}
}

func (sc *scanner) scanString(pos Position) (tokenValue, error) {
	start := sc.rest
	sc.next() // consume '"'
	var buf strings.Builder
	for {
		c, ok := sc.peek()
		if !ok || c == '\n' {
			raw := start[:len(start)-len(sc.rest)]
			return tokenValue{tok: STRING, raw: raw, string: buf.String(), pos: pos},
				fmt.Errorf("unterminated string literal")
		}
		sc.next()
		if c == '"' {
			raw := start[:len(start)-len(sc.rest)]
			return tokenValue{tok: STRING, raw: raw, string: buf.String(), pos: pos}, nil
		}
		if c == '\\' {
			c2, ok := sc.peek()
			if ok && c2 != '\n' {
				sc.next()
				buf.WriteByte(c2)
				continue
			}
			continue
		}
		buf.WriteByte(c)
	}
}

func (sc *scanner) scanWhile(pred func(byte) bool) string {
	start := sc.rest
	for {
		c, ok := sc.peek()
		if !ok || !pred(c) {
			break
		}
		sc.next()
	}
	return start[:len(start)-len(sc.rest)]
}

func (sc *scanner) peek() (byte, bool) {
	if len(sc.rest) == 0 {
		return 0, false
	}
	return sc.rest[0], true
}

func (sc *scanner) next() {
	c := sc.rest[0]
	sc.rest = sc.rest[1:]
	if c == '\n' {
		sc.pos.Line++
		sc.pos.Col = 1
	} else {
		sc.pos.Col++
	}
}

func isNameStart(c byte) bool  { return 'a' <= c && c <= 'z' }
func isAliasStart(c byte) bool { return 'A' <= c && c <= 'Z' }

func isNameCont(c byte) bool {
	return 'a' <= c && c <= 'z' ||
		'A' <= c && c <= 'Z' ||
		'0' <= c && c <= '9' ||
		c == '*' || c == '+' || c == '\'' || c == '?'
}

// IsAliasName reports whether name belongs to the module-level
// namespace (its first letter is uppercase).
func IsAliasName(name string) bool {
	return name != "" && isAliasStart(name[0])
}
