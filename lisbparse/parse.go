//-----------------------------------------------------------------------------
// Copyright (c) 2026-present The Lisb Authors
//
// This file is part of lisb.
//
// lisb is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
//-----------------------------------------------------------------------------

package lisbparse

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// symbolChars is the charset accepted by the symbol rule. A token is
// classified as "number" only if it additionally matches -?[0-9]+.
const symbolChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_+-*/\\=<>!&"

// Parser reads runes from an io.RuneScanner and turns them into the
// labelled tree lisbread consumes.
type Parser struct {
	rr   io.RuneScanner
	name string
	line int
	col  int
}

// NewParser wraps r for parsing. name is used only in error messages.
func NewParser(r io.Reader, name string) *Parser {
	rr, ok := r.(io.RuneScanner)
	if !ok {
		rr = bufio.NewReader(r)
	}
	return &Parser{rr: rr, name: name, line: 1, col: 1}
}

// ParseString is a convenience constructor over a string body.
func ParseString(name, src string) (*Node, error) {
	return NewParser(strings.NewReader(src), name).ParseProgram()
}

func (p *Parser) next() (rune, error) {
	r, _, err := p.rr.ReadRune()
	if err != nil {
		return 0, err
	}
	if r == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
	return r, nil
}

func (p *Parser) unread() {
	_ = p.rr.UnreadRune()
	p.col--
}

func (p *Parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%s:%d:%d: %s", p.name, p.line, p.col, fmt.Sprintf(format, args...))
}

func (p *Parser) skipSpace() error {
	for {
		r, err := p.next()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if !unicode.IsSpace(r) {
			p.unread()
			return nil
		}
	}
}

// ParseProgram parses a whole input as the `program` rule: zero or more
// top-level expressions, wrapped in a root node tagged ">".
func (p *Parser) ParseProgram() (*Node, error) {
	var children []*Node
	for {
		if err := p.skipSpace(); err != nil {
			return nil, err
		}
		if _, err := p.peek(); err == io.EOF {
			break
		}
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		children = append(children, expr)
	}
	return interior(">", children...), nil
}

// ParseExpr parses exactly one top-level expression, ignoring any leading
// or trailing whitespace, and fails if anything but whitespace follows it.
func (p *Parser) ParseExpr() (*Node, error) {
	if err := p.skipSpace(); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.skipSpace(); err != nil {
		return nil, err
	}
	if _, err := p.peek(); err != io.EOF {
		return nil, p.errorf("unexpected trailing input")
	}
	return expr, nil
}

func (p *Parser) peek() (rune, error) {
	r, err := p.next()
	if err != nil {
		return 0, err
	}
	p.unread()
	return r, nil
}

func (p *Parser) parseExpr() (*Node, error) {
	r, err := p.peek()
	if err != nil {
		return nil, p.errorf("unexpected end of input")
	}
	switch r {
	case '(':
		return p.parseBracketed('(', ')', "sexpr")
	case '{':
		return p.parseBracketed('{', '}', "qexpr")
	default:
		return p.parseToken()
	}
}

func (p *Parser) parseBracketed(open, close rune, tag string) (*Node, error) {
	o, _ := p.next()
	children := []*Node{leaf("char", string(o))}

	for {
		if err := p.skipSpace(); err != nil {
			return nil, err
		}
		r, err := p.peek()
		if err != nil {
			return nil, p.errorf("unterminated %q, expected closing %q", tag, close)
		}
		if r == close {
			c, _ := p.next()
			children = append(children, leaf("char", string(c)))
			return interior(tag, children...), nil
		}
		child, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
}

func (p *Parser) parseToken() (*Node, error) {
	var sb strings.Builder
	for {
		r, err := p.next()
		if err != nil {
			break
		}
		if !strings.ContainsRune(symbolChars, r) {
			p.unread()
			break
		}
		sb.WriteRune(r)
	}
	text := sb.String()
	if text == "" {
		r, _ := p.peek()
		return nil, p.errorf("unexpected character %q", r)
	}
	if isNumberToken(text) {
		return leaf("number", text), nil
	}
	return leaf("symbol", text), nil
}

func isNumberToken(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '-' {
		i = 1
	}
	if i >= len(s) {
		return false
	}
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
