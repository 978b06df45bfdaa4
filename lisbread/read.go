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

// Package lisbread converts the labelled tree lisbparse produces into a
// Value tree. It is the one place that knows how to read a parser's tag
// vocabulary; the evaluator never sees a *lisbparse.Node.
package lisbread

import (
	"strings"

	"lisb.dev/lisb"
	"lisb.dev/lisb/lisbparse"
)

// Read converts root, the "program" node returned by lisbparse.ParseProgram,
// into an SExpr of top-level values.
func Read(root *lisbparse.Node) *lisb.SExpr {
	return lisb.NewSExpr(readChildren(root)...)
}

// ReadExpr converts a single expression node, as returned by
// lisbparse.(*Parser).ParseExpr, into a Value.
func ReadExpr(node *lisbparse.Node) lisb.Value {
	return readNode(node)
}

func readChildren(node *lisbparse.Node) []lisb.Value {
	values := make([]lisb.Value, 0, len(node.Children))
	for _, c := range node.Children {
		if skip(c) {
			continue
		}
		values = append(values, readNode(c))
	}
	return values
}

// skip reports whether c is punctuation that the reader discards: a leaf
// whose text is exactly "(", ")", "{" or "}", or any node tagged exactly
// "regex".
func skip(c *lisbparse.Node) bool {
	if c.Tag == "regex" {
		return true
	}
	switch c.Text {
	case "(", ")", "{", "}":
		return true
	}
	return false
}

func readNode(node *lisbparse.Node) lisb.Value {
	switch {
	case strings.Contains(node.Tag, "number"):
		n, ok := lisb.ParseNumber(node.Text)
		if !ok {
			return lisb.NewErrorf("Invalid Number '%s'", node.Text)
		}
		return n
	case strings.Contains(node.Tag, "symbol"):
		return lisb.Symbol(node.Text)
	case strings.Contains(node.Tag, "qexpr"):
		return lisb.NewQExpr(readChildren(node)...)
	case strings.Contains(node.Tag, "sexpr"):
		return lisb.NewSExpr(readChildren(node)...)
	default:
		return lisb.NewSExpr(readChildren(node)...)
	}
}
