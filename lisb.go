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

// Package lisb provides the value algebra, the environment and the
// deep-copy/equality/printing contracts that the evaluator in lisbeval and
// the builtins in lisbbuiltins are built on.
//
// A Value is a tagged sum with exactly one of six shapes: Number, Symbol,
// Error, SExpr ("calling form"), QExpr ("quoted data") or Function. Every
// concrete type below implements Value.
package lisb

import (
	"fmt"
	"io"
	"strings"
)

// Value is the generic value every Lisb datum must fulfill.
type Value interface {
	fmt.Stringer

	// IsNil checks if the concrete value is the empty SExpr, the unit value.
	IsNil() bool

	// IsAtom returns true iff the value is not further decomposable.
	IsAtom() bool

	// IsEqual compares two values for deep, structural equality.
	IsEqual(Value) bool

	// Print emits the value's textual form on w.
	Print(io.Writer) (int, error)

	// Copy returns a deep copy of the value. Atoms may return themselves.
	Copy() Value
}

// IsNil returns true if the given value is nil or the empty SExpr.
func IsNil(v Value) bool { return v == nil || v.IsNil() }

// Print writes the printed form of v to w.
func Print(w io.Writer, v Value) (int, error) {
	if IsNil(v) {
		return io.WriteString(w, "()")
	}
	return v.Print(w)
}

// Sprint returns the printed form of v as a string.
func Sprint(v Value) string {
	var sb strings.Builder
	_, _ = Print(&sb, v)
	return sb.String()
}
