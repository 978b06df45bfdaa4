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

package lisb

import (
	"io"
	"strconv"
)

// Number stores a signed integer value. Arithmetic overflow wraps silently,
// matching the unchecked `long` arithmetic of the reference C interpreter.
type Number int64

// ParseNumber parses s as a decimal integer. On overflow or malformed text
// it returns ok=false; callers construct the `Invalid Number '<text>'` Error
// themselves (see lisbread), since only the reader knows the offending text.
func ParseNumber(s string) (Number, bool) {
	i64, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return Number(i64), true
}

// IsNil always returns false: a number is never the unit value.
func (n Number) IsNil() bool { return false }

// IsAtom always returns true: a number is not further decomposable.
func (n Number) IsAtom() bool { return true }

// IsEqual compares two numbers by value.
func (n Number) IsEqual(other Value) bool {
	otherN, ok := other.(Number)
	return ok && n == otherN
}

// String returns the decimal representation.
func (n Number) String() string { return strconv.FormatInt(int64(n), 10) }

// Print writes the decimal representation to w.
func (n Number) Print(w io.Writer) (int, error) { return io.WriteString(w, n.String()) }

// Copy returns n unchanged: numbers are immutable atoms.
func (n Number) Copy() Value { return n }

// GetNumber returns v as a Number, if possible.
func GetNumber(v Value) (Number, bool) {
	if IsNil(v) {
		return 0, false
	}
	n, ok := v.(Number)
	return n, ok
}
