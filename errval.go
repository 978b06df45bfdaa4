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
	"fmt"
	"io"
)

// ErrVal is the Error tag of the value algebra: a human-readable message,
// never a source position. It is produced only by the constructors below;
// no other value is ever silently promoted to ErrVal.
type ErrVal struct {
	Msg string
}

// NewError builds an ErrVal from a plain message.
func NewError(msg string) *ErrVal { return &ErrVal{Msg: msg} }

// NewErrorf builds an ErrVal from a format string, as fmt.Errorf does.
func NewErrorf(format string, args ...any) *ErrVal {
	return &ErrVal{Msg: fmt.Sprintf(format, args...)}
}

// IsNil returns false for every constructed error (only a nil *ErrVal
// reports true): an error is never the unit value.
func (e *ErrVal) IsNil() bool { return e == nil }

// IsAtom always returns true: an error is not further decomposable.
func (e *ErrVal) IsAtom() bool { return true }

// IsEqual compares two errors by message.
func (e *ErrVal) IsEqual(other Value) bool {
	otherE, ok := other.(*ErrVal)
	return ok && otherE != nil && e != nil && e.Msg == otherE.Msg
}

// String returns "Error: <msg>".
func (e *ErrVal) String() string {
	if e == nil {
		return "Error: <nil>"
	}
	return "Error: " + e.Msg
}

// Error implements the standard error interface, so that an *ErrVal can be
// returned from Go-level APIs such as Environment.Get without a second,
// parallel error representation.
func (e *ErrVal) Error() string { return e.Msg }

// Print writes the error's printed form to w.
func (e *ErrVal) Print(w io.Writer) (int, error) { return io.WriteString(w, e.String()) }

// Copy returns e unchanged: a constructed ErrVal is never mutated in place.
func (e *ErrVal) Copy() Value { return e }

// GetError returns v as an *ErrVal, if possible.
func GetError(v Value) (*ErrVal, bool) {
	if IsNil(v) {
		return nil, false
	}
	e, ok := v.(*ErrVal)
	return e, ok
}

// IsError reports whether v is an Error value.
func IsError(v Value) bool {
	_, ok := v.(*ErrVal)
	return ok
}
