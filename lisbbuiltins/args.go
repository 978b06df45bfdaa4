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

// Package lisbbuiltins implements the fixed table of primitive operations
// registered into the root environment at start-up: list surgery,
// arithmetic, comparison, conditional, variable definition and the lambda
// constructor. It imports lisb and lisbeval, never the other way round.
package lisbbuiltins

import (
	"lisb.dev/lisb"
	"lisb.dev/lisb/lisbeval"
)

// checkArity reports an arity Error with the message format the reference
// interpreter uses, when args does not hold exactly want items.
func checkArity(name string, args *lisb.SExpr, want int) *lisb.ErrVal {
	if got := args.Len(); got != want {
		return lisb.NewErrorf("'%s' passed incorrect number of arguments. Expected %d, got %d.", name, want, got)
	}
	return nil
}

// checkMinArity reports an arity Error unless args holds at least want items.
func checkMinArity(name string, args *lisb.SExpr, want int) *lisb.ErrVal {
	if got := args.Len(); got < want {
		return lisb.NewErrorf("'%s' passed incorrect number of arguments. Expected at least %d, got %d.", name, want, got)
	}
	return nil
}

// argNumber returns args[i] as a Number, or a type Error.
func argNumber(name string, args *lisb.SExpr, i int) (lisb.Number, *lisb.ErrVal) {
	v, err := args.Get(i)
	if err != nil {
		return 0, lisb.NewError(err.Error())
	}
	n, ok := lisb.GetNumber(v)
	if !ok {
		return 0, lisb.NewErrorf("'%s' passed incorrect type for argument %d. Expected %s, got %s.",
			name, i, "Number", lisbeval.TagName(v))
	}
	return n, nil
}

// argQExpr returns args[i] as a *QExpr, or a type Error.
func argQExpr(name string, args *lisb.SExpr, i int) (*lisb.QExpr, *lisb.ErrVal) {
	v, err := args.Get(i)
	if err != nil {
		return nil, lisb.NewError(err.Error())
	}
	q, ok := lisb.GetQExpr(v)
	if !ok {
		return nil, lisb.NewErrorf("'%s' passed incorrect type for argument %d. Expected %s, got %s.",
			name, i, "Q-Expression", lisbeval.TagName(v))
	}
	return q, nil
}

// checkNotEmpty reports a domain Error if the QExpr at args[i] is empty.
func checkNotEmpty(name string, args *lisb.SExpr, i int, q *lisb.QExpr) *lisb.ErrVal {
	if q.Len() == 0 {
		return lisb.NewErrorf("'%s' passed {} for argument %d.", name, i)
	}
	return nil
}
