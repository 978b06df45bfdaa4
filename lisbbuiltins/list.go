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

package lisbbuiltins

import (
	"lisb.dev/lisb"
	"lisb.dev/lisb/lisbeval"
)

// List implements `list`: retag the already-evaluated argument SExpr as a
// QExpr. Any number of arguments of any tag is accepted.
func List(env *lisb.Environment, args *lisb.SExpr) (lisb.Value, error) {
	return args.ToQExpr(), nil
}

// Head implements `head`: a single non-empty QExpr, result is a QExpr
// holding only its first element.
func Head(env *lisb.Environment, args *lisb.SExpr) (lisb.Value, error) {
	if errv := checkArity("head", args, 1); errv != nil {
		return nil, errv
	}
	q, errv := argQExpr("head", args, 0)
	if errv != nil {
		return nil, errv
	}
	if errv := checkNotEmpty("head", args, 0, q); errv != nil {
		return nil, errv
	}
	first, _ := q.Get(0)
	return lisb.NewQExpr(first), nil
}

// Tail implements `tail`: a single non-empty QExpr, result has its first
// element removed.
func Tail(env *lisb.Environment, args *lisb.SExpr) (lisb.Value, error) {
	if errv := checkArity("tail", args, 1); errv != nil {
		return nil, errv
	}
	q, errv := argQExpr("tail", args, 0)
	if errv != nil {
		return nil, errv
	}
	if errv := checkNotEmpty("tail", args, 0, q); errv != nil {
		return nil, errv
	}
	_, _ = q.Pop(0)
	return q, nil
}

// Join implements `join`: any number of QExprs, concatenated into one.
func Join(env *lisb.Environment, args *lisb.SExpr) (lisb.Value, error) {
	result := lisb.NewQExpr()
	for i := range args.Len() {
		q, errv := argQExpr("join", args, i)
		if errv != nil {
			return nil, errv
		}
		result.Join(q)
	}
	return result, nil
}

// Eval implements `eval`: a single QExpr, retagged as an SExpr and evaluated
// in the calling environment.
func Eval(env *lisb.Environment, args *lisb.SExpr) (lisb.Value, error) {
	if errv := checkArity("eval", args, 1); errv != nil {
		return nil, errv
	}
	q, errv := argQExpr("eval", args, 0)
	if errv != nil {
		return nil, errv
	}
	return lisbeval.Eval(env, q.ToSExpr()), nil
}
