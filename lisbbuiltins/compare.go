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

import "lisb.dev/lisb"

func numBool(b bool) lisb.Number {
	if b {
		return 1
	}
	return 0
}

// equal implements `==`/`!=`: exactly 2 args of any tag, compared structurally.
func equal(name string, negate bool, env *lisb.Environment, args *lisb.SExpr) (lisb.Value, error) {
	if errv := checkArity(name, args, 2); errv != nil {
		return nil, errv
	}
	a, _ := args.Get(0)
	b, _ := args.Get(1)
	r := a.IsEqual(b)
	if negate {
		r = !r
	}
	return numBool(r), nil
}

// Eq implements `==`.
func Eq(env *lisb.Environment, args *lisb.SExpr) (lisb.Value, error) { return equal("==", false, env, args) }

// Ne implements `!=`.
func Ne(env *lisb.Environment, args *lisb.SExpr) (lisb.Value, error) { return equal("!=", true, env, args) }

// ord implements the four numeric ordering comparisons: exactly 2 Numbers.
func ord(name string, env *lisb.Environment, args *lisb.SExpr) (lisb.Value, error) {
	if errv := checkArity(name, args, 2); errv != nil {
		return nil, errv
	}
	x, errv := argNumber(name, args, 0)
	if errv != nil {
		return nil, errv
	}
	y, errv := argNumber(name, args, 1)
	if errv != nil {
		return nil, errv
	}
	var r bool
	switch name {
	case ">":
		r = x > y
	case "<":
		r = x < y
	case ">=":
		r = x >= y
	case "<=":
		r = x <= y
	}
	return numBool(r), nil
}

// Greater implements `>`.
func Greater(env *lisb.Environment, args *lisb.SExpr) (lisb.Value, error) { return ord(">", env, args) }

// Less implements `<`.
func Less(env *lisb.Environment, args *lisb.SExpr) (lisb.Value, error) { return ord("<", env, args) }

// GreaterEq implements `>=`.
func GreaterEq(env *lisb.Environment, args *lisb.SExpr) (lisb.Value, error) { return ord(">=", env, args) }

// LessEq implements `<=`.
func LessEq(env *lisb.Environment, args *lisb.SExpr) (lisb.Value, error) { return ord("<=", env, args) }
