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

// op folds args left to right with the named operator. A single-argument
// "-" negates instead of folding.
func op(name string, env *lisb.Environment, args *lisb.SExpr) (lisb.Value, error) {
	if errv := checkMinArity(name, args, 1); errv != nil {
		return nil, errv
	}
	for i := range args.Len() {
		if _, errv := argNumber(name, args, i); errv != nil {
			return nil, errv
		}
	}

	first, _ := args.Get(0)
	x, _ := lisb.GetNumber(first)

	if name == "-" && args.Len() == 1 {
		return -x, nil
	}

	for i := 1; i < args.Len(); i++ {
		v, _ := args.Get(i)
		y, _ := lisb.GetNumber(v)
		switch name {
		case "+":
			x += y
		case "-":
			x -= y
		case "*":
			x *= y
		case "/":
			if y == 0 {
				return nil, lisb.NewError("Division by zero")
			}
			x /= y
		}
	}
	return x, nil
}

// Add implements `+`: fold left with addition.
func Add(env *lisb.Environment, args *lisb.SExpr) (lisb.Value, error) { return op("+", env, args) }

// Sub implements `-`: fold left with subtraction; negates a lone argument.
func Sub(env *lisb.Environment, args *lisb.SExpr) (lisb.Value, error) { return op("-", env, args) }

// Mul implements `*`: fold left with multiplication.
func Mul(env *lisb.Environment, args *lisb.SExpr) (lisb.Value, error) { return op("*", env, args) }

// Div implements `/`: fold left with division; division by zero is an Error.
func Div(env *lisb.Environment, args *lisb.SExpr) (lisb.Value, error) { return op("/", env, args) }
