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
	"t73f.de/r/zero/set"
)

// Lambda implements `lambda`: two QExprs, formals (symbols only, an
// optional trailing "& sink") and body. Builds a fresh Function(lambda)
// closing over a new, empty, environment.
func Lambda(env *lisb.Environment, args *lisb.SExpr) (lisb.Value, error) {
	if errv := checkArity("lambda", args, 2); errv != nil {
		return nil, errv
	}
	formals, errv := argQExpr("lambda", args, 0)
	if errv != nil {
		return nil, errv
	}
	body, errv := argQExpr("lambda", args, 1)
	if errv != nil {
		return nil, errv
	}

	symbols := make([]lisb.Symbol, 0, formals.Len())
	for i, v := range formals.Items() {
		sym, ok := lisb.GetSymbol(v)
		if !ok {
			return nil, lisb.NewErrorf(
				"'lambda' can only define symbols. Expected %s, got %s for formal argument %d.",
				"Symbol", lisbeval.TagName(v), i)
		}
		symbols = append(symbols, sym)
	}
	if set.New(symbols...).Length() != len(symbols) {
		return nil, lisb.NewError("'lambda' formal parameters must be unique.")
	}
	if errv := checkVariadicShape("lambda", symbols); errv != nil {
		return nil, errv
	}

	return lisb.NewLambda(formals, body, lisb.NewEnvironment(nil)), nil
}

// checkVariadicShape enforces that "&", if present among formals, is
// followed by exactly one trailing symbol.
func checkVariadicShape(name string, symbols []lisb.Symbol) *lisb.ErrVal {
	for i, sym := range symbols {
		if !sym.IsVariadic() {
			continue
		}
		if i != len(symbols)-2 {
			return lisb.NewErrorf("'%s' variadic symbol '&' must be followed by exactly one symbol.", name)
		}
	}
	return nil
}
