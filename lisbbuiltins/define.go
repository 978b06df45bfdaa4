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

// variable implements the shared shape of `def` and `=`: a leading QExpr of
// symbols followed by exactly that many values, bound either in the root
// frame (global=true, `def`) or the current frame (`=`). The zero-symbol,
// zero-value case is a legal no-op.
func variable(name string, global bool, env *lisb.Environment, args *lisb.SExpr) (lisb.Value, error) {
	if errv := checkMinArity(name, args, 1); errv != nil {
		return nil, errv
	}
	syms, errv := argQExpr(name, args, 0)
	if errv != nil {
		return nil, errv
	}

	symbols := make([]lisb.Symbol, 0, syms.Len())
	for _, v := range syms.Items() {
		sym, ok := lisb.GetSymbol(v)
		if !ok {
			return nil, lisb.NewErrorf(
				"'%s' can only define symbols. Expected %s, got %s.", name, "Symbol", lisbeval.TagName(v))
		}
		symbols = append(symbols, sym)
	}
	if set.New(symbols...).Length() != len(symbols) {
		return nil, lisb.NewErrorf("'%s' passed duplicate symbols.", name)
	}

	values := args.Len() - 1
	if len(symbols) != values {
		return nil, lisb.NewErrorf(
			"'%s' requires same number of values and symbols. Got %d symbols, and %d values.",
			name, len(symbols), values)
	}

	for i, sym := range symbols {
		v, err := args.Get(i + 1)
		if err != nil {
			return nil, lisb.NewError(err.Error())
		}
		if global {
			env.PutGlobal(sym, v)
		} else {
			env.Put(sym, v)
		}
	}
	return lisb.NewSExpr(), nil
}

// Def implements `def`: bind in the root frame.
func Def(env *lisb.Environment, args *lisb.SExpr) (lisb.Value, error) { return variable("def", true, env, args) }

// Put implements `=`: bind in the current frame.
func Put(env *lisb.Environment, args *lisb.SExpr) (lisb.Value, error) { return variable("=", false, env, args) }
