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

// Package lisbeval implements Eval, EvalSExpr and Call: the tree-walking
// evaluator over the value algebra and environment model defined in the
// root lisb package. It depends on lisb only; lisbbuiltins depends on it,
// not the other way round, so a builtin may call back into Eval without an
// import cycle.
package lisbeval

import (
	"fmt"

	"lisb.dev/lisb"
)

// Eval evaluates v in env.
//
//   - Symbol looks itself up.
//   - *SExpr is handed to EvalSExpr.
//   - Everything else, including *QExpr, is returned unchanged: a QExpr is
//     data, not a calling form, and does not evaluate its contents.
func Eval(env *lisb.Environment, v lisb.Value) lisb.Value {
	switch val := v.(type) {
	case lisb.Symbol:
		r, err := env.Get(val)
		if err != nil {
			return asError(err)
		}
		return r
	case *lisb.SExpr:
		return EvalSExpr(env, val)
	default:
		return v
	}
}

// EvalSExpr evaluates an SExpr: its children left to right, then dispatches
// on how many results remain.
func EvalSExpr(env *lisb.Environment, sv *lisb.SExpr) lisb.Value {
	items := sv.Items()
	evaluated := make([]lisb.Value, len(items))
	for i, item := range items {
		r := Eval(env, item)
		if lisb.IsError(r) {
			return r
		}
		evaluated[i] = r
	}

	result := lisb.NewSExpr(evaluated...)
	switch result.Len() {
	case 0:
		return result
	case 1:
		v, _ := result.Get(0)
		return v
	}

	head, err := result.Pop(0)
	if err != nil {
		return asError(err)
	}
	fn, ok := lisb.GetFunction(head)
	if !ok {
		return lisb.NewErrorf("S-Expression must start with a function. Expected Function, got %s.", TagName(head))
	}
	return Call(env, fn, result)
}

// Call applies f to args, which have already been evaluated. For a builtin
// this is a direct delegation; for a lambda it binds formals to args one at
// a time (with "&" variadic capture), then either evaluates the body in the
// freshly spliced captured environment or, if formals remain unbound,
// returns a partially-applied copy of f.
func Call(env *lisb.Environment, f *lisb.Function, args *lisb.SExpr) lisb.Value {
	if f.IsBuiltin() {
		r, err := f.Builtin()(env, args)
		if err != nil {
			return asError(err)
		}
		return r
	}

	formals, ok := f.Formals().Copy().(*lisb.QExpr)
	if !ok {
		formals = lisb.NewQExpr()
	}
	totalFormals := formals.Len()
	totalArgs := args.Len()
	captured := f.Env().Copy()

	for args.Len() > 0 {
		if formals.Len() == 0 {
			return lisb.NewErrorf("Too many arguments given. Expected %d, given %d.", totalFormals, totalArgs)
		}
		sym, err := popFormal(formals)
		if err != nil {
			return asError(err)
		}
		if sym.IsVariadic() {
			sink, err := popFormal(formals)
			if err != nil {
				return lisb.NewError("Variadic symbol '&' not followed by exactly one symbol.")
			}
			captured.Put(sink, lisb.NewQExpr(args.Items()...))
			args = lisb.NewSExpr()
			break
		}
		v, err := args.Pop(0)
		if err != nil {
			return asError(err)
		}
		captured.Put(sym, v)
	}

	if formals.Len() > 0 {
		if first, ferr := formals.Get(0); ferr == nil {
			if sym, isSym := lisb.GetSymbol(first); isSym && sym.IsVariadic() {
				if formals.Len() != 2 {
					return lisb.NewError("Variadic symbol '&' not followed by exactly one symbol.")
				}
				_, _ = formals.Pop(0)
				sink, err := popFormal(formals)
				if err != nil {
					return asError(err)
				}
				captured.Put(sink, lisb.NewQExpr())
			}
		}
	}

	if formals.Len() == 0 {
		captured.SetParent(env)
		body, ok := f.Body().Copy().(*lisb.QExpr)
		if !ok {
			body = lisb.NewQExpr()
		}
		return Eval(captured, body.ToSExpr())
	}

	body, _ := f.Body().Copy().(*lisb.QExpr)
	return lisb.NewLambda(formals, body, captured)
}

func popFormal(formals *lisb.QExpr) (lisb.Symbol, error) {
	v, err := formals.Pop(0)
	if err != nil {
		return "", err
	}
	sym, ok := lisb.GetSymbol(v)
	if !ok {
		return "", fmt.Errorf("formal %s is not a symbol", lisb.Sprint(v))
	}
	return sym, nil
}

func asError(err error) *lisb.ErrVal {
	if ev, ok := err.(*lisb.ErrVal); ok {
		return ev
	}
	return lisb.NewError(err.Error())
}

// TagName returns the human-readable tag name of v, used in error messages
// such as the "S-Expression must start with a function" diagnostic and by
// lisbbuiltins' argument checks.
func TagName(v lisb.Value) string {
	switch v.(type) {
	case lisb.Number:
		return "Number"
	case lisb.Symbol:
		return "Symbol"
	case *lisb.ErrVal:
		return "Error"
	case *lisb.SExpr:
		return "S-Expression"
	case *lisb.QExpr:
		return "Q-Expression"
	case *lisb.Function:
		return "Function"
	default:
		return fmt.Sprintf("%T", v)
	}
}
