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

package lisb_test

import (
	"testing"

	"lisb.dev/lisb"
)

func TestBuiltinIsEqualByName(t *testing.T) {
	fn := func(env *lisb.Environment, args *lisb.SExpr) (lisb.Value, error) { return args, nil }
	a := lisb.NewBuiltin("head", fn)
	b := lisb.NewBuiltin("head", fn)
	c := lisb.NewBuiltin("tail", fn)
	if !a.IsEqual(b) {
		t.Error("two builtins with the same name should compare equal")
	}
	if a.IsEqual(c) {
		t.Error("two builtins with different names should not compare equal")
	}
}

func TestLambdaIsEqualIgnoresEnv(t *testing.T) {
	formals := lisb.NewQExpr(lisb.Symbol("x"))
	body := lisb.NewQExpr(lisb.Symbol("x"))
	envA := lisb.NewEnvironment(nil)
	envA.Put("y", lisb.Number(1))
	envB := lisb.NewEnvironment(nil)
	envB.Put("y", lisb.Number(2))

	a := lisb.NewLambda(formals, body, envA)
	b := lisb.NewLambda(formals.Copy().(*lisb.QExpr), body.Copy().(*lisb.QExpr), envB)
	if !a.IsEqual(b) {
		t.Error("lambdas with equal formals/body should compare equal regardless of captured env")
	}
}

func TestLambdaIsEqualDiffersOnFormals(t *testing.T) {
	body := lisb.NewQExpr(lisb.Symbol("x"))
	a := lisb.NewLambda(lisb.NewQExpr(lisb.Symbol("x")), body, nil)
	b := lisb.NewLambda(lisb.NewQExpr(lisb.Symbol("y")), body, nil)
	if a.IsEqual(b) {
		t.Error("lambdas with different formals should not compare equal")
	}
}

func TestFunctionWithEnv(t *testing.T) {
	formals := lisb.NewQExpr(lisb.Symbol("x"))
	body := lisb.NewQExpr(lisb.Symbol("x"))
	captured := lisb.NewEnvironment(nil)
	f := lisb.NewLambda(formals, body, captured)

	callSite := lisb.NewEnvironment(nil)
	f2 := f.WithEnv(callSite)
	if f2.Env() != callSite {
		t.Error("WithEnv should set the new captured environment")
	}
	if f.Env() != captured {
		t.Error("WithEnv must not mutate the original function")
	}
}

func TestBuiltinVsLambdaKind(t *testing.T) {
	b := lisb.NewBuiltin("id", func(env *lisb.Environment, args *lisb.SExpr) (lisb.Value, error) { return args, nil })
	l := lisb.NewLambda(lisb.NewQExpr(), lisb.NewQExpr(), nil)
	if !b.IsBuiltin() || b.IsLambda() {
		t.Error("a builtin-wrapped Function should report IsBuiltin, not IsLambda")
	}
	if l.IsBuiltin() || !l.IsLambda() {
		t.Error("a lambda-wrapped Function should report IsLambda, not IsBuiltin")
	}
}

func TestGetFunction(t *testing.T) {
	f := lisb.NewBuiltin("id", func(env *lisb.Environment, args *lisb.SExpr) (lisb.Value, error) { return args, nil })
	var v lisb.Value = f
	got, ok := lisb.GetFunction(v)
	if !ok || got != f {
		t.Error("expected to recover the original *Function")
	}
	if _, ok := lisb.GetFunction(lisb.Number(1)); ok {
		t.Error("a number should not be recognized as a Function")
	}
}
