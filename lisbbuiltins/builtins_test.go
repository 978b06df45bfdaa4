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

package lisbbuiltins_test

import (
	"testing"

	"lisb.dev/lisb"
	"lisb.dev/lisb/lisbbuiltins"
	"lisb.dev/lisb/lisbeval"
)

func rootEnv(t *testing.T) *lisb.Environment {
	t.Helper()
	env := lisb.NewEnvironment(nil)
	lisbbuiltins.Register(env)
	return env
}

func sexpr(items ...lisb.Value) *lisb.SExpr { return lisb.NewSExpr(items...) }
func qexpr(items ...lisb.Value) *lisb.QExpr { return lisb.NewQExpr(items...) }

func num(n int64) lisb.Number { return lisb.Number(n) }
func sym(s string) lisb.Symbol { return lisb.Symbol(s) }

func TestScenarioAddition(t *testing.T) {
	env := rootEnv(t)
	r := lisbeval.Eval(env, sexpr(sym("+"), num(1), num(2), num(3)))
	if !r.IsEqual(num(6)) {
		t.Errorf("expected 6, got %v", r)
	}
}

func TestScenarioNegate(t *testing.T) {
	env := rootEnv(t)
	r := lisbeval.Eval(env, sexpr(sym("-"), num(5)))
	if !r.IsEqual(num(-5)) {
		t.Errorf("expected -5, got %v", r)
	}
}

func TestScenarioDivisionByZero(t *testing.T) {
	env := rootEnv(t)
	r := lisbeval.Eval(env, sexpr(sym("/"), num(10), num(0)))
	ev, ok := lisb.GetError(r)
	if !ok || ev.Msg != "Division by zero" {
		t.Errorf("expected 'Division by zero', got %v", r)
	}
}

func TestScenarioHead(t *testing.T) {
	env := rootEnv(t)
	r := lisbeval.Eval(env, sexpr(sym("head"), qexpr(num(1), num(2), num(3))))
	if !r.IsEqual(qexpr(num(1))) {
		t.Errorf("expected {1}, got %v", r)
	}
}

func TestScenarioEvalTailTail(t *testing.T) {
	env := rootEnv(t)
	// (eval (tail {tail tail {5 6 7}}))
	inner := qexpr(sym("tail"), sym("tail"), qexpr(num(5), num(6), num(7)))
	expr := sexpr(sym("eval"), sexpr(sym("tail"), inner))
	r := lisbeval.Eval(env, expr)
	if !r.IsEqual(qexpr(num(6), num(7))) {
		t.Errorf("expected {6 7}, got %v", r)
	}
}

func TestScenarioDefAndCallLambda(t *testing.T) {
	env := rootEnv(t)
	def := sexpr(sym("def"), qexpr(sym("add-mul")),
		sexpr(sym("lambda"), qexpr(sym("x"), sym("y")), qexpr(sexpr(sym("+"), sym("x"), sexpr(sym("*"), sym("x"), sym("y"))))))
	r1 := lisbeval.Eval(env, def)
	if !r1.IsNil() {
		t.Errorf("expected () from def, got %v", r1)
	}

	call := sexpr(sym("add-mul"), num(10), num(20))
	r2 := lisbeval.Eval(env, call)
	if !r2.IsEqual(num(210)) {
		t.Errorf("expected 210, got %v", r2)
	}
}

func TestScenarioVariadicLambda(t *testing.T) {
	env := rootEnv(t)
	lam := sexpr(sym("lambda"), qexpr(sym("x"), lisb.VariadicMarker, sym("xs")), qexpr(sym("xs")))
	call := sexpr(lam, num(1), num(2), num(3), num(4))
	r := lisbeval.Eval(env, call)
	if !r.IsEqual(qexpr(num(2), num(3), num(4))) {
		t.Errorf("expected {2 3 4}, got %v", r)
	}
}

func TestScenarioIf(t *testing.T) {
	env := rootEnv(t)
	expr := sexpr(sym("if"), sexpr(sym(">"), num(2), num(1)),
		qexpr(sexpr(sym("+"), num(1), num(1))),
		qexpr(sexpr(sym("-"), num(1), num(1))))
	r := lisbeval.Eval(env, expr)
	if !r.IsEqual(num(2)) {
		t.Errorf("expected 2, got %v", r)
	}
}

func TestScenarioStructuralEquality(t *testing.T) {
	env := rootEnv(t)
	expr := sexpr(sym("=="), qexpr(num(1), num(2), num(3)), qexpr(num(1), num(2), num(3)))
	r := lisbeval.Eval(env, expr)
	if !r.IsEqual(num(1)) {
		t.Errorf("expected 1, got %v", r)
	}
}

func TestScenarioUnboundSymbol(t *testing.T) {
	env := rootEnv(t)
	r := lisbeval.Eval(env, sym("foo"))
	ev, ok := lisb.GetError(r)
	if !ok || ev.Msg != "key 'foo' not in environment" {
		t.Errorf("expected unbound-symbol error, got %v", r)
	}
}

func TestDefIsVisibleFromNestedScope(t *testing.T) {
	env := rootEnv(t)
	lisbeval.Eval(env, sexpr(sym("def"), qexpr(sym("g")), num(1)))

	child := lisb.NewEnvironment(env)
	r, err := child.Get("g")
	if err != nil || !r.IsEqual(num(1)) {
		t.Errorf("expected def to be visible from a nested frame, got %v, err=%v", r, err)
	}
}

func TestPutIsLocalOnly(t *testing.T) {
	env := rootEnv(t)
	child := lisb.NewEnvironment(env)
	lisbeval.Eval(child, sexpr(sym("="), qexpr(sym("l")), num(1)))

	if _, err := env.Get("l"); err == nil {
		t.Error("'=' must not leak a binding into the parent frame")
	}
	if _, err := child.Get("l"); err != nil {
		t.Errorf("'=' should bind visibly in the current frame: %v", err)
	}
}

func TestDefEmptyIsNoOp(t *testing.T) {
	env := rootEnv(t)
	r := lisbeval.Eval(env, sexpr(sym("def"), qexpr()))
	if !r.IsNil() {
		t.Errorf("expected () for (def {}), got %v", r)
	}
}

func TestHeadTypeError(t *testing.T) {
	env := rootEnv(t)
	r := lisbeval.Eval(env, sexpr(sym("head"), num(5)))
	ev, ok := lisb.GetError(r)
	if !ok {
		t.Fatalf("expected an error, got %v", r)
	}
	want := "'head' passed incorrect type for argument 0. Expected Q-Expression, got Number."
	if ev.Msg != want {
		t.Errorf("expected %q, got %q", want, ev.Msg)
	}
}

func TestHeadEmptyError(t *testing.T) {
	env := rootEnv(t)
	r := lisbeval.Eval(env, sexpr(sym("head"), qexpr()))
	ev, ok := lisb.GetError(r)
	if !ok || ev.Msg != "'head' passed {} for argument 0." {
		t.Errorf("expected empty-argument error, got %v", r)
	}
}
