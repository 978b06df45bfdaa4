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

// If implements `if`: a Number condition and two QExpr branches. The chosen
// branch is retagged to an SExpr and evaluated in the calling environment.
func If(env *lisb.Environment, args *lisb.SExpr) (lisb.Value, error) {
	if errv := checkArity("if", args, 3); errv != nil {
		return nil, errv
	}
	cond, errv := argNumber("if", args, 0)
	if errv != nil {
		return nil, errv
	}
	thenQ, errv := argQExpr("if", args, 1)
	if errv != nil {
		return nil, errv
	}
	elseQ, errv := argQExpr("if", args, 2)
	if errv != nil {
		return nil, errv
	}

	branch := elseQ
	if cond != 0 {
		branch = thenQ
	}
	return lisbeval.Eval(env, branch.ToSExpr()), nil
}
