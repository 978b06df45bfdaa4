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

// entries is the fixed table of name/implementation pairs bound into the
// root environment by Register.
var entries = []struct {
	name string
	fn   lisb.BuiltinFn
}{
	{"list", List},
	{"head", Head},
	{"tail", Tail},
	{"join", Join},
	{"eval", Eval},

	{"+", Add},
	{"-", Sub},
	{"*", Mul},
	{"/", Div},

	{"==", Eq},
	{"!=", Ne},
	{">", Greater},
	{"<", Less},
	{">=", GreaterEq},
	{"<=", LessEq},

	{"if", If},

	{"lambda", Lambda},
	{"def", Def},
	{"=", Put},
}

// Register binds every builtin in the fixed table into root.
func Register(root *lisb.Environment) {
	for _, e := range entries {
		root.Put(lisb.Symbol(e.name), lisb.NewBuiltin(e.name, e.fn))
	}
}
