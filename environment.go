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

package lisb

import "fmt"

// Environment is a frame: an ordered mapping from Symbol to Value, plus an
// optional parent Environment. The frame with no parent is the root.
//
// Get and Put copy on the way in and out: an entry in the environment is
// independent of any caller's handle, so no two holders ever share a
// mutable Value.
type Environment struct {
	vars   map[Symbol]Value
	names  []Symbol // insertion order, for Copy; observable order is not guaranteed
	parent *Environment
}

// NewEnvironment creates a fresh frame with the given optional parent.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{vars: make(map[Symbol]Value), parent: parent}
}

// Parent returns env's parent frame, or nil if env is the root.
func (env *Environment) Parent() *Environment { return env.parent }

// IsRoot reports whether env has no parent.
func (env *Environment) IsRoot() bool { return env.parent == nil }

// Root walks parent links and returns the root frame.
func (env *Environment) Root() *Environment {
	for e := env; ; e = e.parent {
		if e.parent == nil {
			return e
		}
	}
}

// SetParent re-parents env to the given frame. This is the "dynamic splice"
// the evaluator performs when it calls a lambda: the lambda's captured
// frame is re-parented to the call-site environment for the duration of
// the call.
func (env *Environment) SetParent(parent *Environment) { env.parent = parent }

// Get looks up sym, walking parent links on a local miss, and returns a copy
// of the bound value. If the symbol isn't bound anywhere up to and
// including the root, it fails with an "not in environment" error.
func (env *Environment) Get(sym Symbol) (Value, error) {
	for e := env; e != nil; e = e.parent {
		if v, found := e.vars[sym]; found {
			return v.Copy(), nil
		}
	}
	return nil, NewErrorf("key '%s' not in environment", sym)
}

// Put binds sym to a copy of v in the current frame only, replacing any
// existing binding. It never touches a parent frame.
func (env *Environment) Put(sym Symbol, v Value) {
	if _, found := env.vars[sym]; !found {
		env.names = append(env.names, sym)
	}
	env.vars[sym] = v.Copy()
}

// PutGlobal walks parent links to the root frame, then binds sym there.
func (env *Environment) PutGlobal(sym Symbol, v Value) { env.Root().Put(sym, v) }

// Copy returns a deep copy of env's own frame: every bound value is itself
// copied. The parent link is copied as a reference, not recursively.
func (env *Environment) Copy() *Environment {
	cp := &Environment{
		vars:   make(map[Symbol]Value, len(env.vars)),
		names:  append([]Symbol{}, env.names...),
		parent: env.parent,
	}
	for sym, v := range env.vars {
		cp.vars[sym] = v.Copy()
	}
	return cp
}

// String returns a short diagnostic representation, not part of the
// printed-value surface.
func (env *Environment) String() string {
	return fmt.Sprintf("#<env:%d local, root=%v>", len(env.vars), env.IsRoot())
}
