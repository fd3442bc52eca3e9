/*
 * golox
 *
 * Copyright 2026 golox Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package environment implements the chained variable scopes a running
program evaluates against (Section 5): a fresh scope for the globals,
one more per block/call, each pointing at its enclosing parent.
*/
package environment

import (
	"bytes"
	"fmt"
	"sort"

	"devt.de/golox/token"
	"devt.de/golox/util"
	"devt.de/krotik/common/errorutil"
)

/*
Environment is one lexical scope's variable storage, linked to its
enclosing scope.
*/
type Environment struct {
	parent  *Environment
	storage map[string]interface{}
}

/*
New creates the top-level (global) environment.
*/
func New() *Environment {
	return &Environment{storage: make(map[string]interface{})}
}

/*
NewChild creates a new scope enclosed by this one, e.g. for a block or a
function call.
*/
func NewChild(parent *Environment) *Environment {
	return &Environment{parent: parent, storage: make(map[string]interface{})}
}

/*
Parent returns the enclosing environment, or nil for the globals.
*/
func (e *Environment) Parent() *Environment {
	return e.parent
}

/*
Define binds name to value in this scope, shadowing any binding of the
same name in an enclosing scope. Re-declaring a name already defined in
this same scope is allowed (Section 5, edge case).
*/
func (e *Environment) Define(name string, value interface{}) {
	e.storage[name] = value
}

/*
Get looks a variable up, walking outward through enclosing scopes. It
reports a RuntimeError for a name that is never defined (Section 5).
*/
func (e *Environment) Get(name token.Token) (interface{}, error) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.storage[name.Lexeme]; ok {
			return v, nil
		}
	}
	return nil, util.NewRuntimeError(util.ErrUndefinedVariable,
		fmt.Sprintf("Undefined variable '%s'.", name.Lexeme), name)
}

/*
Assign rebinds an already-defined variable, walking outward through
enclosing scopes. It reports a RuntimeError for a name that is never
defined; unlike Define, Assign never creates a new binding (Section 5).
*/
func (e *Environment) Assign(name token.Token, value interface{}) error {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.storage[name.Lexeme]; ok {
			env.storage[name.Lexeme] = value
			return nil
		}
	}
	return util.NewRuntimeError(util.ErrUndefinedVariable,
		fmt.Sprintf("Undefined variable '%s'.", name.Lexeme), name)
}

/*
ancestor walks exactly distance scopes outward. The resolver guarantees
that distance is always reachable, so a miss here means the resolver and
the interpreter have fallen out of sync; errorutil.AssertTrue turns that
programmer error into an immediate panic instead of a silent nil lookup.
*/
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		errorutil.AssertTrue(env.parent != nil,
			"environment chain shorter than resolver-reported distance")
		env = env.parent
	}
	return env
}

/*
GetAt reads a variable known (via the resolver) to live exactly distance
scopes out from e.
*/
func (e *Environment) GetAt(distance int, name string) interface{} {
	return e.ancestor(distance).storage[name]
}

/*
AssignAt rebinds a variable known (via the resolver) to live exactly
distance scopes out from e.
*/
func (e *Environment) AssignAt(distance int, name token.Token, value interface{}) {
	e.ancestor(distance).storage[name.Lexeme] = value
}

/*
String renders this environment and its ancestors, innermost first, for
debugging. Grounded on the teacher's scope dump (Section 5 is silent on
format; this is diagnostic-only, never evaluated).
*/
func (e *Environment) String() string {
	var buf bytes.Buffer
	for env := e; env != nil; env = env.parent {
		names := make([]string, 0, len(env.storage))
		for k := range env.storage {
			names = append(names, k)
		}
		sort.Strings(names)

		buf.WriteString("{\n")
		for _, n := range names {
			fmt.Fprintf(&buf, "    %s : %v\n", n, env.storage[n])
		}
		buf.WriteString("}\n")
	}
	return buf.String()
}
