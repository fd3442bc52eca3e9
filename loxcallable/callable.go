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
Package loxcallable holds the user-defined runtime objects: functions
and classes (which are called to instantiate), both of which can appear
on the left of a call expression, and the instances classes create,
which are not callable (Section 3: Callable, Class, Instance).
*/
package loxcallable

import (
	"devt.de/golox/ast"
	"devt.de/golox/environment"
)

/*
Callable is anything that can appear before "(args)": a Function, a
Class, or a native function such as stdlib.NativeFunc.
*/
type Callable interface {
	Arity() int
	Call(interp Interp, args []interface{}) (interface{}, error)
	String() string
}

/*
Interp is the slice of the interpreter a Function needs to run its body:
executing a block of statements against a given environment. Keeping
this as a narrow interface (instead of importing package interpreter
directly) avoids an import cycle, since the interpreter needs to hold
Function and Class values in turn.
*/
type Interp interface {
	ExecuteBlock(stmts []ast.Stmt, env *environment.Environment) error
}

/*
Return is the non-local control-flow signal a "return" statement raises
(Section 4.4, DESIGN NOTES): a typed result, not an exception mimicking
panic/recover. Function.Call unwraps it; any return leaking past that
point is a bug, not a program error.
*/
type Return struct {
	Value interface{}
}

func (r *Return) Error() string {
	return "return outside of a function call"
}
