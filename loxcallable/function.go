/*
 * golox
 *
 * Copyright 2026 golox Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package loxcallable

import (
	"fmt"

	"devt.de/golox/ast"
	"devt.de/golox/environment"
	"devt.de/golox/util"
)

/*
Function is a user-declared function or method, carrying the
environment it closed over at declaration time (Section 5, closures).
*/
type Function struct {
	declaration   *ast.Function
	closure       *environment.Environment
	isInitializer bool
}

/*
NewFunction wraps a parsed function declaration as a callable value.
isInitializer marks a class's "init" method, whose implicit return value
is always the instance regardless of what the body returns (Section 3).
*/
func NewFunction(declaration *ast.Function, closure *environment.Environment, isInitializer bool) *Function {
	return &Function{declaration: declaration, closure: closure, isInitializer: isInitializer}
}

/*
Bind returns a copy of this method with "this" (and, transitively,
"super") bound to instance, used each time a method is looked up off an
instance (Section 3).
*/
func (f *Function) Bind(instance *Instance) *Function {
	env := environment.NewChild(f.closure)
	env.Define("this", instance)
	return NewFunction(f.declaration, env, f.isInitializer)
}

/*
Arity returns the number of declared parameters.
*/
func (f *Function) Arity() int {
	return len(f.declaration.Params)
}

/*
Call runs the function body in a fresh environment chained off its
closure, with parameters bound to args.
*/
func (f *Function) Call(interp Interp, args []interface{}) (interface{}, error) {
	env := environment.NewChild(f.closure)
	for i, p := range f.declaration.Params {
		env.Define(p.Lexeme, args[i])
	}

	err := interp.ExecuteBlock(f.declaration.Body, env)

	if ret, ok := err.(*Return); ok {
		if f.isInitializer {
			return f.closure.GetAt(0, "this"), nil
		}
		return ret.Value, nil
	}

	if err != nil {
		if rerr, ok := err.(*util.RuntimeError); ok {
			rerr.AddTrace(fmt.Sprintf("in %s (line %d)",
				f.String(), f.declaration.Name.Line))
		}
		return nil, err
	}

	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}

	return nil, nil
}

/*
String renders a function value the way "print" shows it (Section 3).
*/
func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.declaration.Name.Lexeme)
}
