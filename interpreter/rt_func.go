/*
 * golox
 *
 * Copyright 2026 golox Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package interpreter

import (
	"fmt"

	"devt.de/golox/ast"
	"devt.de/golox/environment"
	"devt.de/golox/loxcallable"
	"devt.de/golox/util"
)

/*
executeClass declares a class, resolving its superclass (if any) and
binding each method's closure to an environment carrying "super"
(Section 3, Section 5).
*/
func (i *Interpreter) executeClass(s *ast.Class) error {
	var superclass *loxcallable.Class

	if s.Superclass != nil {
		v, err := i.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*loxcallable.Class)
		if !ok {
			return util.NewRuntimeError(util.ErrSuperclassNotClass,
				"Superclass must be a class.", s.Superclass.Name)
		}
		superclass = sc
	}

	i.env.Define(s.Name.Lexeme, nil)

	methodEnv := i.env
	if s.Superclass != nil {
		methodEnv = environment.NewChild(i.env)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*loxcallable.Function)
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = loxcallable.NewFunction(m, methodEnv, m.Name.Lexeme == "init")
	}

	class := loxcallable.NewClass(s.Name.Lexeme, superclass, methods)
	return i.env.Assign(s.Name, class)
}

/*
evalCall evaluates a call expression, checking that the callee is
callable and that the argument count matches its arity (Section 3,
Section 7).
*/
func (i *Interpreter) evalCall(e *ast.Call) (interface{}, error) {
	callee, err := i.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]interface{}, len(e.Args))
	for idx, a := range e.Args {
		v, err := i.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}

	fn, ok := callee.(loxcallable.Callable)
	if !ok {
		return nil, util.NewRuntimeError(util.ErrNotCallable,
			"Can only call functions and classes.", e.Paren)
	}

	if len(args) != fn.Arity() {
		return nil, util.NewRuntimeError(util.ErrArity,
			fmt.Sprintf("Expected %d arguments but got %d.", fn.Arity(), len(args)), e.Paren)
	}

	return fn.Call(i, args)
}

func (i *Interpreter) evalGet(e *ast.Get) (interface{}, error) {
	object, err := i.evaluate(e.Object)
	if err != nil {
		return nil, err
	}

	instance, ok := object.(*loxcallable.Instance)
	if !ok {
		return nil, util.NewRuntimeError(util.ErrOnlyInstancesHaveProperties,
			"Only instances have properties.", e.Name)
	}

	return instance.Get(e.Name)
}

func (i *Interpreter) evalSet(e *ast.Set) (interface{}, error) {
	object, err := i.evaluate(e.Object)
	if err != nil {
		return nil, err
	}

	instance, ok := object.(*loxcallable.Instance)
	if !ok {
		return nil, util.NewRuntimeError(util.ErrOnlyInstancesHaveProperties,
			"Only instances have fields.", e.Name)
	}

	value, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}

	instance.Set(e.Name, value)
	return value, nil
}

func (i *Interpreter) evalThis(e *ast.This) (interface{}, error) {
	return i.lookUpVariable(e.Keyword, e)
}

/*
evalSuper resolves a method off the superclass bound at the static
distance recorded for this expression, then binds it to "this" (the
instance one environment closer in, by construction; Section 3).
*/
func (i *Interpreter) evalSuper(e *ast.Super) (interface{}, error) {
	distance, ok := i.locals[e.NodeID()]
	if !ok {
		return nil, util.NewRuntimeError(util.ErrUndefinedVariable, "Undefined variable 'super'.", e.Keyword)
	}

	superclass := i.env.GetAt(distance, "super").(*loxcallable.Class)
	instance := i.env.GetAt(distance-1, "this").(*loxcallable.Instance)

	method := superclass.FindMethod(e.Method.Lexeme)
	if method == nil {
		return nil, util.NewRuntimeError(util.ErrUndefinedSuperMethod,
			fmt.Sprintf("Undefined property '%s'.", e.Method.Lexeme), e.Method)
	}

	return method.Bind(instance), nil
}
