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
Package stdlib holds the handful of native bindings Lox exposes to
running programs (Section 4.5/6: a single "clock" intrinsic). NativeFunc
is a small reflect-based adapter - the same bridging idea as the
teacher's ECALFunctionAdapter - so adding another native binding later is
a one-line Install call rather than a hand-written Callable.
*/
package stdlib

import (
	"fmt"
	"reflect"

	"devt.de/golox/environment"
	"devt.de/golox/loxcallable"
)

/*
NativeFunc adapts an arbitrary Go function to loxcallable.Callable via
reflection: argument count becomes Arity, and Call coerces each Lox
argument (always a float64, bool, string, nil or object) to the Go
parameter type it lines up with, the same coercion ECALFunctionAdapter
performs for ECAL's inbuild functions.
*/
type NativeFunc struct {
	name string
	fn   reflect.Value
}

/*
NewNativeFunc wraps fn, a Go function value, as a native Lox callable
named name. The name appears in the error Call returns when fn panics;
String() does not include it.
*/
func NewNativeFunc(name string, fn interface{}) *NativeFunc {
	return &NativeFunc{name: name, fn: reflect.ValueOf(fn)}
}

/*
Arity is the number of parameters the wrapped Go function declares.
*/
func (n *NativeFunc) Arity() int {
	return n.fn.Type().NumIn()
}

/*
Call coerces each argument to the wrapped function's declared parameter
type and invokes it, converting a lone numeric result back to float64 so
it behaves like any other Lox number.
*/
func (n *NativeFunc) Call(interp loxcallable.Interp, args []interface{}) (ret interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("native function %q failed: %v", n.name, r)
		}
	}()

	fnType := n.fn.Type()
	fargs := make([]reflect.Value, len(args))

	for i, arg := range args {
		expected := fnType.In(i)

		if f, ok := arg.(float64); ok && expected.Kind() != reflect.Float64 && expected.Kind() != reflect.Interface {
			fargs[i] = reflect.ValueOf(f).Convert(expected)
			continue
		}

		fargs[i] = reflect.ValueOf(arg)
	}

	results := n.fn.Call(fargs)
	if len(results) == 0 {
		return nil, nil
	}

	out := results[0].Interface()
	switch results[0].Kind() {
	case reflect.Float32, reflect.Float64:
		return results[0].Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(results[0].Int()), nil
	}
	return out, nil
}

/*
String renders a native function the way "print" shows it (Section 3).
*/
func (n *NativeFunc) String() string {
	return "<native fn>"
}

/*
Install binds the standard library into globals: just "clock", per
Non-goals ("no standard library beyond a single clock intrinsic").
*/
func Install(globals *environment.Environment) {
	globals.Define("clock", NewNativeFunc("clock", clock))
}
