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

	"devt.de/golox/token"
	"devt.de/golox/util"
)

/*
Instance is a runtime instance of a Class: its own field map plus a
reference to the class for method lookup (Section 3).
*/
type Instance struct {
	class  *Class
	fields map[string]interface{}
}

/*
NewInstance creates a fresh, field-less instance of class.
*/
func NewInstance(class *Class) *Instance {
	return &Instance{class: class, fields: make(map[string]interface{})}
}

/*
Get reads a property: fields shadow methods, and a method is bound to
this instance before it is returned (Section 3, Section 5). Accessing an
undefined property is a RuntimeError.
*/
func (i *Instance) Get(name token.Token) (interface{}, error) {
	if v, ok := i.fields[name.Lexeme]; ok {
		return v, nil
	}

	if m := i.class.FindMethod(name.Lexeme); m != nil {
		return m.Bind(i), nil
	}

	return nil, util.NewRuntimeError(util.ErrUndefinedProperty,
		fmt.Sprintf("Undefined property '%s'.", name.Lexeme), name)
}

/*
Set assigns a field, creating it if it does not already exist (Section
3: fields are not pre-declared).
*/
func (i *Instance) Set(name token.Token, value interface{}) {
	i.fields[name.Lexeme] = value
}

/*
String renders an instance value the way "print" shows it (Section 3).
*/
func (i *Instance) String() string {
	return fmt.Sprintf("<%s> instance", i.class.Name)
}
