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

/*
Class is a Lox class: a name, an optional superclass and its own method
table. Calling a Class instantiates it (Section 3).
*/
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

/*
NewClass creates a class value.
*/
func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{Name: name, Superclass: superclass, Methods: methods}
}

/*
FindMethod looks a method up on this class, falling back to the
superclass chain (Section 3, single inheritance).
*/
func (c *Class) FindMethod(name string) *Function {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil
}

/*
Arity is the arity of "init", or 0 if the class declares none.
*/
func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

/*
Call instantiates the class, running its "init" method (if any) against
the new instance.
*/
func (c *Class) Call(interp Interp, args []interface{}) (interface{}, error) {
	instance := NewInstance(c)

	if init := c.FindMethod("init"); init != nil {
		if _, err := init.Bind(instance).Call(interp, args); err != nil {
			return nil, err
		}
	}

	return instance, nil
}

/*
String renders a class value the way "print" shows it: by name alone
(Section 4.6 stringification table).
*/
func (c *Class) String() string {
	return c.Name
}
