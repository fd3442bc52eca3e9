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
	"devt.de/golox/ast"
	"devt.de/golox/token"
)

func (i *Interpreter) evalVariable(e *ast.Variable) (interface{}, error) {
	return i.lookUpVariable(e.Name, e)
}

/*
lookUpVariable consults the resolver's distance map first; a NodeID
absent from it (a global, or a name the resolver never saw because
resolution failed) falls back to a dynamic lookup from the globals
environment (Section 5, Section 4.3).
*/
func (i *Interpreter) lookUpVariable(name token.Token, e ast.Expr) (interface{}, error) {
	if distance, ok := i.locals[e.NodeID()]; ok {
		return i.env.GetAt(distance, name.Lexeme), nil
	}
	return i.Globals.Get(name)
}

func (i *Interpreter) evalAssign(e *ast.Assign) (interface{}, error) {
	value, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}

	if distance, ok := i.locals[e.NodeID()]; ok {
		i.env.AssignAt(distance, e.Name, value)
	} else if err := i.Globals.Assign(e.Name, value); err != nil {
		return nil, err
	}

	return value, nil
}
