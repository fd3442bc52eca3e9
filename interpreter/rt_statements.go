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
	"devt.de/golox/environment"
	"devt.de/golox/loxcallable"
)

/*
execute runs one statement. A non-nil error is either a *util.RuntimeError
or a *loxcallable.Return unwinding out of a function body.
*/
func (i *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {

	case *ast.Block:
		return i.ExecuteBlock(s.Stmts, environment.NewChild(i.env))

	case *ast.Class:
		return i.executeClass(s)

	case *ast.ExprStmt:
		_, err := i.evaluate(s.Expr)
		return err

	case *ast.Function:
		fn := loxcallable.NewFunction(s, i.env, false)
		i.env.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.If:
		return i.executeIf(s)

	case *ast.Print:
		v, err := i.evaluate(s.Expr)
		if err != nil {
			return err
		}
		i.print(stringify(v))
		return nil

	case *ast.Return:
		var value interface{}
		if s.Value != nil {
			var err error
			if value, err = i.evaluate(s.Value); err != nil {
				return err
			}
		}
		return &loxcallable.Return{Value: value}

	case *ast.Var:
		var value interface{}
		if s.Initializer != nil {
			var err error
			if value, err = i.evaluate(s.Initializer); err != nil {
				return err
			}
		}
		i.env.Define(s.Name.Lexeme, value)
		return nil

	case *ast.While:
		for {
			cond, err := i.evaluate(s.Cond)
			if err != nil {
				return err
			}
			if !isTruthy(cond) {
				return nil
			}
			if err := i.execute(s.Body); err != nil {
				return err
			}
		}
	}

	return nil
}

func (i *Interpreter) executeIf(s *ast.If) error {
	cond, err := i.evaluate(s.Cond)
	if err != nil {
		return err
	}

	if isTruthy(cond) {
		return i.execute(s.Then)
	} else if s.Else != nil {
		return i.execute(s.Else)
	}
	return nil
}
