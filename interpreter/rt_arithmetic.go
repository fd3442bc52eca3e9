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
	"devt.de/golox/util"
)

func (i *Interpreter) evalUnary(e *ast.Unary) (interface{}, error) {
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Type {
	case token.MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, util.NewRuntimeError(util.ErrNotANumber, "Operand must be a number.", e.Op)
		}
		return -n, nil
	case token.BANG:
		return !isTruthy(right), nil
	}

	return nil, nil
}

/*
evalBinary implements Section 3's arithmetic, comparison, "+" overload
and equality operators. Division and comparisons require both operands
to be numbers; "+" additionally accepts two strings for concatenation.
*/
func (i *Interpreter) evalBinary(e *ast.Binary) (interface{}, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Type {
	case token.PLUS:
		if ln, ok := left.(float64); ok {
			if rn, ok := right.(float64); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs, nil
			}
		}
		return nil, util.NewRuntimeError(util.ErrNotANumberOrString,
			"Operands must be two numbers or two strings.", e.Op)

	case token.MINUS:
		ln, rn, err := i.numOperands(left, right, e.Op)
		if err != nil {
			return nil, err
		}
		return ln - rn, nil

	case token.STAR:
		ln, rn, err := i.numOperands(left, right, e.Op)
		if err != nil {
			return nil, err
		}
		return ln * rn, nil

	case token.SLASH:
		ln, rn, err := i.numOperands(left, right, e.Op)
		if err != nil {
			return nil, err
		}
		return ln / rn, nil

	case token.GREATER:
		ln, rn, err := i.numOperands(left, right, e.Op)
		if err != nil {
			return nil, err
		}
		return ln > rn, nil

	case token.GREATER_EQUAL:
		ln, rn, err := i.numOperands(left, right, e.Op)
		if err != nil {
			return nil, err
		}
		return ln >= rn, nil

	case token.LESS:
		ln, rn, err := i.numOperands(left, right, e.Op)
		if err != nil {
			return nil, err
		}
		return ln < rn, nil

	case token.LESS_EQUAL:
		ln, rn, err := i.numOperands(left, right, e.Op)
		if err != nil {
			return nil, err
		}
		return ln <= rn, nil

	case token.BANG_EQUAL:
		return !isEqual(left, right), nil

	case token.EQUAL_EQUAL:
		return isEqual(left, right), nil
	}

	return nil, nil
}

func (i *Interpreter) numOperands(left, right interface{}, op token.Token) (float64, float64, error) {
	ln, lok := left.(float64)
	rn, rok := right.(float64)
	if !lok || !rok {
		return 0, 0, util.NewRuntimeError(util.ErrNotANumber, "Operands must be numbers.", op)
	}
	return ln, rn, nil
}

func (i *Interpreter) evalLogical(e *ast.Logical) (interface{}, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}

	if e.Op.Type == token.OR {
		if isTruthy(left) {
			return left, nil
		}
	} else {
		if !isTruthy(left) {
			return left, nil
		}
	}

	return i.evaluate(e.Right)
}
