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
	"strconv"
	"strings"

	"devt.de/golox/ast"
	"devt.de/krotik/common/stringutil"
)

/*
evaluate runs one expression to a Go value: nil, bool, float64, string,
or a loxcallable.Callable/*loxcallable.Instance (Section 3).
*/
func (i *Interpreter) evaluate(expr ast.Expr) (interface{}, error) {
	switch e := expr.(type) {

	case *ast.Assign:
		return i.evalAssign(e)

	case *ast.Binary:
		return i.evalBinary(e)

	case *ast.Call:
		return i.evalCall(e)

	case *ast.Get:
		return i.evalGet(e)

	case *ast.Grouping:
		return i.evaluate(e.Inner)

	case *ast.Literal:
		return e.Value, nil

	case *ast.Logical:
		return i.evalLogical(e)

	case *ast.Set:
		return i.evalSet(e)

	case *ast.Super:
		return i.evalSuper(e)

	case *ast.This:
		return i.evalThis(e)

	case *ast.Unary:
		return i.evalUnary(e)

	case *ast.Variable:
		return i.evalVariable(e)
	}

	return nil, nil
}

/*
stringify renders a value the way "print" shows it (Section 3): numbers drop a trailing ".0", nil prints as "nil", and anything else
(functions, classes, instances) falls back to its own String(), or to
the teacher's generic stringutil.ConvertToString for values this package
has no opinion on.
*/
func stringify(v interface{}) string {
	if v == nil {
		return "nil"
	}

	switch val := v.(type) {
	case bool:
		return strconv.FormatBool(val)
	case float64:
		text := strconv.FormatFloat(val, 'f', -1, 64)
		return strings.TrimSuffix(text, ".0")
	case string:
		return val
	case interface{ String() string }:
		return val.String()
	default:
		return stringutil.ConvertToString(val)
	}
}
