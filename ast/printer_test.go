/*
 * golox
 *
 * Copyright 2026 golox Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package ast

import (
	"strings"
	"testing"

	"devt.de/golox/token"
)

func TestPrintRendersStatementsAndExpressions(t *testing.T) {
	name := token.New(token.IDENTIFIER, "a", nil, 1)
	plus := token.New(token.PLUS, "+", nil, 1)

	stmts := []Stmt{
		&Var{Name: name, Initializer: NewBinary(NewLiteral(1.0), plus, NewLiteral(2.0))},
		&Print{Expr: NewVariable(name)},
	}

	out := Print(stmts)

	for _, want := range []string{"Var a", "Binary +", "Literal 1", "Literal 2", "Print", "Variable a"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected dump to contain %q, got:\n%s", want, out)
		}
	}
}

func TestPrintRendersClassWithSuperclassAndMethods(t *testing.T) {
	sub := token.New(token.IDENTIFIER, "B", nil, 1)
	super := token.New(token.IDENTIFIER, "A", nil, 1)
	method := token.New(token.IDENTIFIER, "greet", nil, 1)

	stmts := []Stmt{
		&Class{
			Name:       sub,
			Superclass: NewVariable(super),
			Methods:    []*Function{{Name: method}},
		},
	}

	out := Print(stmts)

	if !strings.Contains(out, "Class B < A") {
		t.Errorf("expected superclass in dump, got:\n%s", out)
	}
	if !strings.Contains(out, "Function greet") {
		t.Errorf("expected method in dump, got:\n%s", out)
	}
}
