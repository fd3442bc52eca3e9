/*
 * golox
 *
 * Copyright 2026 golox Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"bytes"
	"strings"
	"testing"

	"devt.de/golox/ast"
	"devt.de/golox/scanner"
	"devt.de/golox/util"
)

func parse(src string) ([]ast.Stmt, *util.DiagnosticSink) {
	sink := util.New(&bytes.Buffer{})
	s := scanner.New(src, sink)
	p := New(s.ScanTokens(), sink)
	return p.Parse(), sink
}

func TestParseExpressionStatement(t *testing.T) {
	stmts, sink := parse("1 + 2 * 3;")

	if sink.HadError() {
		t.Fatal("unexpected parse error")
	}
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}

	es, ok := stmts[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("expected ExprStmt, got %T", stmts[0])
	}

	bin, ok := es.Expr.(*ast.Binary)
	if !ok || bin.Op.Lexeme != "+" {
		t.Fatalf("expected top-level '+' binary, got %#v", es.Expr)
	}
}

func TestParseVarAndPrint(t *testing.T) {
	stmts, sink := parse(`var a = "hi"; print a;`)

	if sink.HadError() {
		t.Fatal("unexpected parse error")
	}
	if len(stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(stmts))
	}

	if _, ok := stmts[0].(*ast.Var); !ok {
		t.Fatalf("expected Var, got %T", stmts[0])
	}
	if _, ok := stmts[1].(*ast.Print); !ok {
		t.Fatalf("expected Print, got %T", stmts[1])
	}
}

func TestParseClassWithSuperclass(t *testing.T) {
	stmts, sink := parse(`class B < A { m() { return 1; } }`)

	if sink.HadError() {
		t.Fatal("unexpected parse error")
	}

	cls, ok := stmts[0].(*ast.Class)
	if !ok {
		t.Fatalf("expected Class, got %T", stmts[0])
	}
	if cls.Superclass == nil || cls.Superclass.Name.Lexeme != "A" {
		t.Fatalf("expected superclass A, got %#v", cls.Superclass)
	}
	if len(cls.Methods) != 1 || cls.Methods[0].Name.Lexeme != "m" {
		t.Fatalf("expected one method 'm', got %#v", cls.Methods)
	}
}

func TestForDesugarsToWhile(t *testing.T) {
	stmts, sink := parse(`for (var i = 0; i < 3; i = i + 1) print i;`)

	if sink.HadError() {
		t.Fatal("unexpected parse error")
	}

	block, ok := stmts[0].(*ast.Block)
	if !ok || len(block.Stmts) != 2 {
		t.Fatalf("expected desugared 2-stmt block, got %#v", stmts[0])
	}
	if _, ok := block.Stmts[0].(*ast.Var); !ok {
		t.Fatalf("expected initializer Var, got %T", block.Stmts[0])
	}
	wh, ok := block.Stmts[1].(*ast.While)
	if !ok {
		t.Fatalf("expected While, got %T", block.Stmts[1])
	}
	body, ok := wh.Body.(*ast.Block)
	if !ok || len(body.Stmts) != 2 {
		t.Fatalf("expected body+increment block, got %#v", wh.Body)
	}
}

func TestParseErrorReportsAndSynchronizes(t *testing.T) {
	var out bytes.Buffer
	sink := util.New(&out)
	s := scanner.New("var ; print 1;", sink)
	p := New(s.ScanTokens(), sink)
	stmts := p.Parse()

	if !sink.HadError() {
		t.Fatal("expected a reported parse error")
	}
	if !strings.Contains(out.String(), "Error") {
		t.Fatalf("expected diagnostic output, got %q", out.String())
	}

	found := false
	for _, s := range stmts {
		if pr, ok := s.(*ast.Print); ok {
			if lit, ok := pr.Expr.(*ast.Literal); ok && lit.Value == float64(1) {
				found = true
			}
		}
	}
	if !found {
		t.Fatal("expected parser to recover and parse the trailing print statement")
	}
}
