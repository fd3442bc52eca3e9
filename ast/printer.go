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
	"bytes"
	"fmt"

	"devt.de/krotik/common/stringutil"
)

/*
Printer renders a parsed program as an indented tree, for the "golox
debug" subcommand. It has no effect on evaluation; it exists purely to
inspect what the parser built.
*/
type Printer struct {
	buf bytes.Buffer
}

/*
Print renders a full program: each top-level statement starts at indent
zero, with its child nodes on the following lines, indented two spaces
per level.
*/
func Print(stmts []Stmt) string {
	p := &Printer{}
	for _, s := range stmts {
		p.stmt(0, s)
	}
	return p.buf.String()
}

func (p *Printer) line(indent int, format string, args ...interface{}) {
	p.buf.WriteString(stringutil.GenerateRollingString(" ", indent*2))
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteString("\n")
}

func (p *Printer) stmt(indent int, s Stmt) {
	switch s := s.(type) {

	case *Block:
		p.line(indent, "Block")
		for _, st := range s.Stmts {
			p.stmt(indent+1, st)
		}

	case *Class:
		if s.Superclass != nil {
			p.line(indent, "Class %s < %s", s.Name.Lexeme, s.Superclass.Name.Lexeme)
		} else {
			p.line(indent, "Class %s", s.Name.Lexeme)
		}
		for _, m := range s.Methods {
			p.stmt(indent+1, m)
		}

	case *ExprStmt:
		p.line(indent, "ExprStmt")
		p.expr(indent+1, s.Expr)

	case *Function:
		p.line(indent, "Function %s", s.Name.Lexeme)
		for _, st := range s.Body {
			p.stmt(indent+1, st)
		}

	case *If:
		p.line(indent, "If")
		p.expr(indent+1, s.Cond)
		p.stmt(indent+1, s.Then)
		if s.Else != nil {
			p.stmt(indent+1, s.Else)
		}

	case *Print:
		p.line(indent, "Print")
		p.expr(indent+1, s.Expr)

	case *Return:
		p.line(indent, "Return")
		if s.Value != nil {
			p.expr(indent+1, s.Value)
		}

	case *Var:
		p.line(indent, "Var %s", s.Name.Lexeme)
		if s.Initializer != nil {
			p.expr(indent+1, s.Initializer)
		}

	case *While:
		p.line(indent, "While")
		p.expr(indent+1, s.Cond)
		p.stmt(indent+1, s.Body)

	default:
		p.line(indent, "<unknown stmt>")
	}
}

func (p *Printer) expr(indent int, e Expr) {
	switch e := e.(type) {

	case *Assign:
		p.line(indent, "Assign %s", e.Name.Lexeme)
		p.expr(indent+1, e.Value)

	case *Binary:
		p.line(indent, "Binary %s", e.Op.Lexeme)
		p.expr(indent+1, e.Left)
		p.expr(indent+1, e.Right)

	case *Call:
		p.line(indent, "Call")
		p.expr(indent+1, e.Callee)
		for _, a := range e.Args {
			p.expr(indent+1, a)
		}

	case *Get:
		p.line(indent, "Get %s", e.Name.Lexeme)
		p.expr(indent+1, e.Object)

	case *Grouping:
		p.line(indent, "Grouping")
		p.expr(indent+1, e.Inner)

	case *Literal:
		p.line(indent, "Literal %v", e.Value)

	case *Logical:
		p.line(indent, "Logical %s", e.Op.Lexeme)
		p.expr(indent+1, e.Left)
		p.expr(indent+1, e.Right)

	case *Set:
		p.line(indent, "Set %s", e.Name.Lexeme)
		p.expr(indent+1, e.Object)
		p.expr(indent+1, e.Value)

	case *Super:
		p.line(indent, "Super %s", e.Method.Lexeme)

	case *This:
		p.line(indent, "This")

	case *Unary:
		p.line(indent, "Unary %s", e.Op.Lexeme)
		p.expr(indent+1, e.Right)

	case *Variable:
		p.line(indent, "Variable %s", e.Name.Lexeme)

	default:
		p.line(indent, "<unknown expr>")
	}
}
