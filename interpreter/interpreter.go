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
Package interpreter walks the tree produced by package parser and
resolved by package resolver, evaluating it directly (Section 5). There
is no bytecode and no separate Visitor interface: dispatch is a type
switch over the closed ast.Expr/ast.Stmt sums (DESIGN NOTES).
*/
package interpreter

import (
	"io"
	"os"

	"devt.de/golox/ast"
	"devt.de/golox/environment"
	"devt.de/golox/loxcallable"
	"devt.de/golox/stdlib"
	"devt.de/golox/util"
)

/*
Interpreter evaluates a resolved program. The REPL builds a fresh
Interpreter for every line, so top-level variables do not persist
between lines (Section 6).
*/
type Interpreter struct {
	Globals *environment.Environment

	env    *environment.Environment
	locals map[int]int
	sink   *util.DiagnosticSink
	stdout io.Writer
}

/*
New creates an Interpreter with its global environment populated with
the standard library (Section "DOMAIN STACK"). Output goes to stdout;
use NewWithOutput in tests to capture it.
*/
func New(sink *util.DiagnosticSink) *Interpreter {
	return NewWithOutput(sink, os.Stdout)
}

/*
NewWithOutput is New with an explicit output writer for "print".
*/
func NewWithOutput(sink *util.DiagnosticSink, out io.Writer) *Interpreter {
	globals := environment.New()
	stdlib.Install(globals)
	return &Interpreter{Globals: globals, env: globals, sink: sink, stdout: out}
}

/*
SetLocals installs the resolver's NodeID -> depth map for this run.
*/
func (i *Interpreter) SetLocals(locals map[int]int) {
	i.locals = locals
}

func (i *Interpreter) print(s string) {
	io.WriteString(i.stdout, s)
	io.WriteString(i.stdout, "\n")
}

/*
Interpret runs a whole program, statement by statement. A RuntimeError
is reported to the sink and stops execution of the remaining statements,
matching the reference driver (Section 6, Section 7).
*/
func (i *Interpreter) Interpret(stmts []ast.Stmt) {
	for _, s := range stmts {
		if err := i.execute(s); err != nil {
			if rerr, ok := err.(*util.RuntimeError); ok {
				i.sink.ReportRuntimeError(rerr)
			}
			return
		}
	}
}

/*
ExecuteBlock runs stmts against env, satisfying loxcallable.Interp so a
Function can ask the interpreter to run its body. A "return" statement
surfaces here as a *loxcallable.Return error, which Function.Call
unwraps; any other error is a genuine RuntimeError and propagates as-is.
*/
func (i *Interpreter) ExecuteBlock(stmts []ast.Stmt, env *environment.Environment) error {
	previous := i.env
	i.env = env
	defer func() { i.env = previous }()

	for _, s := range stmts {
		if err := i.execute(s); err != nil {
			return err
		}
	}

	return nil
}

var _ loxcallable.Interp = (*Interpreter)(nil)
