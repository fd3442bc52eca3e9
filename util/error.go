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
Package util holds the diagnostic plumbing shared by every stage of the
pipeline: the typed compile- and run-time errors, and the sink that
collects them instead of mutable process-wide globals.
*/
package util

import (
	"errors"
	"fmt"

	"devt.de/golox/token"
)

/*
Sentinel error types used as the Type field of RuntimeError, following
the teacher's errors.New sentinel-table pattern.
*/
var (
	ErrNotANumber                  = errors.New("Operand must be a number")
	ErrNotANumberOrString          = errors.New("Operands must be two numbers or two strings")
	ErrUndefinedVariable           = errors.New("Undefined variable")
	ErrUndefinedProperty           = errors.New("Undefined property")
	ErrOnlyInstancesHaveProperties = errors.New("Only instances have fields")
	ErrNotCallable                 = errors.New("Can only call functions and classes")
	ErrArity                       = errors.New("Wrong number of arguments")
	ErrSuperclassNotClass          = errors.New("Superclass must be a class")
	ErrUndefinedSuperMethod        = errors.New("Undefined method in superclass")
)

/*
RuntimeError is a runtime related error, raised while evaluating a
program and carrying the token responsible so the driver can report a
line number (Section 7).
*/
type RuntimeError struct {
	Type    error       // Error type (used for equality checks)
	Message string      // Human readable detail
	Token   token.Token // Token responsible for the error
	Trace   []string    // Call-site trace, outermost last
}

/*
NewRuntimeError creates a new RuntimeError tied to the token responsible
for it.
*/
func NewRuntimeError(t error, message string, tok token.Token) *RuntimeError {
	return &RuntimeError{Type: t, Message: message, Token: tok}
}

/*
Error returns a human-readable string representation of this error.
*/
func (e *RuntimeError) Error() string {
	return e.Message
}

/*
AddTrace appends a call-site description to the error's stack trace.
*/
func (e *RuntimeError) AddTrace(desc string) {
	e.Trace = append(e.Trace, desc)
}

/*
ParseError is a compile-time error raised by the parser (Section 7,
kind 1). The scanner and the resolver report their errors to the
DiagnosticSink directly and never build one.
*/
type ParseError struct {
	Token   token.Token
	Message string
}

/*
Error returns a human-readable string representation of this error.
*/
func (e *ParseError) Error() string {
	return e.Message
}

/*
where renders the "at ..." fragment of a compile diagnostic (Section 6):
empty for lexical errors, " at end" at EOF, or " at 'LEXEME'" otherwise.
*/
func where(tok token.Token, lexical bool) string {
	if lexical {
		return ""
	}
	if tok.Type == token.EOF {
		return " at end"
	}
	return fmt.Sprintf(" at '%s'", tok.Lexeme)
}
