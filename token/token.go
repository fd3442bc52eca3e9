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
Package token defines the lexical tokens produced by the scanner and
consumed by the parser.
*/
package token

import "fmt"

/*
Type identifies the kind of a token.
*/
type Type int

/*
All token kinds recognized by the scanner.
*/
const (
	// Single-character punctuation

	LPAREN Type = iota
	RPAREN
	LBRACE
	RBRACE
	COMMA
	DOT
	MINUS
	PLUS
	SEMICOLON
	SLASH
	STAR

	// One or two character operators

	BANG
	BANG_EQUAL
	EQUAL
	EQUAL_EQUAL
	GREATER
	GREATER_EQUAL
	LESS
	LESS_EQUAL

	// Literals

	IDENTIFIER
	STRING
	NUMBER

	// Keywords

	AND
	CLASS
	ELSE
	FALSE
	FUN
	FOR
	IF
	NIL
	OR
	PRINT
	RETURN
	SUPER
	THIS
	TRUE
	VAR
	WHILE

	EOF
)

/*
names holds the human-readable name of every token type, used by String
and by diagnostic messages.
*/
var names = map[Type]string{
	LPAREN: "(", RPAREN: ")", LBRACE: "{", RBRACE: "}",
	COMMA: ",", DOT: ".", MINUS: "-", PLUS: "+", SEMICOLON: ";",
	SLASH: "/", STAR: "*",
	BANG: "!", BANG_EQUAL: "!=", EQUAL: "=", EQUAL_EQUAL: "==",
	GREATER: ">", GREATER_EQUAL: ">=", LESS: "<", LESS_EQUAL: "<=",
	IDENTIFIER: "IDENTIFIER", STRING: "STRING", NUMBER: "NUMBER",
	AND: "and", CLASS: "class", ELSE: "else", FALSE: "false", FUN: "fun",
	FOR: "for", IF: "if", NIL: "nil", OR: "or", PRINT: "print",
	RETURN: "return", SUPER: "super", THIS: "this", TRUE: "true",
	VAR: "var", WHILE: "while",
	EOF: "EOF",
}

/*
String returns the human-readable name of a token type.
*/
func (t Type) String() string {
	if n, ok := names[t]; ok {
		return n
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

/*
Keywords maps reserved-word lexemes to their token type.
*/
var Keywords = map[string]Type{
	"and": AND, "class": CLASS, "else": ELSE, "false": FALSE,
	"for": FOR, "fun": FUN, "if": IF, "nil": NIL, "or": OR,
	"print": PRINT, "return": RETURN, "super": SUPER, "this": THIS,
	"true": TRUE, "var": VAR, "while": WHILE,
}

/*
Token is an immutable lexical token: a kind, the exact source lexeme it
was scanned from, an optional literal payload (a float64 or a string),
and the 1-based source line it appears on.
*/
type Token struct {
	Type    Type
	Lexeme  string
	Literal interface{} // nil, float64 or string
	Line    int
}

/*
New creates a new Token instance.
*/
func New(t Type, lexeme string, literal interface{}, line int) Token {
	return Token{t, lexeme, literal, line}
}

/*
String returns a debug representation of a token.
*/
func (t Token) String() string {
	return fmt.Sprintf("%v %q %v", t.Type, t.Lexeme, t.Literal)
}
