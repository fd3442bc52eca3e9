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
Package parser turns a token slice into the statement/expression trees
of package ast, following the recursive-descent grammar of Section 4.2.
*/
package parser

import (
	"fmt"

	"devt.de/golox/ast"
	"devt.de/golox/config"
	"devt.de/golox/token"
	"devt.de/golox/util"
)

/*
Parser is a recursive-descent parser over one token stream. A Parser is
single-use: create a fresh one per call to Parse.
*/
type Parser struct {
	buf      *tokenBuffer
	sink     *util.DiagnosticSink
	previous token.Token
}

/*
New creates a Parser over tokens, reporting diagnostics to sink.
*/
func New(tokens []token.Token, sink *util.DiagnosticSink) *Parser {
	return &Parser{buf: newTokenBuffer(tokens), sink: sink}
}

/*
Parse parses a complete program (Section 4.2, program). It always
returns as many statements as it could recover; check the sink's
HadError after calling to decide whether to run the result.
*/
func (p *Parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt

	for !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}

	return stmts
}

/*
ParseExpression parses a single expression. It does not check that EOF
follows, and neither the file/REPL driver nor "golox debug" calls it:
both parse whole programs with Parse.
*/
func (p *Parser) ParseExpression() (ast.Expr, error) {
	return p.expression()
}

// Declarations
// ============

func (p *Parser) declaration() ast.Stmt {
	var stmt ast.Stmt
	var err error

	switch {
	case p.match(token.CLASS):
		stmt, err = p.classDeclaration()
	case p.match(token.FUN):
		stmt, err = p.function("function")
	case p.match(token.VAR):
		stmt, err = p.varDeclaration()
	default:
		stmt, err = p.statement()
	}

	if err != nil {
		p.reportAndSynchronize(err)
		return nil
	}

	return stmt
}

func (p *Parser) classDeclaration() (ast.Stmt, error) {
	name, err := p.consume(token.IDENTIFIER, "Expect class name.")
	if err != nil {
		return nil, err
	}

	var superclass *ast.Variable
	if p.match(token.LESS) {
		sname, err := p.consume(token.IDENTIFIER, "Expect superclass name.")
		if err != nil {
			return nil, err
		}
		superclass = ast.NewVariable(sname)
	}

	if _, err := p.consume(token.LBRACE, "Expect '{' before class body."); err != nil {
		return nil, err
	}

	var methods []*ast.Function
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		m, err := p.function("method")
		if err != nil {
			return nil, err
		}
		methods = append(methods, m.(*ast.Function))
	}

	if _, err := p.consume(token.RBRACE, "Expect '}' after class body."); err != nil {
		return nil, err
	}

	return &ast.Class{Name: name, Superclass: superclass, Methods: methods}, nil
}

/*
function parses a function declaration or, with kind "method", a class
method (which shares the same grammar minus the leading "fun").
*/
func (p *Parser) function(kind string) (ast.Stmt, error) {
	name, err := p.consume(token.IDENTIFIER, fmt.Sprintf("Expect %s name.", kind))
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(token.LPAREN, fmt.Sprintf("Expect '(' after %s name.", kind)); err != nil {
		return nil, err
	}

	var params []token.Token
	if !p.check(token.RPAREN) {
		for {
			if len(params) >= config.MaxArgs {
				p.errorAt(p.peek(), fmt.Sprintf("Can't have more than %d parameters.", config.MaxArgs))
			}

			pname, err := p.consume(token.IDENTIFIER, "Expect parameter name.")
			if err != nil {
				return nil, err
			}
			params = append(params, pname)

			if !p.match(token.COMMA) {
				break
			}
		}
	}

	if _, err := p.consume(token.RPAREN, "Expect ')' after parameters."); err != nil {
		return nil, err
	}

	if _, err := p.consume(token.LBRACE, fmt.Sprintf("Expect '{' before %s body.", kind)); err != nil {
		return nil, err
	}

	body, err := p.block()
	if err != nil {
		return nil, err
	}

	return &ast.Function{Name: name, Params: params, Body: body}, nil
}

func (p *Parser) varDeclaration() (ast.Stmt, error) {
	name, err := p.consume(token.IDENTIFIER, "Expect variable name.")
	if err != nil {
		return nil, err
	}

	var init ast.Expr
	if p.match(token.EQUAL) {
		if init, err = p.expression(); err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(token.SEMICOLON, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}

	return &ast.Var{Name: name, Initializer: init}, nil
}

// Statements
// ==========

func (p *Parser) statement() (ast.Stmt, error) {
	switch {
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.RETURN):
		return p.returnStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.LBRACE):
		stmts, err := p.block()
		if err != nil {
			return nil, err
		}
		return &ast.Block{Stmts: stmts}, nil
	default:
		return p.expressionStatement()
	}
}

/*
forStatement desugars "for (init; cond; incr) body" into the while-loop
block shape of Section 4.2: there is no dedicated ast.For node.
*/
func (p *Parser) forStatement() (ast.Stmt, error) {
	if _, err := p.consume(token.LPAREN, "Expect '(' after 'for'."); err != nil {
		return nil, err
	}

	var init ast.Stmt
	var err error
	switch {
	case p.match(token.SEMICOLON):
		init = nil
	case p.match(token.VAR):
		if init, err = p.varDeclaration(); err != nil {
			return nil, err
		}
	default:
		if init, err = p.expressionStatement(); err != nil {
			return nil, err
		}
	}

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		if cond, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}

	var incr ast.Expr
	if !p.check(token.RPAREN) {
		if incr, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.RPAREN, "Expect ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if incr != nil {
		body = &ast.Block{Stmts: []ast.Stmt{body, &ast.ExprStmt{Expr: incr}}}
	}

	if cond == nil {
		cond = ast.NewLiteral(true)
	}
	body = &ast.While{Cond: cond, Body: body}

	if init != nil {
		body = &ast.Block{Stmts: []ast.Stmt{init, body}}
	}

	return body, nil
}

func (p *Parser) ifStatement() (ast.Stmt, error) {
	if _, err := p.consume(token.LPAREN, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RPAREN, "Expect ')' after if condition."); err != nil {
		return nil, err
	}

	then, err := p.statement()
	if err != nil {
		return nil, err
	}

	var els ast.Stmt
	if p.match(token.ELSE) {
		if els, err = p.statement(); err != nil {
			return nil, err
		}
	}

	return &ast.If{Cond: cond, Then: then, Else: els}, nil
}

func (p *Parser) printStatement() (ast.Stmt, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return &ast.Print{Expr: value}, nil
}

func (p *Parser) returnStatement() (ast.Stmt, error) {
	keyword := p.previous

	var value ast.Expr
	var err error
	if !p.check(token.SEMICOLON) {
		if value, err = p.expression(); err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(token.SEMICOLON, "Expect ';' after return value."); err != nil {
		return nil, err
	}

	return &ast.Return{Keyword: keyword, Value: value}, nil
}

func (p *Parser) whileStatement() (ast.Stmt, error) {
	if _, err := p.consume(token.LPAREN, "Expect '(' after 'while'."); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RPAREN, "Expect ')' after condition."); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ast.While{Cond: cond, Body: body}, nil
}

func (p *Parser) block() ([]ast.Stmt, error) {
	var stmts []ast.Stmt

	for !p.check(token.RBRACE) && !p.isAtEnd() {
		s := p.declaration()
		if s != nil {
			stmts = append(stmts, s)
		}
	}

	if _, err := p.consume(token.RBRACE, "Expect '}' after block."); err != nil {
		return nil, err
	}

	return stmts, nil
}

func (p *Parser) expressionStatement() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Expr: expr}, nil
}

// Expressions
// ===========

func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}

	if p.match(token.EQUAL) {
		equals := p.previous
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}

		switch target := expr.(type) {
		case *ast.Variable:
			return ast.NewAssign(target.Name, value), nil
		case *ast.Get:
			return ast.NewSet(target.Object, target.Name, value), nil
		}

		p.errorAt(equals, "Invalid assignment target.")
		return expr, nil
	}

	return expr, nil
}

func (p *Parser) or() (ast.Expr, error) {
	expr, err := p.and()
	if err != nil {
		return nil, err
	}

	for p.match(token.OR) {
		op := p.previous
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		expr = ast.NewLogical(expr, op, right)
	}

	return expr, nil
}

func (p *Parser) and() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}

	for p.match(token.AND) {
		op := p.previous
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = ast.NewLogical(expr, op, right)
	}

	return expr, nil
}

func (p *Parser) equality() (ast.Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}

	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op := p.previous
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinary(expr, op, right)
	}

	return expr, nil
}

func (p *Parser) comparison() (ast.Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}

	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		op := p.previous
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinary(expr, op, right)
	}

	return expr, nil
}

func (p *Parser) term() (ast.Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}

	for p.match(token.MINUS, token.PLUS) {
		op := p.previous
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinary(expr, op, right)
	}

	return expr, nil
}

func (p *Parser) factor() (ast.Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}

	for p.match(token.SLASH, token.STAR) {
		op := p.previous
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinary(expr, op, right)
	}

	return expr, nil
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(op, right), nil
	}

	return p.call()
}

func (p *Parser) call() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.match(token.LPAREN):
			if expr, err = p.finishCall(expr); err != nil {
				return nil, err
			}
		case p.match(token.DOT):
			name, err := p.consume(token.IDENTIFIER, "Expect property name after '.'.")
			if err != nil {
				return nil, err
			}
			expr = ast.NewGet(expr, name)
		default:
			return expr, nil
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, error) {
	var args []ast.Expr

	if !p.check(token.RPAREN) {
		for {
			if len(args) >= config.MaxArgs {
				p.errorAt(p.peek(), fmt.Sprintf("Can't have more than %d arguments.", config.MaxArgs))
			}

			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if !p.match(token.COMMA) {
				break
			}
		}
	}

	paren, err := p.consume(token.RPAREN, "Expect ')' after arguments.")
	if err != nil {
		return nil, err
	}

	return ast.NewCall(callee, paren, args), nil
}

func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(token.FALSE):
		return ast.NewLiteral(false), nil
	case p.match(token.TRUE):
		return ast.NewLiteral(true), nil
	case p.match(token.NIL):
		return ast.NewLiteral(nil), nil
	case p.match(token.NUMBER, token.STRING):
		return ast.NewLiteral(p.previous.Literal), nil
	case p.match(token.SUPER):
		keyword := p.previous
		if _, err := p.consume(token.DOT, "Expect '.' after 'super'."); err != nil {
			return nil, err
		}
		method, err := p.consume(token.IDENTIFIER, "Expect superclass method name.")
		if err != nil {
			return nil, err
		}
		return ast.NewSuper(keyword, method), nil
	case p.match(token.THIS):
		return ast.NewThis(p.previous), nil
	case p.match(token.IDENTIFIER):
		return ast.NewVariable(p.previous), nil
	case p.match(token.LPAREN):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RPAREN, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return ast.NewGrouping(expr), nil
	}

	return nil, p.newError(p.peek(), "Expect expression.")
}

// Token stream helpers
// ====================

func (p *Parser) match(types ...token.Type) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(t token.Type) bool {
	if p.isAtEnd() {
		return t == token.EOF
	}
	return p.peek().Type == t
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.previous = p.buf.next()
	}
	return p.previous
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == token.EOF
}

func (p *Parser) peek() token.Token {
	return p.buf.peek(0)
}

func (p *Parser) consume(t token.Type, message string) (token.Token, error) {
	if p.check(t) {
		return p.advance(), nil
	}
	return token.Token{}, p.newError(p.peek(), message)
}

// Error reporting and recovery
// =============================

func (p *Parser) newError(tok token.Token, message string) error {
	return &util.ParseError{Token: tok, Message: message}
}

func (p *Parser) errorAt(tok token.Token, message string) {
	p.sink.ReportToken(tok, message)
}

func (p *Parser) reportAndSynchronize(err error) {
	if pe, ok := err.(*util.ParseError); ok {
		p.sink.ReportToken(pe.Token, pe.Message)
	} else {
		p.sink.ReportToken(p.peek(), err.Error())
	}
	p.synchronize()
}

/*
synchronize discards tokens until it believes it is at the start of the
next statement, so one parse error reports only once instead of
cascading (Section 4.2, panic-mode recovery).
*/
func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous.Type == token.SEMICOLON {
			return
		}

		switch p.peek().Type {
		case token.CLASS, token.FUN, token.VAR, token.FOR,
			token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}

		p.advance()
	}
}
