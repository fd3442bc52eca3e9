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
Package ast defines the two disjoint node families produced by the
parser: Expr and Stmt (Section 3). Per DESIGN NOTES, dispatch over these
is a plain type switch in the resolver and interpreter rather than a
Visitor interface - each concrete type just carries its fields.
*/
package ast

import "devt.de/golox/token"

/*
nextID hands out the monotonically increasing NodeID every Expr carries,
so the resolver's Expr -> depth map has a stable key independent of Go's
own interface identity rules (Section 3, DESIGN NOTES).
*/
var nextID int

func newID() int {
	nextID++
	return nextID
}

/*
Expr is the sum of all expression node kinds. Every variant carries a
NodeID unique within one parse, used to key the resolver's distance map.
*/
type Expr interface {
	NodeID() int
	exprNode()
}

/*
Assign is "name = value".
*/
type Assign struct {
	Id    int
	Name  token.Token
	Value Expr
}

/*
Binary is "left op right" for arithmetic and comparison operators.
*/
type Binary struct {
	Id    int
	Left  Expr
	Op    token.Token
	Right Expr
}

/*
Call is "callee(args...)".
*/
type Call struct {
	Id     int
	Callee Expr
	Paren  token.Token // closing ')', used to report arity errors at a line
	Args   []Expr
}

/*
Get is "object.name" property access.
*/
type Get struct {
	Id     int
	Object Expr
	Name   token.Token
}

/*
Grouping is a parenthesized expression.
*/
type Grouping struct {
	Id    int
	Inner Expr
}

/*
Literal is a compile-time constant: nil, a bool, a float64 or a string.
*/
type Literal struct {
	Id    int
	Value interface{}
}

/*
Logical is short-circuiting "left and/or right".
*/
type Logical struct {
	Id    int
	Left  Expr
	Op    token.Token
	Right Expr
}

/*
Set is "object.name = value".
*/
type Set struct {
	Id     int
	Object Expr
	Name   token.Token
	Value  Expr
}

/*
Super is "super.method" inside a subclass method.
*/
type Super struct {
	Id      int
	Keyword token.Token
	Method  token.Token
}

/*
This is the "this" keyword inside a method body.
*/
type This struct {
	Id      int
	Keyword token.Token
}

/*
Unary is "op right" for "!" and "-".
*/
type Unary struct {
	Id    int
	Op    token.Token
	Right Expr
}

/*
Variable is a bare identifier reference.
*/
type Variable struct {
	Id   int
	Name token.Token
}

func (e *Assign) exprNode()   {}
func (e *Binary) exprNode()   {}
func (e *Call) exprNode()     {}
func (e *Get) exprNode()      {}
func (e *Grouping) exprNode() {}
func (e *Literal) exprNode()  {}
func (e *Logical) exprNode()  {}
func (e *Set) exprNode()      {}
func (e *Super) exprNode()    {}
func (e *This) exprNode()     {}
func (e *Unary) exprNode()    {}
func (e *Variable) exprNode() {}

func (e *Assign) NodeID() int   { return e.Id }
func (e *Binary) NodeID() int   { return e.Id }
func (e *Call) NodeID() int     { return e.Id }
func (e *Get) NodeID() int      { return e.Id }
func (e *Grouping) NodeID() int { return e.Id }
func (e *Literal) NodeID() int  { return e.Id }
func (e *Logical) NodeID() int  { return e.Id }
func (e *Set) NodeID() int      { return e.Id }
func (e *Super) NodeID() int    { return e.Id }
func (e *This) NodeID() int     { return e.Id }
func (e *Unary) NodeID() int    { return e.Id }
func (e *Variable) NodeID() int { return e.Id }

/*
NewAssign, NewBinary, ... construct a variant with a fresh NodeID. The
parser always goes through these rather than composite literals so no
node is ever left with a zero, colliding ID.
*/
func NewAssign(name token.Token, value Expr) *Assign {
	return &Assign{Id: newID(), Name: name, Value: value}
}

func NewBinary(left Expr, op token.Token, right Expr) *Binary {
	return &Binary{Id: newID(), Left: left, Op: op, Right: right}
}

func NewCall(callee Expr, paren token.Token, args []Expr) *Call {
	return &Call{Id: newID(), Callee: callee, Paren: paren, Args: args}
}

func NewGet(object Expr, name token.Token) *Get {
	return &Get{Id: newID(), Object: object, Name: name}
}

func NewGrouping(inner Expr) *Grouping {
	return &Grouping{Id: newID(), Inner: inner}
}

func NewLiteral(value interface{}) *Literal {
	return &Literal{Id: newID(), Value: value}
}

func NewLogical(left Expr, op token.Token, right Expr) *Logical {
	return &Logical{Id: newID(), Left: left, Op: op, Right: right}
}

func NewSet(object Expr, name token.Token, value Expr) *Set {
	return &Set{Id: newID(), Object: object, Name: name, Value: value}
}

func NewSuper(keyword token.Token, method token.Token) *Super {
	return &Super{Id: newID(), Keyword: keyword, Method: method}
}

func NewThis(keyword token.Token) *This {
	return &This{Id: newID(), Keyword: keyword}
}

func NewUnary(op token.Token, right Expr) *Unary {
	return &Unary{Id: newID(), Op: op, Right: right}
}

func NewVariable(name token.Token) *Variable {
	return &Variable{Id: newID(), Name: name}
}
