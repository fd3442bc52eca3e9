/*
 * golox
 *
 * Copyright 2026 golox Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package scanner

import (
	"bytes"
	"testing"

	"devt.de/golox/token"
	"devt.de/golox/util"
)

func scan(src string) ([]token.Token, *util.DiagnosticSink) {
	var out bytes.Buffer
	sink := util.New(&out)
	return New(src, sink).ScanTokens(), sink
}

func TestScanPunctuationAndOperators(t *testing.T) {
	toks, sink := scan("(){},.-+;*!!====<<=>>=/")

	if sink.HadError() {
		t.Fatal("unexpected scan error")
	}

	want := []token.Type{
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.COMMA,
		token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR,
		token.BANG, token.BANG_EQUAL, token.EQUAL_EQUAL, token.EQUAL, token.LESS,
		token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL, token.SLASH,
		token.EOF,
	}

	if len(toks) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(toks), toks)
	}
	for i, w := range want {
		if toks[i].Type != w {
			t.Errorf("token %d: expected %v, got %v", i, w, toks[i].Type)
		}
	}
}

func TestScanStringLiteral(t *testing.T) {
	toks, sink := scan(`"hello world"`)

	if sink.HadError() {
		t.Fatal("unexpected scan error")
	}
	if toks[0].Type != token.STRING || toks[0].Literal != "hello world" {
		t.Fatalf("unexpected token: %#v", toks[0])
	}
}

func TestScanUnterminatedString(t *testing.T) {
	_, sink := scan(`"hello`)

	if !sink.HadError() {
		t.Fatal("expected unterminated string to be reported")
	}
}

func TestScanNumberLiteral(t *testing.T) {
	toks, sink := scan("123.45")

	if sink.HadError() {
		t.Fatal("unexpected scan error")
	}
	if toks[0].Type != token.NUMBER || toks[0].Literal != 123.45 {
		t.Fatalf("unexpected token: %#v", toks[0])
	}
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	toks, sink := scan("var x = orchid and fun")

	if sink.HadError() {
		t.Fatal("unexpected scan error")
	}

	want := []token.Type{token.VAR, token.IDENTIFIER, token.EQUAL,
		token.IDENTIFIER, token.AND, token.FUN, token.EOF}

	if len(toks) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(toks), toks)
	}
	for i, w := range want {
		if toks[i].Type != w {
			t.Errorf("token %d: expected %v, got %v", i, w, toks[i].Type)
		}
	}
}

func TestScanCommentsAndWhitespace(t *testing.T) {
	toks, sink := scan("1 // a comment\n2")

	if sink.HadError() {
		t.Fatal("unexpected scan error")
	}
	if len(toks) != 3 || toks[0].Literal != float64(1) || toks[1].Literal != float64(2) {
		t.Fatalf("unexpected tokens: %#v", toks)
	}
	if toks[1].Line != 2 {
		t.Fatalf("expected second number on line 2, got %d", toks[1].Line)
	}
}

func TestScanUnexpectedCharacter(t *testing.T) {
	_, sink := scan("@")

	if !sink.HadError() {
		t.Fatal("expected unexpected character to be reported")
	}
}
