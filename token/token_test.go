/*
 * golox
 *
 * Copyright 2026 golox Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package token

import "testing"

func TestKeywordsTableCoversAllReservedWords(t *testing.T) {
	reserved := []string{
		"and", "class", "else", "false", "for", "fun", "if", "nil", "or",
		"print", "return", "super", "this", "true", "var", "while",
	}

	if len(Keywords) != len(reserved) {
		t.Fatalf("expected %d reserved words, got %d", len(reserved), len(Keywords))
	}
	for _, w := range reserved {
		if _, ok := Keywords[w]; !ok {
			t.Errorf("missing reserved word %q", w)
		}
	}
}

func TestTypeStringForKnownAndUnknown(t *testing.T) {
	if LPAREN.String() != "(" {
		t.Errorf("unexpected name for LPAREN: %q", LPAREN.String())
	}
	if got := Type(999).String(); got != "Type(999)" {
		t.Errorf("unexpected fallback name: %q", got)
	}
}

func TestNewAndString(t *testing.T) {
	tok := New(NUMBER, "1.5", 1.5, 3)

	if tok.Type != NUMBER || tok.Lexeme != "1.5" || tok.Literal != 1.5 || tok.Line != 3 {
		t.Fatalf("unexpected token: %#v", tok)
	}
	if tok.String() == "" {
		t.Error("expected a non-empty debug string")
	}
}
