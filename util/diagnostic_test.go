/*
 * golox
 *
 * Copyright 2026 golox Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package util

import (
	"bytes"
	"strings"
	"testing"

	"devt.de/golox/token"
)

func TestReportLineHasNoAtFragment(t *testing.T) {
	var out bytes.Buffer
	sink := New(&out)

	sink.ReportLine(3, "", "Unexpected character.")

	want := "[line 3] Error: Unexpected character.\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
	if !sink.HadError() {
		t.Error("expected hadError to be set")
	}
}

func TestReportTokenAtEnd(t *testing.T) {
	var out bytes.Buffer
	sink := New(&out)

	sink.ReportToken(token.New(token.EOF, "", nil, 5), "Expect expression.")

	if !strings.Contains(out.String(), "[line 5] Error at end: Expect expression.") {
		t.Errorf("unexpected diagnostic: %q", out.String())
	}
}

func TestReportTokenAtLexeme(t *testing.T) {
	var out bytes.Buffer
	sink := New(&out)

	sink.ReportToken(token.New(token.IDENTIFIER, "foo", nil, 2), "Expect ';' after value.")

	want := "[line 2] Error at 'foo': Expect ';' after value.\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

func TestReportRuntimeError(t *testing.T) {
	var out bytes.Buffer
	sink := New(&out)

	err := NewRuntimeError(ErrUndefinedVariable, "Undefined variable 'x'.",
		token.New(token.IDENTIFIER, "x", nil, 7))
	sink.ReportRuntimeError(err)

	want := "Undefined variable 'x'.\n[line 7]\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
	if !sink.HadRuntimeError() {
		t.Error("expected hadRuntimeError to be set")
	}
}

func TestResetClearsBothFlags(t *testing.T) {
	var out bytes.Buffer
	sink := New(&out)

	sink.ReportLine(1, "", "boom")
	sink.ReportRuntimeError(NewRuntimeError(ErrNotANumber, "boom", token.Token{Line: 1}))

	sink.Reset()

	if sink.HadError() || sink.HadRuntimeError() {
		t.Error("expected Reset to clear both flags")
	}
}
