/*
 * golox
 *
 * Copyright 2026 golox Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package tool

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDebugMissingFile(t *testing.T) {
	var out, errOut bytes.Buffer

	code := Debug(filepath.Join(os.TempDir(), "golox-does-not-exist.lox"), &out, &errOut)

	if code != ExitUsage {
		t.Errorf("unexpected exit code: %v", code)
	}
	if errOut.String() == "" {
		t.Error("expected the missing-file error on stderr")
	}
}

func TestDebugDumpsAST(t *testing.T) {
	var out, errOut bytes.Buffer

	f, err := ioutil.TempFile("", "golox-*.lox")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(f.Name())

	if _, err := f.WriteString(`var a = 1 + 2;`); err != nil {
		t.Fatal(err)
	}
	f.Close()

	code := Debug(f.Name(), &out, &errOut)

	if code != ExitOK {
		t.Errorf("unexpected exit code: %v", code)
	}
	if !strings.Contains(out.String(), "Var a") || !strings.Contains(out.String(), "Binary +") {
		t.Errorf("unexpected AST dump: %q", out.String())
	}
	if errOut.String() != "" {
		t.Errorf("expected nothing on stderr, got %q", errOut.String())
	}
}

func TestDebugCompileError(t *testing.T) {
	var out, errOut bytes.Buffer

	f, err := ioutil.TempFile("", "golox-*.lox")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(f.Name())

	if _, err := f.WriteString(`var a = ;`); err != nil {
		t.Fatal(err)
	}
	f.Close()

	code := Debug(f.Name(), &out, &errOut)

	if code != ExitCompileError {
		t.Errorf("unexpected exit code: %v", code)
	}
	if errOut.String() == "" {
		t.Error("expected the compile error on stderr")
	}
}
