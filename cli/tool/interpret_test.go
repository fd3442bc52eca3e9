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
	"testing"
)

func TestRunSuccess(t *testing.T) {
	var out, errOut bytes.Buffer

	code := Run(`print 1 + 2 * 3;`, &out, &errOut)

	if code != ExitOK {
		t.Errorf("unexpected exit code: %v", code)
	}
	if out.String() != "7\n" {
		t.Errorf("unexpected output: %q", out.String())
	}
	if errOut.String() != "" {
		t.Errorf("expected nothing on stderr, got %q", errOut.String())
	}
}

func TestRunCompileError(t *testing.T) {
	var out, errOut bytes.Buffer

	code := Run(`print 1 +;`, &out, &errOut)

	if code != ExitCompileError {
		t.Errorf("unexpected exit code: %v", code)
	}
	if out.String() != "" {
		t.Errorf("expected nothing on stdout, got %q", out.String())
	}
	if errOut.String() == "" {
		t.Error("expected the compile error on stderr")
	}
}

func TestRunRuntimeError(t *testing.T) {
	var out, errOut bytes.Buffer

	code := Run(`print "before"; print 1 + "a";`, &out, &errOut)

	if code != ExitRuntimeError {
		t.Errorf("unexpected exit code: %v", code)
	}
	if out.String() != "before\n" {
		t.Errorf("expected only the statement before the error on stdout, got %q", out.String())
	}
	if errOut.String() == "" {
		t.Error("expected the runtime error on stderr")
	}
}

func TestRunFileMissing(t *testing.T) {
	var out, errOut bytes.Buffer

	code := RunFile(filepath.Join(os.TempDir(), "golox-does-not-exist.lox"), &out, &errOut)

	if code != ExitUsage {
		t.Errorf("unexpected exit code: %v", code)
	}
	if errOut.String() == "" {
		t.Error("expected the missing-file error on stderr")
	}
}

func TestRunFileExisting(t *testing.T) {
	var out, errOut bytes.Buffer

	f, err := ioutil.TempFile("", "golox-*.lox")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(f.Name())

	if _, err := f.WriteString(`print "hi world";`); err != nil {
		t.Fatal(err)
	}
	f.Close()

	code := RunFile(f.Name(), &out, &errOut)

	if code != ExitOK {
		t.Errorf("unexpected exit code: %v", code)
	}
	if out.String() != "hi world\n" {
		t.Errorf("unexpected output: %q", out.String())
	}
	if errOut.String() != "" {
		t.Errorf("expected nothing on stderr, got %q", errOut.String())
	}
}
