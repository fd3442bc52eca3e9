/*
 * golox
 *
 * Copyright 2026 golox Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package stdlib

import (
	"fmt"
	"strconv"
	"testing"

	"devt.de/golox/environment"
	"devt.de/golox/token"
)

func TestNativeFuncArity(t *testing.T) {
	nf := NewNativeFunc("atoi", func(s string) float64 {
		n, _ := strconv.Atoi(s)
		return float64(n)
	})

	if nf.Arity() != 1 {
		t.Fatalf("unexpected arity: %v", nf.Arity())
	}

	res, err := nf.Call(nil, []interface{}{"42"})
	if err != nil {
		t.Fatal(err)
	}
	if res != float64(42) {
		t.Errorf("unexpected result: %v", res)
	}
}

func TestNativeFuncPanicBecomesError(t *testing.T) {
	nf := NewNativeFunc("boom", func() float64 {
		panic("kaboom")
	})

	if _, err := nf.Call(nil, nil); err == nil {
		t.Fatal("expected an error, got none")
	}
}

func TestNativeFuncString(t *testing.T) {
	nf := NewNativeFunc("clock", clock)
	if got := nf.String(); got != "<native fn>" {
		t.Errorf("unexpected String(): %v", got)
	}
}

func TestClockArity(t *testing.T) {
	nf := NewNativeFunc("clock", clock)
	if nf.Arity() != 0 {
		t.Fatalf("clock must be arity 0, got %v", nf.Arity())
	}

	res, err := nf.Call(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := res.(float64); !ok {
		t.Errorf("clock() should return a float64, got %T", res)
	}
}

func TestInstallBindsClock(t *testing.T) {
	globals := environment.New()
	Install(globals)

	v, err := globals.Get(token.New(token.IDENTIFIER, "clock", nil, 1))
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := v.(*NativeFunc); !ok {
		t.Errorf("expected clock to be bound as a *NativeFunc, got %v", fmt.Sprintf("%T", v))
	}
}
