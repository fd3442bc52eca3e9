/*
 * golox
 *
 * Copyright 2026 golox Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package config

import (
	"testing"
)

func TestConfig(t *testing.T) {

	if res := Str(ReplPromptName); res != "golox" {
		t.Error("Unexpected result:", res)
		return
	}

	Config[ReplPromptName] = "test"

	if res := Str(ReplPromptName); res != "test" {
		t.Error("Unexpected result:", res)
		return
	}
}

func TestMaxArgs(t *testing.T) {
	if MaxArgs != 255 {
		t.Error("Unexpected MaxArgs:", MaxArgs)
	}
}
