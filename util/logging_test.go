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
	"testing"
)

/*
recordingLogger is a test-only Logger that records every message it
receives, so TestLogLevelLoggerFiltersBelowConfiguredLevel can assert on
what a LogLevelLogger actually let through.
*/
type recordingLogger struct {
	entries []string
}

func (rl *recordingLogger) LogError(m ...interface{}) {
	rl.entries = append(rl.entries, "error")
}

func (rl *recordingLogger) LogInfo(m ...interface{}) {
	rl.entries = append(rl.entries, "info")
}

func (rl *recordingLogger) LogDebug(m ...interface{}) {
	rl.entries = append(rl.entries, "debug")
}

func TestNullLoggerDiscardsEverything(t *testing.T) {
	nl := NewNullLogger()
	nl.LogError("x")
	nl.LogInfo("y")
	nl.LogDebug("z")
}

func TestLogLevelLoggerFiltersBelowConfiguredLevel(t *testing.T) {
	rl := &recordingLogger{}

	ll, err := NewLogLevelLogger(rl, "info")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ll.Level() != Info {
		t.Fatalf("expected Info level, got %v", ll.Level())
	}

	ll.LogDebug("should be dropped")
	ll.LogInfo("should pass")
	ll.LogError("should pass too")

	if len(rl.entries) != 2 {
		t.Fatalf("expected debug message to be filtered, got %d entries: %v", len(rl.entries), rl.entries)
	}
}

func TestNewLogLevelLoggerRejectsUnknownLevel(t *testing.T) {
	if _, err := NewLogLevelLogger(NewNullLogger(), "verbose"); err == nil {
		t.Fatal("expected an error for an invalid log level")
	}
}
