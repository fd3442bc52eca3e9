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
Command golox is the thin entry point over package cli/tool (Section
6): zero arguments drops into the interactive console, one argument
runs a source file, and more than one argument is a usage error. A
"debug <file>" invocation dumps the parsed AST instead of running it
(SUPPLEMENTED FEATURES).
*/
package main

import (
	"fmt"
	"os"

	"devt.de/golox/cli/tool"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 2 && args[0] == "debug" {
		return tool.Debug(args[1], os.Stdout, os.Stderr)
	}

	switch len(args) {
	case 0:
		return tool.Console(os.Stdout, os.Stderr)
	case 1:
		return tool.RunFile(args[0], os.Stdout, os.Stderr)
	default:
		fmt.Fprintln(os.Stderr, "Usage: golox [script]")
		return tool.ExitUsage
	}
}
