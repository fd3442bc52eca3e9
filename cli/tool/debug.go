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
	"fmt"
	"io"
	"io/ioutil"

	"devt.de/golox/ast"
	"devt.de/golox/parser"
	"devt.de/golox/scanner"
	"devt.de/golox/util"
	"devt.de/krotik/common/fileutil"
)

/*
Debug reads path, parses it and dumps the resulting statement tree with
ast.Print, without resolving or running it (SUPPLEMENTED FEATURES: the
"golox debug" subcommand). It never touches "golox" output semantics;
it exists purely so a Lox author can inspect what the parser built. The
AST dump goes to stdout; file errors and compile diagnostics go to
stderr, matching Run's split (Section 6, Section 7).
*/
func Debug(path string, stdout, stderr io.Writer) int {
	if ok, _ := fileutil.PathExists(path); !ok {
		fmt.Fprintf(stderr, "Error: file not found: %s\n", path)
		return ExitUsage
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitUsage
	}

	sink := util.New(stderr)
	sink.SetLogger(errorLogger)

	tokens := scanner.New(string(data), sink).ScanTokens()
	stmts := parser.New(tokens, sink).Parse()

	if sink.HadError() {
		return ExitCompileError
	}

	io.WriteString(stdout, ast.Print(stmts))
	return ExitOK
}
