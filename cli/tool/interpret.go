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
Package tool holds the thin CLI glue that drives the core pipeline
(Section 6): file-mode execution and an interactive REPL. Neither is
part of the core per spec.md Section 1, but a runnable repository needs
both, so this adapts the teacher's CLIInterpreter (cli/tool/interpret.go)
down to Lox's exit-code contract instead of ECAL's scope/runtime
provider plumbing.
*/
package tool

import (
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"devt.de/golox/config"
	"devt.de/golox/interpreter"
	"devt.de/golox/parser"
	"devt.de/golox/resolver"
	"devt.de/golox/scanner"
	"devt.de/golox/util"
	"devt.de/krotik/common/fileutil"
	"devt.de/krotik/common/termutil"
)

/*
Exit codes (Section 6).
*/
const (
	ExitOK           = 0
	ExitUsage        = 64
	ExitCompileError = 65
	ExitRuntimeError = 70
)

/*
errorLogger mirrors every diagnostic the sink reports through the
teacher's LogLevelLogger/StdOutLogger pair (util/logging.go), the same
way the teacher's CLIInterpreter wires a log level onto its Logger
rather than printing errors ad hoc. Errors still land on the sink's own
stderr writer via DiagnosticSink's Section 6 wire format; this logger is
the secondary, operator-facing log trail.
*/
var errorLogger, _ = util.NewLogLevelLogger(util.NewStdOutLogger(), "error")

/*
Run compiles and executes one program end to end: scan, parse, resolve,
interpret (Section 2's data flow), writing "print" output to stdout and
compile/runtime diagnostics to stderr (Section 6, Section 7), and
returning the exit code the driver should use.
*/
func Run(source string, stdout, stderr io.Writer) int {
	sink := util.New(stderr)
	sink.SetLogger(errorLogger)

	tokens := scanner.New(source, sink).ScanTokens()
	stmts := parser.New(tokens, sink).Parse()

	if sink.HadError() {
		return ExitCompileError
	}

	locals := resolver.New(sink).Resolve(stmts)

	if sink.HadError() {
		return ExitCompileError
	}

	interp := interpreter.NewWithOutput(sink, stdout)
	interp.SetLocals(locals)
	interp.Interpret(stmts)

	if sink.HadRuntimeError() {
		return ExitRuntimeError
	}

	return ExitOK
}

/*
RunFile reads path as UTF-8 source and runs it with Run (Section 6, "one
argument: path to a source file"). A missing file is a usage error
rather than a bare os.ReadFile error, mirroring the teacher's own
fileutil.PathExists guard in cli/tool/interpret.go and cli/tool/pack.go;
usage errors are reported to stderr like the rest of Section 6's
diagnostics.
*/
func RunFile(path string, stdout, stderr io.Writer) int {
	if ok, _ := fileutil.PathExists(path); !ok {
		fmt.Fprintf(stderr, "Error: file not found: %s\n", path)
		return ExitUsage
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitUsage
	}

	return Run(string(data), stdout, stderr)
}

/*
Console runs the interactive prompt (Section 6): one line of source at a
time, compiled and executed fresh each time. Globals are not retained
across lines - the reference driver resets per line (Section 9, Open
Question) - so every line gets its own Run call rather than a shared
Interpreter. The prompt banner and line echo go to stdout (they are
terminal chrome, not "print" output or a diagnostic); Run still splits
"print" output from diagnostics between stdout and stderr per line.
*/
func Console(stdout, stderr io.Writer) int {
	fmt.Fprintf(stdout, "%s %s\n", config.Str(config.ReplPromptName), config.ProductVersion)

	term, err := termutil.NewConsoleLineTerminal(stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitUsage
	}

	term, err = termutil.AddHistoryMixin(term, "", isExitLine)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitUsage
	}

	if err := term.StartTerm(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitUsage
	}
	defer term.StopTerm()

	line, err := term.NextLine()
	for err == nil && !isExitLine(line) {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			Run(trimmed, stdout, stderr)
		}
		line, err = term.NextLine()
	}

	return ExitOK
}

func isExitLine(s string) bool {
	return s == "exit" || s == "q" || s == "quit" || s == "\x04"
}
