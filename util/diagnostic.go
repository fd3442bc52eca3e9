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
	"fmt"
	"io"

	"devt.de/golox/token"
)

/*
DiagnosticSink collects the two process-wide error flags of Section 4.7
(hadError, hadRuntimeError) as an explicit object threaded through the
scanner, parser, resolver and interpreter, rather than as mutable
package globals (DESIGN NOTES). It also satisfies Logger so it can be
handed to the same logging call sites the teacher wires its own Logger
into.
*/
type DiagnosticSink struct {
	out             io.Writer
	hadError        bool
	hadRuntimeError bool
	logger          Logger
}

/*
New creates a DiagnosticSink writing compile and runtime diagnostics to
out. An optional Logger can be attached with SetLogger for LogError/
LogInfo/LogDebug calls issued by other components.
*/
func New(out io.Writer) *DiagnosticSink {
	return &DiagnosticSink{out: out, logger: NewNullLogger()}
}

/*
SetLogger attaches a Logger used for LogError/LogInfo/LogDebug.
*/
func (d *DiagnosticSink) SetLogger(l Logger) {
	if l != nil {
		d.logger = l
	}
}

/*
HadError reports whether a compile-time error (scanner, parser or
resolver) has been seen.
*/
func (d *DiagnosticSink) HadError() bool {
	return d.hadError
}

/*
HadRuntimeError reports whether a runtime error has been seen.
*/
func (d *DiagnosticSink) HadRuntimeError() bool {
	return d.hadRuntimeError
}

/*
Reset clears both flags. The REPL does not call it: each line gets a
fresh sink from Run.
*/
func (d *DiagnosticSink) Reset() {
	d.hadError = false
	d.hadRuntimeError = false
}

/*
ReportLine reports a lexical error: "[line L] Error: MESSAGE" with no
"at" fragment (Section 6).
*/
func (d *DiagnosticSink) ReportLine(line int, where string, message string) {
	d.report(line, where, message)
	d.hadError = true
}

/*
ReportToken reports a parse/resolve error positioned at a token: " at
end" at EOF, " at 'LEXEME'" otherwise (Section 6).
*/
func (d *DiagnosticSink) ReportToken(tok token.Token, message string) {
	d.report(tok.Line, where(tok, false), message)
	d.hadError = true
}

func (d *DiagnosticSink) report(line int, whereFrag string, message string) {
	fmt.Fprintf(d.out, "[line %d] Error%s: %s\n", line, whereFrag, message)
	d.logger.LogError(fmt.Sprintf("line %d: %s%s", line, whereFrag, message))
}

/*
ReportRuntimeError reports a runtime error as "MESSAGE\n[line L]"
(Section 6), including any call-site trace the error accumulated.
*/
func (d *DiagnosticSink) ReportRuntimeError(err *RuntimeError) {
	fmt.Fprintf(d.out, "%s\n[line %d]\n", err.Message, err.Token.Line)
	for _, t := range err.Trace {
		fmt.Fprintf(d.out, "  %s\n", t)
	}
	d.hadRuntimeError = true
	d.logger.LogError(fmt.Sprintf("runtime error at line %d: %s", err.Token.Line, err.Message))
}

/*
LogError satisfies Logger.
*/
func (d *DiagnosticSink) LogError(v ...interface{}) {
	d.logger.LogError(v...)
}

/*
LogInfo satisfies Logger.
*/
func (d *DiagnosticSink) LogInfo(v ...interface{}) {
	d.logger.LogInfo(v...)
}

/*
LogDebug satisfies Logger.
*/
func (d *DiagnosticSink) LogDebug(v ...interface{}) {
	d.logger.LogDebug(v...)
}
