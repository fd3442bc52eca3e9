/*
 * golox
 *
 * Copyright 2026 golox Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"devt.de/golox/token"
	"devt.de/krotik/common/datautil"
)

/*
lookahead is the number of tokens the parser can see ahead of the one it
is currently consuming. The grammar (Section 4.2) never needs to look
further than the token right after the current one (e.g. telling a
getter from a 0-arity call), so 2 is enough.
*/
const lookahead = 2

/*
tokenBuffer is a sliding window over the scanner's token slice, grounded
on the teacher's LABuffer (parser/helper.go): a fixed-size RingBuffer
that is kept topped up as tokens are consumed.
*/
type tokenBuffer struct {
	tokens []token.Token
	pos    int
	buf    *datautil.RingBuffer
}

/*
newTokenBuffer creates a tokenBuffer over a complete token slice (the
scanner, unlike the teacher's lexer, runs to completion before the
parser starts, so there is no channel to read from).
*/
func newTokenBuffer(tokens []token.Token) *tokenBuffer {
	b := &tokenBuffer{tokens: tokens, buf: datautil.NewRingBuffer(lookahead)}

	for b.buf.Size() < lookahead && b.pos < len(b.tokens) {
		b.buf.Add(b.tokens[b.pos])
		b.pos++
	}

	return b
}

/*
next consumes and returns the token at the front of the window, pulling
in the next not-yet-seen token behind it.
*/
func (b *tokenBuffer) next() token.Token {
	v := b.buf.Poll()

	if b.pos < len(b.tokens) {
		b.buf.Add(b.tokens[b.pos])
		b.pos++
	}

	if v == nil {
		return token.Token{Type: token.EOF}
	}

	return v.(token.Token)
}

/*
peek looks n tokens into the window without consuming anything; peek(0)
is the token next() would return.
*/
func (b *tokenBuffer) peek(n int) token.Token {
	if n >= b.buf.Size() {
		return token.Token{Type: token.EOF}
	}

	v := b.buf.Get(n)
	if v == nil {
		return token.Token{Type: token.EOF}
	}

	return v.(token.Token)
}
