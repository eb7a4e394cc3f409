/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package assert gives caller-contract violations ("this must never
// happen if the caller held up their end") a single standardized spot
// to panic from, distinct from expected failures, which never panic (a
// bad FEN is an error return from FromFEN; a position with no legal
// moves is reported as a game result or a mate/draw score). Guard every call site with
// "if assert.DEBUG" so the argument evaluation and the Assert call are
// skipped whenever DEBUG is off.
package assert

import "fmt"

// DEBUG controls whether Assert panics. False by default so assertions
// cost nothing in a release build; config.Setup wires it to
// config.Settings.Debug so a config.toml flag can turn assertions on
// without a rebuild.
var DEBUG = false

// Assert panics with msg (formatted with a) if test is false.
//
//	if assert.DEBUG {
//		assert.Assert(sq.IsValid(), "invalid square %d", sq)
//	}
func Assert(test bool, msg string, a ...interface{}) {
	if !test {
		panic(fmt.Sprintf(msg, a...))
	}
}
