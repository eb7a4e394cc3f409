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

package types

import (
	"strconv"
	"strings"

	"github.com/board64/chesscore/util"
)

// Value is a search or evaluation score in centipawns.
type Value int32

// Constants for the score window. ValueInf is kept well clear of the
// int32 range limits so that -ValueInf and negating a fail-hard bound
// never overflows.
const (
	ValueZero      Value = 0
	ValueDraw      Value = 0
	ValueInf       Value = 1_000_000
	ValueNone      Value = -ValueInf - 1
	ValueMate      Value = 100_000
	ValueMateThreshold Value = ValueMate - Value(MaxDepth) - 1
)

// IsMateValue reports whether v lies in the mate-score band produced
// by backing a checkmate score up through the search tree.
func (v Value) IsMateValue() bool {
	a := util.Abs(int(v))
	return a > int(ValueMateThreshold) && a <= int(ValueMate)
}

// String renders a UCI-style score: "mate N", "cp N" or "N/A".
func (v Value) String() string {
	var b strings.Builder
	switch {
	case v == ValueNone:
		b.WriteString("N/A")
	case v.IsMateValue():
		b.WriteString("mate ")
		if v < ValueZero {
			b.WriteString("-")
		}
		pliesToMate := int(ValueMate) - util.Abs(int(v))
		b.WriteString(strconv.Itoa((pliesToMate + 1) / 2))
	default:
		b.WriteString("cp ")
		b.WriteString(strconv.Itoa(int(v)))
	}
	return b.String()
}
