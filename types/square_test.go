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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareOfAndFileRank(t *testing.T) {
	assert.Equal(t, Square(7), SqA1)
	assert.Equal(t, Square(56), SqH8)
	assert.Equal(t, FileA, SqA1.FileOf())
	assert.Equal(t, Rank1, SqA1.RankOf())
	assert.Equal(t, FileH, SqH8.FileOf())
	assert.Equal(t, Rank8, SqH8.RankOf())
}

func TestMakeSquareAndString(t *testing.T) {
	assert.Equal(t, SqA1, MakeSquare("a1"))
	assert.Equal(t, SqH8, MakeSquare("h8"))
	assert.Equal(t, "e4", MakeSquare("e4").String())
	assert.Equal(t, "-", SqNone.String())
}

func TestSquareTo(t *testing.T) {
	d4 := MakeSquare("d4")
	assert.Equal(t, MakeSquare("d5"), d4.To(North))
	assert.Equal(t, MakeSquare("e4"), d4.To(East))
	assert.Equal(t, MakeSquare("c4"), d4.To(West))
	assert.Equal(t, SqNone, MakeSquare("h4").To(East))
	assert.Equal(t, SqNone, MakeSquare("a4").To(West))
}

func TestSquareRoundTrip(t *testing.T) {
	for f := FileA; f <= FileH; f++ {
		for r := Rank1; r <= Rank8; r++ {
			sq := SquareOf(f, r)
			assert.True(t, sq.IsValid())
			assert.Equal(t, f, sq.FileOf())
			assert.Equal(t, r, sq.RankOf())
		}
	}
}
