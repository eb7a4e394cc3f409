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

func TestFileAndRankBb(t *testing.T) {
	assert.Equal(t, 8, FileA_Bb.PopCount())
	assert.Equal(t, 8, FileH_Bb.PopCount())
	assert.True(t, FileA_Bb.Has(SqA1))
	assert.True(t, FileA_Bb.Has(SqA8))
	assert.False(t, FileA_Bb.Has(SqH1))
	assert.True(t, Rank1_Bb.Has(SqA1))
	assert.True(t, Rank1_Bb.Has(SqH1))
	assert.False(t, Rank1_Bb.Has(SqA8))
}

func TestShiftStaysOnBoard(t *testing.T) {
	fromH := FileH_Bb.Shift(East)
	assert.Equal(t, BbZero, fromH)

	fromA := FileA_Bb.Shift(West)
	assert.Equal(t, BbZero, fromA)

	d4 := MakeSquare("d4").Bb()
	assert.Equal(t, MakeSquare("d5").Bb(), d4.Shift(North))
	assert.Equal(t, MakeSquare("e5").Bb(), d4.Shift(Northeast))
	assert.Equal(t, MakeSquare("c3").Bb(), d4.Shift(Southwest))
}

func TestPopLsb(t *testing.T) {
	b := SqA1.Bb() | SqH8.Bb()
	sq, rest := b.PopLsb()
	assert.Equal(t, SqA1, sq)
	assert.Equal(t, SqH8.Bb(), rest)
	sq2, rest2 := rest.PopLsb()
	assert.Equal(t, SqH8, sq2)
	assert.Equal(t, BbZero, rest2)
}

func TestSetClearHas(t *testing.T) {
	d4 := MakeSquare("d4")
	b := BbZero.Set(d4)
	assert.True(t, b.Has(d4))
	b = b.Clear(d4)
	assert.False(t, b.Has(d4))
}
