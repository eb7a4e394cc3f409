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

package zobrist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/board64/chesscore/types"
)

func TestNewHasherIsDeterministic(t *testing.T) {
	a := NewHasher(DefaultSeed)
	b := NewHasher(DefaultSeed)
	assert.Equal(t, a.numbers, b.numbers)
}

func TestDefaultIsSingleton(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestToggleIsSelfInverse(t *testing.T) {
	h := Default()
	var k Key
	k2 := h.TogglePiece(k, types.White, types.Knight, types.MakeSquare("g1"))
	assert.NotEqual(t, k, k2)
	k3 := h.TogglePiece(k2, types.White, types.Knight, types.MakeSquare("g1"))
	assert.Equal(t, k, k3)
}

func TestToggleSideToMoveFlips(t *testing.T) {
	h := Default()
	var k Key
	assert.NotEqual(t, k, h.ToggleSideToMove(k))
	assert.Equal(t, k, h.ToggleSideToMove(h.ToggleSideToMove(k)))
}

func TestToggleEnPassantFileDistinctPerFile(t *testing.T) {
	h := Default()
	var k Key
	a := h.ToggleEnPassantFile(k, types.FileA)
	e := h.ToggleEnPassantFile(k, types.FileE)
	assert.NotEqual(t, a, e)
}
