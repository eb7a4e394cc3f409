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

package magicsearch

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/board64/chesscore/types"
)

func TestFindProducesAMagicThatReproducesEveryOccupancy(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sq := types.MakeSquare("d4")

	m := Find(rng, Rook, sq)

	dirs := Rook.dirs()
	attacks := make(map[types.Bitboard]types.Bitboard)
	b := types.BbZero
	for {
		idx := (b & m.Mask) * m.Number >> m.Shift
		want := slidingAttack(dirs, sq, b)
		if got, seen := attacks[types.Bitboard(idx)]; seen {
			assert.Equal(t, want, got, "two occupancies collided on the same index with different attack sets")
		} else {
			attacks[types.Bitboard(idx)] = want
		}
		b = (b - m.Mask) & m.Mask
		if b == 0 {
			break
		}
	}
	assert.Greater(t, m.Tries, 0)
}

func TestSearchAllCoversEverySquareForBothSliders(t *testing.T) {
	results, err := SearchAll(context.Background(), 4)
	assert.NoError(t, err)
	assert.Len(t, results, 128)

	for i, m := range results {
		wantSquare := types.Square(i / 2)
		assert.Equal(t, wantSquare, m.Square)
	}
}

func TestSearchAllRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := SearchAll(ctx, 2)
	assert.Error(t, err)
}
