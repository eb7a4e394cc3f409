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

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/board64/chesscore/eval"
	"github.com/board64/chesscore/game"
	"github.com/board64/chesscore/magic"
	"github.com/board64/chesscore/types"
)

func TestFindsMateInOne(t *testing.T) {
	// Corner mate: the black king on a8 has every escape square
	// covered by the white king on b6, and Qh1-h8 delivers check along
	// the back rank from a square the king cannot reach. The white pawn
	// on d5 closes the long diagonal, so Black is not already in check
	// and Qb7 is not a second mate.
	g, err := game.FromFEN("k7/8/1K6/3P4/8/8/8/7Q w - - 0 1", magic.New())
	assert.NoError(t, err)

	tt := NewTable(1)
	result := IterativeDeepening(g, eval.Material, tt, 3)

	assert.Equal(t, types.MakeSquare("h1"), result.BestMove.From)
	assert.Equal(t, types.MakeSquare("h8"), result.BestMove.To)
	assert.True(t, result.Score.IsMateValue())
}

func TestPrefersWinningMaterial(t *testing.T) {
	// White can capture a hanging rook on d8 with the bishop on a5.
	g, err := game.FromFEN("3r4/8/8/B7/8/8/8/4K2k w - - 0 1", magic.New())
	assert.NoError(t, err)

	tt := NewTable(1)
	result := IterativeDeepening(g, eval.Material, tt, 2)

	assert.Equal(t, types.MakeSquare("a5"), result.BestMove.From)
	assert.Equal(t, types.MakeSquare("d8"), result.BestMove.To)
}

func TestIterativeDeepeningReportsAValidMoveAtTheFinalDepth(t *testing.T) {
	g := game.New(magic.New())
	tt := NewTable(1)
	result := IterativeDeepening(g, eval.Material, tt, 2)
	assert.True(t, result.BestMove.IsValid())
	assert.Equal(t, 2, result.Depth)
}

// TestRootBestMoveIsLegalAndTTDoesNotChangeTheScore covers the two
// halves of the root-result soundness property: best_move must be one
// of the position's legal_moves, and the score iterative deepening
// reports at depth d must equal a bare depth-d negamax call seeded
// with its own empty table — the TT built up by shallower iterations
// may reorder moves for speed but must never change the fail-hard
// score it returns.
func TestRootBestMoveIsLegalAndTTDoesNotChangeTheScore(t *testing.T) {
	for depth := 1; depth <= 4; depth++ {
		g := game.New(magic.New())

		warm := NewTable(1)
		result := IterativeDeepening(g, eval.Material, warm, depth)

		legal := g.LegalMoves()
		found := false
		for _, m := range legal {
			if m == result.BestMove {
				found = true
				break
			}
		}
		assert.True(t, found, "depth %d: best move %s not among legal moves", depth, result.BestMove)

		cold := NewTable(1)
		want := negamax(g.Clone(), eval.Material, cold, depth, 0, -window, window)
		assert.Equal(t, want, result.Score, "depth %d: TT-warmed score diverged from a cold search", depth)
	}
}

// TestNegamaxSymmetry checks negamax's defining property: the score a
// node returns is the negation of the same-depth score its best child
// returns from the mover-to-move's own point of view. Both searches
// use their own fresh table so neither can read the other's entries.
func TestNegamaxSymmetry(t *testing.T) {
	g, err := game.FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", magic.New())
	assert.NoError(t, err)

	const depth = 3
	parentTT := NewTable(1)
	parentScore := negamax(g, eval.Material, parentTT, depth, 0, -window, window)
	entry, ok := parentTT.Probe(g.State.Hash)
	assert.True(t, ok)
	assert.True(t, entry.Best.IsValid())

	child := g.Clone()
	child.MakeMove(entry.Best)
	childTT := NewTable(1)
	childScore := negamax(child, eval.Material, childTT, depth-1, 1, -window, window)

	assert.Equal(t, parentScore, -childScore)
}
