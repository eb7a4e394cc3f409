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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/board64/chesscore/magic"
	"github.com/board64/chesscore/position"
	"github.com/board64/chesscore/types"
)

func TestStartingPositionHasTwentyMoves(t *testing.T) {
	oracle := magic.New()
	g := position.NewGame()
	moves := Generate(g, oracle)
	assert.Len(t, moves, 20)
}

func TestPawnD2Shape(t *testing.T) {
	oracle := magic.New()
	g, err := position.FromFEN("4k3/8/8/8/8/8/3P4/4K3 w - - 0 1")
	assert.NoError(t, err)
	moves := Generate(g, oracle)
	var pawnMoves int
	for _, m := range moves {
		if m.From == types.MakeSquare("d2") {
			pawnMoves++
		}
	}
	assert.Equal(t, 2, pawnMoves) // d3 and d4
}

func TestPawnOnD4MovesOnlyToD5(t *testing.T) {
	oracle := magic.New()
	g, err := position.FromFEN("4k3/8/8/8/3P4/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	moves := Generate(g, oracle)
	var pawnTargets []types.Square
	for _, m := range moves {
		if m.From == types.MakeSquare("d4") {
			pawnTargets = append(pawnTargets, m.To)
		}
	}
	assert.ElementsMatch(t, []types.Square{types.MakeSquare("d5")}, pawnTargets)
}

func TestPawnOnD4WithKnightOnE5HasD5AndE5(t *testing.T) {
	oracle := magic.New()
	g, err := position.FromFEN("4k3/8/8/4n3/3P4/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	moves := Generate(g, oracle)
	var pawnTargets []types.Square
	for _, m := range moves {
		if m.From == types.MakeSquare("d4") {
			pawnTargets = append(pawnTargets, m.To)
		}
	}
	assert.ElementsMatch(t, []types.Square{types.MakeSquare("d5"), types.MakeSquare("e5")}, pawnTargets)
}

func TestKnightOnA1Shape(t *testing.T) {
	oracle := magic.New()
	g, err := position.FromFEN("4k3/8/8/8/8/8/8/N3K3 w - - 0 1")
	assert.NoError(t, err)
	moves := Generate(g, oracle)
	var knightMoves int
	for _, m := range moves {
		if m.From == types.MakeSquare("a1") {
			knightMoves++
		}
	}
	assert.Equal(t, 2, knightMoves) // b3, c2
}

func TestKingOnH8Shape(t *testing.T) {
	oracle := magic.New()
	g, err := position.FromFEN("7k/8/8/8/8/8/8/4K3 b - - 0 1")
	assert.NoError(t, err)
	moves := Generate(g, oracle)
	var kingMoves int
	for _, m := range moves {
		if m.From == types.MakeSquare("h8") {
			kingMoves++
		}
	}
	assert.Equal(t, 3, kingMoves) // g8, g7, h7
}

func TestRookOnD4Shape(t *testing.T) {
	oracle := magic.New()
	g, err := position.FromFEN("4k3/8/8/8/3R4/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	moves := Generate(g, oracle)
	var rookMoves int
	for _, m := range moves {
		if m.From == types.MakeSquare("d4") {
			rookMoves++
		}
	}
	assert.Equal(t, 14, rookMoves) // full rank + full file minus own square
}

func TestCastlingAvailableWhenUnobstructed(t *testing.T) {
	oracle := magic.New()
	g, err := position.FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	moves := Generate(g, oracle)
	var sawShort, sawLong bool
	for _, m := range moves {
		if m.Kind == types.Castle && m.From == types.SqE1 {
			sawShort = true
		}
		if m.Kind == types.LongCastle && m.From == types.SqE1 {
			sawLong = true
		}
	}
	assert.True(t, sawShort)
	assert.True(t, sawLong)
}

func TestCastlingBlockedWhileInCheck(t *testing.T) {
	oracle := magic.New()
	g, err := position.FromFEN("r3k2r/8/8/8/8/8/4r3/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	moves := Generate(g, oracle)
	for _, m := range moves {
		assert.NotEqual(t, types.Castle, m.Kind)
		assert.NotEqual(t, types.LongCastle, m.Kind)
	}
}

func TestCastlingBlockedThroughAttackedSquare(t *testing.T) {
	oracle := magic.New()
	// Black rook on the f-file pressures f1, the king's transit square for O-O.
	g, err := position.FromFEN("5r1k/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	assert.NoError(t, err)
	moves := Generate(g, oracle)
	for _, m := range moves {
		assert.NotEqual(t, types.Castle, m.Kind, "O-O must be illegal with f1 attacked")
	}
}

func TestEnPassantCaptureAppearsWhenLegal(t *testing.T) {
	oracle := magic.New()
	g, err := position.FromFEN("8/8/8/KPp4k/8/8/8/8 w - c6 0 1")
	assert.NoError(t, err)
	moves := Generate(g, oracle)
	found := false
	for _, m := range moves {
		if m.From == types.MakeSquare("b5") && m.To == types.MakeSquare("c6") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestEnPassantDiscoveredCheckIsSuppressed(t *testing.T) {
	oracle := magic.New()
	// White king on a5 shares the 5th rank with the black rook on h5; the
	// black pawn on c5 just double-pushed. Capturing en passant removes
	// both the white b5 pawn and the black c5 pawn from the rank, opening
	// a line from the rook straight to the king.
	g, err := position.FromFEN("8/8/8/KPp4r/8/8/8/6k1 w - c6 0 1")
	assert.NoError(t, err)
	moves := Generate(g, oracle)
	for _, m := range moves {
		if m.From == types.MakeSquare("b5") && m.To == types.MakeSquare("c6") {
			t.Fatalf("en-passant capture must be illegal: it exposes the king on a discovered-check rank")
		}
	}
}

func TestPinnedBishopCannotLeaveDiagonal(t *testing.T) {
	oracle := magic.New()
	// White bishop on c3 is pinned to the king on e1 by the black bishop
	// on a5, all on the same a5-e1 diagonal.
	g, err := position.FromFEN("7k/8/8/b7/8/2B5/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	moves := Generate(g, oracle)

	var bishopTargets []types.Square
	for _, m := range moves {
		if m.From == types.MakeSquare("c3") {
			bishopTargets = append(bishopTargets, m.To)
		}
	}
	assert.ElementsMatch(t, []types.Square{
		types.MakeSquare("d2"), types.MakeSquare("b4"), types.MakeSquare("a5"),
	}, bishopTargets)
}

func TestCheckmateDetection(t *testing.T) {
	oracle := magic.New()
	// Fool's mate position.
	g, err := position.FromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	assert.NoError(t, err)
	assert.True(t, IsCheckmate(g, oracle))
}

func TestStalemateDetection(t *testing.T) {
	oracle := magic.New()
	g, err := position.FromFEN("k7/8/1Q6/8/8/8/8/1K6 b - - 0 1")
	assert.NoError(t, err)
	assert.True(t, IsStalemate(g, oracle))
}
