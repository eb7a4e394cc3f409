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

// Package movegen computes the fully legal moves available to the side
// to move: pin and check analysis against the magic oracle, castling,
// en-passant (including the rare discovered-check case), and promotion
// expansion. Nothing in position knows how to detect an attack on a
// square, so that logic lives entirely here to avoid a dependency
// cycle between position and movegen.
package movegen

import (
	"github.com/board64/chesscore/magic"
	"github.com/board64/chesscore/position"
	"github.com/board64/chesscore/types"
)

// attackersTo returns the bitboard of every piece of color by that
// attacks sq, given board occupancy occ. excludePawn, if valid, is
// removed from by's pawn set first; this lets callers ask "would sq
// still be attacked after this specific pawn is captured" without
// mutating the position, which is exactly what en-passant legality
// checking needs.
func attackersTo(g *position.GameState, oracle *magic.Oracle, sq types.Square, by types.Color, occ types.Bitboard, excludePawn types.Square) types.Bitboard {
	pawns := g.PiecesOf(by, types.Pawn)
	if excludePawn.IsValid() {
		pawns = pawns.Clear(excludePawn)
	}

	var attackers types.Bitboard
	attackers |= oracle.PawnAttacksOf(by.Flip(), sq) & pawns
	attackers |= oracle.AttacksOf(types.Knight, sq, occ) & g.PiecesOf(by, types.Knight)
	attackers |= oracle.AttacksOf(types.King, sq, occ) & g.PiecesOf(by, types.King)
	attackers |= oracle.AttacksOf(types.Bishop, sq, occ) & (g.PiecesOf(by, types.Bishop) | g.PiecesOf(by, types.Queen))
	attackers |= oracle.AttacksOf(types.Rook, sq, occ) & (g.PiecesOf(by, types.Rook) | g.PiecesOf(by, types.Queen))
	return attackers
}

// IsAttacked reports whether sq is attacked by color by under the
// position's actual occupancy.
func IsAttacked(g *position.GameState, oracle *magic.Oracle, sq types.Square, by types.Color) bool {
	return attackersTo(g, oracle, sq, by, g.Occupied(), types.SqNone) != 0
}

// IsInCheck reports whether the side to move's king is attacked.
func IsInCheck(g *position.GameState, oracle *magic.Oracle) bool {
	us := g.ActiveColor
	return IsAttacked(g, oracle, g.KingSquare(us), us.Flip())
}
