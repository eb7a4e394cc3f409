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

// Package position holds the mutable chess position (GameState): the
// pieces of both sides, whose move it is, castling rights, en-passant
// target and move clocks, plus the incremental Zobrist key. It is
// cheap to Clone and is the type every other package operates on.
package position

import (
	"github.com/board64/chesscore/types"
	"github.com/board64/chesscore/zobrist"
)

// GameState is a complete, self-contained chess position.
type GameState struct {
	White SideState
	Black SideState

	ActiveColor types.Color
	Castling    types.CastlingRights
	EnPassant   types.Square // SqNone if not available

	HalfmoveClock  int // plies since the last pawn move or capture
	FullmoveNumber int

	hasher *zobrist.Hasher
	Hash   zobrist.Key
}

// NewGame returns the standard chess starting position.
func NewGame() *GameState {
	g, err := FromFEN(StartingFEN)
	if err != nil {
		// The starting FEN is a compile-time constant; a parse failure
		// here means the constant itself is broken.
		panic(err)
	}
	return g
}

// sideOf returns a pointer to the SideState for color c.
func (g *GameState) sideOf(c types.Color) *SideState {
	if c == types.White {
		return &g.White
	}
	return &g.Black
}

// PieceAt returns the piece occupying sq, or NoPiece if it is empty.
func (g *GameState) PieceAt(sq types.Square) types.Piece {
	if pt := g.White.Pieces.TypeAt(sq); pt != types.PieceTypeNone {
		return types.MakePiece(types.White, pt)
	}
	if pt := g.Black.Pieces.TypeAt(sq); pt != types.PieceTypeNone {
		return types.MakePiece(types.Black, pt)
	}
	return types.NoPiece
}

// Occupied returns the bitboard of every occupied square.
func (g *GameState) Occupied() types.Bitboard {
	return g.White.Pieces.All() | g.Black.Pieces.All()
}

// OccupiedBy returns the bitboard of squares occupied by color c.
func (g *GameState) OccupiedBy(c types.Color) types.Bitboard {
	return g.sideOf(c).Pieces.All()
}

// KingSquare returns the square of color c's king.
func (g *GameState) KingSquare(c types.Color) types.Square {
	return g.sideOf(c).King
}

// Clone returns a deep, independent copy of g. GameState contains no
// pointers into shared mutable state (hasher is immutable and shared
// intentionally), so a plain value copy is a correct deep clone.
func (g *GameState) Clone() *GameState {
	c := *g
	return &c
}

// --- zobrist.Board ---

// PiecesOf returns the bitboard of pieces of type pt and color c.
func (g *GameState) PiecesOf(c types.Color, pt types.PieceType) types.Bitboard {
	return g.sideOf(c).Pieces.Get(pt)
}

// SideToMove returns the color to move.
func (g *GameState) SideToMove() types.Color {
	return g.ActiveColor
}

// CastlingRights returns the castling rights; it satisfies zobrist.Board.
func (g *GameState) CastlingRights() types.CastlingRights { return g.Castling }

// EnPassantTarget returns the en-passant target square, or SqNone.
func (g *GameState) EnPassantTarget() types.Square {
	return g.EnPassant
}

func (g *GameState) put(c types.Color, pt types.PieceType, sq types.Square) {
	g.sideOf(c).Pieces.Add(pt, sq)
	if pt == types.King {
		g.sideOf(c).King = sq
	}
	g.Hash = g.hasher.TogglePiece(g.Hash, c, pt, sq)
}

func (g *GameState) remove(c types.Color, pt types.PieceType, sq types.Square) {
	g.sideOf(c).Pieces.Remove(pt, sq)
	g.Hash = g.hasher.TogglePiece(g.Hash, c, pt, sq)
}
