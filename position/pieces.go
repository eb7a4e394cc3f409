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

package position

import "github.com/board64/chesscore/types"

// Pieces holds one bitboard per piece type for a single color.
type Pieces struct {
	King   types.Bitboard
	Queen  types.Bitboard
	Rook   types.Bitboard
	Bishop types.Bitboard
	Knight types.Bitboard
	Pawn   types.Bitboard
}

// Get returns the bitboard for piece type pt.
func (p *Pieces) Get(pt types.PieceType) types.Bitboard {
	switch pt {
	case types.King:
		return p.King
	case types.Queen:
		return p.Queen
	case types.Rook:
		return p.Rook
	case types.Bishop:
		return p.Bishop
	case types.Knight:
		return p.Knight
	case types.Pawn:
		return p.Pawn
	default:
		return types.BbZero
	}
}

// Set overwrites the bitboard for piece type pt.
func (p *Pieces) Set(pt types.PieceType, bb types.Bitboard) {
	switch pt {
	case types.King:
		p.King = bb
	case types.Queen:
		p.Queen = bb
	case types.Rook:
		p.Rook = bb
	case types.Bishop:
		p.Bishop = bb
	case types.Knight:
		p.Knight = bb
	case types.Pawn:
		p.Pawn = bb
	}
}

// Add sets sq in the bitboard for piece type pt.
func (p *Pieces) Add(pt types.PieceType, sq types.Square) {
	p.Set(pt, p.Get(pt).Set(sq))
}

// Remove clears sq in the bitboard for piece type pt.
func (p *Pieces) Remove(pt types.PieceType, sq types.Square) {
	p.Set(pt, p.Get(pt).Clear(sq))
}

// All returns the union of every piece type's bitboard.
func (p *Pieces) All() types.Bitboard {
	return p.King | p.Queen | p.Rook | p.Bishop | p.Knight | p.Pawn
}

// TypeAt returns the piece type occupying sq, or PieceTypeNone if sq
// is empty in this set.
func (p *Pieces) TypeAt(sq types.Square) types.PieceType {
	b := sq.Bb()
	switch {
	case p.King&b != 0:
		return types.King
	case p.Queen&b != 0:
		return types.Queen
	case p.Rook&b != 0:
		return types.Rook
	case p.Bishop&b != 0:
		return types.Bishop
	case p.Knight&b != 0:
		return types.Knight
	case p.Pawn&b != 0:
		return types.Pawn
	default:
		return types.PieceTypeNone
	}
}
