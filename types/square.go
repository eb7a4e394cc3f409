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

import "github.com/board64/chesscore/assert"

// Square identifies one of the 64 squares of a chess board.
//
// Square n maps to file = (63-n) mod 8 and rank = n / 8: file ordering
// is h,g,f,e,d,c,b,a within a rank, and ranks ascend with the index, so
// a1 == 1<<7 and h8 == 1<<56.
type Square uint8

// SqNone is the sentinel invalid square.
const SqNone Square = 64

// Named squares for the corners and king/rook start squares, used by
// castling and test fixtures. Full board coverage is reached through
// SquareOf.
const (
	SqA1 Square = Square(Rank1)*8 + (7 - Square(FileA))
	SqE1 Square = Square(Rank1)*8 + (7 - Square(FileE))
	SqH1 Square = Square(Rank1)*8 + (7 - Square(FileH))
	SqA8 Square = Square(Rank8)*8 + (7 - Square(FileA))
	SqE8 Square = Square(Rank8)*8 + (7 - Square(FileE))
	SqH8 Square = Square(Rank8)*8 + (7 - Square(FileH))
	SqD1 Square = Square(Rank1)*8 + (7 - Square(FileD))
	SqF1 Square = Square(Rank1)*8 + (7 - Square(FileF))
	SqC1 Square = Square(Rank1)*8 + (7 - Square(FileC))
	SqG1 Square = Square(Rank1)*8 + (7 - Square(FileG))
	SqD8 Square = Square(Rank8)*8 + (7 - Square(FileD))
	SqF8 Square = Square(Rank8)*8 + (7 - Square(FileF))
	SqC8 Square = Square(Rank8)*8 + (7 - Square(FileC))
	SqG8 Square = Square(Rank8)*8 + (7 - Square(FileG))
	SqC6 Square = Square(Rank6)*8 + (7 - Square(FileC))
)

// IsValid reports whether sq is one of the 64 board squares.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file of the square.
func (sq Square) FileOf() File {
	return File(7 - sq%8)
}

// RankOf returns the rank of the square.
func (sq Square) RankOf() Rank {
	return Rank(sq / 8)
}

// SquareOf builds a square from a file and rank, returning SqNone for
// an out of range file or rank.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(r)*8 + (7 - Square(f))
}

// MakeSquare parses a two character algebraic square name (e.g. "e4")
// and returns SqNone if the string is not a valid square.
func MakeSquare(s string) Square {
	if assert.DEBUG {
		assert.Assert(len(s) == 2, "square string must be 2 characters, got %q", s)
	}
	if len(s) != 2 {
		return SqNone
	}
	f := File(s[0] - 'a')
	r := Rank(s[1] - '1')
	return SquareOf(f, r)
}

// String returns the algebraic name of the square, e.g. "e4", or "-"
// for an invalid square.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// To returns the square reached by stepping one square in direction d,
// or SqNone if that step would leave the board.
func (sq Square) To(d Direction) Square {
	f := sq.FileOf()
	switch d {
	case East, Northeast, Southeast:
		if f >= FileH {
			return SqNone
		}
	case West, Northwest, Southwest:
		if f <= FileA {
			return SqNone
		}
	}
	n := int(sq) + int(d)
	if n < 0 || n >= SqLength {
		return SqNone
	}
	return Square(n)
}
