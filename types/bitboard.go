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
	"fmt"
	"math/bits"
)

// Bitboard is a 64 bit set, one bit per square.
type Bitboard uint64

// Constants for files and ranks and a few convenience sets. File ordering
// within a rank's byte runs h,g,f,e,d,c,b,a as the bit index increases,
// so FileA is the high bit of each byte and FileH is the low bit.
const (
	BbZero Bitboard = 0
	BbAll  Bitboard = ^BbZero

	FileH_Bb Bitboard = 0x0101010101010101
	FileG_Bb Bitboard = FileH_Bb << 1
	FileF_Bb Bitboard = FileH_Bb << 2
	FileE_Bb Bitboard = FileH_Bb << 3
	FileD_Bb Bitboard = FileH_Bb << 4
	FileC_Bb Bitboard = FileH_Bb << 5
	FileB_Bb Bitboard = FileH_Bb << 6
	FileA_Bb Bitboard = FileH_Bb << 7

	Rank1_Bb Bitboard = 0xFF
	Rank2_Bb Bitboard = Rank1_Bb << (8 * 1)
	Rank3_Bb Bitboard = Rank1_Bb << (8 * 2)
	Rank4_Bb Bitboard = Rank1_Bb << (8 * 3)
	Rank5_Bb Bitboard = Rank1_Bb << (8 * 4)
	Rank6_Bb Bitboard = Rank1_Bb << (8 * 5)
	Rank7_Bb Bitboard = Rank1_Bb << (8 * 6)
	Rank8_Bb Bitboard = Rank1_Bb << (8 * 7)
)

var fileBb = [...]Bitboard{FileA_Bb, FileB_Bb, FileC_Bb, FileD_Bb, FileE_Bb, FileF_Bb, FileG_Bb, FileH_Bb}
var rankBb = [...]Bitboard{Rank1_Bb, Rank2_Bb, Rank3_Bb, Rank4_Bb, Rank5_Bb, Rank6_Bb, Rank7_Bb, Rank8_Bb}

// FileBb returns the bitboard of all squares on file f.
func FileBb(f File) Bitboard { return fileBb[f] }

// RankBb returns the bitboard of all squares on rank r.
func RankBb(r Rank) Bitboard { return rankBb[r] }

// Bb returns the single-bit bitboard for the square.
func (sq Square) Bb() Bitboard {
	return Bitboard(1) << uint(sq)
}

// Has reports whether sq is set in b.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bb() != 0
}

// Set returns b with sq added.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | sq.Bb()
}

// Clear returns b with sq removed.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ sq.Bb()
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the least significant set square, or SqNone if b is empty.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns the least significant set square together with b with
// that bit cleared, for draining a bitboard square by square.
func (b Bitboard) PopLsb() (Square, Bitboard) {
	sq := b.Lsb()
	if sq == SqNone {
		return SqNone, b
	}
	return sq, b&(b-1)
}

// Shift moves every set square one step in direction d, dropping
// squares that would wrap across a file edge.
func (b Bitboard) Shift(d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b &^ FileH_Bb) >> 1
	case West:
		return (b &^ FileA_Bb) << 1
	case Northeast:
		return (b &^ FileH_Bb) << 7
	case Southeast:
		return (b &^ FileH_Bb) >> 9
	case Northwest:
		return (b &^ FileA_Bb) << 9
	case Southwest:
		return (b &^ FileA_Bb) >> 7
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
}

// String renders the bitboard as an 8x8 grid, rank 8 first, for debugging.
func (b Bitboard) String() string {
	out := make([]byte, 0, 8*9)
	for r := Rank8; r >= Rank1; r-- {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, r)) {
				out = append(out, 'X')
			} else {
				out = append(out, '.')
			}
		}
		out = append(out, '\n')
	}
	return string(out)
}
