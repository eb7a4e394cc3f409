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

// Package magic builds the attack oracle used by the move generator:
// fancy-magic-bitboard tables for rook and bishop rays, plus plain
// precomputed tables for king, knight and pawn attacks. Construction
// runs a deterministic seeded search at startup ("fancy magics", the
// Stockfish approach) rather than reading baked-in constants, since
// the tables depend on square numbering chosen for this module.
package magic

import "github.com/board64/chesscore/types"

// Magic holds the fancy-magic lookup data for one square of one
// sliding piece type.
type Magic struct {
	Mask    types.Bitboard
	Number  types.Bitboard
	Shift   uint
	Attacks []types.Bitboard
}

func (m *Magic) index(occupied types.Bitboard) uint {
	occ := occupied & m.Mask
	occ *= m.Number
	return uint(occ >> m.Shift)
}

// Oracle is the complete, immutable attack table set for every piece
// type on every square. Build once with New() and share it; nothing
// in Oracle is mutated after construction.
type Oracle struct {
	rook   [64]Magic
	bishop [64]Magic
	king   [64]types.Bitboard
	knight [64]types.Bitboard
	pawn   [2][64]types.Bitboard
}

var rookDirs = [4]types.Direction{types.North, types.South, types.East, types.West}
var bishopDirs = [4]types.Direction{types.Northeast, types.Northwest, types.Southeast, types.Southwest}

// New builds a fresh Oracle. It is deterministic: the same build
// always produces the same tables, so callers may build one at
// startup and treat it as a constant for the life of the process.
func New() *Oracle {
	o := &Oracle{}
	o.initLeapers()
	initSliding(&o.rook, rookDirs)
	initSliding(&o.bishop, bishopDirs)
	return o
}

func (o *Oracle) initLeapers() {
	for sq := types.Square(0); sq < types.Square(types.SqLength); sq++ {
		var k, n types.Bitboard
		for _, d := range allDirections {
			if to := sq.To(d); to.IsValid() {
				k = k.Set(to)
			}
		}
		o.king[sq] = k
		n = knightAttacksFrom(sq)
		o.knight[sq] = n
		o.pawn[types.White][sq] = pawnAttacksFrom(sq, types.White)
		o.pawn[types.Black][sq] = pawnAttacksFrom(sq, types.Black)
	}
}

var allDirections = [8]types.Direction{
	types.North, types.South, types.East, types.West,
	types.Northeast, types.Northwest, types.Southeast, types.Southwest,
}

// knightAttacksFrom computes the knight leaps from sq in file/rank
// space, since a knight move isn't expressible as a single Direction step.
func knightAttacksFrom(sq types.Square) types.Bitboard {
	f, r := int(sq.FileOf()), int(sq.RankOf())
	deltas := [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	var bb types.Bitboard
	for _, d := range deltas {
		nf, nr := f+d[0], r+d[1]
		if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
			continue
		}
		bb = bb.Set(types.SquareOf(types.File(nf), types.Rank(nr)))
	}
	return bb
}

func pawnAttacksFrom(sq types.Square, c types.Color) types.Bitboard {
	var fwd [2]types.Direction
	if c == types.White {
		fwd = [2]types.Direction{types.Northeast, types.Northwest}
	} else {
		fwd = [2]types.Direction{types.Southeast, types.Southwest}
	}
	var bb types.Bitboard
	for _, d := range fwd {
		if to := sq.To(d); to.IsValid() {
			bb = bb.Set(to)
		}
	}
	return bb
}

// slidingAttack walks each of the four ray directions from sq on an
// occupied board, stopping (inclusive) at the first occupied square,
// the reference implementation every fancy-magic table is checked
// against.
func slidingAttack(dirs [4]types.Direction, sq types.Square, occupied types.Bitboard) types.Bitboard {
	var attack types.Bitboard
	for _, d := range dirs {
		s := sq
		for {
			s = s.To(d)
			if !s.IsValid() {
				break
			}
			attack = attack.Set(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// AttacksOf returns the squares attacked by a piece of type pt
// standing on sq given the board occupancy occupied. pt must not be
// Pawn; use PawnAttacksOf for pawns, since their attacks depend on color.
func (o *Oracle) AttacksOf(pt types.PieceType, sq types.Square, occupied types.Bitboard) types.Bitboard {
	switch pt {
	case types.Rook:
		m := &o.rook[sq]
		return m.Attacks[m.index(occupied)]
	case types.Bishop:
		m := &o.bishop[sq]
		return m.Attacks[m.index(occupied)]
	case types.Queen:
		mr, mb := &o.rook[sq], &o.bishop[sq]
		return mr.Attacks[mr.index(occupied)] | mb.Attacks[mb.index(occupied)]
	case types.King:
		return o.king[sq]
	case types.Knight:
		return o.knight[sq]
	default:
		return types.BbZero
	}
}

// PawnAttacksOf returns the squares a pawn of color c on sq attacks
// (diagonally forward), ignoring whether those squares are occupied.
func (o *Oracle) PawnAttacksOf(c types.Color, sq types.Square) types.Bitboard {
	return o.pawn[c][sq]
}

// seeds are the per-rank starting seeds that make the deterministic
// search below converge in very few attempts; the same constants
// Stockfish uses, since they depend only on the search algorithm, not
// on a particular square numbering.
var seeds = [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

func initSliding(table *[64]Magic, dirs [4]types.Direction) {
	var occupancy [4096]types.Bitboard
	var reference [4096]types.Bitboard
	var epoch [4096]int
	cnt := 0

	for sq := types.Square(0); sq < types.Square(types.SqLength); sq++ {
		m := &table[sq]

		edges := ((types.Rank1_Bb | types.Rank8_Bb) &^ types.RankBb(sq.RankOf())) |
			((types.FileA_Bb | types.FileH_Bb) &^ types.FileBb(sq.FileOf()))
		m.Mask = slidingAttack(dirs, sq, types.BbZero) &^ edges
		m.Shift = uint(64 - m.Mask.PopCount())
		m.Attacks = make([]types.Bitboard, 1<<uint(m.Mask.PopCount()))

		// Carry-Rippler: enumerate every subset of Mask.
		size := 0
		b := types.BbZero
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(dirs, sq, b)
			size++
			b = (b - m.Mask) & m.Mask
			if b == 0 {
				break
			}
		}

		rng := newPrng(seeds[sq.RankOf()])
		for i := 0; i < size; {
			var candidate types.Bitboard
			for {
				candidate = rng.sparse()
				if ((candidate * m.Mask) >> 56).PopCount() >= 6 {
					continue
				}
				break
			}
			m.Number = candidate

			cnt++
			ok := true
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.Attacks[idx] = reference[i]
				} else if m.Attacks[idx] != reference[i] {
					ok = false
					break
				}
			}
			if ok {
				break
			}
		}
	}
}
