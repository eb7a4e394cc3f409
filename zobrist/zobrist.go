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

// Package zobrist computes incremental Zobrist hashes of a position:
// 768 piece/color/square keys, one black-to-move key, four castling
// right keys and eight en-passant file keys, 781 numbers in total.
package zobrist

import (
	"math/rand"
	"sync"

	"github.com/board64/chesscore/types"
)

// Key is a 64 bit incremental hash of a position.
type Key uint64

// DefaultSeed is the seed used by Default(), kept fixed so repeated
// runs and saved test fixtures agree on the same key space.
const DefaultSeed uint64 = 26355

const (
	nPieceKeys   = 768 // 2 colors * 6 piece types * 64 squares
	idxBlackMove = nPieceKeys
	idxWhiteOO   = nPieceKeys + 1
	idxWhiteOOO  = nPieceKeys + 2
	idxBlackOO   = nPieceKeys + 3
	idxBlackOOO  = nPieceKeys + 4
	idxEpFile    = nPieceKeys + 5 // + 0..7
	nKeys        = nPieceKeys + 5 + 8
)

// Hasher holds the 781 random keys used to build and maintain a
// position's Zobrist hash. It has no mutable state past construction
// and is safe for concurrent use by multiple positions.
type Hasher struct {
	numbers [nKeys]Key
}

// NewHasher builds a Hasher whose keys are a deterministic function of
// seed: the same seed always produces the same key table.
func NewHasher(seed uint64) *Hasher {
	rng := rand.New(rand.NewSource(int64(seed)))
	h := &Hasher{}
	for i := range h.numbers {
		h.numbers[i] = Key(rng.Uint64())
	}
	return h
}

var (
	defaultOnce   sync.Once
	defaultHasher *Hasher
)

// Default returns a process-wide Hasher seeded with DefaultSeed, built
// once on first use. Most callers should use this rather than
// constructing their own, so that keys computed in different parts of
// the program are comparable.
func Default() *Hasher {
	defaultOnce.Do(func() {
		defaultHasher = NewHasher(DefaultSeed)
	})
	return defaultHasher
}

func pieceIndex(c types.Color, pt types.PieceType, sq types.Square) int {
	return int(c)*384 + int(pt)*64 + int(sq)
}

// TogglePiece flips the key for one piece of color c standing on sq.
// Calling it twice with the same arguments is a no-op, which is what
// lets make-move/unmake-move maintain the hash incrementally.
func (h *Hasher) TogglePiece(k Key, c types.Color, pt types.PieceType, sq types.Square) Key {
	return k ^ h.numbers[pieceIndex(c, pt, sq)]
}

// ToggleSideToMove flips the black-to-move key.
func (h *Hasher) ToggleSideToMove(k Key) Key {
	return k ^ h.numbers[idxBlackMove]
}

// ToggleCastling flips the keys for every castling right set in cr.
func (h *Hasher) ToggleCastling(k Key, cr types.CastlingRights) Key {
	if cr.Has(types.CastlingWhiteOO) {
		k ^= h.numbers[idxWhiteOO]
	}
	if cr.Has(types.CastlingWhiteOOO) {
		k ^= h.numbers[idxWhiteOOO]
	}
	if cr.Has(types.CastlingBlackOO) {
		k ^= h.numbers[idxBlackOO]
	}
	if cr.Has(types.CastlingBlackOOO) {
		k ^= h.numbers[idxBlackOOO]
	}
	return k
}

// ToggleEnPassantFile flips the key for the file an en-passant capture
// is available on.
func (h *Hasher) ToggleEnPassantFile(k Key, f types.File) Key {
	return k ^ h.numbers[idxEpFile+int(f)]
}

// Board is the minimal view of a position Hash needs: per-piece-type
// bitboards by color, side to move, castling rights and en-passant
// target. The position package's GameState satisfies this.
type Board interface {
	PiecesOf(c types.Color, pt types.PieceType) types.Bitboard
	SideToMove() types.Color
	CastlingRights() types.CastlingRights
	EnPassantTarget() types.Square
}

// Hash computes the full Zobrist key for b from scratch. Production
// code should prefer incremental updates via Toggle*; Hash is for
// building a position's initial key and for verifying the incremental
// maintenance stays correct.
func (h *Hasher) Hash(b Board) Key {
	var k Key
	for c := types.White; c <= types.Black; c++ {
		for pt := types.King; pt <= types.Pawn; pt++ {
			bb := b.PiecesOf(c, pt)
			for bb != 0 {
				var sq types.Square
				sq, bb = bb.PopLsb()
				k = h.TogglePiece(k, c, pt, sq)
			}
		}
	}
	if b.SideToMove() == types.Black {
		k = h.ToggleSideToMove(k)
	}
	k = h.ToggleCastling(k, b.CastlingRights())
	if ep := b.EnPassantTarget(); ep.IsValid() {
		k = h.ToggleEnPassantFile(k, ep.FileOf())
	}
	return k
}
