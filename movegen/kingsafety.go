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
	"github.com/board64/chesscore/magic"
	"github.com/board64/chesscore/position"
	"github.com/board64/chesscore/types"
)

// kingSafety is the result of Step 1: attacks on the king. AllowedNonKing
// is the set of squares a non-king move is allowed to target (BbAll when
// not in check, empty under double check, forcing a king move). Pins
// maps a pinned piece's square to the set of squares it may still move
// to without exposing its own king.
type kingSafety struct {
	NumCheckers    int
	AllowedNonKing types.Bitboard
	Pins           map[types.Square]types.Bitboard
}

var rookDirs = [4]types.Direction{types.North, types.South, types.East, types.West}
var bishopDirs = [4]types.Direction{types.Northeast, types.Northwest, types.Southeast, types.Southwest}

// analyzeKing walks the straight and diagonal rays from the king's
// square to find checking or pinning sliders (Step 1), then folds in
// knight/pawn/king checkers from the oracle's leaper attack tables.
func analyzeKing(g *position.GameState, oracle *magic.Oracle, us types.Color, kingSq types.Square, occ types.Bitboard) kingSafety {
	them := us.Flip()
	ks := kingSafety{Pins: make(map[types.Square]types.Bitboard)}

	var blockMasks []types.Bitboard

	scan := func(dirs [4]types.Direction, sliderTypes [2]types.PieceType) {
		for _, d := range dirs {
			s := kingSq
			var ray types.Bitboard
			var firstBlocker types.Square = types.SqNone
			for {
				s = s.To(d)
				if !s.IsValid() {
					break
				}
				ray = ray.Set(s)
				if !occ.Has(s) {
					continue
				}
				if firstBlocker == types.SqNone {
					firstBlocker = s
					if isEnemySlider(g, them, s, sliderTypes) {
						ks.NumCheckers++
						blockMasks = append(blockMasks, ray)
						break
					}
					if g.OccupiedBy(us).Has(s) {
						continue // candidate pin; keep walking for a second blocker
					}
					break // enemy piece of the wrong type blocks the ray
				}
				// second blocker on this ray
				if isEnemySlider(g, them, s, sliderTypes) {
					ks.Pins[firstBlocker] = ray
				}
				break
			}
		}
	}
	scan(rookDirs, [2]types.PieceType{types.Rook, types.Queen})
	scan(bishopDirs, [2]types.PieceType{types.Bishop, types.Queen})

	addLeaperCheckers := func(checkers types.Bitboard) {
		var sq types.Square
		for checkers != 0 {
			sq, checkers = checkers.PopLsb()
			ks.NumCheckers++
			blockMasks = append(blockMasks, sq.Bb())
		}
	}
	addLeaperCheckers(oracle.AttacksOf(types.Knight, kingSq, occ) & g.PiecesOf(them, types.Knight))
	addLeaperCheckers(oracle.PawnAttacksOf(us, kingSq) & g.PiecesOf(them, types.Pawn))
	addLeaperCheckers(oracle.AttacksOf(types.King, kingSq, occ) & g.PiecesOf(them, types.King))

	switch {
	case ks.NumCheckers == 0:
		ks.AllowedNonKing = types.BbAll
	case ks.NumCheckers == 1:
		ks.AllowedNonKing = blockMasks[0]
	default:
		ks.AllowedNonKing = types.BbZero
	}
	return ks
}

func isEnemySlider(g *position.GameState, them types.Color, sq types.Square, sliderTypes [2]types.PieceType) bool {
	if !g.OccupiedBy(them).Has(sq) {
		return false
	}
	pt := g.PiecesOf(them, sliderTypes[0])
	if pt.Has(sq) {
		return true
	}
	return g.PiecesOf(them, sliderTypes[1]).Has(sq)
}
