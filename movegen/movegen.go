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

var promoTypes = [4]types.PieceType{types.Queen, types.Rook, types.Bishop, types.Knight}

// Generate returns every legal move for the side to move. The order of
// the returned slice is unspecified; callers needing a particular
// search order apply their own.
func Generate(g *position.GameState, oracle *magic.Oracle) []types.Move {
	us := g.ActiveColor
	them := us.Flip()
	ownOcc := g.OccupiedBy(us)
	theirOcc := g.OccupiedBy(them)
	occ := ownOcc | theirOcc
	kingSq := g.KingSquare(us)

	safety := analyzeKing(g, oracle, us, kingSq, occ)

	moves := make([]types.Move, 0, 32)
	moves = genSliders(g, oracle, us, occ, ownOcc, safety, moves)
	moves = genKnights(g, oracle, us, occ, ownOcc, safety, moves)
	moves = genPawns(g, oracle, us, them, occ, ownOcc, theirOcc, safety, moves)
	moves = genEnPassant(g, oracle, us, them, kingSq, moves)
	moves = genKingMoves(g, oracle, us, them, kingSq, occ, ownOcc, moves)
	moves = genCastling(g, oracle, us, them, kingSq, occ, safety, moves)
	return moves
}

// restrictionFor returns the set of squares a piece on sq may still
// move to under check/pin restriction (Step 3).
func restrictionFor(safety kingSafety, sq types.Square) types.Bitboard {
	if mask, pinned := safety.Pins[sq]; pinned {
		return safety.AllowedNonKing & mask
	}
	return safety.AllowedNonKing
}

func genSliders(g *position.GameState, oracle *magic.Oracle, us types.Color, occ, ownOcc types.Bitboard, safety kingSafety, moves []types.Move) []types.Move {
	for _, pt := range [3]types.PieceType{types.Rook, types.Bishop, types.Queen} {
		pieces := g.PiecesOf(us, pt)
		var sq types.Square
		for pieces != 0 {
			sq, pieces = pieces.PopLsb()
			targets := oracle.AttacksOf(pt, sq, occ) &^ ownOcc
			targets &= restrictionFor(safety, sq)
			moves = appendTargets(moves, sq, targets)
		}
	}
	return moves
}

func genKnights(g *position.GameState, oracle *magic.Oracle, us types.Color, occ, ownOcc types.Bitboard, safety kingSafety, moves []types.Move) []types.Move {
	pieces := g.PiecesOf(us, types.Knight)
	var sq types.Square
	for pieces != 0 {
		sq, pieces = pieces.PopLsb()
		targets := oracle.AttacksOf(types.Knight, sq, occ) &^ ownOcc
		targets &= restrictionFor(safety, sq)
		moves = appendTargets(moves, sq, targets)
	}
	return moves
}

func appendTargets(moves []types.Move, from types.Square, targets types.Bitboard) []types.Move {
	var to types.Square
	for targets != 0 {
		to, targets = targets.PopLsb()
		moves = append(moves, types.NewNormalMove(from, to))
	}
	return moves
}

func isPromotionRank(sq types.Square) bool {
	r := sq.RankOf()
	return r == types.Rank1 || r == types.Rank8
}

func genPawns(g *position.GameState, oracle *magic.Oracle, us, them types.Color, occ, ownOcc, theirOcc types.Bitboard, safety kingSafety, moves []types.Move) []types.Move {
	pieces := g.PiecesOf(us, types.Pawn)
	pushDir := types.North
	doubleFromRank := types.Rank2
	if us == types.Black {
		pushDir = types.South
		doubleFromRank = types.Rank7
	}

	var from types.Square
	for pieces != 0 {
		from, pieces = pieces.PopLsb()
		restriction := restrictionFor(safety, from)

		var targets types.Bitboard
		if one := from.To(pushDir); one.IsValid() && !occ.Has(one) {
			targets = targets.Set(one)
			if from.RankOf() == doubleFromRank {
				if two := one.To(pushDir); two.IsValid() && !occ.Has(two) {
					targets = targets.Set(two)
				}
			}
		}
		targets |= oracle.PawnAttacksOf(us, from) & theirOcc
		targets &= restriction

		var to types.Square
		for targets != 0 {
			to, targets = targets.PopLsb()
			if isPromotionRank(to) {
				for _, promo := range promoTypes {
					moves = append(moves, types.NewPromotionMove(from, to, promo))
				}
				continue
			}
			moves = append(moves, types.NewNormalMove(from, to))
		}
	}
	return moves
}

// genEnPassant implements Steps 3 (re-admit) and 5 (discovered-check
// simulation) together: every pawn that could pseudo-legally capture
// onto the en-passant square is tried regardless of the check/pin
// restriction, and kept only if a full re-derivation of king safety
// after the simulated capture shows the king is not attacked. That
// re-derivation is a superset of both the ordinary check/pin rules and
// the horizontal-pin case, so no separate restriction is needed here.
func genEnPassant(g *position.GameState, oracle *magic.Oracle, us, them types.Color, kingSq types.Square, moves []types.Move) []types.Move {
	epSq := g.EnPassantTarget()
	if !epSq.IsValid() {
		return moves
	}

	// the captured pawn sits on the same rank as the moving pawn, one
	// step behind the en-passant square in them's forward direction
	capturedRank := types.Rank8
	if us == types.White {
		capturedRank = epSq.RankOf() - 1
	} else {
		capturedRank = epSq.RankOf() + 1
	}
	captured := types.SquareOf(epSq.FileOf(), capturedRank)

	sources := oracle.PawnAttacksOf(them, epSq) & g.PiecesOf(us, types.Pawn)
	var from types.Square
	for sources != 0 {
		from, sources = sources.PopLsb()
		simOcc := (g.Occupied() &^ from.Bb() &^ captured.Bb()) | epSq.Bb()
		if attackersTo(g, oracle, kingSq, them, simOcc, captured) != 0 {
			continue
		}
		moves = append(moves, types.NewNormalMove(from, epSq))
	}
	return moves
}

func genKingMoves(g *position.GameState, oracle *magic.Oracle, us, them types.Color, kingSq types.Square, occ, ownOcc types.Bitboard, moves []types.Move) []types.Move {
	targets := oracle.AttacksOf(types.King, kingSq, occ) &^ ownOcc
	occWithoutKing := occ &^ kingSq.Bb()

	var to types.Square
	for targets != 0 {
		to, targets = targets.PopLsb()
		if attackersTo(g, oracle, to, them, occWithoutKing, types.SqNone) != 0 {
			continue
		}
		moves = append(moves, types.NewNormalMove(kingSq, to))
	}
	return moves
}

func genCastling(g *position.GameState, oracle *magic.Oracle, us, them types.Color, kingSq types.Square, occ types.Bitboard, safety kingSafety, moves []types.Move) []types.Move {
	if safety.NumCheckers > 0 {
		return moves
	}

	type side struct {
		right        types.CastlingRights
		kingTo       types.Square
		emptySquares types.Bitboard
		kingPath     [2]types.Square // squares the king passes through and lands on, excluding its start
	}

	var sides [2]side
	if us == types.White {
		sides[0] = side{types.CastlingWhiteOO, types.SqG1, types.MakeSquare("f1").Bb() | types.MakeSquare("g1").Bb(), [2]types.Square{types.MakeSquare("f1"), types.SqG1}}
		sides[1] = side{types.CastlingWhiteOOO, types.SqC1, types.MakeSquare("b1").Bb() | types.MakeSquare("c1").Bb() | types.MakeSquare("d1").Bb(), [2]types.Square{types.MakeSquare("d1"), types.SqC1}}
	} else {
		sides[0] = side{types.CastlingBlackOO, types.SqG8, types.MakeSquare("f8").Bb() | types.MakeSquare("g8").Bb(), [2]types.Square{types.MakeSquare("f8"), types.SqG8}}
		sides[1] = side{types.CastlingBlackOOO, types.SqC8, types.MakeSquare("b8").Bb() | types.MakeSquare("c8").Bb() | types.MakeSquare("d8").Bb(), [2]types.Square{types.MakeSquare("d8"), types.SqC8}}
	}

	for i, s := range sides {
		if !g.CastlingRights().Has(s.right) {
			continue
		}
		if occ&s.emptySquares != 0 {
			continue
		}
		attacked := false
		for _, sq := range s.kingPath {
			if attackersTo(g, oracle, sq, them, occ, types.SqNone) != 0 {
				attacked = true
				break
			}
		}
		if attacked {
			continue
		}
		if i == 0 {
			moves = append(moves, types.NewCastleMove(kingSq, s.kingTo))
		} else {
			moves = append(moves, types.NewLongCastleMove(kingSq, s.kingTo))
		}
	}
	return moves
}
