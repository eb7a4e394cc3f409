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

// rookSquares gives the kingside/queenside rook start squares for a color.
func rookSquares(c types.Color) (kingside, queenside types.Square) {
	if c == types.White {
		return types.SqH1, types.SqA1
	}
	return types.SqH8, types.SqA8
}

func kingStartSquare(c types.Color) types.Square {
	if c == types.White {
		return types.SqE1
	}
	return types.SqE8
}

func ownCastling(c types.Color) types.CastlingRights {
	if c == types.White {
		return types.CastlingWhite
	}
	return types.CastlingBlack
}

// MakeMove applies m, which must be a legal move for the side to move,
// and advances ActiveColor, the move clocks, castling rights, the
// en-passant target and the incremental Zobrist hash. MakeMove does
// not validate legality; callers are expected to only ever pass moves
// returned by the move generator.
func (g *GameState) MakeMove(m types.Move) {
	us := g.ActiveColor
	them := us.Flip()

	epTarget := g.EnPassant
	if epTarget.IsValid() {
		g.Hash = g.hasher.ToggleEnPassantFile(g.Hash, epTarget.FileOf())
	}
	g.EnPassant = types.SqNone

	movingPt := g.sideOf(us).Pieces.TypeAt(m.From)
	isPawnMove := movingPt == types.Pawn
	isCapture := g.sideOf(them).Pieces.TypeAt(m.To) != types.PieceTypeNone

	switch m.Kind {
	case types.Castle, types.LongCastle:
		kingside := m.Kind == types.Castle
		rookFrom, rookTo := castleRookSquares(us, kingside)
		g.relocate(us, types.King, m.From, m.To)
		g.relocate(us, types.Rook, rookFrom, rookTo)

	case types.Promotion:
		g.remove(us, types.Pawn, m.From)
		if isCapture {
			g.remove(them, g.sideOf(them).Pieces.TypeAt(m.To), m.To)
		}
		g.put(us, m.Promo, m.To)

	default: // Normal
		if isPawnMove && !isCapture && m.To == epTarget {
			// en-passant capture: the captured pawn sits beside the
			// destination square, on the mover's starting rank.
			capturedSq := types.SquareOf(m.To.FileOf(), m.From.RankOf())
			g.remove(them, types.Pawn, capturedSq)
			isCapture = true
		} else if isCapture {
			g.remove(them, g.sideOf(them).Pieces.TypeAt(m.To), m.To)
		}
		g.relocate(us, movingPt, m.From, m.To)

		if isPawnMove && absRankDiff(m.From, m.To) == 2 {
			epSq := types.SquareOf(m.From.FileOf(), midRank(m.From, m.To))
			g.EnPassant = epSq
			g.Hash = g.hasher.ToggleEnPassantFile(g.Hash, epSq.FileOf())
		}
	}

	g.updateCastlingRights(us, m)

	if isPawnMove || isCapture {
		g.HalfmoveClock = 0
	} else {
		g.HalfmoveClock++
	}
	if us == types.Black {
		g.FullmoveNumber++
	}

	g.ActiveColor = them
	g.Hash = g.hasher.ToggleSideToMove(g.Hash)
}

// relocate moves a piece from one square to another, keeping the king
// cache and Zobrist hash in sync.
func (g *GameState) relocate(c types.Color, pt types.PieceType, from, to types.Square) {
	g.remove(c, pt, from)
	g.put(c, pt, to)
}

func castleRookSquares(c types.Color, kingside bool) (from, to types.Square) {
	ks, qs := rookSquares(c)
	if kingside {
		if c == types.White {
			return ks, types.SquareOf(types.FileF, types.Rank1)
		}
		return ks, types.SquareOf(types.FileF, types.Rank8)
	}
	if c == types.White {
		return qs, types.SquareOf(types.FileD, types.Rank1)
	}
	return qs, types.SquareOf(types.FileD, types.Rank8)
}

func (g *GameState) updateCastlingRights(us types.Color, m types.Move) {
	if g.Castling == types.CastlingNone {
		return
	}
	removed := types.CastlingNone

	if m.Kind == types.Castle || m.Kind == types.LongCastle || m.From == kingStartSquare(us) {
		removed = removed.Add(ownCastling(us))
	}
	ks, qs := rookSquares(us)
	if m.From == ks {
		removed = removed.Add(kingsideRight(us))
	}
	if m.From == qs {
		removed = removed.Add(queensideRight(us))
	}
	themKs, themQs := rookSquares(us.Flip())
	if m.To == themKs {
		removed = removed.Add(kingsideRight(us.Flip()))
	}
	if m.To == themQs {
		removed = removed.Add(queensideRight(us.Flip()))
	}

	if removed != types.CastlingNone {
		g.Hash = g.hasher.ToggleCastling(g.Hash, g.Castling&removed)
		g.Castling = g.Castling.Remove(removed)
	}
}

func kingsideRight(c types.Color) types.CastlingRights {
	if c == types.White {
		return types.CastlingWhiteOO
	}
	return types.CastlingBlackOO
}

func queensideRight(c types.Color) types.CastlingRights {
	if c == types.White {
		return types.CastlingWhiteOOO
	}
	return types.CastlingBlackOOO
}

func absRankDiff(a, b types.Square) int {
	d := int(a.RankOf()) - int(b.RankOf())
	if d < 0 {
		d = -d
	}
	return d
}

func midRank(from, to types.Square) types.Rank {
	return types.Rank((int(from.RankOf()) + int(to.RankOf())) / 2)
}
