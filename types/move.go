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

// MoveKind tags which of the four move shapes a Move carries.
type MoveKind uint8

// Constants for the move kinds.
const (
	Normal MoveKind = iota
	Promotion
	Castle
	LongCastle
)

// Move is a single chess move. From/To are always populated; Promo is
// only meaningful when Kind == Promotion, and is PieceTypeNone for the
// castle variants (the rook's from/to square is implied by From/To and
// side to move, not stored separately).
type Move struct {
	Kind  MoveKind
	From  Square
	To    Square
	Promo PieceType
}

// NewNormalMove builds a non-capturing or capturing non-special move.
func NewNormalMove(from, to Square) Move {
	return Move{Kind: Normal, From: from, To: to, Promo: PieceTypeNone}
}

// NewPromotionMove builds a pawn promotion move.
func NewPromotionMove(from, to Square, promo PieceType) Move {
	return Move{Kind: Promotion, From: from, To: to, Promo: promo}
}

// NewCastleMove builds a king-side castle move, From/To the king's
// start and landing squares.
func NewCastleMove(from, to Square) Move {
	return Move{Kind: Castle, From: from, To: to, Promo: PieceTypeNone}
}

// NewLongCastleMove builds a queen-side castle move, From/To the
// king's start and landing squares.
func NewLongCastleMove(from, to Square) Move {
	return Move{Kind: LongCastle, From: from, To: to, Promo: PieceTypeNone}
}

// IsValid reports whether the move names two valid distinct squares
// and, for promotions, a promotable piece type.
func (m Move) IsValid() bool {
	if !m.From.IsValid() || !m.To.IsValid() || m.From == m.To {
		return false
	}
	if m.Kind == Promotion {
		switch m.Promo {
		case Queen, Rook, Bishop, Knight:
			return true
		default:
			return false
		}
	}
	return true
}

// String renders the move in long algebraic form: "<from><to>[promo]"
// for Normal/Promotion, "O-O"/"O-O-O" for the castle variants.
func (m Move) String() string {
	switch m.Kind {
	case Castle:
		return "O-O"
	case LongCastle:
		return "O-O-O"
	case Promotion:
		return m.From.String() + m.To.String() + promoChar(m.Promo)
	default:
		return m.From.String() + m.To.String()
	}
}

func promoChar(pt PieceType) string {
	switch pt {
	case Queen:
		return "q"
	case Rook:
		return "r"
	case Bishop:
		return "b"
	case Knight:
		return "n"
	default:
		return ""
	}
}
