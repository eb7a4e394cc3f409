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

// Piece is a piece type bound to a color, or the absence of a piece.
type Piece struct {
	Color Color
	Type  PieceType
}

// NoPiece represents an empty square.
var NoPiece = Piece{Type: PieceTypeNone}

// MakePiece builds a Piece from a color and a piece type.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece{Color: c, Type: pt}
}

// IsValid reports whether p names an actual piece.
func (p Piece) IsValid() bool {
	return p.Type.IsValid() && p.Color.IsValid()
}

// String returns the upper case letter for White pieces and the lower
// case letter for Black pieces, or "-" for NoPiece.
func (p Piece) String() string {
	if !p.IsValid() {
		return "-"
	}
	s := p.Type.String()
	if p.Color == Black {
		return string(rune(s[0] + ('a' - 'A')))
	}
	return s
}
