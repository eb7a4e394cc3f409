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

// PieceType identifies a kind of piece independent of color. The
// ordering (King first, Pawn last) matches the zobrist key layout.
type PieceType int8

// Constants for each piece type.
const (
	King PieceType = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
	PieceTypeNone
	NPieceTypes = int(Pawn) + 1
)

var pieceTypeToChar = [...]byte{'K', 'Q', 'R', 'B', 'N', 'P'}

// IsValid reports whether pt is King..Pawn.
func (pt PieceType) IsValid() bool {
	return pt >= King && pt <= Pawn
}

// String returns the upper case letter for the piece type, or "-".
func (pt PieceType) String() string {
	if !pt.IsValid() {
		return "-"
	}
	return string(pieceTypeToChar[pt])
}
