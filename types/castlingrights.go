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

// CastlingRights is a bit set of the four castling rights.
type CastlingRights uint8

// Constants for castling rights.
const (
	CastlingNone CastlingRights = 0

	CastlingWhiteOO  CastlingRights = 1
	CastlingWhiteOOO CastlingRights = CastlingWhiteOO << 1
	CastlingWhite    CastlingRights = CastlingWhiteOO | CastlingWhiteOOO

	CastlingBlackOO  CastlingRights = CastlingWhiteOO << 2
	CastlingBlackOOO CastlingRights = CastlingBlackOO << 1
	CastlingBlack    CastlingRights = CastlingBlackOO | CastlingBlackOOO

	CastlingAny CastlingRights = CastlingWhite | CastlingBlack
)

// Has reports whether all bits of rhs are set in lhs.
func (lhs CastlingRights) Has(rhs CastlingRights) bool {
	return lhs&rhs == rhs
}

// Remove returns lhs with rhs's bits cleared.
func (lhs CastlingRights) Remove(rhs CastlingRights) CastlingRights {
	return lhs &^ rhs
}

// Add returns lhs with rhs's bits set.
func (lhs CastlingRights) Add(rhs CastlingRights) CastlingRights {
	return lhs | rhs
}

// String renders castling rights the FEN way, e.g. "KQkq", or "-".
func (lhs CastlingRights) String() string {
	if lhs == CastlingNone {
		return "-"
	}
	s := ""
	if lhs.Has(CastlingWhiteOO) {
		s += "K"
	}
	if lhs.Has(CastlingWhiteOOO) {
		s += "Q"
	}
	if lhs.Has(CastlingBlackOO) {
		s += "k"
	}
	if lhs.Has(CastlingBlackOOO) {
		s += "q"
	}
	return s
}
