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

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/board64/chesscore/types"
	"github.com/board64/chesscore/zobrist"
)

// StartingFEN is the standard chess starting position.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var fenPieceType = map[byte]types.PieceType{
	'k': types.King, 'q': types.Queen, 'r': types.Rook,
	'b': types.Bishop, 'n': types.Knight, 'p': types.Pawn,
}

// FromFEN parses Forsyth-Edwards Notation into a GameState. It covers
// piece placement, side to move, castling rights, the en-passant
// target square and both move clocks; it does not validate that the
// resulting position is reachable by legal play (e.g. pawns on the
// back rank), only that the FEN syntax itself is well formed and that
// each side has a king.
func FromFEN(fen string) (*GameState, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("position: malformed FEN %q: need at least 4 fields", fen)
	}

	g := &GameState{hasher: zobrist.Default(), EnPassant: types.SqNone}
	g.White.King = types.SqNone
	g.Black.King = types.SqNone

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("position: malformed FEN %q: expected 8 ranks, got %d", fen, len(ranks))
	}
	for i, rankStr := range ranks {
		r := types.Rank(7 - i) // FEN lists rank 8 first
		f := types.FileA
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if c >= '1' && c <= '8' {
				f += types.File(c - '0')
				continue
			}
			if f > types.FileH {
				return nil, fmt.Errorf("position: malformed FEN %q: rank %d overflows", fen, i+1)
			}
			pt, ok := fenPieceType[c|0x20]
			if !ok {
				return nil, fmt.Errorf("position: malformed FEN %q: unknown piece char %q", fen, c)
			}
			color := types.White
			if c >= 'a' && c <= 'z' {
				color = types.Black
			}
			g.put(color, pt, types.SquareOf(f, r))
			f++
		}
	}
	if !g.White.King.IsValid() || !g.Black.King.IsValid() {
		return nil, fmt.Errorf("position: malformed FEN %q: missing a king", fen)
	}

	switch fields[1] {
	case "w":
		g.ActiveColor = types.White
	case "b":
		g.ActiveColor = types.Black
		g.Hash = g.hasher.ToggleSideToMove(g.Hash)
	default:
		return nil, fmt.Errorf("position: malformed FEN %q: bad active color %q", fen, fields[1])
	}

	for _, c := range fields[2] {
		switch c {
		case 'K':
			g.Castling = g.Castling.Add(types.CastlingWhiteOO)
		case 'Q':
			g.Castling = g.Castling.Add(types.CastlingWhiteOOO)
		case 'k':
			g.Castling = g.Castling.Add(types.CastlingBlackOO)
		case 'q':
			g.Castling = g.Castling.Add(types.CastlingBlackOOO)
		case '-':
		default:
			return nil, fmt.Errorf("position: malformed FEN %q: bad castling field %q", fen, fields[2])
		}
	}
	g.Hash = g.hasher.ToggleCastling(g.Hash, g.Castling)

	if fields[3] != "-" {
		sq := types.MakeSquare(fields[3])
		if !sq.IsValid() {
			return nil, fmt.Errorf("position: malformed FEN %q: bad en-passant field %q", fen, fields[3])
		}
		g.EnPassant = sq
		g.Hash = g.hasher.ToggleEnPassantFile(g.Hash, sq.FileOf())
	}

	g.HalfmoveClock = 0
	g.FullmoveNumber = 1
	if len(fields) >= 5 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			g.HalfmoveClock = n
		}
	}
	if len(fields) >= 6 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			g.FullmoveNumber = n
		}
	}

	return g, nil
}

// ToFEN renders g back to Forsyth-Edwards Notation.
func (g *GameState) ToFEN() string {
	var b strings.Builder
	for i := 0; i < 8; i++ {
		r := types.Rank(7 - i)
		empty := 0
		for f := types.FileA; f <= types.FileH; f++ {
			p := g.PieceAt(types.SquareOf(f, r))
			if p == types.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(p.String())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if i != 7 {
			b.WriteByte('/')
		}
	}
	b.WriteByte(' ')
	b.WriteString(g.ActiveColor.String())
	b.WriteByte(' ')
	b.WriteString(g.Castling.String())
	b.WriteByte(' ')
	b.WriteString(g.EnPassant.String())
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(g.HalfmoveClock))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(g.FullmoveNumber))
	return b.String()
}
