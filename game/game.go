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

// Package game wires position.GameState, the magic attack oracle and
// movegen together behind one small interface so the alpha-beta search
// and the MCTS search can share a single notion of "the game being
// played" instead of each reaching into movegen/position separately.
package game

import (
	"github.com/board64/chesscore/magic"
	"github.com/board64/chesscore/movegen"
	"github.com/board64/chesscore/position"
	"github.com/board64/chesscore/types"
)

// Result classifies why a Game has no further moves to play. Threefold
// repetition is not modelled; draw-by-repetition is out of scope.
type Result int

const (
	InProgress Result = iota
	Checkmate
	Stalemate
	FiftyMoveDraw
)

// fiftyMovePlies is the halfmove-clock threshold (100 plies = 50 full
// moves without a pawn move or capture) that forces a draw.
const fiftyMovePlies = 100

// Game bundles a position with the attack oracle that move generation
// needs, so callers pass around one value instead of threading the
// oracle through every call site.
type Game struct {
	State  *position.GameState
	Oracle *magic.Oracle
}

// New starts a Game from the standard opening position.
func New(oracle *magic.Oracle) *Game {
	return &Game{State: position.NewGame(), Oracle: oracle}
}

// FromFEN starts a Game from a FEN string.
func FromFEN(fen string, oracle *magic.Oracle) (*Game, error) {
	st, err := position.FromFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Game{State: st, Oracle: oracle}, nil
}

// SideToMove returns the color to move.
func (g *Game) SideToMove() types.Color {
	return g.State.ActiveColor
}

// LegalMoves returns every legal move in the current position.
func (g *Game) LegalMoves() []types.Move {
	return movegen.Generate(g.State, g.Oracle)
}

// MakeMove mutates Game in place by playing m.
func (g *Game) MakeMove(m types.Move) {
	g.State.MakeMove(m)
}

// Clone returns an independent copy; the oracle is shared (it is
// read-only after construction) while the position is deep-copied.
func (g *Game) Clone() *Game {
	return &Game{State: g.State.Clone(), Oracle: g.Oracle}
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return movegen.IsInCheck(g.State, g.Oracle)
}

// Status classifies the current position per Result's rules, computing
// legal moves once and reusing that for both the checkmate and
// stalemate tests.
func (g *Game) Status() Result {
	if g.State.HalfmoveClock >= fiftyMovePlies {
		return FiftyMoveDraw
	}
	inCheck := g.InCheck()
	if len(g.LegalMoves()) > 0 {
		return InProgress
	}
	if inCheck {
		return Checkmate
	}
	return Stalemate
}

// IsTerminal reports whether Status is anything other than InProgress.
func (g *Game) IsTerminal() bool {
	return g.Status() != InProgress
}
