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

// Package eval supplies the static evaluation functions that the
// alpha-beta search takes as an injected dependency, not a fixed part
// of the core (the MCTS search plays random rollouts and uses no
// evaluation function). Material is the only heuristic implemented;
// the teacher's piece-square-table and pawn-structure heuristics are
// not ported (see DESIGN.md).
package eval

import (
	"github.com/board64/chesscore/position"
	"github.com/board64/chesscore/types"
)

// centipawnValue mirrors standard opening-theory piece values; the
// king is never captured so it contributes nothing.
var centipawnValue = [...]types.Value{
	types.King:   0,
	types.Queen:  900,
	types.Rook:   500,
	types.Bishop: 330,
	types.Knight: 320,
	types.Pawn:   100,
}

func materialOf(g *position.GameState, c types.Color) types.Value {
	var v types.Value
	for pt := types.King; pt <= types.Pawn; pt++ {
		v += centipawnValue[pt] * types.Value(g.PiecesOf(c, pt).PopCount())
	}
	return v
}

// Material returns white's material minus black's, from the
// perspective of the side to move (negated for Black), the simplest
// valid negamax leaf evaluation: white-up-a-queen scores +900 with
// White to move and -900 with Black to move.
func Material(g *position.GameState) types.Value {
	v := materialOf(g, types.White) - materialOf(g, types.Black)
	if g.SideToMove() == types.Black {
		v = -v
	}
	return v
}
