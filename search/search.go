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

// Package search implements a fail-hard negamax search with iterative
// deepening and transposition-table move ordering. It takes the
// static evaluation function as a parameter rather than owning one
// itself — callers (tests, the eval package, or a future engine-
// strength evaluator) inject whatever Eval they want scored.
package search

import (
	"time"

	"github.com/board64/chesscore/game"
	"github.com/board64/chesscore/logging"
	"github.com/board64/chesscore/position"
	"github.com/board64/chesscore/transpositiontable"
	"github.com/board64/chesscore/types"
	"github.com/board64/chesscore/zobrist"
)

var log = logging.GetSearchLog()

// Eval is the static evaluation function the search treats as an
// injected collaborator: a pure mapping from position to a centipawn
// score from the side-to-move's point of view.
type Eval func(*position.GameState) types.Value

// Entry is the transposition-table payload negamax stores: the
// remaining depth the score was computed at, the score itself, and
// the move that produced it (the zero Move if none improved alpha).
type Entry struct {
	Depth int
	Score types.Value
	Best  types.Move
}

// Table is the transposition table type this package's searches
// share, always opened with the PreferHigherDepth policy negamax's
// store step requires.
type Table = transpositiontable.Table[Entry]

// NewTable opens a Table sized for a negamax search.
func NewTable(sizeInMByte int) *Table {
	return transpositiontable.New[Entry](sizeInMByte, transpositiontable.PreferHigherDepth(func(e Entry) int {
		return e.Depth
	}))
}

// Result is what a completed iterative-deepening search reports.
type Result struct {
	BestMove   types.Move
	Score      types.Value
	Depth      int
	SearchTime time.Duration
}

// window is the root alpha-beta window. types.ValueInf is kept well
// inside int32 range so -window never overflows, unlike the spec's
// literal i64::MIN+1/i64::MAX-1 clamp (unnecessary at int32 width but
// mirrored in spirit: never negate the true extreme values).
const window = types.ValueInf

// IterativeDeepening runs negamax at depths 1..maxDepth in sequence,
// each iteration refining tt and therefore the move ordering of the
// next. The final result is read back out of tt at the root key
// rather than threaded through the recursion, exactly as the depth-d
// negamax pass leaves it.
func IterativeDeepening(g *game.Game, evalFn Eval, tt *Table, maxDepth int) Result {
	start := time.Now()
	rootKey := g.State.Hash
	var last Result
	for d := 1; d <= maxDepth; d++ {
		negamax(g, evalFn, tt, d, 0, -window, window)
		if entry, ok := tt.Probe(rootKey); ok {
			last = Result{BestMove: entry.Best, Score: entry.Score, Depth: entry.Depth}
			log.Debugf("depth %d: move=%s score=%s", d, entry.Best, entry.Score)
		}
	}
	last.SearchTime = time.Since(start)
	return last
}

// negamax is the literal fail-hard negamax pseudocode: a TT hit at or
// above the requested depth returns the stored score outright (no
// bound-type distinction — the table only ever stores exact-for-its-
// window fail-hard results, which is sound because every store below
// came from the same scheme), otherwise every legal move is searched
// with the TT's remembered best move tried first, and the loop
// returns beta the instant a move fails high.
func negamax(g *game.Game, evalFn Eval, tt *Table, depth, ply int, alpha, beta types.Value) types.Value {
	if depth == 0 {
		return evalFn(g.State)
	}

	key := g.State.Hash
	if entry, ok := tt.Probe(key); ok && entry.Depth >= depth {
		return entry.Score
	}

	moves := orderedMoves(g, tt, key)
	if len(moves) == 0 {
		if g.InCheck() {
			return -mateScore(ply)
		}
		return types.ValueDraw
	}

	var best types.Move
	s := alpha
	for _, m := range moves {
		child := g.Clone()
		child.MakeMove(m)
		v := -negamax(child, evalFn, tt, depth-1, ply+1, -beta, -s)
		if v >= beta {
			tt.Put(key, Entry{Depth: depth, Score: beta, Best: m})
			return beta
		}
		if v > s {
			s = v
			best = m
		}
	}
	tt.Put(key, Entry{Depth: depth, Score: s, Best: best})
	return s
}

// mateScore backs a checkmate off by ply so that a mate found deeper
// in the tree scores worse than one found shallower (prefer the
// quickest mate, avoid the slowest escape).
func mateScore(ply int) types.Value {
	return types.ValueMate - types.Value(ply)
}

// orderedMoves returns g's legal moves with the TT's remembered best
// move (if any, and if still legal) moved to the front; everything
// else keeps movegen's generation order, per spec's "remainder in
// generator order".
func orderedMoves(g *game.Game, tt *Table, key zobrist.Key) []types.Move {
	moves := g.LegalMoves()
	entry, ok := tt.Probe(key)
	if !ok || entry.Best == (types.Move{}) {
		return moves
	}
	for i, m := range moves {
		if m == entry.Best {
			moves[0], moves[i] = moves[i], moves[0]
			break
		}
	}
	return moves
}
