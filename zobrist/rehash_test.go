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

// Package zobrist_test exercises zobrist.Hasher against live play. It is
// an external test package (rather than part of position/movegen's own
// test suites) so it can import both position and movegen without
// either of them needing to import zobrist's test code.
package zobrist_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/board64/chesscore/magic"
	"github.com/board64/chesscore/movegen"
	"github.com/board64/chesscore/position"
	"github.com/board64/chesscore/zobrist"
)

// TestIncrementalHashMatchesRehashAfterEveryMove plays 100,000 random
// plies from the starting position (resetting whenever a game runs out
// of legal moves) and checks that the incrementally maintained
// GameState.Hash always equals a from-scratch rehash of the resulting
// position, i.e. make_move's Toggle* calls never drift from Hash.
func TestIncrementalHashMatchesRehashAfterEveryMove(t *testing.T) {
	const plies = 100_000
	oracle := magic.New()
	hasher := zobrist.Default()
	rng := rand.New(rand.NewSource(20260729))

	g := position.NewGame()
	for i := 0; i < plies; i++ {
		moves := movegen.Generate(g, oracle)
		if len(moves) == 0 {
			g = position.NewGame()
			continue
		}
		g.MakeMove(moves[rng.Intn(len(moves))])
		assert.Equal(t, hasher.Hash(g), g.Hash, "ply %d: incremental hash diverged from rehash", i)
	}
}
