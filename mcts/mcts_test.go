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

package mcts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/board64/chesscore/game"
	"github.com/board64/chesscore/magic"
	"github.com/board64/chesscore/types"
)

func TestSimulateOnceGrowsTheArenaByOneNode(t *testing.T) {
	tree := NewSeeded(game.New(magic.New()), 1)
	tree.SimulateOnce()
	assert.Len(t, tree.nodes, 2)
	assert.Equal(t, 1, tree.Simulations())
}

func TestRunGrowsTheArenaByOneNodePerSimulation(t *testing.T) {
	tree := NewSeeded(game.New(magic.New()), 42)
	tree.Run(30)
	assert.Len(t, tree.nodes, 31)
	assert.Equal(t, 30, tree.Simulations())
}

func TestBestMoveIsAmongTheRootsLegalMoves(t *testing.T) {
	g := game.New(magic.New())
	tree := NewSeeded(g, 7)
	tree.Run(50)

	best, ok := tree.BestMove()
	assert.True(t, ok)
	assert.Contains(t, g.LegalMoves(), best)
}

func TestMoveScoresSimulationsSumToRootSimulations(t *testing.T) {
	tree := NewSeeded(game.New(magic.New()), 99)
	tree.Run(40)

	var sum float64
	for _, ms := range tree.MoveScores() {
		sum += ms.Sims
	}
	assert.Equal(t, tree.nodes[0].sims, sum)
}

func TestBestMoveWithNoSimulationsIsNotOk(t *testing.T) {
	tree := NewSeeded(game.New(magic.New()), 1)
	_, ok := tree.BestMove()
	assert.False(t, ok)
}

func TestRolloutOfAnAlreadyCheckmatedPositionIsALoss(t *testing.T) {
	// White is the side to move here, and it has just been mated.
	g, err := game.FromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", magic.New())
	assert.NoError(t, err)

	tree := NewSeeded(g, 1)
	assert.Equal(t, float64(0), tree.rollout(g.Clone()))
}

func TestRolloutOfAStalematedPositionIsADraw(t *testing.T) {
	g, err := game.FromFEN("k7/8/1Q6/8/8/8/8/1K6 b - - 0 1", magic.New())
	assert.NoError(t, err)

	tree := NewSeeded(g, 1)
	assert.Equal(t, 0.5, tree.rollout(g.Clone()))
}

func TestBackPropagateFlipsPerspectiveAtEveryAncestor(t *testing.T) {
	tree := NewSeeded(game.New(magic.New()), 1)
	// Build a small chain root(0) -> child(1) -> grandchild(2) by hand,
	// bypassing traverse so the test isolates back-propagation.
	tree.nodes = append(tree.nodes,
		node{parent: 0, moveFromParent: types.NewNormalMove(types.MakeSquare("e2"), types.MakeSquare("e4")), children: map[types.Move]int{}},
		node{parent: 1, moveFromParent: types.NewNormalMove(types.MakeSquare("e7"), types.MakeSquare("e5")), children: map[types.Move]int{}},
	)

	tree.backPropagate(2, 1)

	assert.Equal(t, 1.0, tree.nodes[2].wins)
	assert.Equal(t, 1.0, tree.nodes[2].sims)
	assert.Equal(t, 0.0, tree.nodes[1].wins)
	assert.Equal(t, 1.0, tree.nodes[1].sims)
	assert.Equal(t, 1.0, tree.nodes[0].wins)
	assert.Equal(t, 1.0, tree.nodes[0].sims)
}
