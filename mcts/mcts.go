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

// Package mcts implements Monte Carlo tree search over the same Game
// abstraction the alpha-beta search in package search uses, so both
// searches share one notion of "the game being played". The tree is
// an arena: nodes live in a slice and refer to one another by index,
// not by owning/back-reference cells, so there is no cyclic graph to
// tear down.
package mcts

import (
	"math"
	"math/rand"
	"time"

	"github.com/board64/chesscore/game"
	"github.com/board64/chesscore/types"
)

// exploration is the UCT exploration constant, sqrt(2), the standard
// choice that balances exploitation of a node's known win rate against
// visiting its less-sampled siblings.
var exploration = math.Sqrt2

// node is one arena slot. parent is -1 for the root. children maps a
// move to the index of the node it leads to; order records the same
// moves in first-expanded sequence so selection and best-move reporting
// are deterministic instead of depending on map iteration order.
type node struct {
	parent         int
	moveFromParent types.Move
	children       map[types.Move]int
	order          []types.Move
	wins           float64
	sims           float64
}

// Tree is one growing search tree rooted at a fixed position. It is not
// safe for concurrent use; run separate trees per goroutine if parallel
// search is needed.
type Tree struct {
	root  *game.Game
	nodes []node
	rng   *rand.Rand
}

// New starts a tree rooted at g's current position, seeded from the
// wall clock. g is not mutated; SimulateOnce clones it per playout.
func New(g *game.Game) *Tree {
	return NewSeeded(g, time.Now().UnixNano())
}

// NewSeeded starts a tree with a specific RNG seed, for reproducible
// tests and analysis.
func NewSeeded(g *game.Game, seed int64) *Tree {
	t := &Tree{
		root: g,
		rng:  rand.New(rand.NewSource(seed)),
	}
	t.nodes = []node{{parent: -1, children: map[types.Move]int{}}}
	return t
}

// Simulations returns how many playouts have run through the root.
func (t *Tree) Simulations() int {
	return int(t.nodes[0].sims)
}

// SimulateOnce runs a single select/expand -> rollout -> back-propagate
// playout, growing the tree by at most one node.
func (t *Tree) SimulateOnce() {
	leaf, state := t.traverse(0, t.root.Clone())
	result := t.rollout(state)
	t.backPropagate(leaf, result)
}

// Run calls SimulateOnce n times.
func (t *Tree) Run(n int) {
	for i := 0; i < n; i++ {
		t.SimulateOnce()
	}
}

// traverse walks from nodeIdx down the tree, expanding the first
// unexplored move it finds and returning the freshly created child, or
// descending via UCT selection when every legal move already has a
// child. state is mutated in place and returned so the caller sees the
// position the returned node index corresponds to. A node with no
// legal moves (terminal) is returned unchanged, with no move applied.
func (t *Tree) traverse(nodeIdx int, state *game.Game) (int, *game.Game) {
	legal := state.LegalMoves()
	if len(legal) == 0 {
		return nodeIdx, state
	}

	n := &t.nodes[nodeIdx]
	var unexplored []types.Move
	for _, m := range legal {
		if _, ok := n.children[m]; !ok {
			unexplored = append(unexplored, m)
		}
	}

	if len(unexplored) > 0 {
		m := unexplored[t.rng.Intn(len(unexplored))]
		state.MakeMove(m)
		childIdx := len(t.nodes)
		t.nodes = append(t.nodes, node{
			parent:         nodeIdx,
			moveFromParent: m,
			children:       map[types.Move]int{},
		})
		n = &t.nodes[nodeIdx]
		n.children[m] = childIdx
		n.order = append(n.order, m)
		return childIdx, state
	}

	childIdx := t.selectChildUCT(nodeIdx)
	state.MakeMove(t.nodes[childIdx].moveFromParent)
	return t.traverse(childIdx, state)
}

// selectChildUCT returns the child of nodeIdx maximizing the UCT score,
// ties broken in favor of the first-expanded child.
func (t *Tree) selectChildUCT(nodeIdx int) int {
	parentSims := t.nodes[nodeIdx].sims
	logParent := math.Log(parentSims)

	best := -1
	bestScore := math.Inf(-1)
	for _, m := range t.nodes[nodeIdx].order {
		childIdx := t.nodes[nodeIdx].children[m]
		c := t.nodes[childIdx]
		score := c.wins/c.sims + exploration*math.Sqrt(logParent/c.sims)
		if score > bestScore {
			bestScore = score
			best = childIdx
		}
	}
	return best
}

// rollout plays uniformly random legal moves from state to a terminal
// position and returns the outcome from the perspective of the player
// to move in the position passed in: 1 for a win, 0.5 for a draw, 0
// for a loss.
func (t *Tree) rollout(state *game.Game) float64 {
	perspective := state.SideToMove()
	for state.Status() == game.InProgress {
		moves := state.LegalMoves()
		state.MakeMove(moves[t.rng.Intn(len(moves))])
	}

	if state.Status() != game.Checkmate {
		return 0.5
	}
	// The side to move in a checkmated position is the side that lost.
	if state.SideToMove() == perspective {
		return 0
	}
	return 1
}

// backPropagate adds result to nodeIdx and every ancestor up to the
// root, flipping the result's perspective at each step since a node's
// parent is to move on the opposite side.
func (t *Tree) backPropagate(nodeIdx int, result float64) {
	for nodeIdx != -1 {
		n := &t.nodes[nodeIdx]
		n.sims++
		n.wins += result
		result = 1 - result
		nodeIdx = n.parent
	}
}

// MoveScore reports one root move's accumulated statistics.
type MoveScore struct {
	Move types.Move
	Wins float64
	Sims float64
}

// MoveScores returns the root's explored moves in first-expanded order.
func (t *Tree) MoveScores() []MoveScore {
	root := t.nodes[0]
	scores := make([]MoveScore, 0, len(root.order))
	for _, m := range root.order {
		c := t.nodes[root.children[m]]
		scores = append(scores, MoveScore{Move: m, Wins: c.wins, Sims: c.sims})
	}
	return scores
}

// BestMove returns the root child with the most simulations — the
// standard "most robust child" choice, more stable under a limited
// budget than the highest win rate. Ties keep the first-expanded move.
// ok is false if the root has no explored children yet.
func (t *Tree) BestMove() (m types.Move, ok bool) {
	root := t.nodes[0]
	bestSims := -1.0
	for _, mv := range root.order {
		c := t.nodes[root.children[mv]]
		if c.sims > bestSims {
			bestSims = c.sims
			m = mv
			ok = true
		}
	}
	return m, ok
}
