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

// Package perft counts leaf nodes of the legal move tree to a fixed
// depth, the standard move-generator correctness check, and supports
// "divide" for isolating which first move disagrees with a known count.
package perft

import (
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/board64/chesscore/logging"
	"github.com/board64/chesscore/magic"
	"github.com/board64/chesscore/movegen"
	"github.com/board64/chesscore/position"
	"github.com/board64/chesscore/types"
)

var out = message.NewPrinter(language.English)
var log = logging.GetLog("perft")

// Counters breaks a perft count down by move category, mirroring the
// categories the classic perft result tables report.
type Counters struct {
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
	Checkmates uint64
}

// Perft walks every legal move to depth and returns the leaf-node
// counters. It clones the position before each recursive descent
// rather than making/unmaking a move in place, trading some allocation
// for a generator that can never leave the root position mutated.
func Perft(g *position.GameState, oracle *magic.Oracle, depth int) Counters {
	var c Counters
	walk(g, oracle, depth, &c)
	return c
}

func walk(g *position.GameState, oracle *magic.Oracle, depth int, c *Counters) {
	if depth == 0 {
		c.Nodes++
		return
	}
	moves := movegen.Generate(g, oracle)
	if depth == 1 {
		for _, m := range moves {
			c.Nodes++
			tallyMove(g, oracle, m, c)
		}
		return
	}
	for _, m := range moves {
		next := g.Clone()
		next.MakeMove(m)
		walk(next, oracle, depth-1, c)
	}
}

func tallyMove(g *position.GameState, oracle *magic.Oracle, m types.Move, c *Counters) {
	isCapture := g.PieceAt(m.To) != types.NoPiece
	isEnPassant := m.Kind == types.Normal && g.PieceAt(m.From).Type == types.Pawn && m.To == g.EnPassantTarget()
	if isCapture || isEnPassant {
		c.Captures++
	}
	if isEnPassant {
		c.EnPassant++
	}
	if m.Kind == types.Castle || m.Kind == types.LongCastle {
		c.Castles++
	}
	if m.Kind == types.Promotion {
		c.Promotions++
	}

	next := g.Clone()
	next.MakeMove(m)
	if movegen.IsInCheck(next, oracle) {
		c.Checks++
		if movegen.IsCheckmate(next, oracle) {
			c.Checkmates++
		}
	}
}

// DivideEntry is one first move's subtree count, as reported by Divide.
type DivideEntry struct {
	Move  types.Move
	Nodes uint64
}

// Divide runs perft to depth-1 under each legal first move, the
// standard way of finding which branch of a disagreeing perft count is
// at fault.
func Divide(g *position.GameState, oracle *magic.Oracle, depth int) []DivideEntry {
	moves := movegen.Generate(g, oracle)
	entries := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		next := g.Clone()
		next.MakeMove(m)
		var c Counters
		walk(next, oracle, depth-1, &c)
		entries = append(entries, DivideEntry{Move: m, Nodes: c.Nodes})
	}
	return entries
}

// Profile starts CPU profiling to dir and returns the stop function a
// caller should defer, the same one-line idiom the teacher's benchmark
// tests use around long move-generator runs. It is for ad-hoc use from
// a _test.go file or a throwaway main, never from a running search.
func Profile(dir string) func() {
	return profile.Start(profile.CPUProfile, profile.ProfilePath(dir)).Stop
}

// Report runs Perft and logs a formatted summary, the counterpart of
// the teacher's startPerft console report.
func Report(g *position.GameState, oracle *magic.Oracle, depth int) Counters {
	start := time.Now()
	c := Perft(g, oracle, depth)
	elapsed := time.Since(start)
	log.Info(out.Sprintf(
		"perft depth %d: nodes=%d captures=%d ep=%d castles=%d promotions=%d checks=%d mates=%d in %s",
		depth, c.Nodes, c.Captures, c.EnPassant, c.Castles, c.Promotions, c.Checks, c.Checkmates, elapsed))
	return c
}
