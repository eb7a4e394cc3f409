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

// Package magicsearch is the offline generator that discovers fancy-magic
// multipliers. It is not imported by anything at runtime: package magic
// builds its tables at startup from a fast, deterministic per-rank seed
// table tuned to converge in very few tries, while this package instead
// explores from pure randomness across a worker pool and looks for the
// multipliers themselves; magic.go's seed table holds PRNG start seeds,
// not multipliers, and nothing here reads or writes it. cmd/magicgen
// wraps it into a command-line driver.
package magicsearch

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/board64/chesscore/types"
)

// Magic is one discovered multiplier, independent of any particular
// Go struct layout in package magic so this generator has no import
// dependency on it.
type Magic struct {
	Square types.Square
	Mask   types.Bitboard
	Number types.Bitboard
	Shift  uint
	Tries  int
}

// PieceKind selects which slider's ray pattern to search magics for.
type PieceKind int

const (
	Rook PieceKind = iota
	Bishop
)

func (k PieceKind) dirs() [4]types.Direction {
	if k == Rook {
		return [4]types.Direction{types.North, types.South, types.East, types.West}
	}
	return [4]types.Direction{types.Northeast, types.Northwest, types.Southeast, types.Southwest}
}

// slidingAttack walks each ray from sq on an occupied board, stopping
// (inclusive) at the first blocker — the reference every trial
// multiplier is checked against. Duplicated from package magic
// deliberately: this package has no dependency on it (see doc comment).
func slidingAttack(dirs [4]types.Direction, sq types.Square, occupied types.Bitboard) types.Bitboard {
	var attack types.Bitboard
	for _, d := range dirs {
		s := sq
		for {
			s = s.To(d)
			if !s.IsValid() {
				break
			}
			attack = attack.Set(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

func relevantMask(dirs [4]types.Direction, sq types.Square) types.Bitboard {
	edges := ((types.Rank1_Bb | types.Rank8_Bb) &^ types.RankBb(sq.RankOf())) |
		((types.FileA_Bb | types.FileH_Bb) &^ types.FileBb(sq.FileOf()))
	return slidingAttack(dirs, sq, types.BbZero) &^ edges
}

// sparse draws a bitboard with roughly one bit in eight set, which is
// what a usable magic candidate looks like after the top-byte popcount
// pre-filter below.
func sparse(rng *rand.Rand) types.Bitboard {
	return types.Bitboard(rng.Uint64() & rng.Uint64() & rng.Uint64())
}

// Find runs an unbounded pure-random search for a working magic
// multiplier for kind/sq, using rng for every trial. It never returns
// an error: a working multiplier always exists and is found quickly in
// practice, exactly as package magic's own startup search relies on.
func Find(rng *rand.Rand, kind PieceKind, sq types.Square) Magic {
	dirs := kind.dirs()
	mask := relevantMask(dirs, sq)
	shift := uint(64 - mask.PopCount())

	var occupancy, reference [4096]types.Bitboard
	var epoch [4096]int
	size := 0
	b := types.BbZero
	for {
		occupancy[size] = b
		reference[size] = slidingAttack(dirs, sq, b)
		size++
		b = (b - mask) & mask
		if b == 0 {
			break
		}
	}

	attacks := make([]types.Bitboard, 1<<mask.PopCount())
	tries := 0
	for {
		var candidate types.Bitboard
		for {
			candidate = sparse(rng)
			if ((candidate * mask) >> 56).PopCount() < 6 {
				break
			}
		}
		tries++

		ok := true
		var i int
		for i = 0; i < size; i++ {
			idx := uint((occupancy[i] & mask) * candidate >> shift)
			if epoch[idx] < tries {
				epoch[idx] = tries
				attacks[idx] = reference[i]
			} else if attacks[idx] != reference[i] {
				ok = false
				break
			}
		}
		if ok {
			return Magic{Square: sq, Mask: mask, Number: candidate, Shift: shift, Tries: tries}
		}
	}
}

// found is one worker's finished trial, labelled with its job index so
// the collector can place it back in square/kind order.
type found struct {
	index int
	magic Magic
}

// SearchAll finds a magic for every square of both slider kinds, fanned
// across workers goroutines with golang.org/x/sync/errgroup, and
// collects each worker's result over a channel as it completes rather
// than having workers write into shared state directly. Each worker
// gets its own *rand.Rand seeded independently so trials never race on
// shared RNG state. The only failure mode is ctx cancellation.
func SearchAll(ctx context.Context, workers int) ([]Magic, error) {
	type job struct {
		kind PieceKind
		sq   types.Square
	}
	jobs := make([]job, 0, 128)
	for sq := types.Square(0); sq < types.Square(types.SqLength); sq++ {
		jobs = append(jobs, job{Rook, sq}, job{Bishop, sq})
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	out := make(chan found, len(jobs))

	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			seed := time.Now().UnixNano() ^ int64(i)*0x9E3779B97F4A7C15
			rng := rand.New(rand.NewSource(seed))
			out <- found{index: i, magic: Find(rng, j.kind, j.sq)}
			return nil
		})
	}

	var waitErr error
	done := make(chan struct{})
	go func() {
		waitErr = g.Wait()
		close(out)
		close(done)
	}()

	results := make([]Magic, len(jobs))
	for f := range out {
		results[f.index] = f.magic
	}
	<-done

	if waitErr != nil {
		return nil, fmt.Errorf("magicsearch: %w", waitErr)
	}
	return results, nil
}
