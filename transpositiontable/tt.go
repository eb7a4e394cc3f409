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

// Package transpositiontable implements a generic, fixed-size hash
// table keyed by a Zobrist hash, the cache the alpha-beta search in
// package search uses to avoid re-exploring transposed positions
// (package mcts does not use it). The table is not thread safe; Resize and Clear must not
// be called while a search is using the table.
package transpositiontable

import (
	"math"
	"unsafe"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/board64/chesscore/logging"
	"github.com/board64/chesscore/zobrist"
)

var out = message.NewPrinter(language.English)
var log = logging.GetLog("tt")

const (
	// MaxSizeInMB caps how large a single table may grow.
	MaxSizeInMB = 65_536

	mb = 1024 * 1024
)

// Entry is one slot of the table: a Zobrist key plus whatever payload
// type T the caller's search wants to cache alongside it (a best move
// and bound for alpha-beta, a visit/value pair for MCTS, etc).
type Entry[T any] struct {
	Key  zobrist.Key
	Data T
	used bool
}

// Policy decides, on a hash-index collision between an occupied slot
// and an incoming entry, whether the incoming entry should replace it.
// It is never consulted when the slot is empty or already holds the
// same key.
type Policy[T any] func(existing, incoming Entry[T]) bool

// AlwaysReplace always evicts the occupant in favor of the new entry.
func AlwaysReplace[T any](existing, incoming Entry[T]) bool { return true }

// NeverReplace keeps whatever already occupies the slot.
func NeverReplace[T any](existing, incoming Entry[T]) bool { return false }

// PreferHigherDepth builds a Policy that replaces the occupant only
// when depthOf(incoming) is at least depthOf(existing), the classic
// alpha-beta replacement scheme: deeper searches are worth more than
// shallower ones regardless of recency.
func PreferHigherDepth[T any](depthOf func(T) int) Policy[T] {
	return func(existing, incoming Entry[T]) bool {
		return depthOf(incoming.Data) >= depthOf(existing.Data)
	}
}

// Stats tracks table usage, reported by String() and used by callers
// that want a UCI-style "hashfull" figure.
type Stats struct {
	Puts       uint64
	Collisions uint64
	Overwrites uint64
	Updates    uint64
	Probes     uint64
	Hits       uint64
	Misses     uint64
}

// Table is a fixed-size, power-of-two-sized open-addressed (single
// slot per bucket, no probing) hash table indexed by the top
// log2(entries) bits of a Zobrist key (key >> shift); keys that differ
// only in their low bits share a slot.
type Table[T any] struct {
	data     []Entry[T]
	shift    uint64
	policy   Policy[T]
	occupied uint64
	Stats    Stats
}

// New creates a Table sized to fit within sizeInMByte, rounded down to
// the nearest power of two entries.
func New[T any](sizeInMByte int, policy Policy[T]) *Table[T] {
	tt := &Table[T]{policy: policy}
	tt.Resize(sizeInMByte)
	return tt
}

// Resize reallocates the table for a new size budget, discarding all
// entries.
func (tt *Table[T]) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		log.Error(out.Sprintf("requested TT size %d MB reduced to max %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}

	var entrySize Entry[T]
	bytes := uint64(sizeInMByte) * mb
	entries := uint64(0)
	bits := uint64(0)
	if bytes >= uint64(unsafe.Sizeof(entrySize)) {
		bits = uint64(math.Floor(math.Log2(float64(bytes) / float64(unsafe.Sizeof(entrySize)))))
		entries = 1 << bits
	}

	tt.shift = 64 - bits
	if entries == 0 {
		tt.shift = 64
	}
	tt.data = make([]Entry[T], entries)
	tt.occupied = 0
	tt.Stats = Stats{}

	log.Info(out.Sprintf("TT resized to %d MB, %d entries of %d bytes (requested %d MB)",
		(entries*uint64(unsafe.Sizeof(entrySize)))/mb, entries, unsafe.Sizeof(entrySize), sizeInMByte))
}

func (tt *Table[T]) index(key zobrist.Key) uint64 {
	return uint64(key) >> tt.shift
}

// Probe returns the stored entry for key and true if present, or the
// zero Entry and false on a miss (either the slot is empty or holds a
// different key).
func (tt *Table[T]) Probe(key zobrist.Key) (T, bool) {
	tt.Stats.Probes++
	if len(tt.data) == 0 {
		tt.Stats.Misses++
		var zero T
		return zero, false
	}
	e := &tt.data[tt.index(key)]
	if e.used && e.Key == key {
		tt.Stats.Hits++
		return e.Data, true
	}
	tt.Stats.Misses++
	var zero T
	return zero, false
}

// Put stores data under key, consulting the replacement Policy on an
// index collision with a different key. An empty slot or a matching
// key is always written.
func (tt *Table[T]) Put(key zobrist.Key, data T) {
	if len(tt.data) == 0 {
		return
	}
	tt.Stats.Puts++
	incoming := Entry[T]{Key: key, Data: data, used: true}
	slot := &tt.data[tt.index(key)]

	switch {
	case !slot.used:
		tt.occupied++
		*slot = incoming
	case slot.Key == key:
		tt.Stats.Updates++
		*slot = incoming
	default:
		tt.Stats.Collisions++
		if tt.policy(*slot, incoming) {
			tt.Stats.Overwrites++
			*slot = incoming
		}
	}
}

// Clear empties the table without changing its size.
func (tt *Table[T]) Clear() {
	for i := range tt.data {
		tt.data[i] = Entry[T]{}
	}
	tt.occupied = 0
	tt.Stats = Stats{}
}

// Len reports how many slots currently hold an entry.
func (tt *Table[T]) Len() uint64 {
	return tt.occupied
}

// Hashfull reports table occupancy in permille, UCI's "hashfull" unit.
func (tt *Table[T]) Hashfull() int {
	if len(tt.data) == 0 {
		return 0
	}
	return int((1000 * tt.occupied) / uint64(len(tt.data)))
}

// String reports size and hit-rate statistics.
func (tt *Table[T]) String() string {
	return out.Sprintf("TT: %d entries (%d/1000 full), puts=%d updates=%d collisions=%d overwrites=%d probes=%d hits=%d misses=%d",
		len(tt.data), tt.Hashfull(), tt.Stats.Puts, tt.Stats.Updates, tt.Stats.Collisions, tt.Stats.Overwrites,
		tt.Stats.Probes, tt.Stats.Hits, tt.Stats.Misses)
}
