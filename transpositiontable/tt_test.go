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

package transpositiontable

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/board64/chesscore/logging"
	"github.com/board64/chesscore/zobrist"
)

var logTest = logging.GetLog("test")

func TestResizeRoundsDownToPowerOfTwoEntries(t *testing.T) {
	tt := New[int](2, AlwaysReplace[int])
	assert.Equal(t, uint64(0), tt.Len())
	assert.True(t, len(tt.data) > 0)
	assert.Equal(t, 0, len(tt.data)&(len(tt.data)-1), "entry count must be a power of two")
	logTest.Debug(tt.String())
}

func TestResizeAboveMaxIsClamped(t *testing.T) {
	tt := New[int](MaxSizeInMB*2, AlwaysReplace[int])
	assert.LessOrEqual(t, len(tt.data)*16, MaxSizeInMB*mb)
}

func TestZeroSizeStoresNothing(t *testing.T) {
	tt := New[int](0, AlwaysReplace[int])
	tt.Put(zobrist.Key(1), 7)
	_, found := tt.Probe(zobrist.Key(1))
	assert.False(t, found)
}

func TestPutThenProbeRoundTrips(t *testing.T) {
	tt := New[string](1, AlwaysReplace[string])
	tt.Put(zobrist.Key(42), "alpha")
	data, found := tt.Probe(zobrist.Key(42))
	assert.True(t, found)
	assert.Equal(t, "alpha", data)
}

func TestProbeMissOnEmptySlot(t *testing.T) {
	tt := New[string](1, AlwaysReplace[string])
	_, found := tt.Probe(zobrist.Key(1234))
	assert.False(t, found)
}

func TestAlwaysReplaceOverwritesOnCollision(t *testing.T) {
	tt := New[int](1, AlwaysReplace[int])
	tt.Put(zobrist.Key(1), 1)
	collision := findIndexCollision(tt, zobrist.Key(1))
	tt.Put(collision, 2)
	_, found := tt.Probe(zobrist.Key(1))
	assert.False(t, found)
	data, found := tt.Probe(collision)
	assert.True(t, found)
	assert.Equal(t, 2, data)
}

func TestNeverReplaceKeepsOccupantOnCollision(t *testing.T) {
	tt := New[int](1, NeverReplace[int])
	tt.Put(zobrist.Key(1), 1)
	collision := findIndexCollision(tt, zobrist.Key(1))
	tt.Put(collision, 2)
	data, found := tt.Probe(zobrist.Key(1))
	assert.True(t, found)
	assert.Equal(t, 1, data)
	_, found = tt.Probe(collision)
	assert.False(t, found)
}

func TestPreferHigherDepthKeepsDeeperEntry(t *testing.T) {
	type payload struct{ depth int }
	tt := New[payload](1, PreferHigherDepth(func(p payload) int { return p.depth }))
	tt.Put(zobrist.Key(1), payload{depth: 8})
	collision := findIndexCollision(tt, zobrist.Key(1))
	tt.Put(collision, payload{depth: 3})
	data, found := tt.Probe(zobrist.Key(1))
	assert.True(t, found)
	assert.Equal(t, 8, data.depth)
}

func TestClearEmptiesTableWithoutResizing(t *testing.T) {
	tt := New[int](1, AlwaysReplace[int])
	tt.Put(zobrist.Key(5), 5)
	size := len(tt.data)
	tt.Clear()
	assert.Equal(t, size, len(tt.data))
	assert.Equal(t, uint64(0), tt.Len())
	_, found := tt.Probe(zobrist.Key(5))
	assert.False(t, found)
}

func TestRandomInsertionsRoundTripUnderAlwaysReplace(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	tt := New[uint64](2, AlwaysReplace[uint64])
	for i := 0; i < 50_000; i++ {
		key := zobrist.Key(rng.Uint64())
		tt.Put(key, uint64(key))
		data, found := tt.Probe(key)
		assert.True(t, found)
		assert.Equal(t, uint64(key), data)
	}
}

func TestHashfullReflectsOccupancy(t *testing.T) {
	tt := New[int](1, AlwaysReplace[int])
	assert.Equal(t, 0, tt.Hashfull())
	// Hashfull is in permille, so fill one slot in ten: a handful of
	// entries in a table of tens of thousands of slots rounds down to 0.
	for i := uint64(0); i < uint64(len(tt.data)); i += 10 {
		tt.Put(zobrist.Key(i<<tt.shift), int(i))
	}
	assert.Greater(t, tt.Hashfull(), 0)
}

// findIndexCollision searches for a key that maps to the same bucket
// as key but is not equal to it, so tests can exercise the
// replacement policy deterministically.
func findIndexCollision[T any](tt *Table[T], key zobrist.Key) zobrist.Key {
	rng := rand.New(rand.NewSource(999))
	target := tt.index(key)
	for {
		candidate := zobrist.Key(rng.Uint64())
		if candidate != key && tt.index(candidate) == target {
			return candidate
		}
	}
}
