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

// Command magicgen re-derives fancy-magic multipliers from scratch by
// pure random search, fanned across a worker pool, and prints one
// Go-literal-like line per square and slider kind. It is an auditing
// tool: package magic derives its own multipliers at startup and has no
// baked-in table to regenerate; nothing at runtime imports it.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/board64/chesscore/internal/magicsearch"
)

func main() {
	workers := flag.Int("workers", runtime.NumCPU(), "number of concurrent search workers")
	flag.Parse()

	results, err := magicsearch.SearchAll(context.Background(), *workers)
	if err != nil {
		fmt.Fprintln(os.Stderr, "magicgen:", err)
		os.Exit(1)
	}

	fmt.Println("// generated by cmd/magicgen; values are stable across runs only up to")
	fmt.Println("// shift/mask, not the specific multiplier, since the search is random.")
	for i, m := range results {
		kind := "rook"
		if i%2 == 1 {
			kind = "bishop"
		}
		fmt.Printf("{kind: %-6s square: %-3d mask: 0x%016X, number: 0x%016X, shift: %2d}, // %d tries\n",
			kind, m.Square, uint64(m.Mask), uint64(m.Number), m.Shift, m.Tries)
	}
}
