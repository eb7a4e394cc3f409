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

// Package config holds process-wide settings read from config.toml:
// search limits, transposition table size, the Zobrist seed and the
// debug flag. There is no UCI layer to feed these from, so
// config.toml (or its defaults) is the only source. The logging levels
// LogLevel and SearchLogLevel are plain package variables outside
// Settings and are not read from config.toml.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/board64/chesscore/assert"
	"github.com/board64/chesscore/util"
)

// LogLevel and SearchLogLevel are go-logging levels (0=CRITICAL .. 5=DEBUG).
var (
	LogLevel       = 2
	SearchLogLevel = 2
)

// Settings is the global configuration, populated by Setup.
var Settings = conf{
	Search: searchConfiguration{
		MaxDepth:       64,
		MctsIterations: 10_000,
	},
	TT: ttConfiguration{
		SizeInMB: 64,
	},
	Zobrist: zobristConfiguration{
		Seed: 26355,
	},
	Debug: false,
}

var initialized bool

type conf struct {
	Search  searchConfiguration
	TT      ttConfiguration
	Zobrist zobristConfiguration
	Debug   bool
}

type searchConfiguration struct {
	MaxDepth       int // iterative-deepening ceiling for the alpha-beta search
	MctsIterations int // default rollout budget for the MCTS search
}

type ttConfiguration struct {
	SizeInMB int
}

type zobristConfiguration struct {
	Seed uint64
}

// Setup loads config.toml, if one can be found, over the defaults
// above. A missing file is not an error: every field already has a
// usable default.
func Setup() {
	if initialized {
		return
	}
	if path, err := util.ResolveFile("config.toml"); err == nil {
		if _, err := toml.DecodeFile(path, &Settings); err != nil {
			fmt.Println("config: malformed config.toml, using defaults:", err)
		}
	}
	assert.DEBUG = Settings.Debug
	initialized = true
}
