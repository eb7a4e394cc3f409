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

// Package logging is a thin helper over "github.com/op/go-logging" so
// each package can get a preconfigured, named Logger in one line
// instead of repeating backend/formatter setup.
package logging

import (
	stdlog "log"
	"os"
	"sync"

	"github.com/op/go-logging"

	"github.com/board64/chesscore/config"
)

var standardFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortpkg:-10.10s} %{level:-7.7s}:  %{message}`)

var (
	mu      sync.Mutex
	loggers = map[string]*logging.Logger{}
)

// GetLog returns the named Logger, creating and configuring it on
// first use with an os.Stdout backend at config.LogLevel.
func GetLog(name string) *logging.Logger {
	return getOrCreate(name, config.LogLevel)
}

// GetSearchLog returns the "search" Logger at config.SearchLogLevel,
// kept separate from GetLog so search tracing can be toggled
// independently of general engine logging.
func GetSearchLog() *logging.Logger {
	return getOrCreate("search", config.SearchLogLevel)
}

func getOrCreate(name string, level int) *logging.Logger {
	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[name]; ok {
		return l
	}
	l := logging.MustGetLogger(name)
	backend := logging.NewLogBackend(os.Stdout, "", stdlog.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(level), "")
	l.SetBackend(leveled)
	loggers[name] = l
	return l
}
