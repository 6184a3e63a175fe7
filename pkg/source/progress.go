// icon-cfg - ICON build configurator
// Copyright (C) 2025 The icon-cfg Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package source

import (
	"io"
	"strings"
	"sync"
)

// Progress receives human readable progress messages while a clone or
// submodule update runs. Calls happen synchronously on the caller's
// goroutine.
type Progress interface {
	Message(msg string)
}

type ProgressFunc func(msg string)

func (f ProgressFunc) Message(msg string) {
	f(msg)
}

type nopProgress struct{}

func (nopProgress) Message(string) {}

// ProgressWriter turns the raw sideband stream of a git server into
// one message per line. Servers redraw counters with '\r', so both
// '\r' and '\n' end a message.
type ProgressWriter struct {
	mu  sync.Mutex
	p   Progress
	buf []byte
}

var _ io.Writer = (*ProgressWriter)(nil)

func NewProgressWriter(p Progress) *ProgressWriter {
	if p == nil {
		p = nopProgress{}
	}
	return &ProgressWriter{p: p}
}

func (w *ProgressWriter) Write(b []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, c := range b {
		if c == '\r' || c == '\n' {
			w.flush()
			continue
		}
		w.buf = append(w.buf, c)
	}
	return len(b), nil
}

// Flush emits whatever is left after the last line break.
func (w *ProgressWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.flush()
}

func (w *ProgressWriter) flush() {
	msg := strings.TrimSpace(string(w.buf))
	w.buf = w.buf[:0]
	if msg != "" {
		w.p.Message(msg)
	}
}
