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

package pager

import (
	"bytes"
	"io"
	"os"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/mattn/go-isatty"
	"github.com/muesli/reflow/indent"
)

func SyntaxHighlightBash(r io.Reader, style string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	w := &bytes.Buffer{}
	err = quick.Highlight(w, string(data), "bash", "terminal", style)
	return w.String(), err
}

// Show writes a shell script to w, indented by margin columns. It is
// highlighted with style only when w is a terminal.
func Show(w io.Writer, text, style string, margin uint) error {
	out := text
	if isTerminal(w) {
		highlighted, err := SyntaxHighlightBash(bytes.NewBufferString(text), style)
		if err != nil {
			return err
		}
		out = highlighted
	}
	if margin > 0 {
		out = indent.String(out, margin)
	}
	_, err := io.WriteString(w, out)
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
