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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const script = "#!/bin/bash\n\nexport LIBS=\"-lz\"\n"

func TestShowPlain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Show(&buf, script, "native", 0))
	assert.Equal(t, script, buf.String())
}

func TestShowIndented(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Show(&buf, script, "native", 4))

	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		if line == "" {
			continue
		}
		assert.True(t, strings.HasPrefix(line, "    "), line)
	}
	assert.Contains(t, buf.String(), `export LIBS="-lz"`)
}

func TestSyntaxHighlightBash(t *testing.T) {
	out, err := SyntaxHighlightBash(strings.NewReader(script), "native")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "export")
}
