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

package fsutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExistenceChecks(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "zlib.h")
	require.NoError(t, os.WriteFile(plain, []byte("/* header */"), 0o644))

	exe := filepath.Join(dir, "gcc")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755))

	assert.True(t, DirExists(dir))
	assert.False(t, DirExists(plain))
	assert.False(t, DirExists(filepath.Join(dir, "missing")))

	assert.True(t, FileExists(plain))
	assert.False(t, FileExists(dir))
	assert.False(t, FileExists(filepath.Join(dir, "missing")))

	assert.True(t, IsExecutable(exe))
	assert.False(t, IsExecutable(filepath.Join(dir, "missing")))
	assert.False(t, IsExecutable(plain))
}

func TestSameContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "configure.sh")

	same, err := SameContent(path, []byte("a"))
	require.NoError(t, err)
	assert.False(t, same)

	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	same, err = SameContent(path, []byte("a"))
	require.NoError(t, err)
	assert.True(t, same)

	same, err = SameContent(path, []byte("ab"))
	require.NoError(t, err)
	assert.False(t, same)
}
