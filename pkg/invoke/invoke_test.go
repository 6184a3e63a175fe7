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

package invoke_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/cfgerr"
	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/invoke"
	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/script"
	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/types"
)

// setup creates a fake source tree whose configure prints its working
// directory, arguments and a couple of exported variables, then exits
// with exitCode.
func setup(t *testing.T, exitCode string) (buildDir string) {
	t.Helper()
	return setupWithBody(t, "echo \"pwd=$(pwd)\"\n"+
		"echo \"args=$*\"\n"+
		"echo \"CC=$CC LIBS=$LIBS\"\n"+
		"echo \"to stderr\" >&2\n"+
		"exit "+exitCode+"\n")
}

func setupWithBody(t *testing.T, body string) (buildDir string) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh is required to run the fake configure")
	}

	base := t.TempDir()
	srcDir := filepath.Join(base, "icon")
	buildDir = filepath.Join(base, "build")
	require.NoError(t, os.MkdirAll(srcDir, 0o755))

	configure := "#!/bin/sh\n" + body
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "configure"), []byte(configure), 0o755))

	s, err := script.Generate(types.ConfigureArgs{
		SourceDir: srcDir,
		BuildDir:  buildDir,
		CC:        "/usr/bin/gcc",
		FC:        "/usr/bin/gfortran",
	}, []types.Dependency{{
		Name: "zlib", Package: "zlib1g-dev",
		IncludeDir: "/usr/include", LibDir: "/usr/lib",
		Header: "zlib.h", Lib: "libz.so",
	}})
	require.NoError(t, err)
	_, err = script.Write(s)
	require.NoError(t, err)

	return buildDir
}

func shells(t *testing.T) []string {
	out := []string{invoke.ShellBuiltin}
	if _, err := exec.LookPath("bash"); err == nil {
		out = append(out, "bash")
	}
	return out
}

func TestRun(t *testing.T) {
	for _, shell := range shells(t) {
		t.Run(shell, func(t *testing.T) {
			buildDir := setup(t, "0")

			var out bytes.Buffer
			err := invoke.New(shell, &out).Run(context.Background(), filepath.Join(buildDir, script.FileName))
			require.NoError(t, err)

			got := out.String()
			resolved, err := filepath.EvalSymlinks(buildDir)
			require.NoError(t, err)
			assert.True(t,
				strings.Contains(got, "pwd="+buildDir+"\n") || strings.Contains(got, "pwd="+resolved+"\n"),
				got)
			assert.Contains(t, got, "args=--disable-mpi\n")
			assert.Contains(t, got, "CC=/usr/bin/gcc LIBS=-lz\n")
			assert.Contains(t, got, "to stderr\n")
		})
	}
}

func TestRunPropagatesExitCode(t *testing.T) {
	for _, shell := range shells(t) {
		t.Run(shell, func(t *testing.T) {
			buildDir := setup(t, "3")

			var out bytes.Buffer
			err := invoke.New(shell, &out).Run(context.Background(), filepath.Join(buildDir, script.FileName))

			var down *cfgerr.DownstreamError
			require.True(t, errors.As(err, &down), "got %v", err)
			assert.Equal(t, 3, down.ExitCode)
			assert.Equal(t, 3, cfgerr.ExitCode(err))
		})
	}
}

func TestRunMissingShell(t *testing.T) {
	err := invoke.New("no-such-shell-for-icon-cfg", nil).Run(context.Background(), "/nonexistent/configure.sh")
	var pre *cfgerr.PreconditionError
	assert.True(t, errors.As(err, &pre))
}

func TestRunCancelled(t *testing.T) {
	if _, err := exec.LookPath("sleep"); err != nil {
		t.Skip("sleep is required")
	}

	for _, shell := range shells(t) {
		t.Run(shell, func(t *testing.T) {
			buildDir := setupWithBody(t, "sleep 2\nexit 0\n")

			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()

			var out bytes.Buffer
			err := invoke.New(shell, &out).Run(ctx, filepath.Join(buildDir, script.FileName))

			var down *cfgerr.DownstreamError
			require.True(t, errors.As(err, &down), "got %v", err)
			assert.ErrorIs(t, err, context.DeadlineExceeded)
			assert.Zero(t, down.ExitCode)
			assert.NotContains(t, err.Error(), "-1")
			assert.Equal(t, cfgerr.ExitGeneric, cfgerr.ExitCode(err))
		})
	}
}
