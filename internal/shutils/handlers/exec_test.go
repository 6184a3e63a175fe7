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

package handlers_test

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"gitea.plemya-x.ru/Plemya-x/icon-cfg/internal/shutils/handlers"
)

func TestTraceExec(t *testing.T) {
	if _, err := exec.LookPath("env"); err != nil {
		t.Skip("env is not available")
	}

	var logs bytes.Buffer
	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(old) })

	dir := t.TempDir()
	file, err := syntax.NewParser().Parse(strings.NewReader("echo builtin\nenv true\n"), "")
	require.NoError(t, err)

	var out bytes.Buffer
	runner, err := interp.New(
		interp.Dir(dir),
		interp.StdIO(nil, &out, &out),
		interp.ExecHandlers(handlers.TraceExec),
	)
	require.NoError(t, err)
	require.NoError(t, runner.Run(context.Background(), file))

	assert.Equal(t, "builtin\n", out.String())
	assert.Contains(t, logs.String(), `cmd="env true"`)
	assert.Contains(t, logs.String(), "dir="+dir)
	assert.NotContains(t, logs.String(), "cmd=echo")
}
