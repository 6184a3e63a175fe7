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

// Package invoke runs a generated configure.sh inside the build
// directory.
package invoke

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/leonelquinteros/gotext"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"gitea.plemya-x.ru/Plemya-x/icon-cfg/internal/shutils/handlers"
	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/cfgerr"
)

const waitDelay = time.Second

const (
	// ShellBuiltin runs the script with the embedded interpreter. The
	// commands it calls, configure included, are still child processes.
	ShellBuiltin = "builtin"
	DefaultShell = "bash"
)

type Invoker struct {
	shell string
	out   io.Writer
}

// New returns an Invoker that writes both the standard output and the
// standard error of the script to out.
func New(shell string, out io.Writer) *Invoker {
	if shell == "" {
		shell = DefaultShell
	}
	if out == nil {
		out = os.Stdout
	}
	return &Invoker{shell: shell, out: out}
}

// Run executes the script at path with the directory containing it as
// the working directory. A non-zero exit becomes a DownstreamError
// carrying the script's exit code.
func (i *Invoker) Run(ctx context.Context, path string) error {
	dir := filepath.Dir(path)
	name := filepath.Base(path)

	slog.Debug("running configure script", "shell", i.shell, "dir", dir)

	if i.shell == ShellBuiltin {
		return i.runBuiltin(ctx, dir, path)
	}
	return i.runExternal(ctx, dir, name)
}

func (i *Invoker) runExternal(ctx context.Context, dir, name string) error {
	shell, err := exec.LookPath(i.shell)
	if err != nil {
		return cfgerr.Precondition(
			fmt.Sprintf("shell %q", i.shell),
			gotext.Get("not found"),
			gotext.Get("set shell to \"%s\" to use the embedded interpreter", ShellBuiltin),
		)
	}

	command := i.shell + " " + name

	cmd := exec.CommandContext(ctx, shell, name)
	cmd.Dir = dir
	cmd.Env = os.Environ()
	cmd.Stdout = i.out
	cmd.Stderr = i.out
	// Grandchildren keep the output pipe open after a cancel kills the shell.
	cmd.WaitDelay = waitDelay

	err = cmd.Run()
	if err != nil {
		// A killed child reports -1, which says nothing useful.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return &cfgerr.DownstreamError{Command: command, Err: ctxErr}
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &cfgerr.DownstreamError{Command: command, ExitCode: exitErr.ExitCode()}
		}
		return &cfgerr.DownstreamError{Command: command, Err: err}
	}
	return nil
}

func (i *Invoker) runBuiltin(ctx context.Context, dir, path string) error {
	fl, err := os.Open(path)
	if err != nil {
		return err
	}
	defer fl.Close()

	file, err := syntax.NewParser().Parse(fl, path)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	runner, err := interp.New(
		interp.Dir(dir),
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.StdIO(nil, i.out, i.out),
		interp.ExecHandlers(handlers.TraceExec),
	)
	if err != nil {
		return err
	}

	command := filepath.Base(path)

	err = runner.Run(ctx, file)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return &cfgerr.DownstreamError{Command: command, Err: ctxErr}
		}
		if st, ok := interp.IsExitStatus(err); ok {
			return &cfgerr.DownstreamError{Command: command, ExitCode: int(st)}
		}
		return &cfgerr.DownstreamError{Command: command, Err: err}
	}
	return nil
}
