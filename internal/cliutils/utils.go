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

package cliutils

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/cfgerr"
)

// HandleExitCoder logs err and exits with its code. Errors that are not
// cli.ExitCoder are left to urfave/cli.
func HandleExitCoder(err error) {
	if err == nil {
		return
	}

	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		if err.Error() != "" {
			slog.Error(err.Error())
		}
		cli.OsExiter(exitErr.ExitCode())
	}
}

// FormatCliExit wraps err with msg. The exit code follows the error
// category, see cfgerr.ExitCode.
func FormatCliExit(msg string, err error) cli.ExitCoder {
	code := cfgerr.ExitGeneric
	if err != nil {
		code = cfgerr.ExitCode(err)
	}
	return FormatCliExitWithCode(msg, err, code)
}

func FormatCliExitWithCode(msg string, err error, exitCode int) cli.ExitCoder {
	if err == nil {
		return cli.Exit(errors.New(msg), exitCode)
	}
	return cli.Exit(fmt.Errorf("%s: %w", msg, err), exitCode)
}
