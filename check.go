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

package main

import (
	"log/slog"

	"github.com/leonelquinteros/gotext"
	"github.com/urfave/cli/v2"

	"gitea.plemya-x.ru/Plemya-x/icon-cfg/internal/cliutils"
	appbuilder "gitea.plemya-x.ru/Plemya-x/icon-cfg/internal/cliutils/app_builder"
	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/verify"
)

func CheckCmd() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: gotext.Get("Only check dependencies and compilers"),
		Action: func(c *cli.Context) error {
			deps, err := appbuilder.
				New(c.Context).
				WithConfig().
				WithCatalog(c.Path("catalog")).
				WithManager().
				Build()
			if err != nil {
				return err
			}

			args, err := configureArgs(c, deps.Cfg, false)
			if err != nil {
				return cliutils.FormatCliExit(gotext.Get("Invalid arguments"), err)
			}

			if err := verify.New(deps.Manager).Dependencies(c.Context, deps.Catalog); err != nil {
				return cliutils.FormatCliExit(gotext.Get("Dependency check failed"), err)
			}
			if err := verify.Compilers(args); err != nil {
				return cliutils.FormatCliExit(gotext.Get("Compiler check failed"), err)
			}

			slog.Info(gotext.Get("All dependencies and compilers are present"))
			return nil
		},
	}
}
