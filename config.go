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
	"fmt"

	"github.com/leonelquinteros/gotext"
	"github.com/urfave/cli/v2"

	"gitea.plemya-x.ru/Plemya-x/icon-cfg/internal/cliutils"
	appbuilder "gitea.plemya-x.ru/Plemya-x/icon-cfg/internal/cliutils/app_builder"
)

func ConfigCmd() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: gotext.Get("Print the effective configuration"),
		Action: func(c *cli.Context) error {
			deps, err := appbuilder.
				New(c.Context).
				WithConfig().
				Build()
			if err != nil {
				return err
			}

			out, err := deps.Cfg.TOML()
			if err != nil {
				return cliutils.FormatCliExit(gotext.Get("Error encoding config"), err)
			}

			fmt.Fprintf(c.App.Writer, "# %s\n%s", deps.Cfg.GetPaths().ConfigPath, out)
			return nil
		},
	}
}
