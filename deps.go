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
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/leonelquinteros/gotext"
	"github.com/urfave/cli/v2"

	"gitea.plemya-x.ru/Plemya-x/icon-cfg/internal/cliutils"
	appbuilder "gitea.plemya-x.ru/Plemya-x/icon-cfg/internal/cliutils/app_builder"
	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/manager"
	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/types"
)

func DepsCmd() *cli.Command {
	return &cli.Command{
		Name:  "deps",
		Usage: gotext.Get("List the dependency catalog and the state of each package"),
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

			rows, err := dependencyRows(deps.Manager, deps.Catalog)
			if err != nil {
				return cliutils.FormatCliExit(gotext.Get("Error querying the package manager"), err)
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers(
					gotext.Get("NAME"),
					gotext.Get("PACKAGE"),
					gotext.Get("STATUS"),
					gotext.Get("VERSION"),
					gotext.Get("HEADER"),
					gotext.Get("LIBRARY"),
				).
				Rows(rows...)

			_, err = fmt.Fprintln(c.App.Writer, t.Render())
			return err
		},
	}
}

func dependencyRows(mgr manager.Manager, catalog []types.Dependency) ([][]string, error) {
	rows := make([][]string, 0, len(catalog))
	for _, dep := range catalog {
		status, err := mgr.Status(dep.Package)
		if err != nil {
			return nil, err
		}

		version := "-"
		if status == manager.StatusInstalled {
			v, err := mgr.GetInstalledVersion(dep.Package)
			if err != nil {
				return nil, err
			}
			if v != "" {
				version = v
			}
		}

		rows = append(rows, []string{
			dep.Name,
			dep.Package,
			gotext.Get(status.String()),
			version,
			filepath.Join(dep.IncludeDir, dep.Header),
			filepath.Join(dep.LibDir, dep.Lib),
		})
	}
	return rows, nil
}
