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
	"gitea.plemya-x.ru/Plemya-x/icon-cfg/internal/pager"
	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/invoke"
	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/script"
	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/source"
	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/types"
	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/verify"
)

const scriptMargin = 4

func ConfigureCmd() *cli.Command {
	return &cli.Command{
		Name:  "configure",
		Usage: gotext.Get("Check dependencies, prepare the sources and run ICON's configure"),
		Action: func(c *cli.Context) error {
			ctx := c.Context

			deps, err := appbuilder.
				New(ctx).
				WithConfig().
				WithCatalog(c.Path("catalog")).
				WithManager().
				Build()
			if err != nil {
				return err
			}

			args, err := configureArgs(c, deps.Cfg, true)
			if err != nil {
				return cliutils.FormatCliExit(gotext.Get("Invalid arguments"), err)
			}

			slog.Info(gotext.Get("Checking that dependencies are installed"))
			if err := verify.New(deps.Manager).Dependencies(ctx, deps.Catalog); err != nil {
				return cliutils.FormatCliExit(gotext.Get("Dependency check failed"), err)
			}

			slog.Info(gotext.Get("Preparing source"))
			res, err := source.Ensure(ctx, source.Options{
				Dir:           args.SourceDir,
				URL:           args.GitRepo,
				Branch:        args.GitBranch,
				DefaultBranch: deps.Cfg.DefaultBranch(),
				Progress:      source.ProgressFunc(logProgress),
			})
			if err != nil {
				return cliutils.FormatCliExit(gotext.Get("Error preparing source"), err)
			}
			for _, sm := range res.Submodules {
				slog.Debug(gotext.Get("Submodule ready"), "submodule", sm)
			}

			slog.Info(gotext.Get("Checking compilers"))
			if err := verify.Compilers(args); err != nil {
				return cliutils.FormatCliExit(gotext.Get("Compiler check failed"), err)
			}

			slog.Info(gotext.Get("Generating configure script"))
			s, err := generate(args, deps.Catalog)
			if err != nil {
				return err
			}
			if err := pager.Show(c.App.Writer, s.Text, deps.Cfg.PagerStyle(), scriptMargin); err != nil {
				slog.Warn(gotext.Get("Unable to display the configure script"), "err", err)
			}

			slog.Info(gotext.Get("Configuring ICON"), "dir", args.BuildDir)
			if err := invoke.New(deps.Cfg.Shell(), c.App.Writer).Run(ctx, s.Path); err != nil {
				return cliutils.FormatCliExit(gotext.Get("ICON configure failed"), err)
			}

			return nil
		},
	}
}

// generate renders the script and stores it, leaving an identical
// existing file untouched.
func generate(args types.ConfigureArgs, catalog []types.Dependency) (*script.Script, error) {
	s, err := script.Generate(args, catalog)
	if err != nil {
		return nil, cliutils.FormatCliExit(gotext.Get("Error generating configure script"), err)
	}

	changed, err := script.Write(s)
	if err != nil {
		return nil, cliutils.FormatCliExit(gotext.Get("Error writing configure script"), err)
	}
	if changed {
		slog.Info(gotext.Get("Configure script written"), "path", s.Path)
	} else {
		slog.Info(gotext.Get("Configure script is up to date"), "path", s.Path)
	}

	return s, nil
}

func logProgress(msg string) {
	slog.Info(msg)
}
