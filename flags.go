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

	"github.com/google/shlex"
	"github.com/leonelquinteros/gotext"
	"github.com/urfave/cli/v2"

	"gitea.plemya-x.ru/Plemya-x/icon-cfg/internal/config"
	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/cfgerr"
	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/types"
)

const (
	defaultCC = "/usr/bin/gcc"
	defaultFC = "/usr/bin/gfortran"
)

// globalFlags are shared by every command so that a bare
// `icon-cfg --icon-dir ... --build-dir ...` runs configure.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.PathFlag{
			Name:    "icon-dir",
			Aliases: []string{"source-dir"},
			Usage:   gotext.Get("ICON source directory"),
		},
		&cli.PathFlag{
			Name:  "build-dir",
			Usage: gotext.Get("Build directory, configure.sh is written here"),
		},
		&cli.StringFlag{
			Name:    "cc",
			Aliases: []string{"c-compiler"},
			Value:   defaultCC,
			Usage:   gotext.Get("Path to the C compiler"),
		},
		&cli.StringFlag{
			Name:    "fc",
			Aliases: []string{"fortran-compiler"},
			Value:   defaultFC,
			Usage:   gotext.Get("Path to the Fortran compiler"),
		},
		&cli.StringFlag{
			Name:  "claw",
			Usage: gotext.Get("Path to the CLAW compiler, enables CLAW"),
		},
		&cli.StringFlag{
			Name:  "icon-git-repo",
			Usage: gotext.Get("Git repository to clone ICON from"),
		},
		&cli.StringFlag{
			Name:  "icon-git-branch",
			Usage: gotext.Get("Branch of the ICON repository"),
		},
		&cli.BoolFlag{
			Name:  "mpi",
			Usage: gotext.Get("Build with MPI"),
		},
		&cli.StringFlag{
			Name:  "configure-args",
			Usage: gotext.Get("Extra arguments for ICON's configure, split like a shell would"),
		},
		&cli.PathFlag{
			Name:  "catalog",
			Usage: gotext.Get("Dependency catalog file (TOML or YAML)"),
		},
	}
}

// configureArgs builds the arguments record from the command line. The
// directories are made absolute since configure.sh runs from the build
// directory. needDirs requires both directories to be given.
func configureArgs(c *cli.Context, cfg *config.IconCfgConfig, needDirs bool) (types.ConfigureArgs, error) {
	args := types.ConfigureArgs{
		CC:        c.String("cc"),
		FC:        c.String("fc"),
		Claw:      c.String("claw"),
		GitRepo:   c.String("icon-git-repo"),
		GitBranch: c.String("icon-git-branch"),
		MPI:       c.Bool("mpi"),
	}

	for _, d := range []struct {
		flag string
		dst  *string
	}{
		{"icon-dir", &args.SourceDir},
		{"build-dir", &args.BuildDir},
	} {
		v := c.Path(d.flag)
		if v == "" {
			if needDirs {
				return args, cfgerr.Precondition("--"+d.flag, gotext.Get("is required"), "")
			}
			continue
		}
		abs, err := filepath.Abs(v)
		if err != nil {
			return args, fmt.Errorf("resolve --%s: %w", d.flag, err)
		}
		*d.dst = abs
	}

	args.ExtraArgs = append(args.ExtraArgs, cfg.ConfigureArgs()...)
	if raw := c.String("configure-args"); raw != "" {
		extra, err := shlex.Split(raw)
		if err != nil {
			return args, cfgerr.Precondition("--configure-args", err.Error(), "")
		}
		args.ExtraArgs = append(args.ExtraArgs, extra...)
	}

	return args, nil
}
