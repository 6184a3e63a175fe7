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
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/leonelquinteros/gotext"
	"github.com/urfave/cli/v2"

	"gitea.plemya-x.ru/Plemya-x/icon-cfg/internal/cliutils"
	"gitea.plemya-x.ru/Plemya-x/icon-cfg/internal/config"
	"gitea.plemya-x.ru/Plemya-x/icon-cfg/internal/constants"
	"gitea.plemya-x.ru/Plemya-x/icon-cfg/internal/logger"
	"gitea.plemya-x.ru/Plemya-x/icon-cfg/internal/translations"
)

func VersionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: gotext.Get("Print the current icon-cfg version and exit"),
		Action: func(c *cli.Context) error {
			fmt.Fprintln(c.App.Writer, config.Version)
			return nil
		},
	}
}

func GetApp() *cli.App {
	return &cli.App{
		Name:           constants.AppName,
		Usage:          gotext.Get("Configure an ICON build"),
		Flags:          globalFlags(),
		DefaultCommand: "configure",
		Commands: []*cli.Command{
			ConfigureCmd(),
			CheckCmd(),
			GenCmd(),
			DepsCmd(),
			ConfigCmd(),
			VersionCmd(),
		},
		EnableBashCompletion: true,
		ExitErrHandler: func(cCtx *cli.Context, err error) {
			cliutils.HandleExitCoder(err)
		},
	}
}

func setLogLevel(newLevel string) {
	l, ok := slog.Default().Handler().(*logger.Logger)
	if !ok {
		panic("unexpected")
	}
	l.SetLevel(logger.ParseLevel(newLevel))
}

func main() {
	logger.SetupDefault()
	setLogLevel(os.Getenv("ICON_CFG_LOG_LEVEL"))
	translations.Setup()

	cfg := config.New()
	if err := cfg.Load(); err != nil {
		slog.Error(gotext.Get("Error loading config"), "err", err)
		os.Exit(1)
	}
	setLogLevel(cfg.LogLevel())

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cli.AppHelpTemplate = cliutils.GetAppCliTemplate()
	cli.CommandHelpTemplate = cliutils.GetCommandHelpTemplate()
	cli.HelpFlag.(*cli.BoolFlag).Usage = gotext.Get("Show help")

	app := GetApp()
	if err := app.RunContext(ctx, os.Args); err != nil {
		slog.Error(gotext.Get("Error while running app"), "err", err)
		os.Exit(1)
	}
}
