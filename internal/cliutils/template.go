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
	"strings"

	"github.com/leonelquinteros/gotext"
)

// The named sub-templates referenced below are registered by urfave/cli
// itself when it renders help.

// GetAppCliTemplate returns the application help template with translated
// section titles.
func GetAppCliTemplate() string {
	r := strings.NewReplacer(
		"@NAME@", gotext.Get("NAME"),
		"@USAGE@", gotext.Get("USAGE"),
		"@COMMANDS@", gotext.Get("COMMANDS"),
		"@OPTIONS@", gotext.Get("GLOBAL OPTIONS"),
		"@VERSION@", gotext.Get("VERSION"),
		"@opts@", gotext.Get("options"),
		"@command@", gotext.Get("command"),
	)
	return r.Replace(`@NAME@:
   {{template "helpNameTemplate" .}}

@USAGE@:
   {{if .UsageText}}{{wrap .UsageText 3}}{{else}}{{.HelpName}} [@opts@]{{if .Commands}} [@command@] [@opts@]{{end}}{{end}}{{if .Version}}{{if not .HideVersion}}

@VERSION@:
   {{.Version}}{{end}}{{end}}{{if .VisibleCommands}}

@COMMANDS@:{{template "visibleCommandCategoryTemplate" .}}{{end}}{{if .VisibleFlags}}

@OPTIONS@:{{template "visibleFlagTemplate" .}}{{end}}
`)
}

// GetCommandHelpTemplate returns the per-command help template.
func GetCommandHelpTemplate() string {
	r := strings.NewReplacer(
		"@NAME@", gotext.Get("NAME"),
		"@USAGE@", gotext.Get("USAGE"),
		"@DESCRIPTION@", gotext.Get("DESCRIPTION"),
		"@OPTIONS@", gotext.Get("OPTIONS"),
		"@opts@", gotext.Get("options"),
	)
	return r.Replace(`@NAME@:
   {{template "helpNameTemplate" .}}

@USAGE@:
   {{if .UsageText}}{{wrap .UsageText 3}}{{else}}{{.HelpName}}{{if .VisibleFlags}} [@opts@]{{end}}{{end}}{{if .Description}}

@DESCRIPTION@:
   {{wrap .Description 3}}{{end}}{{if .VisibleFlags}}

@OPTIONS@:{{template "visibleFlagTemplate" .}}{{end}}
`)
}
