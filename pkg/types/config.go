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

package types

type Config struct {
	LogLevel       string   `json:"logLevel" toml:"logLevel" env:"ICON_CFG_LOG_LEVEL"`
	Catalog        string   `json:"catalog" toml:"catalog" env:"ICON_CFG_CATALOG"`
	DefaultBranch  string   `json:"defaultBranch" toml:"defaultBranch" env:"ICON_CFG_DEFAULT_BRANCH"`
	Shell          string   `json:"shell" toml:"shell" env:"ICON_CFG_SHELL"`
	PagerStyle     string   `json:"pagerStyle" toml:"pagerStyle" env:"ICON_CFG_PAGER_STYLE"`
	// PackageManager skips detection and uses the named manager.
	PackageManager string   `json:"packageManager" toml:"packageManager" env:"ICON_CFG_PACKAGE_MANAGER"`
	ConfigureArgs  []string `json:"configureArgs" toml:"configureArgs"`
}
