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

package config

import (
	"os"
	"path/filepath"

	"gitea.plemya-x.ru/Plemya-x/icon-cfg/internal/constants"
)

type Paths struct {
	ConfigDir  string
	ConfigPath string
}

func newPaths() (*Paths, error) {
	if p := os.Getenv(constants.ConfigPathEnv); p != "" {
		return &Paths{
			ConfigDir:  filepath.Dir(p),
			ConfigPath: p,
		}, nil
	}

	cfgDir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(cfgDir, constants.AppName)
	return &Paths{
		ConfigDir:  dir,
		ConfigPath: filepath.Join(dir, constants.ConfigFileName),
	}, nil
}
