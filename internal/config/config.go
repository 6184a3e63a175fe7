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
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/invoke"
	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/source"
	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/types"
)

// Version is set at build time with -ldflags.
var Version = "unknown"

var defaultConfig = &types.Config{
	LogLevel:      "INFO",
	DefaultBranch: source.DefaultBranch,
	Shell:         invoke.DefaultShell,
	PagerStyle:    "native",
}

type IconCfgConfig struct {
	cfg   *types.Config
	paths *Paths
}

func New() *IconCfgConfig {
	defCopy := *defaultConfig
	return &IconCfgConfig{cfg: &defCopy}
}

// Load applies, in order, the built-in defaults, the config file if it
// exists and ICON_CFG_* environment variables.
func (c *IconCfgConfig) Load() error {
	paths, err := newPaths()
	if err != nil {
		return err
	}
	c.paths = paths

	defCopy := *defaultConfig
	cfg := &defCopy

	data, err := os.ReadFile(paths.ConfigPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return fmt.Errorf("read config: %w", err)
	default:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return fmt.Errorf("decode config %s: %w", paths.ConfigPath, err)
		}
	}

	if err := loadEnv(cfg); err != nil {
		return err
	}

	c.cfg = cfg
	return nil
}

func (c *IconCfgConfig) GetPaths() *Paths {
	return c.paths
}

func (c *IconCfgConfig) LogLevel() string        { return c.cfg.LogLevel }
func (c *IconCfgConfig) Catalog() string         { return c.cfg.Catalog }
func (c *IconCfgConfig) DefaultBranch() string   { return c.cfg.DefaultBranch }
func (c *IconCfgConfig) Shell() string           { return c.cfg.Shell }
func (c *IconCfgConfig) PagerStyle() string      { return c.cfg.PagerStyle }
func (c *IconCfgConfig) ConfigureArgs() []string { return c.cfg.ConfigureArgs }
func (c *IconCfgConfig) PackageManager() string  { return c.cfg.PackageManager }

// TOML renders the effective configuration.
func (c *IconCfgConfig) TOML() (string, error) {
	b, err := toml.Marshal(c.cfg)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
