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

package appbuilder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/leonelquinteros/gotext"

	"gitea.plemya-x.ru/Plemya-x/icon-cfg/internal/cliutils"
	"gitea.plemya-x.ru/Plemya-x/icon-cfg/internal/config"
	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/catalog"
	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/cfgerr"
	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/manager"
	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/types"
)

type AppDeps struct {
	Cfg     *config.IconCfgConfig
	Catalog []types.Dependency
	Manager manager.Manager
}

type AppBuilder struct {
	deps AppDeps
	err  error
	ctx  context.Context
}

func New(ctx context.Context) *AppBuilder {
	return &AppBuilder{ctx: ctx}
}

func (b *AppBuilder) UseConfig(cfg *config.IconCfgConfig) *AppBuilder {
	if b.err != nil {
		return b
	}
	b.deps.Cfg = cfg
	return b
}

func (b *AppBuilder) WithConfig() *AppBuilder {
	if b.err != nil {
		return b
	}

	cfg := config.New()
	if err := cfg.Load(); err != nil {
		b.err = cliutils.FormatCliExit(gotext.Get("Error loading config"), err)
		return b
	}

	b.deps.Cfg = cfg
	return b
}

// WithCatalog loads the dependency catalog from path, then from the
// configured catalog file, and uses the built-in table when neither is
// set.
func (b *AppBuilder) WithCatalog(path string) *AppBuilder {
	if b.err != nil {
		return b
	}

	cfg := b.deps.Cfg
	if cfg == nil {
		b.err = errors.New("config is required before loading the catalog")
		return b
	}

	if path == "" {
		path = cfg.Catalog()
	}
	if path == "" {
		b.deps.Catalog = catalog.Default()
		return b
	}

	deps, err := catalog.Load(path)
	if err != nil {
		b.err = cliutils.FormatCliExit(gotext.Get("Error loading dependency catalog"), err)
		return b
	}
	slog.Debug(gotext.Get("Loaded dependency catalog"), "path", path, "entries", len(deps))

	b.deps.Catalog = deps
	return b
}

func (b *AppBuilder) UseManager(mgr manager.Manager) *AppBuilder {
	if b.err != nil {
		return b
	}
	b.deps.Manager = mgr
	return b
}

// WithManager uses the package manager named in the config, or the
// first one found on the system.
func (b *AppBuilder) WithManager() *AppBuilder {
	if b.err != nil {
		return b
	}

	if b.deps.Cfg != nil && b.deps.Cfg.PackageManager() != "" {
		name := b.deps.Cfg.PackageManager()
		b.deps.Manager = manager.Get(name)
		if b.deps.Manager == nil {
			b.err = cliutils.FormatCliExit(
				gotext.Get("Unknown package manager"),
				cfgerr.Precondition(fmt.Sprintf("package manager %q", name), gotext.Get("not supported"), ""),
			)
		}
		return b
	}

	b.deps.Manager = manager.Detect()
	if b.deps.Manager == nil {
		b.err = cliutils.FormatCliExit(
			gotext.Get("Unable to detect a supported package manager on the system"),
			cfgerr.Precondition("package manager", "neither dpkg-query nor dnf found", ""),
		)
	}

	return b
}

func (b *AppBuilder) Build() (*AppDeps, error) {
	if b.err != nil {
		return nil, b.err
	}
	return &b.deps, nil
}
