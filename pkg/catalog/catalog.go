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

// Package catalog holds the table of libraries an ICON build links
// against. The table is data: it can be replaced by a TOML or YAML file
// without touching code.
package catalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/cfgerr"
	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/types"
)

const (
	LibPrefix       = "lib"
	SharedLibSuffix = ".so"
	StaticLibSuffix = ".a"
)

// Ubuntu 20.04, x86_64, CPU build.
var ubuntu20CPU = []types.Dependency{
	{Name: "lapack", Package: "liblapacke-dev", IncludeDir: "/usr/include", LibDir: "/usr/lib/x86_64-linux-gnu/lapack", Header: "lapacke.h", Lib: "liblapack.so"},
	{Name: "blas", Package: "libblas-dev", IncludeDir: "/usr/include/x86_64-linux-gnu", LibDir: "/usr/lib/x86_64-linux-gnu/blas", Header: "cblas.h", Lib: "libblas.so"},
	{Name: "NetCDF-Fortran", Package: "libnetcdff-dev", IncludeDir: "/usr/include", LibDir: "/usr/lib/x86_64-linux-gnu", Header: "netcdf.inc", Lib: "libnetcdff.so"},
	{Name: "NetCDF-C", Package: "libnetcdf-dev", IncludeDir: "/usr/include", LibDir: "/usr/lib/x86_64-linux-gnu", Header: "netcdf.h", Lib: "libnetcdf.so"},
	{Name: "zlib", Package: "zlib1g-dev", IncludeDir: "/usr/include", LibDir: "/usr/lib/x86_64-linux-gnu", Header: "zlib.h", Lib: "libz.so"},
	{Name: "szip", Package: "libsz2", IncludeDir: "/usr/include", LibDir: "/usr/lib/x86_64-linux-gnu", Header: "szlib.h", Lib: "libsz.so"},
	{Name: "xml2", Package: "libxml2-dev", IncludeDir: "/usr/include/libxml2", LibDir: "/usr/lib/x86_64-linux-gnu", Header: "libxml/parser.h", Lib: "libxml2.so"},
}

// Default returns a copy of the built-in catalog.
func Default() []types.Dependency {
	deps := make([]types.Dependency, len(ubuntu20CPU))
	copy(deps, ubuntu20CPU)
	return deps
}

type catalogFile struct {
	Dependencies []types.Dependency `toml:"dependency" yaml:"dependency"`
}

// Load reads a catalog file. The format is picked by extension:
// .toml, .yaml or .yml.
func Load(path string) ([]types.Dependency, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cf catalogFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&cf)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&cf)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}

	if err := Validate(cf.Dependencies); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	return cf.Dependencies, nil
}

// Validate checks that every descriptor is complete and that its
// library file name can be turned into a link flag.
func Validate(deps []types.Dependency) error {
	if len(deps) == 0 {
		return cfgerr.Precondition("catalog", "no dependencies defined", "")
	}

	for i, dep := range deps {
		var missing []string
		for field, v := range map[string]string{
			"name":       dep.Name,
			"package":    dep.Package,
			"includeDir": dep.IncludeDir,
			"libDir":     dep.LibDir,
			"header":     dep.Header,
			"lib":        dep.Lib,
		} {
			if strings.TrimSpace(v) == "" {
				missing = append(missing, field)
			}
		}
		if len(missing) > 0 {
			slices.Sort(missing)
			return cfgerr.Precondition(
				fmt.Sprintf("catalog entry #%d", i+1),
				"missing "+strings.Join(missing, ", "),
				"",
			)
		}

		if _, err := LinkName(dep.Lib); err != nil {
			return err
		}
	}

	return nil
}

// LinkName strips the "lib" prefix and the ".so"/".a" suffix from a
// library file name: libnetcdff.so -> netcdff.
func LinkName(lib string) (string, error) {
	if !strings.HasPrefix(lib, LibPrefix) {
		return "", cfgerr.Precondition(lib, fmt.Sprintf("library file name must start with %q", LibPrefix), "")
	}
	name := strings.TrimPrefix(lib, LibPrefix)

	switch {
	case strings.HasSuffix(name, StaticLibSuffix):
		name = strings.TrimSuffix(name, StaticLibSuffix)
	case strings.HasSuffix(name, SharedLibSuffix):
		name = strings.TrimSuffix(name, SharedLibSuffix)
	default:
		return "", cfgerr.Precondition(lib, fmt.Sprintf("library file name must end with %q or %q", SharedLibSuffix, StaticLibSuffix), "")
	}

	if name == "" {
		return "", cfgerr.Precondition(lib, "empty library name", "")
	}

	return name, nil
}
