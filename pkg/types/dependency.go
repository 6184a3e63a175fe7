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

// Dependency describes one external library the build links against
// and the files that must be present for it on disk.
type Dependency struct {
	// Name is a human readable name, e.g. "NetCDF-C".
	Name string `json:"name" toml:"name" yaml:"name"`
	// Package is the distribution package that provides the library.
	Package string `json:"package" toml:"package" yaml:"package"`
	IncludeDir string `json:"includeDir" toml:"includeDir" yaml:"includeDir"`
	LibDir     string `json:"libDir" toml:"libDir" yaml:"libDir"`
	// Header is looked up relative to IncludeDir.
	Header string `json:"header" toml:"header" yaml:"header"`
	// Lib is looked up relative to LibDir. It must look like
	// lib<name>.so or lib<name>.a.
	Lib string `json:"lib" toml:"lib" yaml:"lib"`
	// MinVersion is the oldest acceptable package version. Empty means any.
	MinVersion string `json:"minVersion,omitempty" toml:"minVersion,omitempty" yaml:"minVersion,omitempty"`
}

// ConfigureArgs holds everything the user asked for on the command line.
type ConfigureArgs struct {
	SourceDir string
	BuildDir  string
	CC        string
	FC        string
	// Claw is the path to the CLAW transpiler. Empty disables CLAW.
	Claw      string
	GitRepo   string
	GitBranch string
	MPI       bool
	// ExtraArgs are passed to configure before the fixed flags.
	ExtraArgs []string
}
