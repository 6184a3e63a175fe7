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

// Package script renders the configure.sh wrapper that exports the
// compiler environment and calls the source tree's native configure.
package script

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"
	"mvdan.cc/sh/v3/syntax"

	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/catalog"
	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/cfgerr"
	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/types"
)

const (
	FileName   = "configure.sh"
	EntryPoint = "configure"

	FlagEnableClaw = "--enable-claw"
	FlagDisableMPI = "--disable-mpi"
)

type Script struct {
	Path string
	Text string
}

// Flags are the compiler flag strings derived from a catalog.
type Flags struct {
	Include string
	LibDirs string
	Libs    string
}

// BuildFlags collects include and library directories and link names.
// Directories appear once, in the order the catalog first mentions them.
func BuildFlags(deps []types.Dependency) (Flags, error) {
	var includeDirs, libDirs, libs []string

	for _, dep := range deps {
		if !slices.Contains(includeDirs, dep.IncludeDir) {
			includeDirs = append(includeDirs, dep.IncludeDir)
		}
		if !slices.Contains(libDirs, dep.LibDir) {
			libDirs = append(libDirs, dep.LibDir)
		}

		name, err := catalog.LinkName(dep.Lib)
		if err != nil {
			return Flags{}, err
		}
		libs = append(libs, name)
	}

	return Flags{
		Include: joinPrefixed("-I", includeDirs),
		LibDirs: joinPrefixed("-L", libDirs),
		Libs:    joinPrefixed("-l", libs),
	}, nil
}

func joinPrefixed(prefix string, items []string) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = prefix + item
	}
	return strings.Join(parts, " ")
}

// Generate renders the script for args. It does not touch the disk.
func Generate(args types.ConfigureArgs, deps []types.Dependency) (*Script, error) {
	if args.MPI {
		return nil, &cfgerr.NotImplementedError{Feature: "MPI"}
	}

	flags, err := BuildFlags(deps)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString("#!/bin/bash\n\n")

	export := func(name, value string) {
		fmt.Fprintf(&sb, "export %s=\"%s\"\n", name, escapeDQ(value))
	}
	export("CC", args.CC)
	export("FC", args.FC)
	export("CFLAGS", flags.Include)
	export("CPPFLAGS", flags.Include)
	export("FCFLAGS", flags.Include)
	export("LDFLAGS", flags.LibDirs)
	export("LIBS", flags.Libs)

	var cfgFlags []string
	if args.Claw != "" {
		export("CLAW", args.Claw)
		cfgFlags = append(cfgFlags, FlagEnableClaw)
	}
	cfgFlags = append(cfgFlags, FlagDisableMPI)

	words := []string{filepath.Join(args.SourceDir, EntryPoint)}
	words = append(words, args.ExtraArgs...)
	for i, w := range words {
		q, err := syntax.Quote(w, syntax.LangBash)
		if err != nil {
			return nil, cfgerr.Precondition(fmt.Sprintf("configure argument %q", w), err.Error(), "")
		}
		words[i] = q
	}
	words = append(words, cfgFlags...)

	sb.WriteString("\n")
	sb.WriteString(strings.Join(words, " "))
	sb.WriteString("\n")

	text := sb.String()
	if err := Check(text); err != nil {
		return nil, err
	}

	return &Script{
		Path: filepath.Join(args.BuildDir, FileName),
		Text: text,
	}, nil
}

// Check parses text as a bash script.
func Check(text string) error {
	_, err := syntax.NewParser(syntax.Variant(syntax.LangBash)).Parse(strings.NewReader(text), FileName)
	if err != nil {
		return fmt.Errorf("generated script does not parse: %w", err)
	}
	return nil
}

var dqEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`$`, `\$`,
	"`", "\\`",
)

func escapeDQ(s string) string {
	return dqEscaper.Replace(s)
}
