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

// Package verify checks that everything an ICON build needs from the
// host system is already in place. It never installs or refreshes
// anything.
package verify

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/leonelquinteros/gotext"
	"go.elara.ws/vercmp"

	"gitea.plemya-x.ru/Plemya-x/icon-cfg/internal/fsutils"
	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/cfgerr"
	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/manager"
	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/types"
)

type Verifier struct {
	mgr manager.Manager
}

func New(mgr manager.Manager) *Verifier {
	return &Verifier{mgr: mgr}
}

// Dependencies checks every descriptor in order and stops at the first
// one that is not satisfied.
func (v *Verifier) Dependencies(ctx context.Context, deps []types.Dependency) error {
	for _, dep := range deps {
		if err := ctx.Err(); err != nil {
			return err
		}

		slog.Info(gotext.Get("Checking dependency"), "name", dep.Name, "package", dep.Package)

		if err := v.Dependency(dep); err != nil {
			return err
		}
	}
	return nil
}

func (v *Verifier) Dependency(dep types.Dependency) error {
	pkgSubject := fmt.Sprintf("package %q", dep.Package)

	status, err := v.mgr.Status(dep.Package)
	if err != nil {
		return fmt.Errorf("query %s: %w", pkgSubject, err)
	}

	switch status {
	case manager.StatusUnknown:
		return cfgerr.Precondition(
			pkgSubject,
			gotext.Get("not found in the package database; update package lists before running"),
			v.mgr.SyncHint(),
		)
	case manager.StatusNotInstalled:
		return cfgerr.Precondition(pkgSubject, gotext.Get("not installed"), v.mgr.InstallHint(dep.Package))
	}

	if dep.MinVersion != "" {
		installed, err := v.mgr.GetInstalledVersion(dep.Package)
		if err != nil {
			return fmt.Errorf("query %s: %w", pkgSubject, err)
		}
		if vercmp.Compare(installed, dep.MinVersion) < 0 {
			return cfgerr.Precondition(
				pkgSubject,
				gotext.Get("version %s is older than required %s", installed, dep.MinVersion),
				v.mgr.InstallHint(dep.Package),
			)
		}
	}

	header := filepath.Join(dep.IncludeDir, dep.Header)
	if !fsutils.FileExists(header) {
		return cfgerr.Precondition(
			fmt.Sprintf("header %q", dep.Header),
			gotext.Get("not found at %s", dep.IncludeDir),
			v.mgr.InstallHint(dep.Package),
		)
	}

	lib := filepath.Join(dep.LibDir, dep.Lib)
	if !fsutils.FileExists(lib) {
		return cfgerr.Precondition(
			fmt.Sprintf("library %q", dep.Lib),
			gotext.Get("not found at %s", dep.LibDir),
			v.mgr.InstallHint(dep.Package),
		)
	}

	return nil
}

type tool struct {
	kind string
	path string
}

// Compilers checks that the C and Fortran compilers and, when requested,
// the CLAW transpiler exist and can be executed.
func Compilers(args types.ConfigureArgs) error {
	tools := []tool{
		{"C compiler", args.CC},
		{"Fortran compiler", args.FC},
	}
	if args.Claw != "" {
		tools = append(tools, tool{"CLAW compiler", args.Claw})
	}

	for _, tool := range tools {
		slog.Debug("checking tool", "kind", tool.kind, "path", tool.path)
		if tool.path == "" {
			return cfgerr.Precondition(tool.kind, gotext.Get("path is empty"), "")
		}
		if !fsutils.FileExists(tool.path) {
			return cfgerr.Precondition(fmt.Sprintf("%s %q", tool.kind, tool.path), gotext.Get("not found"), "")
		}
		if !fsutils.IsExecutable(tool.path) {
			return cfgerr.Precondition(fmt.Sprintf("%s %q", tool.kind, tool.path), gotext.Get("not executable"), "")
		}
	}

	return nil
}
