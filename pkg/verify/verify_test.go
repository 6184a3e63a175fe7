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

package verify_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/cfgerr"
	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/manager"
	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/types"
	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/verify"
)

type fakeManager struct {
	status   map[string]manager.Status
	versions map[string]string
	queried  []string
}

func (*fakeManager) Name() string   { return "fake" }
func (*fakeManager) Format() string { return "deb" }
func (*fakeManager) Exists() bool   { return true }

func (m *fakeManager) Status(pkg string) (manager.Status, error) {
	m.queried = append(m.queried, pkg)
	return m.status[pkg], nil
}

func (m *fakeManager) GetInstalledVersion(pkg string) (string, error) {
	return m.versions[pkg], nil
}

func (*fakeManager) InstallHint(pkgs ...string) string { return "install " + pkgs[0] }
func (*fakeManager) SyncHint() string                  { return "sync" }

// fakeSystem lays out a header and a library for dep under a temp root
// and returns dep rebased onto it.
func fakeSystem(t *testing.T, dep types.Dependency, withHeader, withLib bool) types.Dependency {
	t.Helper()
	root := t.TempDir()
	dep.IncludeDir = filepath.Join(root, "include")
	dep.LibDir = filepath.Join(root, "lib")
	require.NoError(t, os.MkdirAll(dep.IncludeDir, 0o755))
	require.NoError(t, os.MkdirAll(dep.LibDir, 0o755))
	if withHeader {
		require.NoError(t, os.WriteFile(filepath.Join(dep.IncludeDir, dep.Header), nil, 0o644))
	}
	if withLib {
		require.NoError(t, os.WriteFile(filepath.Join(dep.LibDir, dep.Lib), nil, 0o644))
	}
	return dep
}

var zlib = types.Dependency{
	Name:    "zlib",
	Package: "zlib1g-dev",
	Header:  "zlib.h",
	Lib:     "libz.so",
}

func TestDependency(t *testing.T) {
	tests := []struct {
		name       string
		status     manager.Status
		version    string
		minVersion string
		withHeader bool
		withLib    bool
		wantErr    string
		wantHint   string
	}{
		{name: "all present", status: manager.StatusInstalled, withHeader: true, withLib: true},
		{name: "unknown package", status: manager.StatusUnknown, withHeader: true, withLib: true, wantErr: `package "zlib1g-dev"`, wantHint: "sync"},
		{name: "not installed", status: manager.StatusNotInstalled, withHeader: true, withLib: true, wantErr: `package "zlib1g-dev"`, wantHint: "install zlib1g-dev"},
		{name: "missing header", status: manager.StatusInstalled, withLib: true, wantErr: `header "zlib.h"`, wantHint: "install zlib1g-dev"},
		{name: "missing library", status: manager.StatusInstalled, withHeader: true, wantErr: `library "libz.so"`, wantHint: "install zlib1g-dev"},
		{name: "new enough", status: manager.StatusInstalled, version: "1:1.2.11.dfsg-2", minVersion: "1:1.2.8", withHeader: true, withLib: true},
		{name: "too old", status: manager.StatusInstalled, version: "1:1.2.8.dfsg-2", minVersion: "1:1.2.11", withHeader: true, withLib: true, wantErr: `package "zlib1g-dev"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dep := zlib
			dep.MinVersion = tt.minVersion
			dep = fakeSystem(t, dep, tt.withHeader, tt.withLib)

			mgr := &fakeManager{
				status:   map[string]manager.Status{dep.Package: tt.status},
				versions: map[string]string{dep.Package: tt.version},
			}

			err := verify.New(mgr).Dependency(dep)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}

			var pre *cfgerr.PreconditionError
			require.True(t, errors.As(err, &pre), "got %v", err)
			assert.Equal(t, tt.wantErr, pre.Subject)
			if tt.wantHint != "" {
				assert.Equal(t, tt.wantHint, pre.Hint)
			}
		})
	}
}

func TestDependenciesStopAtFirstFailure(t *testing.T) {
	good := fakeSystem(t, zlib, true, true)

	szip := fakeSystem(t, types.Dependency{Name: "szip", Package: "libsz2", Header: "szlib.h", Lib: "libsz.so"}, true, true)
	xml := fakeSystem(t, types.Dependency{Name: "xml2", Package: "libxml2-dev", Header: "parser.h", Lib: "libxml2.so"}, true, true)

	mgr := &fakeManager{status: map[string]manager.Status{
		good.Package: manager.StatusInstalled,
		szip.Package: manager.StatusNotInstalled,
		xml.Package:  manager.StatusInstalled,
	}}

	err := verify.New(mgr).Dependencies(context.Background(), []types.Dependency{good, szip, xml})
	require.Error(t, err)
	assert.Equal(t, cfgerr.ExitPrecondition, cfgerr.ExitCode(err))
	assert.Equal(t, []string{"zlib1g-dev", "libsz2"}, mgr.queried)
}

func TestCompilers(t *testing.T) {
	dir := t.TempDir()
	gcc := filepath.Join(dir, "gcc")
	gfortran := filepath.Join(dir, "gfortran")
	claw := filepath.Join(dir, "clawfc")
	notExec := filepath.Join(dir, "notexec")
	for _, p := range []string{gcc, gfortran, claw} {
		require.NoError(t, os.WriteFile(p, []byte("#!/bin/sh\n"), 0o755))
	}
	require.NoError(t, os.WriteFile(notExec, []byte("#!/bin/sh\n"), 0o644))

	assert.NoError(t, verify.Compilers(types.ConfigureArgs{CC: gcc, FC: gfortran}))
	assert.NoError(t, verify.Compilers(types.ConfigureArgs{CC: gcc, FC: gfortran, Claw: claw}))

	err := verify.Compilers(types.ConfigureArgs{CC: gcc, FC: filepath.Join(dir, "missing")})
	var pre *cfgerr.PreconditionError
	require.True(t, errors.As(err, &pre))
	assert.Contains(t, pre.Subject, "Fortran compiler")
	assert.Contains(t, pre.Subject, "missing")

	err = verify.Compilers(types.ConfigureArgs{CC: gcc, FC: gfortran, Claw: filepath.Join(dir, "noclaw")})
	require.True(t, errors.As(err, &pre))
	assert.Contains(t, pre.Subject, "CLAW")

	err = verify.Compilers(types.ConfigureArgs{CC: notExec, FC: gfortran})
	require.True(t, errors.As(err, &pre))
	assert.Equal(t, "not executable", pre.Reason)
}
