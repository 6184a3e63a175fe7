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

package manager

import (
	"errors"
	"os"
	"os/exec"
	"strings"
)

// Runner runs a query command and returns its standard output and
// exit code. err is set only when the command could not be run at all.
type Runner func(name string, args ...string) (out []byte, exitCode int, err error)

func execRunner(name string, args ...string) ([]byte, int, error) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return out, exitErr.ExitCode(), nil
		}
		return out, -1, err
	}
	return out, 0, nil
}

type CommonPackageManager struct {
	run Runner
}

func (m *CommonPackageManager) runner() Runner {
	if m.run == nil {
		return execRunner
	}
	return m.run
}

// hint renders a command line the operator can copy, prefixed with sudo
// unless we are already root or running in CI.
func (m *CommonPackageManager) hint(mgrCmd string, args ...string) string {
	parts := []string{}

	isRoot := os.Geteuid() == 0
	isCI := os.Getenv("CI") == "true"
	if !isRoot && !isCI {
		parts = append(parts, "sudo")
	}

	parts = append(parts, mgrCmd)
	parts = append(parts, args...)
	return strings.Join(parts, " ")
}
