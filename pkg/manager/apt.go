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
	"fmt"
	"strings"
)

type APT struct {
	CommonPackageManager
}

func NewAPT() *APT {
	return &APT{}
}

func (*APT) Exists() bool {
	return lookPath("dpkg-query")
}

func (*APT) Name() string {
	return "apt"
}

func (*APT) Format() string {
	return "deb"
}

func (a *APT) Status(pkg string) (Status, error) {
	run := a.runner()

	out, code, err := run("dpkg-query", "-W", "-f", "${Status}", pkg)
	if err != nil {
		return StatusUnknown, fmt.Errorf("apt: status: %w", err)
	}
	switch code {
	case 0:
		if strings.Contains(string(out), "install ok installed") {
			return StatusInstalled, nil
		}
		// Removed but with config files left, half-installed, etc.
		return StatusNotInstalled, nil
	case 1:
		// dpkg has never seen it; ask apt whether it is installable.
	default:
		return StatusUnknown, fmt.Errorf("apt: status: dpkg-query exited with code %d", code)
	}

	out, code, err = run("apt-cache", "show", "--no-all-versions", pkg)
	if err != nil {
		return StatusUnknown, fmt.Errorf("apt: status: %w", err)
	}
	if code == 0 && strings.TrimSpace(string(out)) != "" {
		return StatusNotInstalled, nil
	}
	return StatusUnknown, nil
}

func (a *APT) GetInstalledVersion(pkg string) (string, error) {
	out, code, err := a.runner()("dpkg-query", "-W", "-f", "${Version}", pkg)
	if err != nil {
		return "", fmt.Errorf("apt: getinstalledversion: %w", err)
	}
	switch code {
	case 0:
		return strings.TrimSpace(string(out)), nil
	case 1:
		return "", nil
	default:
		return "", fmt.Errorf("apt: getinstalledversion: dpkg-query exited with code %d", code)
	}
}

func (a *APT) InstallHint(pkgs ...string) string {
	return a.hint("apt-get", append([]string{"install"}, pkgs...)...)
}

func (a *APT) SyncHint() string {
	return a.hint("apt-get", "update")
}
