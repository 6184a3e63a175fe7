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

type DNF struct {
	CommonPackageManager
}

func NewDNF() *DNF {
	return &DNF{}
}

func (*DNF) Exists() bool {
	return lookPath("dnf") && lookPath("rpm")
}

func (*DNF) Name() string {
	return "dnf"
}

func (*DNF) Format() string {
	return "rpm"
}

func (d *DNF) Status(pkg string) (Status, error) {
	run := d.runner()

	_, code, err := run("rpm", "-q", pkg)
	if err != nil {
		return StatusUnknown, fmt.Errorf("dnf: status: %w", err)
	}
	if code == 0 {
		return StatusInstalled, nil
	}

	_, code, err = run("dnf", "-q", "--cacheonly", "info", pkg)
	if err != nil {
		return StatusUnknown, fmt.Errorf("dnf: status: %w", err)
	}
	if code == 0 {
		return StatusNotInstalled, nil
	}
	return StatusUnknown, nil
}

func (d *DNF) GetInstalledVersion(pkg string) (string, error) {
	out, code, err := d.runner()("rpm", "-q", "--queryformat", "%{VERSION}-%{RELEASE}", pkg)
	if err != nil {
		return "", fmt.Errorf("dnf: getinstalledversion: %w", err)
	}
	if code != 0 {
		return "", nil
	}
	return strings.TrimSpace(string(out)), nil
}

func (d *DNF) InstallHint(pkgs ...string) string {
	return d.hint("dnf", append([]string{"install"}, pkgs...)...)
}

func (d *DNF) SyncHint() string {
	return d.hint("dnf", "makecache")
}
