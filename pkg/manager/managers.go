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
	"os/exec"
)

// Status is what the package database knows about a package.
type Status uint8

const (
	// StatusUnknown means the package database has no record of the
	// package at all, usually because the package lists are stale.
	StatusUnknown Status = iota
	StatusNotInstalled
	StatusInstalled
)

func (s Status) String() string {
	switch s {
	case StatusInstalled:
		return "installed"
	case StatusNotInstalled:
		return "not installed"
	default:
		return "unknown"
	}
}

var managers = []Manager{
	NewAPT(),
	NewDNF(),
}

// Register adds m to the known managers, replacing any manager with the
// same name. Registered managers can be picked by name with Get.
func Register(m Manager) {
	for i, mgr := range managers {
		if mgr.Name() == m.Name() {
			managers[i] = m
			return
		}
	}
	managers = append(managers, m)
}

// Manager is a read-only view of the system package database.
// Nothing here installs or refreshes anything; that is left to the
// operator, and the hint methods tell them how.
type Manager interface {
	// Name returns the name of the manager.
	Name() string
	// Format returns the packaging format of the manager.
	// 	Examples: rpm, deb
	Format() string
	// Returns true if the package manager exists on the system.
	Exists() bool

	// Status reports whether a package is installed
	Status(pkg string) (Status, error)
	// GetInstalledVersion returns the version of an installed package.
	// Returns empty string and no error if package is not installed.
	GetInstalledVersion(pkg string) (string, error)

	// InstallHint returns the command that installs pkgs
	InstallHint(pkgs ...string) string
	// SyncHint returns the command that refreshes package lists
	SyncHint() string
}

func Detect() Manager {
	for _, mgr := range managers {
		if mgr.Exists() {
			return mgr
		}
	}
	return nil
}

func Get(name string) Manager {
	for _, mgr := range managers {
		if mgr.Name() == name {
			return mgr
		}
	}
	return nil
}

func lookPath(bin string) bool {
	_, err := exec.LookPath(bin)
	return err == nil
}
