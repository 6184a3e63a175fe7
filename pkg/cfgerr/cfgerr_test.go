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

package cfgerr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/alecthomas/assert/v2"

	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/cfgerr"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"generic", errors.New("boom"), cfgerr.ExitGeneric},
		{"precondition", cfgerr.Precondition("zlib1g-dev", "not installed", ""), cfgerr.ExitPrecondition},
		{"wrapped precondition", fmt.Errorf("verify: %w", cfgerr.Precondition("gcc", "not found", "")), cfgerr.ExitPrecondition},
		{"conflict", &cfgerr.ConflictError{Field: "branch", Requested: "master", Actual: "dev"}, cfgerr.ExitConflict},
		{"not implemented", &cfgerr.NotImplementedError{Feature: "MPI"}, cfgerr.ExitNotImplemented},
		{"downstream", &cfgerr.DownstreamError{Command: "configure.sh", ExitCode: 77}, 77},
		{"downstream without code", &cfgerr.DownstreamError{Command: "git clone", Err: errors.New("timeout")}, cfgerr.ExitGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cfgerr.ExitCode(tt.err))
		})
	}
}

func TestNotImplementedIs(t *testing.T) {
	err := fmt.Errorf("generate: %w", &cfgerr.NotImplementedError{Feature: "MPI"})
	assert.True(t, errors.Is(err, cfgerr.ErrNotImplemented))
	assert.Equal(t, "generate: MPI: not implemented", err.Error())
}

func TestPreconditionMessage(t *testing.T) {
	err := cfgerr.Precondition(`package "zlib1g-dev"`, "not installed", "sudo apt-get install zlib1g-dev")
	assert.Equal(t, `package "zlib1g-dev": not installed [sudo apt-get install zlib1g-dev]`, err.Error())
}

func TestConflictMessage(t *testing.T) {
	err := &cfgerr.ConflictError{Field: "remote", Requested: "a", Actual: "b"}
	assert.Equal(t, `remote mismatch: requested "a", found "b"`, err.Error())
}
