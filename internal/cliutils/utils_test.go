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

package cliutils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v2"

	"gitea.plemya-x.ru/Plemya-x/icon-cfg/pkg/cfgerr"
)

func TestFormatCliExit(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"no cause", nil, cfgerr.ExitGeneric},
		{"plain", errors.New("boom"), cfgerr.ExitGeneric},
		{"precondition", cfgerr.Precondition("zlib1g-dev", "not installed", ""), cfgerr.ExitPrecondition},
		{"conflict", fmt.Errorf("ensure: %w", &cfgerr.ConflictError{Field: "branch", Requested: "a", Actual: "b"}), cfgerr.ExitConflict},
		{"not implemented", &cfgerr.NotImplementedError{Feature: "MPI"}, cfgerr.ExitNotImplemented},
		{"downstream", &cfgerr.DownstreamError{Command: "configure.sh", ExitCode: 77}, 77},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exit := FormatCliExit("Error configuring", tt.err)
			assert.Equal(t, tt.code, exit.ExitCode())
			assert.Contains(t, exit.Error(), "Error configuring")
			if tt.err != nil {
				assert.ErrorIs(t, exit, tt.err)
			}
		})
	}
}

func TestHandleExitCoder(t *testing.T) {
	var got int
	old := cli.OsExiter
	cli.OsExiter = func(code int) { got = code }
	t.Cleanup(func() { cli.OsExiter = old })

	HandleExitCoder(nil)
	assert.Zero(t, got)

	HandleExitCoder(FormatCliExitWithCode("boom", nil, 9))
	assert.Equal(t, 9, got)
}
