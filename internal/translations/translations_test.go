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

package translations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	for in, want := range map[string]string{
		"ru":    "ru",
		"ru-RU": "ru",
		"ru_RU": "ru",
	} {
		got, ok := resolve(poFS, in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := resolve(poFS, "de-DE")
	assert.False(t, ok)
}
