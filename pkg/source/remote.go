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

package source

import (
	"net/url"

	"github.com/PuerkitoBio/purell"
)

const normalizationFlags = purell.FlagRemoveTrailingSlash |
	purell.FlagRemoveDefaultPort |
	purell.FlagLowercaseHost |
	purell.FlagLowercaseScheme |
	purell.FlagRemoveDuplicateSlashes |
	purell.FlagRemoveFragment |
	purell.FlagRemoveUnnecessaryHostDots |
	purell.FlagDecodeUnnecessaryEscapes |
	purell.FlagRemoveEmptyPortSeparator

// SameRemote reports whether two remote locations name the same
// repository. URLs with a scheme and host are normalized first, so
// "https://Example.com:443/icon.git/" matches "https://example.com/icon.git".
// Anything else (scp-like "git@host:path", local paths) must match exactly.
func SameRemote(a, b string) bool {
	if a == b {
		return true
	}
	na, okA := normalizeRemote(a)
	nb, okB := normalizeRemote(b)
	return okA && okB && na == nb
}

func normalizeRemote(s string) (string, bool) {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", false
	}
	n, err := purell.NormalizeURLString(s, normalizationFlags)
	if err != nil {
		return "", false
	}
	return n, true
}
