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
	"embed"
	"io/fs"
	"path"
	"strings"

	"github.com/jeandeaual/go-locale"
	"github.com/leonelquinteros/gotext"
)

//go:embed po
var poFS embed.FS

// Setup loads the message catalog matching the user's locale. Missing
// catalogs leave gotext returning the untranslated strings.
func Setup() {
	userLanguage, err := locale.GetLanguage()
	if err != nil {
		return
	}
	lang, ok := resolve(poFS, userLanguage)
	if !ok {
		return
	}

	loc := gotext.NewLocaleFSWithPath(lang, &poFS, "po")
	loc.SetDomain("default")
	gotext.SetLocales([]*gotext.Locale{loc})
}

// resolve picks the po directory for lang, falling back from a regional
// tag like "ru-RU" to its base language.
func resolve(fsys fs.FS, lang string) (string, bool) {
	candidates := []string{lang}
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		candidates = append(candidates, lang[:i])
	}
	for _, c := range candidates {
		if _, err := fs.Stat(fsys, path.Join("po", c)); err == nil {
			return c, true
		}
	}
	return "", false
}
