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

package script

import (
	"fmt"
	"os"
	"path/filepath"

	"gitea.plemya-x.ru/Plemya-x/icon-cfg/internal/fsutils"
)

// Write stores s on disk. If the file already holds exactly s.Text it is
// left alone and Write returns false. Otherwise the file is replaced in
// one rename, so readers never see a mix of old and new content.
func Write(s *Script) (bool, error) {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("create build directory: %w", err)
	}

	same, err := fsutils.SameContent(s.Path, []byte(s.Text))
	if err != nil {
		return false, fmt.Errorf("read existing script: %w", err)
	}
	if same {
		return false, nil
	}

	tmp, err := os.CreateTemp(dir, "."+FileName+".*")
	if err != nil {
		return false, err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(s.Text); err != nil {
		tmp.Close()
		return false, err
	}
	if err := tmp.Chmod(0o755); err != nil {
		tmp.Close()
		return false, err
	}
	if err := tmp.Close(); err != nil {
		return false, err
	}

	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return false, fmt.Errorf("replace %s: %w", s.Path, err)
	}

	return true, nil
}
