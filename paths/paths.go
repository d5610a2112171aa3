// This file is part of vgm2electron.
//
// vgm2electron is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vgm2electron is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vgm2electron.  If not, see <https://www.gnu.org/licenses/>.

package paths

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// the base path for all resources. note that we don't use this value directly
// except in the getBasePath() function. that function should be used instead.
const baseResourcePath = ".vgm2electron"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with operating system specific details.
//
// Both subPth and file can be empty strings. The subPth directory is created
// if it does not exist.
func ResourcePath(subPth string, file string) (string, error) {
	basePath, err := getBasePath(subPth)
	if err != nil {
		return "", err
	}
	return filepath.Join(basePath, file), nil
}

// getBasePath returns baseResourcePath with the user's home directory
// prepended if the unadorned baseResourcePath cannot be found in the current
// directory.
func getBasePath(subPth string) (string, error) {
	base := baseResourcePath

	if _, err := os.Stat(baseResourcePath); err != nil {
		home, err := homedir.Dir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, baseResourcePath)
	}

	pth := filepath.Join(base, subPth)

	if _, err := os.Stat(pth); err == nil {
		return pth, nil
	}

	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}

	return pth, nil
}

// Expand a path supplied by the user. A leading tilde is replaced with the
// user's home directory and environment variables are expanded.
func Expand(pth string) (string, error) {
	p, err := homedir.Expand(pth)
	if err != nil {
		return "", err
	}
	return os.ExpandEnv(p), nil
}
