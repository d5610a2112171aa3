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

package paths_test

import (
	"os"
	"testing"

	"github.com/jetsetilly/vgm2electron/paths"
	"github.com/jetsetilly/vgm2electron/test"
)

func TestPaths(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	// base directory in current working directory takes priority
	test.DemandSuccess(t, os.Mkdir(".vgm2electron", 0o700))

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".vgm2electron/foo/bar/baz")

	pth, err = paths.ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".vgm2electron/foo/bar")

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".vgm2electron/baz")

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".vgm2electron")

	// sub-directory has been created
	info, err := os.Stat(".vgm2electron/foo/bar")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())
}

func TestExpand(t *testing.T) {
	pth, err := paths.Expand("tune.vgm")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, "tune.vgm")

	pth, err = paths.Expand("~/tune.vgm")
	test.ExpectSuccess(t, err)
	test.ExpectInequality(t, pth, "~/tune.vgm")
}
