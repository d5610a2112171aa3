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

package version

import (
	"strings"
	"testing"

	"github.com/jetsetilly/vgm2electron/test"
)

func TestNumberedRelease(t *testing.T) {
	v, r := fromBuildInfo("v1.0.0")
	test.ExpectEquality(t, v, "v1.0.0")
	test.ExpectInequality(t, r, "")
}

func TestBanner(t *testing.T) {
	test.ExpectSuccess(t, strings.HasPrefix(Banner(), ApplicationName))
}
