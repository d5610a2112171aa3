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

// Package paths contains functions to prepare paths for vgm2electron resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. If a directory named
// ".vgm2electron" exists in the current working directory then that is used.
// Otherwise the directory is created in the user's home directory.
//
// The Expand() function should be used on paths supplied by the user, for
// example on the command line, so that a leading tilde is replaced with the
// home directory and environment variables are expanded.
package paths
