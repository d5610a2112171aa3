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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// With flag.FlagSet you call Parse() with the array of strings as the only
// argument. With modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("CONVERT", "PLAY", "INFO")
//	p, err := md.Parse()
//
// The first sub-mode is the default mode. If the first argument is not one
// of the sub-modes (comparison is case insensitive) then the default mode is
// selected and the argument is left for the next call to Parse().
//
// Once the mode has been decided NewMode() is called and the flags for that
// mode are added. A second call to Parse() processes those flags:
//
//	md.NewMode()
//	technique := md.AddInt("q", 2, "downmix technique (1 or 2)")
//	p, err = md.Parse()
//	if err != nil || p != modalflag.ParseContinue {
//		return err
//	}
//
// Non-flag arguments are then retrieved with RemainingArgs() or GetArg().
//
// The Provided() function answers whether a flag was set explicitly on the
// command line. This is useful when the default value of a flag has come from
// somewhere else, for example a preferences file, and we need to know whether
// to override it.
package modalflag
