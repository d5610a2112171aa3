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

// Package prefs facilitates the storage of preferential values in the
// vgm2electron system. It is intended to be used for values that change the
// default behaviour of a conversion, for example the downmix technique or the
// per-channel volume thresholds.
//
// The Disk type is the preferred method of initialisation. Values are added to
// the Disk with the Add() function and the Load() and Save() functions are
// used to synchronise the values with the file on disk:
//
//	dsk, err := prefs.NewDisk(pth)
//	var technique prefs.Int
//	err = dsk.Add("conversion.technique", &technique)
//	err = dsk.Load(true)
//
// The file format is a simple list of key/value pairs, one pair per line,
// separated by " :: ". The first line of the file is a warning that the file
// should not be edited by hand.
//
// Values can be overridden for the duration of the program with the command
// line stack. See PushCommandLineStack() for details.
package prefs
