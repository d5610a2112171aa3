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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Patterns that are checked for should be stored as a const
// string in the package that raises the error. For example, the vgm package
// defines:
//
//	const NotVGM = "vgm: not a vgm file (%s)"
//
// and callers can test for it with:
//
//	if curated.Is(err, vgm.NotVGM) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain:
//
//	e := curated.Errorf(vgm.NotVGM, "bad ident")
//	f := curated.Errorf("convert: %v", e)
//
//	curated.Has(f, vgm.NotVGM) == true
//	curated.Is(f, vgm.NotVGM) == false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). Put another way, it returns true if the error is 'curated'
// and false if the error is 'uncurated'. We can think of the difference as
// being 'expected' and 'unexpected'. An input file that is not a VGM file is
// an expected error and is reported plainly to the user. An uncurated error
// probably indicates a problem with the program.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. So:
//
//	curated.Errorf("vgm: %v", curated.Errorf("vgm: truncated command"))
//
// will print as:
//
//	vgm: truncated command
//
// and not:
//
//	vgm: vgm: truncated command
//
// For the purposes of this package we think of chains as being composed of
// parts separated by the sub-string ': ' as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan).
package curated
