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

// Package conversion converts SN76489 VGM music for playback on the Acorn
// Electron. The conversion is a single pass over every frame of the music:
//
//	demultiplex registers -> quantise volume -> retune -> downmix -> ULA
//
// followed by the encoding of the processed registers as a new VGM command
// stream.
//
// The Config type describes the conversion. DefaultConfig() is the preferred
// method of initialisation. The Preferences type binds the configuration to
// a preferences file on disk and to the command line strings used to describe
// each channel.
//
// The Convert() function is deterministic. The same input and Config will
// always produce the same Result.
//
// WriteFiles() writes the Result to disk as a VGM file and a ULA sidecar file
// containing one ULA sound register value per frame. Both files are written to
// temporary files first and renamed once both have been written.
package conversion
