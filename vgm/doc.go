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

// Package vgm reads and writes VGM files containing SN76489 music. Files
// compressed with gzip (VGZ files) are supported for both reading and
// writing.
//
// The Read() and ReadFile() functions are the preferred method of
// initialisation for the Stream type. Reading fails if the file is not a VGM
// file or if the file has no SN76489 clock.
//
// The Packets() function of the Stream type groups the SN76489 writes in the
// file by frame, where the length of a frame is decided by the playback rate
// in the header. Writes to other chips are ignored.
//
// The Write() and WriteFile() functions create a new VGM file using the
// header information of an existing Stream, replacing the command data.
package vgm
