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

// Package encoder writes a register track as a stream of VGM commands. Every
// register in the Filter is written on every frame, with the exception of the
// noise register which is only written when it changes. Writing the noise
// register resets the noise generator's shift register on the real chip.
//
// Each frame is followed by a single wait command. The stream ends with the
// end of data command.
package encoder
