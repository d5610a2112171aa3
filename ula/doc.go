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

// Package ula maps SN76489 tone divisors onto the sound register of the Acorn
// Electron ULA.
//
// The ULA generates a single square wave with frequency:
//
//	1MHz / (32 * (S + 1))
//
// where S is the eight bit value written to the sound register. There is no
// volume control. Silence is represented by the highest frequency the ULA can
// produce, which is inaudible.
package ula
