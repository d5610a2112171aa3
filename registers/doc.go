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

// Package registers decodes a packed per-frame stream of SN76489 register
// writes into eleven parallel register tracks, one entry per frame.
//
// The packed stream is a sequence of packets. Each packet is a length byte
// followed by that many chip writes. A length byte of 255 terminates the
// stream. The Demux() function is the preferred method of initialisation for
// the Track type.
//
// The Track type names each register but the Register() function and the
// Register constants give access to the tracks in the positional order used
// by the chip's write protocol:
//
//	tone0 lo, tone0 hi, tone1 lo, tone1 hi, tone2 lo, tone2 hi, noise,
//	vol0, vol1, vol2, vol3
//
// The low tone value is stored as written. The high tone value is the full
// data byte. Neither is re-masked when the tone is recomposed.
package registers
