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

// Package preview renders the ULA sound register values produced by a
// conversion as PCM audio. This gives an idea of how the converted music will
// sound on an Acorn Electron.
//
// The ULA produces a square wave with no volume control. The wave is band
// limited with the "github.com/arl/blip" package so that the high
// frequencies the ULA can produce do not alias.
//
// Samples are mono, signed 16 bit, at SampleRate.
package preview
