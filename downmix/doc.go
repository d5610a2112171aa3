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

// Package downmix reduces the three tone channels of a frame to the single
// channel that the ULA can play.
//
// A Technique selects the surviving channel for each frame. The Frame()
// function applies the selection by copying the tone and volume of the
// surviving channel into the registers of channel zero. Later stages only
// look at channel zero.
//
// Two techniques are available. The RoundRobin technique rotates through the
// active channels, ignoring channels that duplicate the tone of a lower
// numbered channel. The Priority technique favours channel zero over channel
// one and channel one over channel two, alternating between channels zero and
// one on odd and even frames.
//
// Both techniques depend only on the frame index and the register values of
// the frame. The frame index must be the index of the frame in the input.
package downmix
