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

// Package preprocess prepares each frame of a register track for the
// downmix. Preparation happens in two steps, always in this order:
//
// Quantise() reduces the attenuation of each tone channel to either full
// volume or silence. The ULA has no volume control so there is nothing
// between the two.
//
// Retune() transposes the tone of each channel by whole octaves and brings
// tones that are below the range of the ULA up to the lowest frequency the ULA
// can produce.
//
// The Frame() function performs both steps for all three tone channels.
package preprocess
