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

package downmix

import "github.com/jetsetilly/vgm2electron/registers"

// RoundRobin rotates through the active channels. A channel is not included
// in the rotation if a lower numbered active channel has exactly the same
// tone.
type RoundRobin struct{}

// Select implements the Technique interface.
func (RoundRobin) Select(trk *registers.Track, frame int) int {
	var active [registers.NumToneChannels]bool
	for c := range active {
		active[c] = trk.Active(c, frame)
	}

	// channels are included before duplicates are removed. this means a
	// duplicate is compared against the channel as it was in the input
	include := active
	for c := 1; c < registers.NumToneChannels; c++ {
		for d := 0; d < c; d++ {
			if active[c] && active[d] && trk.Tone(c, frame) == trk.Tone(d, frame) {
				include[c] = false
			}
		}
	}

	mix := make([]int, 0, registers.NumToneChannels)
	for c, ok := range include {
		if ok {
			mix = append(mix, c)
		}
	}

	// channel zero is always included if it is active so mix can not be
	// empty if Select() has been called correctly
	if len(mix) == 0 {
		return 0
	}

	return mix[frame%len(mix)]
}
