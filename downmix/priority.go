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

// the number of channels interleaved by the Priority technique
const interleave = 2

// Priority gives channel zero the output on even frames and channel one the
// output on odd frames. A channel that is silent gives up its frame to the
// other.
//
// When channels zero and one are playing the same tone, or tones an octave
// apart, channel zero always has priority.
//
// Channel two is only output on odd frames when channels zero and one are
// both silent.
type Priority struct {
	// channel two is considered only if Channel3 is true. the name reflects
	// the numbering used on the command line
	Channel3 bool
}

// Select implements the Technique interface.
func (p Priority) Select(trk *registers.Track, frame int) int {
	even := frame%interleave == 0

	vol0 := trk.Volume[0][frame]
	vol1 := trk.Volume[1][frame]
	vol2 := trk.Volume[2][frame]

	priority := vol0 == 0 && even

	t0 := trk.Tone(0, frame)
	t1 := trk.Tone(1, frame)
	sametone := t1 == t0*2 || t0 == t1*2 || t0 == t1
	if sametone && vol0 == vol1 && vol0 == 0 {
		priority = true
	}

	output := 0
	if vol1 == 0 && !priority {
		output = 1
	}

	if p.Channel3 && vol0 == registers.Silent && vol1 == registers.Silent && vol2 == 0 && !even {
		output = 2
	}

	return output
}
