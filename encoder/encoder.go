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

package encoder

import (
	"github.com/jetsetilly/vgm2electron/registers"
	"github.com/jetsetilly/vgm2electron/vgm"
)

// the latch bits for each register. tone high registers are written as data
// bytes and have no latch bits
var control = [registers.NumRegisters]uint8{
	0x80, 0x00, 0xa0, 0x00, 0xc0, 0x00, 0xe0, 0x90, 0xb0, 0xd0, 0xf0,
}

// Filter is the list of registers to be written to the command stream.
type Filter []registers.Register

// DownmixFilter writes only the registers of channel zero.
var DownmixFilter = Filter{registers.Tone0Lo, registers.Tone0Hi, registers.Volume0}

// PassthroughFilter writes the registers of all tone channels.
var PassthroughFilter = Filter{
	registers.Tone0Lo, registers.Tone0Hi,
	registers.Tone1Lo, registers.Tone1Hi,
	registers.Tone2Lo, registers.Tone2Hi,
	registers.Volume0, registers.Volume1, registers.Volume2,
}

// PassthroughWithNoise writes every register.
var PassthroughWithNoise = Filter{
	registers.Tone0Lo, registers.Tone0Hi,
	registers.Tone1Lo, registers.Tone1Hi,
	registers.Tone2Lo, registers.Tone2Hi,
	registers.NoiseTone,
	registers.Volume0, registers.Volume1, registers.Volume2, registers.Volume3,
}

// Contains returns true if the register is in the filter.
func (f Filter) Contains(r registers.Register) bool {
	for _, fr := range f {
		if fr == r {
			return true
		}
	}
	return false
}

// Result of the Encode() function.
type Result struct {
	// the command stream, including the end of data command
	Commands []byte

	// the offset into Commands of the first command of each frame
	FrameOffsets []int

	// number of samples (at vgm.SampleRate) in the command stream
	Samples int
}

// SampleInterval returns the number of samples in each frame for the playback
// rate.
func SampleInterval(rate int) int {
	return vgm.SampleInterval(rate)
}

// Encode the track as a VGM command stream. Frames are played at rate frames
// per second.
func Encode(trk *registers.Track, rate int, filter Filter) Result {
	interval := SampleInterval(rate)

	res := Result{
		FrameOffsets: make([]int, 0, trk.Frames()),
	}

	// the last noise value seen, whether or not it was written
	var lastNoise uint8 = 0xff

	for i := 0; i < trk.Frames(); i++ {
		res.FrameOffsets = append(res.FrameOffsets, len(res.Commands))

		for r := registers.Tone0Lo; r < registers.NumRegisters; r++ {
			v := trk.Register(r)[i]

			if r == registers.NoiseTone {
				if v == lastNoise {
					continue // for loop
				}
				lastNoise = v
			}

			if !filter.Contains(r) {
				continue // for loop
			}

			res.Commands = append(res.Commands, vgm.CmdWrite, v|control[r])
		}

		res.Commands = appendWait(res.Commands, interval)
		res.Samples += interval
	}

	res.Commands = append(res.Commands, vgm.CmdEndOfData)

	return res
}

func appendWait(b []byte, interval int) []byte {
	switch interval {
	case vgm.Interval50:
		return append(b, vgm.CmdWait50)
	case vgm.Interval60:
		return append(b, vgm.CmdWait60)
	}
	return append(b, vgm.CmdWait, uint8(interval), uint8(interval>>8))
}
