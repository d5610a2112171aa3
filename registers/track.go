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

package registers

import "fmt"

// Register identifies one of the eleven register tracks.
type Register int

// List of valid Register values, in positional order.
const (
	Tone0Lo Register = iota
	Tone0Hi
	Tone1Lo
	Tone1Hi
	Tone2Lo
	Tone2Hi
	NoiseTone
	Volume0
	Volume1
	Volume2
	Volume3
	NumRegisters
)

func (r Register) String() string {
	switch r {
	case Tone0Lo:
		return "tone0 lo"
	case Tone0Hi:
		return "tone0 hi"
	case Tone1Lo:
		return "tone1 lo"
	case Tone1Hi:
		return "tone1 hi"
	case Tone2Lo:
		return "tone2 lo"
	case Tone2Hi:
		return "tone2 hi"
	case NoiseTone:
		return "noise"
	case Volume0, Volume1, Volume2, Volume3:
		return fmt.Sprintf("vol%d", r-Volume0)
	}
	return "unknown register"
}

// NumToneChannels is the number of square wave channels. The noise channel is
// the channel that follows.
const NumToneChannels = 3

// NoiseChannel is the channel number of the noise generator.
const NoiseChannel = 3

// EndOfStream is appended to the noise track after the last frame. It is not
// a valid noise control value.
const EndOfStream = 0x08

// Silent is the attenuation value for a silent channel. Zero is the loudest.
const Silent = 15

// Track is the state of every register for every frame.
type Track struct {
	ToneLo [NumToneChannels][]uint8
	ToneHi [NumToneChannels][]uint8

	// the noise track has one more entry than the other tracks. the extra
	// entry is EndOfStream
	Noise []uint8

	// attenuation of the three tone channels and the noise channel
	Volume [NumToneChannels + 1][]uint8
}

// Frames returns the number of frames in the track.
func (trk *Track) Frames() int {
	return len(trk.ToneLo[0])
}

// Register returns the track for the register r.
func (trk *Track) Register(r Register) []uint8 {
	switch {
	case r == NoiseTone:
		return trk.Noise
	case r >= Volume0 && r <= Volume3:
		return trk.Volume[r-Volume0]
	case r >= Tone0Lo && r <= Tone2Hi:
		if r%2 == 0 {
			return trk.ToneLo[r/2]
		}
		return trk.ToneHi[r/2]
	}
	return nil
}

// Tone returns the tone divisor of the channel for the frame. The divisor is
// always recomposed from the register pair.
func (trk *Track) Tone(channel int, frame int) int {
	return int(trk.ToneHi[channel][frame])<<4 + int(trk.ToneLo[channel][frame])
}

// SetTone writes the tone divisor to the register pair of the channel.
func (trk *Track) SetTone(channel int, frame int, tone int) {
	trk.ToneHi[channel][frame] = uint8(tone >> 4)
	trk.ToneLo[channel][frame] = uint8(tone & 0x0f)
}

// Active returns true if the channel is audible for the frame.
func (trk *Track) Active(channel int, frame int) bool {
	return trk.Volume[channel][frame] == 0
}

// Snapshot returns the value of every register for the frame, in positional
// order.
func (trk *Track) Snapshot(frame int) [NumRegisters]uint8 {
	var s [NumRegisters]uint8
	for r := Tone0Lo; r < NumRegisters; r++ {
		s[r] = trk.Register(r)[frame]
	}
	return s
}

func (trk *Track) append(state [NumRegisters]uint8) {
	for c := 0; c < NumToneChannels; c++ {
		trk.ToneLo[c] = append(trk.ToneLo[c], state[Register(c*2)])
		trk.ToneHi[c] = append(trk.ToneHi[c], state[Register(c*2+1)])
	}
	trk.Noise = append(trk.Noise, state[NoiseTone])
	for c := 0; c <= NumToneChannels; c++ {
		trk.Volume[c] = append(trk.Volume[c], state[Volume0+Register(c)])
	}
}
