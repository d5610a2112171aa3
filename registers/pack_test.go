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

// Pack is the inverse of Demux() and is used to build packet streams for the
// tests. Every packet sets the full register state of a frame. Each tone
// channel is written as a latch byte and a data byte, and each volume as a
// single latch byte. The noise register is written as a channel 3 latch.
//
// The values stored in the track must be the stripped four bit values, with
// the exception of the tone high values which are written as data bytes.
func Pack(trk *Track) []byte {
	var b []byte
	for i := 0; i < trk.Frames(); i++ {
		b = append(b, 11)
		for c := 0; c < NumToneChannels; c++ {
			b = append(b, latchBit|uint8(c<<channelPos)|trk.ToneLo[c][i]&0x0f)
			b = append(b, trk.ToneHi[c][i]&0x7f)
		}
		b = append(b, latchBit|uint8(NoiseChannel<<channelPos)|trk.Noise[i]&0x0f)
		for c := 0; c <= NumToneChannels; c++ {
			b = append(b, latchBit|uint8(c<<channelPos)|volumeBit|trk.Volume[c][i]&0x0f)
		}
	}
	return append(b, Terminator)
}
