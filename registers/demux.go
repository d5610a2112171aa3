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

import (
	"github.com/jetsetilly/vgm2electron/curated"
	"github.com/jetsetilly/vgm2electron/logger"
)

// Sentinel error patterns returned by Demux().
const (
	TruncatedPacket = "registers: truncated packet at offset %d"
	MissingEnd      = "registers: packet stream has no terminator"
)

// Terminator is the packet length value that ends the packet stream.
const Terminator = 255

// values used to interpret the bits of a chip write
const (
	latchBit   = 0x80
	volumeBit  = 0x10
	channelPos = 5
)

// the latched channel before any tone latch has been seen
const noLatch = -1

// Demux decodes the packet stream into a Track. If strip is true then the
// control bits are removed from latch bytes, leaving the four data bits.
// Otherwise the latch byte is stored whole.
//
// Data bytes are never masked. A data byte that arrives while the noise
// channel is latched, or before any channel has been latched, is logged and
// otherwise ignored.
func Demux(packets []byte, strip bool) (*Track, error) {
	var mask uint8 = 0xff
	if strip {
		mask = 0x0f
	}

	trk := &Track{}

	var state [NumRegisters]uint8
	latched := noLatch

	n := 0
	for {
		if n >= len(packets) {
			return nil, curated.Errorf(MissingEnd)
		}

		size := int(packets[n])
		n++

		if size == Terminator {
			break // for loop
		}

		if n+size > len(packets) {
			return nil, curated.Errorf(TruncatedPacket, n-1)
		}

		for _, d := range packets[n : n+size] {
			if d&latchBit == latchBit {
				c := int(d>>channelPos) & 0x03
				if d&volumeBit == volumeBit {
					state[Volume0+Register(c)] = d & mask
				} else {
					// channel 3 tone low is the noise control register
					state[Register(c*2)] = d & mask
					latched = c
				}
				continue // for loop
			}

			switch latched {
			case noLatch:
				logger.Logf(logger.Allow, "demux", "frame %d: data byte %#02x with no latched channel", trk.Frames(), d)
			case NoiseChannel:
				logger.Logf(logger.Allow, "demux", "frame %d: data byte %#02x for noise channel", trk.Frames(), d)
			default:
				state[Register(latched*2+1)] = d
			}
		}

		trk.append(state)
		n += size
	}

	trk.Noise = append(trk.Noise, EndOfStream)

	return trk, nil
}
