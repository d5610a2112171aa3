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

package vgm

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"

	"github.com/jetsetilly/vgm2electron/curated"
	"github.com/jetsetilly/vgm2electron/logger"
)

// Sentinel error patterns.
const (
	NotVGM       = "vgm: not a vgm file: %s"
	NotSN76489   = "vgm: no SN76489 clock in header"
	Truncated    = "vgm: truncated command (%#02x) at offset %#x"
	BadDataBlock = "vgm: invalid data block at offset %#x"
	FileError    = "vgm: %v"
)

// header field offsets
const (
	offIdent        = 0x00
	offEOF          = 0x04
	offVersion      = 0x08
	offClock        = 0x0c
	offGD3          = 0x14
	offTotalSamples = 0x18
	offLoop         = 0x1c
	offLoopSamples  = 0x20
	offRate         = 0x24
	offFeedback     = 0x28
	offShiftWidth   = 0x2a
	offFlags        = 0x2b
	offDataOffset   = 0x34

	// length of the header for files earlier than v1.50
	minHeaderLen = 0x40
)

const ident = "Vgm "

// the clock field uses the top two bits as flags
const clockMask = 0x3fffffff

// DefaultRate is used when the header does not specify a playback rate.
const DefaultRate = 50

// default values for fields not present in older versions of the format
const (
	defaultFeedback   = 0x0009
	defaultShiftWidth = 16
)

// the maximum number of writes in a single packet. the packet length of 255
// is reserved for the end of the packet stream
const maxPacketLen = 254

// ends the stream of packets
const packetTerminator = 0xff

// sn76489Write is a single SN76489 write and the sample at which it occurs.
type sn76489Write struct {
	sample int
	value  byte
}

// Stream is a VGM file containing SN76489 data.
type Stream struct {
	// version number in BCD. for example 0x150 is version 1.50
	Version uint32

	// SN76489 clock in Hz
	Clock uint32

	// the flag bits of the clock field
	ClockFlags uint32

	TotalSamples int
	LoopSamples  int

	// playback rate in frames per second. DefaultRate if not specified in
	// the file
	Rate int

	Feedback   uint16
	ShiftWidth uint8
	Flags      uint8

	// GD3 tag information. the raw tag is preserved for writing
	Metadata Metadata
	gd3      []byte

	// SN76489 writes in the order they occur
	writes []sn76489Write

	// sample position of the loop point. -1 if there is no loop
	loopSample int
}

// ReadFile reads the VGM or VGZ file at path.
func ReadFile(path string) (*Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, curated.Errorf(FileError, err)
	}
	defer f.Close()

	return Read(f)
}

// Read a VGM file from the io.Reader. The data may be gzip compressed.
func Read(r io.Reader) (*Stream, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, curated.Errorf(FileError, err)
	}

	if len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b {
		gz, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, curated.Errorf(NotVGM, err)
		}
		defer gz.Close()

		data, err = io.ReadAll(gz)
		if err != nil {
			return nil, curated.Errorf(NotVGM, err)
		}
	}

	return parse(data)
}

func parse(data []byte) (*Stream, error) {
	if len(data) < minHeaderLen {
		return nil, curated.Errorf(NotVGM, "too short")
	}
	if !bytes.Equal(data[offIdent:offIdent+4], []byte(ident)) {
		return nil, curated.Errorf(NotVGM, "invalid ident")
	}

	le := binary.LittleEndian

	stm := &Stream{
		Version:      le.Uint32(data[offVersion:]),
		TotalSamples: int(le.Uint32(data[offTotalSamples:])),
		LoopSamples:  int(le.Uint32(data[offLoopSamples:])),
		Rate:         DefaultRate,
		Feedback:     defaultFeedback,
		ShiftWidth:   defaultShiftWidth,
		loopSample:   -1,
	}

	clock := le.Uint32(data[offClock:])
	stm.Clock = clock & clockMask
	stm.ClockFlags = clock &^ clockMask
	if stm.Clock == 0 {
		return nil, curated.Errorf(NotSN76489)
	}

	if stm.Version >= 0x101 {
		if rate := int(le.Uint32(data[offRate:])); rate > SampleRate {
			return nil, curated.Errorf(NotVGM, "playback rate out of range")
		} else if rate > 0 {
			stm.Rate = rate
		} else {
			logger.Logf(logger.Allow, "vgm", "no playback rate in header. using %dHz", DefaultRate)
		}
	}

	if stm.Version >= 0x110 {
		if fb := le.Uint16(data[offFeedback:]); fb != 0 {
			stm.Feedback = fb
		}
		if sw := data[offShiftWidth]; sw != 0 {
			stm.ShiftWidth = sw
		}
	}

	if stm.Version >= 0x151 {
		stm.Flags = data[offFlags]
	}

	dataStart := minHeaderLen
	if stm.Version >= 0x150 {
		if off := int(le.Uint32(data[offDataOffset:])); off != 0 {
			dataStart = offDataOffset + off
		}
	}
	if dataStart > len(data) {
		return nil, curated.Errorf(NotVGM, "data offset out of range")
	}

	// data ends at the GD3 tag if there is one
	dataEnd := len(data)
	if off := int(le.Uint32(data[offGD3:])); off != 0 {
		gd3Start := offGD3 + off
		if gd3Start < dataStart || gd3Start > len(data) {
			return nil, curated.Errorf(NotVGM, "GD3 offset out of range")
		}

		var err error
		stm.Metadata, stm.gd3, err = parseGD3(data[gd3Start:])
		if err != nil {
			// a broken tag isn't a reason to reject the music data
			logger.Logf(logger.Allow, "vgm", "%v", err)
		}
		dataEnd = gd3Start
	}

	loopStart := -1
	if off := int(le.Uint32(data[offLoop:])); off != 0 {
		loopStart = offLoop + off
	}

	if err := stm.walk(data[:dataEnd], dataStart, loopStart); err != nil {
		return nil, err
	}

	return stm, nil
}

// walk the command data, collecting SN76489 writes and noting the sample
// position of the loop point.
func (stm *Stream) walk(data []byte, start int, loopStart int) error {
	le := binary.LittleEndian
	sample := 0

	for i := start; i < len(data); {
		if i == loopStart {
			stm.loopSample = sample
		}

		cmd := data[i]

		switch {
		case cmd == CmdEndOfData:
			i = len(data)
			continue // for loop

		case cmd == CmdWrite:
			if i+2 > len(data) {
				return curated.Errorf(Truncated, cmd, i)
			}
			stm.writes = append(stm.writes, sn76489Write{sample: sample, value: data[i+1]})
			i += 2

		case cmd == CmdWait:
			if i+3 > len(data) {
				return curated.Errorf(Truncated, cmd, i)
			}
			sample += int(le.Uint16(data[i+1:]))
			i += 3

		case cmd == CmdWait60:
			sample += Interval60
			i++

		case cmd == CmdWait50:
			sample += Interval50
			i++

		case cmd >= 0x70 && cmd <= 0x7f:
			sample += int(cmd&0x0f) + 1
			i++

		case cmd >= 0x80 && cmd <= 0x8f:
			// YM2612 DAC write and wait
			sample += int(cmd & 0x0f)
			i++

		case cmd == CmdDataBlock:
			if i+7 > len(data) {
				return curated.Errorf(Truncated, cmd, i)
			}
			if data[i+1] != CmdEndOfData {
				return curated.Errorf(BadDataBlock, i)
			}
			i += 7 + int(le.Uint32(data[i+3:])&0x7fffffff)

		default:
			n := commandLength(cmd)
			if n == 0 {
				logger.Logf(logger.Allow, "vgm", "unknown command (%#02x) at offset %#x", cmd, i)
				n = 1
			}
			if i+n > len(data) {
				return curated.Errorf(Truncated, cmd, i)
			}
			i += n
		}
	}

	// trust the sample count in the header unless the commands go past it
	if sample > stm.TotalSamples {
		stm.TotalSamples = sample
	}

	return nil
}

// Writes returns the number of SN76489 writes in the stream.
func (stm *Stream) Writes() int {
	return len(stm.writes)
}

// Frames returns the number of frames in the stream at the playback rate.
func (stm *Stream) Frames() int {
	interval := SampleInterval(stm.Rate)
	n := (stm.TotalSamples + interval - 1) / interval
	if len(stm.writes) > 0 {
		n = max(n, stm.writes[len(stm.writes)-1].sample/interval+1)
	}
	return n
}

// Packets returns the SN76489 writes grouped by frame. Each packet is a
// length byte followed by the writes for the frame. The stream of packets is
// terminated by the value 255.
//
// If a frame has more than 254 writes then only the last 254 writes are kept.
func (stm *Stream) Packets() []byte {
	interval := SampleInterval(stm.Rate)
	frames := make([][]byte, stm.Frames())

	for _, w := range stm.writes {
		f := w.sample / interval
		frames[f] = append(frames[f], w.value)
	}

	var b []byte
	for f, p := range frames {
		if len(p) > maxPacketLen {
			logger.Logf(logger.Allow, "vgm", "frame %d: %d writes. keeping the last %d", f, len(p), maxPacketLen)
			p = p[len(p)-maxPacketLen:]
		}
		b = append(b, byte(len(p)))
		b = append(b, p...)
	}

	return append(b, packetTerminator)
}

// LoopFrame returns the frame that contains the loop point. The second
// return value is false if the stream does not loop.
func (stm *Stream) LoopFrame() (int, bool) {
	if stm.loopSample < 0 {
		return 0, false
	}
	return stm.loopSample / SampleInterval(stm.Rate), true
}
