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

// Commands used by SN76489 VGM files.
const (
	CmdWrite     = 0x50
	CmdWait      = 0x61
	CmdWait60    = 0x62
	CmdWait50    = 0x63
	CmdEndOfData = 0x66
	CmdDataBlock = 0x67
)

// SampleRate is the rate at which all VGM wait commands are counted.
const SampleRate = 44100

// Sample intervals that have their own wait command.
const (
	Interval50 = 882
	Interval60 = 735
)

// SampleInterval returns the number of samples in each frame for the playback
// rate.
func SampleInterval(rate int) int {
	return SampleRate / rate
}

// commandLength returns the number of bytes used by a command that doesn't
// need special handling. a length of zero means the command is unknown.
func commandLength(cmd byte) int {
	switch {
	case cmd >= 0x30 && cmd <= 0x3f:
		// second SN76489 and reserved single operand commands
		return 2
	case cmd == 0x4f:
		// game gear stereo
		return 2
	case cmd >= 0x40 && cmd <= 0x5f:
		return 3
	case cmd == 0x68:
		return 12
	case cmd >= 0x80 && cmd <= 0x8f:
		return 1
	case cmd == 0x90 || cmd == 0x91 || cmd == 0x95:
		return 5
	case cmd == 0x92:
		return 6
	case cmd == 0x93:
		return 11
	case cmd == 0x94:
		return 2
	case cmd >= 0xa0 && cmd <= 0xbf:
		return 3
	case cmd >= 0xc0 && cmd <= 0xdf:
		return 4
	case cmd >= 0xe0:
		return 5
	}
	return 0
}
