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
	"bufio"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/jetsetilly/vgm2electron/curated"
)

// the version of the files created by Write()
const writeVersion = 0x151

// Output is the data to be written by Write() that replaces the data in the
// source Stream.
type Output struct {
	// command stream including the end of data command
	Commands []byte

	TotalSamples int

	// offset into Commands of the loop point. a negative value means there is
	// no loop
	LoopOffset  int
	LoopSamples int

	// compress the file with gzip
	Compress bool
}

// Header creates a VGM header for the output. Clock and playback information
// is taken from the source Stream.
func Header(src *Stream, out Output) []byte {
	hdr := make([]byte, minHeaderLen)
	le := binary.LittleEndian

	copy(hdr[offIdent:], ident)

	gd3 := src.gd3
	if gd3 == nil && src.Metadata != (Metadata{}) {
		gd3 = encodeGD3(src.Metadata)
	}

	size := minHeaderLen + len(out.Commands) + len(gd3)
	le.PutUint32(hdr[offEOF:], uint32(size-offEOF))
	le.PutUint32(hdr[offVersion:], writeVersion)
	le.PutUint32(hdr[offClock:], src.Clock|src.ClockFlags)

	if len(gd3) > 0 {
		le.PutUint32(hdr[offGD3:], uint32(minHeaderLen+len(out.Commands)-offGD3))
	}

	le.PutUint32(hdr[offTotalSamples:], uint32(out.TotalSamples))
	if out.LoopOffset >= 0 {
		le.PutUint32(hdr[offLoop:], uint32(minHeaderLen+out.LoopOffset-offLoop))
		le.PutUint32(hdr[offLoopSamples:], uint32(out.LoopSamples))
	}

	le.PutUint32(hdr[offRate:], uint32(src.Rate))
	le.PutUint16(hdr[offFeedback:], src.Feedback)
	hdr[offShiftWidth] = src.ShiftWidth
	hdr[offFlags] = src.Flags
	le.PutUint32(hdr[offDataOffset:], minHeaderLen-offDataOffset)

	return hdr
}

// Write a VGM file to w.
func Write(w io.Writer, src *Stream, out Output) error {
	if out.Compress {
		gz := gzip.NewWriter(w)
		if err := write(gz, src, out); err != nil {
			gz.Close()
			return err
		}
		if err := gz.Close(); err != nil {
			return curated.Errorf(FileError, err)
		}
		return nil
	}
	return write(w, src, out)
}

func write(w io.Writer, src *Stream, out Output) error {
	b := bufio.NewWriter(w)

	b.Write(Header(src, out))
	b.Write(out.Commands)

	if src.gd3 != nil {
		b.Write(src.gd3)
	} else if src.Metadata != (Metadata{}) {
		b.Write(encodeGD3(src.Metadata))
	}

	if err := b.Flush(); err != nil {
		return curated.Errorf(FileError, err)
	}
	return nil
}

// IsCompressed returns true if the filename has the VGZ extension.
func IsCompressed(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".vgz")
}

// WriteFile writes a VGM file to path. The file is compressed if the filename
// has the VGZ extension.
func WriteFile(path string, src *Stream, out Output) error {
	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf(FileError, err)
	}

	out.Compress = out.Compress || IsCompressed(path)

	if err := Write(f, src, out); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return curated.Errorf(FileError, err)
	}
	return nil
}
