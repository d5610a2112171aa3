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
	"encoding/binary"
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/jetsetilly/vgm2electron/curated"
)

// Sentinel error patterns.
const (
	BadGD3 = "vgm: GD3: %s"
)

const gd3Ident = "Gd3 "

// the GD3 header is the ident, the version and the length of the string data
const gd3HeaderLen = 12

// Metadata from the GD3 tag. Only the English strings are kept.
type Metadata struct {
	Title     string
	Game      string
	System    string
	Author    string
	Date      string
	Converter string
	Notes     string
}

func (md Metadata) String() string {
	s := strings.Builder{}
	line := func(name, value string) {
		if value != "" {
			s.WriteString(fmt.Sprintf("%s: %s\n", name, value))
		}
	}
	line("title", md.Title)
	line("game", md.Game)
	line("system", md.System)
	line("author", md.Author)
	line("date", md.Date)
	line("converter", md.Converter)
	line("notes", md.Notes)
	return s.String()
}

// parseGD3 returns the metadata and the raw tag. The raw tag is returned even
// if the metadata can't be parsed.
func parseGD3(data []byte) (Metadata, []byte, error) {
	var md Metadata

	if len(data) < gd3HeaderLen || string(data[:4]) != gd3Ident {
		return md, nil, curated.Errorf(BadGD3, "invalid ident")
	}

	n := gd3HeaderLen + int(binary.LittleEndian.Uint32(data[8:]))
	if n > len(data) {
		return md, nil, curated.Errorf(BadGD3, "truncated")
	}
	raw := data[:n]

	// eleven null terminated UTF-16LE strings. english and japanese
	// versions of the first four
	var fields []string
	var units []uint16
	for i := gd3HeaderLen; i+1 < n; i += 2 {
		u := binary.LittleEndian.Uint16(raw[i:])
		if u == 0 {
			fields = append(fields, string(utf16.Decode(units)))
			units = units[:0]
			continue // for loop
		}
		units = append(units, u)
	}

	if len(fields) < 11 {
		return md, raw, curated.Errorf(BadGD3, "missing strings")
	}

	md.Title = fields[0]
	md.Game = fields[2]
	md.System = fields[4]
	md.Author = fields[6]
	md.Date = fields[8]
	md.Converter = fields[9]
	md.Notes = fields[10]

	return md, raw, nil
}

// encodeGD3 creates a GD3 tag from the metadata. The japanese strings are
// left empty.
func encodeGD3(md Metadata) []byte {
	var data []byte
	str := func(s string) {
		for _, u := range utf16.Encode([]rune(s)) {
			data = binary.LittleEndian.AppendUint16(data, u)
		}
		data = append(data, 0, 0)
	}

	str(md.Title)
	str("")
	str(md.Game)
	str("")
	str(md.System)
	str("")
	str(md.Author)
	str("")
	str(md.Date)
	str(md.Converter)
	str(md.Notes)

	hdr := []byte(gd3Ident)
	hdr = binary.LittleEndian.AppendUint32(hdr, 0x100)
	hdr = binary.LittleEndian.AppendUint32(hdr, uint32(len(data)))

	return append(hdr, data...)
}
