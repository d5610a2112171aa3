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

package logger

import (
	"bytes"
	"io"
)

// ansi pens used by the Colorizer
const (
	penTag    = "\033[2m"
	penNormal = "\033[0m"
)

// Colorizer wraps an io.Writer and dims the tag part of each log entry. It
// should only be used when the underlying writer is a terminal.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	idx := bytes.Index(p, []byte(": "))
	if idx == -1 {
		return c.out.Write(p)
	}

	b := make([]byte, 0, len(p)+len(penTag)+len(penNormal))
	b = append(b, penTag...)
	b = append(b, p[:idx+1]...)
	b = append(b, penNormal...)
	b = append(b, p[idx+1:]...)

	_, err := c.out.Write(b)
	if err != nil {
		return 0, err
	}
	return len(p), nil
}
