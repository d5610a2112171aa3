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

// Package digest creates a chained SHA-1 digest of a stream of data. The
// digest of a conversion identifies its output exactly and is used to check
// that the same input and settings always produce the same result.
package digest

import (
	"crypto/sha1"
	"fmt"
)

// length of the buffer used to create the digest. the previous digest value
// is stored in the first sha1.Size bytes of the buffer so that it is included
// in the next digest
const (
	bufferLength = 1024
	bufferStart  = sha1.Size
)

// Digest implements the io.Writer interface.
type Digest struct {
	digest   [sha1.Size]byte
	buffer   []byte
	bufferCt int
}

// New is the preferred method of initialisation for the Digest type.
func New() *Digest {
	dig := &Digest{
		buffer: make([]byte, bufferLength),
	}
	dig.Reset()
	return dig
}

// String returns the digest of all data written so far.
func (dig *Digest) String() string {
	if dig.bufferCt == bufferStart {
		return fmt.Sprintf("%x", dig.digest)
	}
	return fmt.Sprintf("%x", sha1.Sum(dig.buffer[:dig.bufferCt]))
}

// Reset the digest to its initial state.
func (dig *Digest) Reset() {
	dig.digest = [sha1.Size]byte{}
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = bufferStart
}

// Write implements the io.Writer interface. It never returns an error.
func (dig *Digest) Write(p []byte) (int, error) {
	for i := 0; i < len(p); {
		n := copy(dig.buffer[dig.bufferCt:], p[i:])
		dig.bufferCt += n
		i += n

		if dig.bufferCt >= bufferLength {
			dig.flush()
		}
	}
	return len(p), nil
}

func (dig *Digest) flush() {
	dig.digest = sha1.Sum(dig.buffer)
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = bufferStart
}
