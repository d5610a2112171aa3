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

package playback

import (
	"context"
	"encoding/binary"
	"strings"
	"time"

	"github.com/jetsetilly/vgm2electron/curated"
)

// List of valid backend names.
const (
	SDL = "SDL"
	Oto = "OTO"
)

// Backends lists the valid backend names. The first entry is the default.
var Backends = []string{SDL, Oto}

// Sentinel error patterns.
const (
	UnknownBackend = "playback: unknown backend (%s)"
	DeviceError    = "playback: %s: %v"
)

// how often a backend checks whether playback has finished
const pollInterval = 50 * time.Millisecond

// Player implementations play PCM audio.
type Player interface {
	// Play the mono samples at sampleRate. Blocks until playback has finished
	// or the context has been cancelled.
	Play(ctx context.Context, pcm []int16, sampleRate int) error
}

// NewPlayer is the preferred method of initialisation for the Player type.
// The backend name is not case sensitive.
func NewPlayer(backend string) (Player, error) {
	switch strings.ToUpper(backend) {
	case SDL:
		return &sdlPlayer{}, nil
	case Oto:
		return &otoPlayer{}, nil
	}
	return nil, curated.Errorf(UnknownBackend, backend)
}

// Play the samples with the named backend.
func Play(ctx context.Context, backend string, pcm []int16, sampleRate int) error {
	p, err := NewPlayer(backend)
	if err != nil {
		return err
	}
	return p.Play(ctx, pcm, sampleRate)
}

// pcmBytes returns the samples as little-endian bytes.
func pcmBytes(pcm []int16) []byte {
	b := make([]byte, 0, len(pcm)*2)
	for _, s := range pcm {
		b = binary.LittleEndian.AppendUint16(b, uint16(s))
	}
	return b
}

// wait until done returns true or the context is cancelled.
func wait(ctx context.Context, done func() bool) error {
	tck := time.NewTicker(pollInterval)
	defer tck.Stop()

	for !done() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tck.C:
		}
	}

	return nil
}
