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
	"testing"
	"time"

	"github.com/jetsetilly/vgm2electron/curated"
	"github.com/jetsetilly/vgm2electron/test"
)

func TestNewPlayer(t *testing.T) {
	p, err := NewPlayer("sdl")
	test.ExpectSuccess(t, err)
	_, ok := p.(*sdlPlayer)
	test.ExpectSuccess(t, ok)

	p, err = NewPlayer("OTO")
	test.ExpectSuccess(t, err)
	_, ok = p.(*otoPlayer)
	test.ExpectSuccess(t, ok)

	_, err = NewPlayer("alsa")
	test.ExpectSuccess(t, curated.Is(err, UnknownBackend))

	err = Play(context.Background(), "alsa", nil, 44100)
	test.ExpectSuccess(t, curated.Is(err, UnknownBackend))
}

func TestPCMBytes(t *testing.T) {
	test.ExpectBytes(t, pcmBytes([]int16{0, 1, -1, 0x1234}), []byte{
		0x00, 0x00, 0x01, 0x00, 0xff, 0xff, 0x34, 0x12,
	})
}

func TestWait(t *testing.T) {
	n := 0
	err := wait(context.Background(), func() bool {
		n++
		return n > 2
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 3)

	ctx, cancel := context.WithTimeout(context.Background(), pollInterval/2)
	defer cancel()

	start := time.Now()
	err = wait(ctx, func() bool { return false })
	test.ExpectEquality(t, err, context.DeadlineExceeded)
	test.ExpectSuccess(t, time.Since(start) < time.Second)
}
