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
	"bytes"
	"context"

	"github.com/ebitengine/oto/v3"

	"github.com/jetsetilly/vgm2electron/curated"
	"github.com/jetsetilly/vgm2electron/logger"
)

// otoPlayer implements the Player interface with Oto. Only one Oto context
// can exist in a process so a second call to Play() with a different sample
// rate will fail.
type otoPlayer struct{}

// Play implements the Player interface.
func (*otoPlayer) Play(ctx context.Context, pcm []int16, sampleRate int) error {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	}

	octx, ready, err := oto.NewContext(op)
	if err != nil {
		return curated.Errorf(DeviceError, Oto, err)
	}
	<-ready

	logger.Logf(logger.Allow, "playback", "Oto context ready at %dHz", sampleRate)

	player := octx.NewPlayer(bytes.NewReader(pcmBytes(pcm)))
	defer player.Close()

	player.Play()

	err = wait(ctx, func() bool {
		return !player.IsPlaying()
	})
	if err != nil {
		player.Pause()
		return err
	}

	if err := player.Err(); err != nil {
		return curated.Errorf(DeviceError, Oto, err)
	}

	return nil
}
