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

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/vgm2electron/curated"
	"github.com/jetsetilly/vgm2electron/logger"
)

// number of samples in the SDL audio buffer. the precise value is not
// critical because all audio is queued at once
const bufferLength = 2048

// sdlPlayer implements the Player interface with SDL.
type sdlPlayer struct{}

// Play implements the Player interface.
func (*sdlPlayer) Play(ctx context.Context, pcm []int16, sampleRate int) error {
	if err := sdl.Init(sdl.INIT_AUDIO); err != nil {
		return curated.Errorf(DeviceError, SDL, err)
	}
	defer sdl.Quit()

	spec := &sdl.AudioSpec{
		Freq:     int32(sampleRate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  bufferLength,
	}

	var actualSpec sdl.AudioSpec

	id, err := sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return curated.Errorf(DeviceError, SDL, err)
	}
	defer sdl.CloseAudioDevice(id)

	logger.Logf(logger.Allow, "playback", "SDL audio device opened at %dHz", actualSpec.Freq)

	if err := sdl.QueueAudio(id, pcmBytes(pcm)); err != nil {
		return curated.Errorf(DeviceError, SDL, err)
	}

	sdl.PauseAudioDevice(id, false)

	err = wait(ctx, func() bool {
		return sdl.GetQueuedAudioSize(id) == 0
	})
	if err != nil {
		sdl.ClearQueuedAudio(id)
	}

	return err
}
