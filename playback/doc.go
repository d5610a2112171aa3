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

// Package playback plays PCM audio through the sound device. There are two
// backends: SDL, via "github.com/veandco/go-sdl2", and Oto, via
// "github.com/ebitengine/oto/v3".
//
// Audio is always mono, signed 16 bit. Play() blocks until the audio has
// finished or until the context is cancelled.
package playback
