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

package downmix

import (
	"github.com/jetsetilly/vgm2electron/curated"
	"github.com/jetsetilly/vgm2electron/registers"
)

// MixTechnique identifies a downmix technique.
type MixTechnique int

// List of valid MixTechnique values. The values are those used on the command
// line.
const (
	TechniquePriority   MixTechnique = 1
	TechniqueRoundRobin MixTechnique = 2
)

func (id MixTechnique) String() string {
	switch id {
	case TechniquePriority:
		return "priority"
	case TechniqueRoundRobin:
		return "round robin"
	}
	return "unknown"
}

// Sentinel error patterns.
const (
	UnknownTechnique = "downmix: unknown technique (%d)"
)

// NoChannel is returned by Frame() when no channel is active.
const NoChannel = -1

// Technique implementations select the surviving channel of a frame.
type Technique interface {
	// Select returns the channel to output for the frame. Select is only
	// called when at least one channel is active. Channel zero is returned
	// if no other channel should replace it, even if channel zero is silent.
	Select(trk *registers.Track, frame int) int
}

// NewTechnique is the preferred method of initialisation for the Technique
// type. The channel3 argument should be true if the third tone channel is
// enabled.
func NewTechnique(id MixTechnique, channel3 bool) (Technique, error) {
	switch id {
	case TechniquePriority:
		return Priority{Channel3: channel3}, nil
	case TechniqueRoundRobin:
		return RoundRobin{}, nil
	}
	return nil, curated.Errorf(UnknownTechnique, int(id))
}

// Frame selects the surviving channel for the frame and copies its tone and
// volume into channel zero. Returns the surviving channel or NoChannel if no
// channel is active, in which case the frame is not changed.
func Frame(trk *registers.Track, frame int, tech Technique) int {
	var active bool
	for c := 0; c < registers.NumToneChannels; c++ {
		active = active || trk.Active(c, frame)
	}
	if !active {
		return NoChannel
	}

	c := tech.Select(trk, frame)
	if c != 0 {
		trk.ToneLo[0][frame] = trk.ToneLo[c][frame]
		trk.ToneHi[0][frame] = trk.ToneHi[c][frame]
		trk.Volume[0][frame] = trk.Volume[c][frame]
	}

	return c
}
