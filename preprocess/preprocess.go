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

package preprocess

import (
	"math"

	"github.com/jetsetilly/vgm2electron/logger"
	"github.com/jetsetilly/vgm2electron/registers"
	"github.com/jetsetilly/vgm2electron/ula"
)

// ChannelConfig is the preprocessing configuration for a single tone channel.
type ChannelConfig struct {
	// a disabled channel is always silent
	Enabled bool

	// attenuation values below the threshold are full volume. values equal
	// to or above the threshold are silent. in the range 0 to 15
	Threshold uint8

	// number of octaves to shift the tone by. negative values lower the
	// pitch
	Transpose int
}

// Quantise the attenuation of each tone channel. The noise channel is
// quantised with the threshold of the first channel and is never disabled.
func Quantise(trk *registers.Track, frame int, channels [registers.NumToneChannels]ChannelConfig) {
	for c, cfg := range channels {
		quantise(&trk.Volume[c][frame], cfg.Threshold, cfg.Enabled)
	}
	quantise(&trk.Volume[registers.NoiseChannel][frame], channels[0].Threshold, true)
}

func quantise(v *uint8, threshold uint8, enabled bool) {
	if *v < threshold && enabled {
		*v = 0
	} else {
		*v = registers.Silent
	}
}

// Result of a call to Retune().
type Result int

// List of valid Result values.
const (
	// tone was unchanged
	Unchanged Result = iota

	// tone was shifted by the transpose value and is within range
	Transposed

	// tone was below the range of the ULA and has been brought up to the
	// lowest possible frequency
	Clamped

	// tone cannot be produced by the ULA and the channel has been silenced
	Silenced
)

// Retune shifts the tone of the channel by the number of octaves. The tone is
// then clamped to the lowest frequency the ULA can produce. A channel with a
// tone of zero is left alone.
//
// The tone is only rewritten if a shift or clamp occurred. The chip is running
// at clock.
func Retune(trk *registers.Track, frame int, channel int, clock float64, octaves int, perm logger.Permission) Result {
	tone := trk.Tone(channel, frame)
	if tone == 0 {
		return Unchanged
	}

	freq := registers.ToneFrequency(clock, tone)
	target := freq

	shifted := octaves != 0
	for i := 0; i < abs(octaves); i++ {
		if octaves < 0 {
			target /= 2.0
		} else {
			target *= 2.0
		}
	}

	result := Transposed
	if target < ula.BaselineFrequency {
		logger.Logf(logger.Allow, "retune", "frame %d: channel %d frequency too low (%.2fHz). clamped to %.2fHz",
			frame, channel, target, ula.BaselineFrequency)
		target = ula.BaselineFrequency
		shifted = true
		result = Clamped
	}

	if !shifted {
		return Unchanged
	}

	tone = registers.ToneDivisor(clock, target)
	trk.SetTone(channel, frame, tone)

	// the rounded divisor may land below the range of the ULA
	if reachable(clock, tone) {
		logger.Logf(perm, "retune", "frame %d: channel %d %.2fHz to %.2fHz (tone %d)", frame, channel, freq, target, tone)
		return result
	}

	logger.Logf(logger.Allow, "retune", "frame %d: channel %d silenced. tone %d out of range", frame, channel, tone)
	trk.Volume[channel][frame] = registers.Silent
	return Silenced
}

// reachable returns true if the ULA sound register can represent the tone
// without clamping at the low end.
func reachable(clock float64, tone int) bool {
	v := math.Round(ula.Clock/(registers.ToneFrequency(clock, tone)*32.0)) - 1
	return v <= ula.MaxDivisor
}

// Frame quantises and then retunes every tone channel in the frame.
func Frame(trk *registers.Track, frame int, clock float64, channels [registers.NumToneChannels]ChannelConfig, perm logger.Permission) {
	Quantise(trk, frame, channels)
	for c, cfg := range channels {
		Retune(trk, frame, c, clock, cfg.Transpose, perm)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
