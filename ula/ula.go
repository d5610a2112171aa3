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

package ula

import (
	"math"

	"github.com/jetsetilly/vgm2electron/logger"
	"github.com/jetsetilly/vgm2electron/registers"
)

// Clock is the frequency of the ULA sound counter.
const Clock = 1000000.0

// The range of values for the sound register.
const (
	MinDivisor = 0
	MaxDivisor = 255
)

// NoTone is the value written to the sound register for silence. It is the
// highest frequency the ULA can produce.
const NoTone = MinDivisor

// BaselineFrequency is the lowest frequency the ULA can produce.
const BaselineFrequency = Clock / (32.0 * (MaxDivisor + 1))

// Frequency returns the frequency in Hz produced by the sound register value.
func Frequency(divisor uint8) float64 {
	return Clock / (32.0 * (float64(divisor) + 1.0))
}

// Map returns the sound register value for an SN76489 tone divisor and
// volume. The chip is running at clock. The second return value is true if
// the result was clamped to the range of the sound register.
func Map(clock float64, tone int, volume uint8) (uint8, bool) {
	if volume != 0 {
		return NoTone, false
	}

	if tone == 0 {
		tone = 1
	}

	freq := registers.ToneFrequency(clock, tone)
	v := int(math.Round(Clock/(freq*32.0))) - 1

	if v < MinDivisor {
		logger.Logf(logger.Allow, "ula", "frequency too high (%.2fHz). clamped to %d", freq, MinDivisor)
		return MinDivisor, true
	}
	if v > MaxDivisor {
		logger.Logf(logger.Allow, "ula", "frequency too low (%.2fHz). clamped to %d", freq, MaxDivisor)
		return MaxDivisor, true
	}

	return uint8(v), false
}

// Divisor is the same as Map() but without the clamp indicator.
func Divisor(clock float64, tone int, volume uint8) uint8 {
	v, _ := Map(clock, tone, volume)
	return v
}
