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

package registers

import "math"

// ToneFrequency returns the frequency in Hz of the tone divisor for a chip
// running at clock. The divisor must not be zero.
func ToneFrequency(clock float64, divisor int) float64 {
	return clock / (2.0 * float64(divisor) * 16.0)
}

// ToneDivisor is the inverse of ToneFrequency(). Halfway values are rounded
// to the nearest even integer.
func ToneDivisor(clock float64, freq float64) int {
	return int(math.RoundToEven(clock / (2.0 * freq * 16.0)))
}
