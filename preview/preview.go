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

package preview

import (
	"github.com/arl/blip"

	"github.com/jetsetilly/vgm2electron/logger"
	"github.com/jetsetilly/vgm2electron/ula"
	"github.com/jetsetilly/vgm2electron/vgm"
)

// SampleRate of the rendered audio.
const SampleRate = vgm.SampleRate

// the rate at which the square wave is clocked into the delta buffer
const clockRate = SampleRate * blip.MaxRatio

// the maximum number of samples read from the delta buffer at once. must be
// less than the size of the buffer
const chunkLen = 1024

// Volume of the square wave as a fraction of full scale.
const Volume = 0.5

// square wave output to a delta buffer.
type square struct {
	bl *blip.Buffer

	// half the period of the wave in clocks. zero if the wave is silent
	period int

	volume int
	phase  int
	time   int
	amp    int
}

func (w *square) setFrequency(freq float64) {
	if freq == 0 {
		w.period = 0
		return
	}
	w.period = int(clockRate/freq/2 + 0.5)
}

func (w *square) delta(amp int) {
	d := amp - w.amp
	if d != 0 {
		w.bl.AddDelta(uint64(w.time), int32(d))
		w.amp = amp
	}
}

func (w *square) run(clocks int) {
	if w.period == 0 {
		w.time = 0
		w.delta(0)
		return
	}

	for ; w.time < clocks; w.time += w.period {
		w.delta(w.phase * w.volume)
		w.phase = -w.phase
	}
	w.time -= clocks
}

// Render the ULA values as audio. There is one ULA value for each frame and
// frames are played at rate frames per second.
func Render(values []byte, rate int) []int16 {
	interval := vgm.SampleInterval(rate)
	out := make([]int16, len(values)*interval)

	bl := blip.NewBuffer(SampleRate / 10)
	bl.SetRates(clockRate, SampleRate)

	w := &square{
		bl:     bl,
		volume: int(Volume*65536/2 + 0.5),
		phase:  1,
	}

	n := 0
	for _, v := range values {
		if v == ula.NoTone {
			w.setFrequency(0)
		} else {
			w.setFrequency(ula.Frequency(v))
		}

		for remaining := interval; remaining > 0; {
			samples := min(remaining, chunkLen)
			clocks := bl.ClocksNeeded(samples)
			w.run(clocks)
			bl.EndFrame(clocks)
			bl.ReadSamples(out[n:], samples, blip.Mono)
			n += samples
			remaining -= samples
		}
	}

	logger.Logf(logger.Allow, "preview", "rendered %d frames as %d samples", len(values), len(out))

	return out
}
