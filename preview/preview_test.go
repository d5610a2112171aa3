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

package preview_test

import (
	"testing"

	"github.com/jetsetilly/vgm2electron/preview"
	"github.com/jetsetilly/vgm2electron/test"
	"github.com/jetsetilly/vgm2electron/ula"
	"github.com/jetsetilly/vgm2electron/vgm"
)

func TestSilence(t *testing.T) {
	pcm := preview.Render([]byte{ula.NoTone, ula.NoTone, ula.NoTone}, 50)
	test.ExpectEquality(t, len(pcm), 3*vgm.Interval50)
	for i, s := range pcm {
		if s != 0 {
			t.Fatalf("sample %d is not silent (%d)", i, s)
		}
	}
}

func TestLength(t *testing.T) {
	test.ExpectEquality(t, len(preview.Render(make([]byte, 10), 60)), 10*vgm.Interval60)
	test.ExpectEquality(t, len(preview.Render(nil, 50)), 0)
}

// count the number of times the signal changes sign
func crossings(pcm []int16) int {
	var n int
	for i := 1; i < len(pcm); i++ {
		if (pcm[i-1] < 0) != (pcm[i] < 0) {
			n++
		}
	}
	return n
}

func TestFrequency(t *testing.T) {
	// one second of a tone. 1MHz / (32 * 25) = 1250Hz
	tone := make([]byte, 50)
	for i := range tone {
		tone[i] = 24
	}

	pcm := preview.Render(tone, 50)
	test.ExpectEquality(t, len(pcm), preview.SampleRate)
	test.ExpectApproximate(t, crossings(pcm), 2500, 0.02)

	// an octave lower. 1MHz / (32 * 50) = 625Hz
	for i := range tone {
		tone[i] = 49
	}
	pcm = preview.Render(tone, 50)
	test.ExpectApproximate(t, crossings(pcm), 1250, 0.02)
}
