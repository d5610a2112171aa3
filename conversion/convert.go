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

package conversion

import (
	"fmt"

	"github.com/jetsetilly/vgm2electron/curated"
	"github.com/jetsetilly/vgm2electron/digest"
	"github.com/jetsetilly/vgm2electron/downmix"
	"github.com/jetsetilly/vgm2electron/encoder"
	"github.com/jetsetilly/vgm2electron/logger"
	"github.com/jetsetilly/vgm2electron/preprocess"
	"github.com/jetsetilly/vgm2electron/registers"
	"github.com/jetsetilly/vgm2electron/ula"
	"github.com/jetsetilly/vgm2electron/vgm"
)

// Stats is a summary of the conversion.
type Stats struct {
	Frames int

	// frames in which the ULA is silent
	Silent int

	// frames in which the ULA value was clamped
	Clamped int

	// the number of frames each channel was selected by the downmix
	Selected [registers.NumToneChannels]int
}

func (st Stats) String() string {
	return fmt.Sprintf("%d frames (%d silent, %d clamped). selected: ch1=%d ch2=%d ch3=%d",
		st.Frames, st.Silent, st.Clamped, st.Selected[0], st.Selected[1], st.Selected[2])
}

// Result of a conversion.
type Result struct {
	// one ULA sound register value per frame
	ULA []byte

	Commands encoder.Result

	// the register track after processing
	Track *registers.Track

	// playback rate in frames per second
	Rate int

	// frame and sample count of the loop. LoopFrame is -1 if the music does
	// not loop
	LoopFrame   int
	LoopSamples int

	Stats Stats
}

// Output returns the information required by vgm.Write().
func (res *Result) Output(compress bool) vgm.Output {
	out := vgm.Output{
		Commands:     res.Commands.Commands,
		TotalSamples: res.Commands.Samples,
		LoopOffset:   -1,
		Compress:     compress,
	}
	if res.LoopFrame >= 0 {
		out.LoopOffset = res.Commands.FrameOffsets[res.LoopFrame]
		out.LoopSamples = res.LoopSamples
	}
	return out
}

// Digest returns a value that identifies the ULA data and the VGM commands
// of the conversion.
func (res *Result) Digest() string {
	dig := digest.New()
	dig.Write(res.ULA)
	dig.Write(res.Commands.Commands)
	return dig.String()
}

// Filter returns the registers to be written to the VGM output.
func (cfg Config) Filter() encoder.Filter {
	var f encoder.Filter
	if cfg.Downmix {
		f = append(f, encoder.DownmixFilter...)
		if cfg.Noise {
			f = append(f, registers.NoiseTone, registers.Volume3)
		}
		return f
	}

	if cfg.Noise {
		return append(f, encoder.PassthroughWithNoise...)
	}
	return append(f, encoder.PassthroughFilter...)
}

// Convert the SN76489 music in the VGM stream.
func Convert(src *vgm.Stream, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	trk, err := registers.Demux(src.Packets(), true)
	if err != nil {
		return nil, curated.Errorf("conversion: %v", err)
	}

	tech, err := downmix.NewTechnique(cfg.Technique, cfg.Channels[2].Enabled)
	if err != nil {
		return nil, curated.Errorf("conversion: %v", err)
	}

	clock := float64(src.Clock)

	res := &Result{
		ULA:       make([]byte, 0, trk.Frames()),
		Track:     trk,
		Rate:      src.Rate,
		LoopFrame: -1,
	}
	res.Stats.Frames = trk.Frames()

	for i := 0; i < trk.Frames(); i++ {
		preprocess.Frame(trk, i, clock, cfg.Channels, cfg)

		if cfg.Downmix {
			c := downmix.Frame(trk, i, tech)
			if c == downmix.NoChannel {
				logger.Logf(cfg, "downmix", "frame %d: silent", i)
			} else {
				logger.Logf(cfg, "downmix", "frame %d: channel %d", i, c+1)
				res.Stats.Selected[c]++
			}
		}

		if !trk.Active(0, i) {
			res.Stats.Silent++
		}

		v, clamped := ula.Map(clock, trk.Tone(0, i), trk.Volume[0][i])
		if clamped {
			res.Stats.Clamped++
		}
		res.ULA = append(res.ULA, v)
	}

	res.Commands = encoder.Encode(trk, src.Rate, cfg.Filter())

	if f, ok := src.LoopFrame(); ok && f < trk.Frames() {
		res.LoopFrame = f
		res.LoopSamples = (trk.Frames() - f) * encoder.SampleInterval(src.Rate)
	}

	return res, nil
}
