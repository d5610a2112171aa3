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

package conversion_test

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/vgm2electron/conversion"
	"github.com/jetsetilly/vgm2electron/curated"
	"github.com/jetsetilly/vgm2electron/downmix"
	"github.com/jetsetilly/vgm2electron/encoder"
	"github.com/jetsetilly/vgm2electron/registers"
	"github.com/jetsetilly/vgm2electron/test"
	"github.com/jetsetilly/vgm2electron/vgm"
)

const clock = 4000000

// frame is the list of SN76489 writes for a single frame.
type frame []byte

// buildStream creates a VGM stream with a frame rate of 50Hz.
func buildStream(t *testing.T, frames []frame, loopFrame int) *vgm.Stream {
	t.Helper()

	var cmds []byte
	var loop int
	for i, f := range frames {
		if i == loopFrame {
			loop = 0x40 + len(cmds)
		}
		for _, w := range f {
			cmds = append(cmds, vgm.CmdWrite, w)
		}
		cmds = append(cmds, vgm.CmdWait50)
	}
	cmds = append(cmds, vgm.CmdEndOfData)

	header := make([]byte, 0x40)
	copy(header, "Vgm ")
	binary.LittleEndian.PutUint32(header[0x04:], uint32(0x40+len(cmds)-4))
	binary.LittleEndian.PutUint32(header[0x08:], 0x150)
	binary.LittleEndian.PutUint32(header[0x0c:], clock)
	binary.LittleEndian.PutUint32(header[0x18:], uint32(len(frames)*vgm.Interval50))
	if loop > 0 {
		binary.LittleEndian.PutUint32(header[0x1c:], uint32(loop-0x1c))
		binary.LittleEndian.PutUint32(header[0x20:], uint32((len(frames)-loopFrame)*vgm.Interval50))
	}
	binary.LittleEndian.PutUint32(header[0x24:], 50)
	binary.LittleEndian.PutUint32(header[0x34:], 0x0c)

	stm, err := vgm.Read(bytes.NewReader(append(header, cmds...)))
	test.DemandSuccess(t, err)

	return stm
}

// tone returns the latch and data bytes to set the tone of a channel.
func tone(channel int, divisor int) []byte {
	return []byte{0x80 | byte(channel<<5) | byte(divisor&0x0f), byte(divisor >> 4)}
}

// volume returns the latch byte to set the attenuation of a channel.
func volume(channel int, attenuation uint8) byte {
	return 0x90 | byte(channel<<5) | attenuation
}

func join(b ...[]byte) frame {
	var f frame
	for _, v := range b {
		f = append(f, v...)
	}
	return f
}

func TestEndToEnd(t *testing.T) {
	// channel 1 plays divisor 100 at full volume. channels 2 and 3 are silent
	stm := buildStream(t, []frame{
		join(tone(0, 100), []byte{volume(0, 0), volume(1, 15), volume(2, 15)}),
		{},
	}, -1)

	res, err := conversion.Convert(stm, conversion.DefaultConfig())
	test.DemandSuccess(t, err)

	// 4MHz / (32 * 100) = 1250Hz. 1MHz / (1250 * 32) - 1 = 24
	test.ExpectBytes(t, res.ULA, []byte{24, 24})

	test.ExpectBytes(t, res.Commands.Commands, []byte{
		0x50, 0x84, 0x50, 0x06, 0x50, 0x90, 0x63,
		0x50, 0x84, 0x50, 0x06, 0x50, 0x90, 0x63,
		0x66,
	})

	test.ExpectEquality(t, res.Stats.Frames, 2)
	test.ExpectEquality(t, res.Stats.Silent, 0)
	test.ExpectEquality(t, res.Stats.Selected[0], 2)
	test.ExpectEquality(t, res.LoopFrame, -1)
}

func TestSilence(t *testing.T) {
	stm := buildStream(t, []frame{
		join(tone(0, 100), []byte{volume(0, 10), volume(1, 15), volume(2, 15)}),
	}, -1)

	res, err := conversion.Convert(stm, conversion.DefaultConfig())
	test.DemandSuccess(t, err)
	test.ExpectBytes(t, res.ULA, []byte{0})
	test.ExpectEquality(t, res.Stats.Silent, 1)
}

func TestDuplicateTone(t *testing.T) {
	// channels 1 and 2 play the same tone. channel 2 is never selected
	var frames []frame
	for i := 0; i < 8; i++ {
		frames = append(frames, join(tone(0, 200), tone(1, 200), tone(2, 300),
			[]byte{volume(0, 0), volume(1, 0), volume(2, 0)}))
	}
	stm := buildStream(t, frames, -1)

	res, err := conversion.Convert(stm, conversion.DefaultConfig())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.Stats.Selected[0], 4)
	test.ExpectEquality(t, res.Stats.Selected[1], 0)
	test.ExpectEquality(t, res.Stats.Selected[2], 4)
}

func TestDisabledChannel(t *testing.T) {
	stm := buildStream(t, []frame{
		join(tone(0, 100), tone(1, 200), []byte{volume(0, 0), volume(1, 0), volume(2, 15)}),
		{},
	}, -1)

	cfg := conversion.DefaultConfig()
	test.DemandSuccess(t, cfg.SetChannels("23"))

	res, err := conversion.Convert(stm, cfg)
	test.DemandSuccess(t, err)

	// 4MHz / (32 * 200) = 625Hz. 1MHz / (625 * 32) - 1 = 49
	test.ExpectBytes(t, res.ULA, []byte{49, 49})
	test.ExpectEquality(t, res.Stats.Selected[1], 2)
}

func TestPassthrough(t *testing.T) {
	stm := buildStream(t, []frame{
		join(tone(0, 100), tone(1, 200), []byte{volume(0, 0), volume(1, 0), volume(2, 15)}),
	}, -1)

	cfg := conversion.DefaultConfig()
	cfg.Downmix = false

	res, err := conversion.Convert(stm, cfg)
	test.DemandSuccess(t, err)

	// ULA is always taken from channel 1
	test.ExpectBytes(t, res.ULA, []byte{24})

	test.ExpectBytes(t, res.Commands.Commands, []byte{
		0x50, 0x84, 0x50, 0x06,
		0x50, 0xa8, 0x50, 0x0c,
		0x50, 0xc0, 0x50, 0x00,
		0x50, 0x90, 0x50, 0xb0, 0x50, 0xdf,
		0x63, 0x66,
	})
}

func TestNoise(t *testing.T) {
	stm := buildStream(t, []frame{
		join(tone(0, 100), []byte{volume(0, 0), volume(1, 15), volume(2, 15), 0xe4, volume(3, 0)}),
		{},
	}, -1)

	cfg := conversion.DefaultConfig()
	cfg.Noise = true

	res, err := conversion.Convert(stm, cfg)
	test.DemandSuccess(t, err)

	// noise register is only written once
	test.ExpectBytes(t, res.Commands.Commands, []byte{
		0x50, 0x84, 0x50, 0x06, 0x50, 0xe4, 0x50, 0x90, 0x50, 0xf0, 0x63,
		0x50, 0x84, 0x50, 0x06, 0x50, 0x90, 0x50, 0xf0, 0x63,
		0x66,
	})
}

func TestNoiseVolume(t *testing.T) {
	stm := buildStream(t, []frame{
		join(tone(0, 100), []byte{volume(0, 0), volume(1, 15), volume(2, 15), 0xe4, volume(3, 6)}),
	}, -1)

	cfg := conversion.DefaultConfig()
	cfg.Noise = true

	res, err := conversion.Convert(stm, cfg)
	test.DemandSuccess(t, err)

	// attenuation of 6 is above the threshold of the first channel
	test.ExpectBytes(t, res.Commands.Commands, []byte{
		0x50, 0x84, 0x50, 0x06, 0x50, 0xe4, 0x50, 0x90, 0x50, 0xff, 0x63,
		0x66,
	})
}

func TestFilter(t *testing.T) {
	cfg := conversion.DefaultConfig()
	test.ExpectEquality(t, len(cfg.Filter()), len(encoder.DownmixFilter))

	cfg.Noise = true
	test.ExpectSuccess(t, cfg.Filter().Contains(registers.NoiseTone))
	test.ExpectSuccess(t, cfg.Filter().Contains(registers.Volume3))
	test.ExpectFailure(t, cfg.Filter().Contains(registers.Tone1Lo))

	cfg.Downmix = false
	test.ExpectEquality(t, len(cfg.Filter()), len(encoder.PassthroughWithNoise))

	cfg.Noise = false
	test.ExpectEquality(t, len(cfg.Filter()), len(encoder.PassthroughFilter))
}

func TestLoop(t *testing.T) {
	stm := buildStream(t, []frame{
		join(tone(0, 100), []byte{volume(0, 0), volume(1, 15), volume(2, 15)}),
		join(tone(0, 200)),
		{},
	}, 1)

	res, err := conversion.Convert(stm, conversion.DefaultConfig())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.LoopFrame, 1)
	test.ExpectEquality(t, res.LoopSamples, 2*vgm.Interval50)

	out := res.Output(false)
	test.ExpectEquality(t, out.LoopOffset, res.Commands.FrameOffsets[1])
	test.ExpectEquality(t, out.LoopSamples, 2*vgm.Interval50)
}

// a longer piece of music with all channels changing
func music(t *testing.T) *vgm.Stream {
	t.Helper()

	var frames []frame
	for i := 0; i < 64; i++ {
		frames = append(frames, join(
			tone(0, 100+i*7), tone(1, 100+(i*13)%200), tone(2, 400+(i*3)%100),
			[]byte{volume(0, byte(i%5)), volume(1, byte(i%3)*3), volume(2, byte(i%7))},
		))
	}
	return buildStream(t, frames, 16)
}

func TestDeterminism(t *testing.T) {
	for _, technique := range []downmix.MixTechnique{downmix.TechniquePriority, downmix.TechniqueRoundRobin} {
		cfg := conversion.DefaultConfig()
		cfg.Technique = technique
		test.DemandSuccess(t, cfg.SetTranspose("01f"))

		a, err := conversion.Convert(music(t), cfg)
		test.DemandSuccess(t, err)
		b, err := conversion.Convert(music(t), cfg)
		test.DemandSuccess(t, err)

		test.ExpectBytes(t, a.ULA, b.ULA, technique)
		test.ExpectBytes(t, a.Commands.Commands, b.Commands.Commands, technique)
		test.ExpectEquality(t, a.Stats, b.Stats, technique)
		test.ExpectEquality(t, a.Digest(), b.Digest(), technique)
	}
}

func TestInvalidConfig(t *testing.T) {
	cfg := conversion.DefaultConfig()
	cfg.Technique = 3

	_, err := conversion.Convert(music(t), cfg)
	test.ExpectSuccess(t, curated.Is(err, conversion.InvalidConfig))
}

func TestWriteFiles(t *testing.T) {
	stm := music(t)
	res, err := conversion.Convert(stm, conversion.DefaultConfig())
	test.DemandSuccess(t, err)

	dir := t.TempDir()
	for _, fn := range []string{"tune.electron.vgm", "tune.electron.vgz"} {
		dst := filepath.Join(dir, fn)
		test.DemandSuccess(t, conversion.WriteFiles(stm, res, dst), fn)

		out, err := vgm.ReadFile(dst)
		test.DemandSuccess(t, err, fn)
		test.ExpectEquality(t, out.Clock, uint32(clock), fn)
		test.ExpectEquality(t, out.Rate, 50, fn)
		test.ExpectEquality(t, out.TotalSamples, res.Commands.Samples, fn)

		frame, ok := out.LoopFrame()
		test.ExpectSuccess(t, ok, fn)
		test.ExpectEquality(t, frame, 16, fn)

		ula, err := os.ReadFile(conversion.SidecarPath(dst))
		test.DemandSuccess(t, err, fn)
		test.ExpectBytes(t, ula, res.ULA, fn)
	}

	// no temporary files have been left behind
	entries, err := os.ReadDir(dir)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(entries), 4)
}

func TestWriteFilesFailure(t *testing.T) {
	stm := music(t)
	res, err := conversion.Convert(stm, conversion.DefaultConfig())
	test.DemandSuccess(t, err)

	dst := filepath.Join(t.TempDir(), "missing", "tune.electron.vgm")
	err = conversion.WriteFiles(stm, res, dst)
	test.ExpectSuccess(t, curated.Is(err, conversion.WriteError))

	_, err = os.Stat(dst)
	test.ExpectFailure(t, err == nil)
}

func TestOutputNames(t *testing.T) {
	test.ExpectEquality(t, conversion.DefaultOutput("music/tune.vgm"), "music/tune.electron.vgm")
	test.ExpectEquality(t, conversion.DefaultOutput("tune"), "tune.electron.vgm")
	test.ExpectEquality(t, conversion.SidecarPath("tune.electron.vgm"), "tune.electron.vgm.ula.bin")
}
