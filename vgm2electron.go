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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"golang.org/x/term"

	"github.com/jetsetilly/vgm2electron/conversion"
	"github.com/jetsetilly/vgm2electron/downmix"
	"github.com/jetsetilly/vgm2electron/logger"
	"github.com/jetsetilly/vgm2electron/modalflag"
	"github.com/jetsetilly/vgm2electron/paths"
	"github.com/jetsetilly/vgm2electron/performance"
	"github.com/jetsetilly/vgm2electron/playback"
	"github.com/jetsetilly/vgm2electron/prefs"
	"github.com/jetsetilly/vgm2electron/preview"
	"github.com/jetsetilly/vgm2electron/statsview"
	"github.com/jetsetilly/vgm2electron/version"
	"github.com/jetsetilly/vgm2electron/vgm"
	"github.com/jetsetilly/vgm2electron/wavwriter"
)

// exit values
const (
	exitArguments = 10
	exitMode      = 20
)

// filenames used by the -profile flag
const (
	cpuProfile = "vgm2electron.cpu.profile"
	memProfile = "vgm2electron.mem.profile"
)

func main() {
	// #ctrlc cancels the context. playback stops at the next opportunity
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(exitVal)
}

// launch is separated from main() for testing. returns the exit value.
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("CONVERT", "PLAY", "INFO")
	showVersion := md.AddBool("version", false, "print version information")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArguments
	}

	if *showVersion {
		fmt.Fprintln(output, version.Banner())
		return 0
	}

	switch md.Mode() {
	case "CONVERT":
		err = convert(ctx, md)

	case "PLAY":
		err = play(ctx, md)

	case "INFO":
		err = info(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitMode
	}

	return 0
}

// flags common to the CONVERT and PLAY modes.
type conversionFlags struct {
	attenuation *string
	transpose   *string
	channels    *string
	technique   *int
	noDownmix   *bool
	noise       *bool
	verbose     *bool
	log         *bool
	saveprefs   *bool
	prefs       *string
}

func addConversionFlags(md *modalflag.Modes) *conversionFlags {
	def := conversion.DefaultConfig()

	return &conversionFlags{
		attenuation: md.AddString("a", def.Thresholds(), "attenuation threshold for each channel (hex digits)"),
		transpose:   md.AddString("t", def.Transpose(), "octave transpose for each channel (hex digits, 8-f are negative)"),
		channels:    md.AddString("c", def.EnabledChannels(), "enabled channels"),
		technique:   md.AddInt("q", int(def.Technique), "downmix technique: 1 (priority), 2 (round robin)"),
		noDownmix:   md.AddBool("nodownmix", false, "write all tone channels to the VGM file"),
		noise:       md.AddBool("noise", false, "include the noise channel in the VGM file"),
		verbose:     md.AddBool("v", false, "log the processing of every frame"),
		log:         md.AddBool("log", false, "echo log to stdout"),
		saveprefs:   md.AddBool("saveprefs", false, "save conversion settings as the new defaults"),
		prefs:       md.AddString("prefs", "", "preferences to apply for this run only (key::value; key::value)"),
	}
}

// config returns the conversion configuration. values are taken from the
// preferences file unless a flag has been explicitly provided.
func (cf *conversionFlags) config(md *modalflag.Modes) (conversion.Config, error) {
	if *cf.prefs != "" {
		prefs.PushCommandLineStack(*cf.prefs)
		defer prefs.PopCommandLineStack()
	}

	pref, err := conversion.NewPreferences()
	if err != nil {
		return conversion.Config{}, err
	}

	cfg, err := pref.Config()
	if err != nil {
		return cfg, err
	}

	if md.Provided("a") {
		if err := cfg.SetThresholds(*cf.attenuation); err != nil {
			return cfg, err
		}
	}
	if md.Provided("t") {
		if err := cfg.SetTranspose(*cf.transpose); err != nil {
			return cfg, err
		}
	}
	if md.Provided("c") {
		if err := cfg.SetChannels(*cf.channels); err != nil {
			return cfg, err
		}
	}
	if md.Provided("q") {
		cfg.Technique = downmix.MixTechnique(*cf.technique)
	}
	if md.Provided("nodownmix") {
		cfg.Downmix = !*cf.noDownmix
	}
	if md.Provided("noise") {
		cfg.Noise = *cf.noise
	}
	cfg.Verbose = *cf.verbose

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	if *cf.saveprefs {
		pref.SetConfig(cfg)
		if err := pref.Save(); err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}

// setEcho of the central logger. the log is colourised if output is a
// terminal.
func setEcho(echo bool, output io.Writer) {
	if !echo {
		logger.SetEcho(nil)
		return
	}

	if f, ok := output.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		logger.SetEcho(logger.NewColorizer(output))
		return
	}

	logger.SetEcho(output)
}

// loadInput reads the single VGM file named in the remaining arguments.
func loadInput(md *modalflag.Modes) (string, *vgm.Stream, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", nil, fmt.Errorf("VGM file required for %s mode", md)
	case 1:
	default:
		return "", nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	input, err := paths.Expand(md.GetArg(0))
	if err != nil {
		return "", nil, err
	}

	src, err := vgm.ReadFile(input)
	if err != nil {
		return "", nil, err
	}

	return input, src, nil
}

func convert(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("The ULA data is written alongside the output file with the extension .ula.bin")

	cf := addConversionFlags(md)
	output := md.AddString("o", "", "output file (default: input with the extension .electron.vgm)")
	wav := md.AddString("wav", "", "write a preview of the ULA output to a WAV file")
	profile := md.AddBool("profile", false, "produce cpu and memory profiling reports")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(*cf.log, md.Output)

	input, src, err := loadInput(md)
	if err != nil {
		return err
	}

	cfg, err := cf.config(md)
	if err != nil {
		return err
	}

	dst := conversion.DefaultOutput(input)
	if *output != "" {
		dst, err = paths.Expand(*output)
		if err != nil {
			return err
		}
	}

	var res *conversion.Result

	run := func() error {
		var err error
		res, err = conversion.Convert(src, cfg)
		if err != nil {
			return err
		}

		// no files are written if the conversion was interrupted
		if err := ctx.Err(); err != nil {
			return err
		}

		return conversion.WriteFiles(src, res, dst)
	}

	if *profile {
		err = performance.ProfileCPU(cpuProfile, run)
		if err != nil {
			return err
		}
		err = performance.ProfileMem(memProfile)
	} else {
		err = run()
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%s -> %s\n", input, dst)
	fmt.Fprintf(md.Output, "%s\n", res.Stats)
	fmt.Fprintf(md.Output, "digest: %s\n", res.Digest())

	if *wav != "" {
		fn, err := paths.Expand(*wav)
		if err != nil {
			return err
		}

		aw, err := wavwriter.New(fn, preview.SampleRate)
		if err != nil {
			return err
		}

		err = aw.SetAudio(preview.Render(res.ULA, res.Rate))
		if err != nil {
			return err
		}

		err = aw.EndMixing()
		if err != nil {
			return err
		}

		fmt.Fprintf(md.Output, "preview -> %s\n", fn)
	}

	return nil
}

func play(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	cf := addConversionFlags(md)
	backend := md.AddString("backend", playback.Backends[0], fmt.Sprintf("audio backend: %v", playback.Backends))
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(*cf.log, md.Output)

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			fmt.Fprintln(md.Output, "! stats server not available in this build")
		}
	}

	input, src, err := loadInput(md)
	if err != nil {
		return err
	}

	cfg, err := cf.config(md)
	if err != nil {
		return err
	}

	res, err := conversion.Convert(src, cfg)
	if err != nil {
		return err
	}

	pcm := preview.Render(res.ULA, res.Rate)
	duration := time.Duration(len(pcm)) * time.Second / preview.SampleRate

	fmt.Fprintf(md.Output, "playing %s (%s)\n", input, duration.Round(time.Second))

	err = playback.Play(ctx, *backend, pcm, preview.SampleRate)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func info(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	input, src, err := loadInput(md)
	if err != nil {
		return err
	}

	w := md.Output
	interval := vgm.SampleInterval(src.Rate)
	duration := time.Duration(src.TotalSamples) * time.Second / vgm.SampleRate

	fmt.Fprintf(w, "file: %s\n", input)
	fmt.Fprintf(w, "version: %x.%02x\n", src.Version>>8, src.Version&0xff)
	fmt.Fprintf(w, "clock: %dHz\n", src.Clock)
	fmt.Fprintf(w, "rate: %dHz (%d samples per frame)\n", src.Rate, interval)
	fmt.Fprintf(w, "frames: %d (%s)\n", src.Frames(), duration.Round(time.Millisecond))
	fmt.Fprintf(w, "writes: %d\n", src.Writes())
	if f, ok := src.LoopFrame(); ok {
		fmt.Fprintf(w, "loop: frame %d (%d samples)\n", f, src.LoopSamples)
	} else {
		fmt.Fprintln(w, "loop: none")
	}
	fmt.Fprint(w, src.Metadata.String())

	return nil
}
