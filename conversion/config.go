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
	"strconv"
	"strings"

	"github.com/jetsetilly/vgm2electron/curated"
	"github.com/jetsetilly/vgm2electron/downmix"
	"github.com/jetsetilly/vgm2electron/preprocess"
	"github.com/jetsetilly/vgm2electron/registers"
)

// Sentinel error patterns.
const (
	InvalidConfig = "conversion: invalid config: %v"
)

// ChannelConfig is the configuration of a single tone channel.
type ChannelConfig = preprocess.ChannelConfig

// The range of transpose values that can be described on the command line.
const (
	MinTranspose = -8
	MaxTranspose = 7
)

// DefaultThreshold is the attenuation threshold of each channel in the
// default configuration.
const DefaultThreshold = 4

// Config describes a conversion. It is not changed by the conversion.
type Config struct {
	Channels [registers.NumToneChannels]ChannelConfig

	Technique downmix.MixTechnique

	// if Downmix is false then all tone channels are written to the VGM
	// output. the ULA output is always taken from channel zero
	Downmix bool

	// include the noise channel in the VGM output
	Noise bool

	// log the progress of every frame
	Verbose bool
}

// DefaultConfig is the preferred method of initialisation for the Config
// type.
func DefaultConfig() Config {
	cfg := Config{
		Technique: downmix.TechniqueRoundRobin,
		Downmix:   true,
	}
	for c := range cfg.Channels {
		cfg.Channels[c] = ChannelConfig{
			Enabled:   true,
			Threshold: DefaultThreshold,
		}
	}
	return cfg
}

// AllowLogging implements the logger.Permission interface.
func (cfg Config) AllowLogging() bool {
	return cfg.Verbose
}

// Validate returns an error if any configuration value is out of range.
func (cfg Config) Validate() error {
	for c, ch := range cfg.Channels {
		if ch.Threshold > registers.Silent {
			return curated.Errorf(InvalidConfig, fmt.Sprintf("channel %d threshold (%d) out of range", c+1, ch.Threshold))
		}
		if ch.Transpose < MinTranspose || ch.Transpose > MaxTranspose {
			return curated.Errorf(InvalidConfig, fmt.Sprintf("channel %d transpose (%d) out of range", c+1, ch.Transpose))
		}
	}

	if _, err := downmix.NewTechnique(cfg.Technique, true); err != nil {
		return curated.Errorf(InvalidConfig, err)
	}

	return nil
}

func (cfg Config) String() string {
	s := strings.Builder{}
	for c, ch := range cfg.Channels {
		s.WriteString(fmt.Sprintf("channel %d: enabled=%v threshold=%d transpose=%d\n",
			c+1, ch.Enabled, ch.Threshold, ch.Transpose))
	}
	s.WriteString(fmt.Sprintf("technique: %d (%s)", cfg.Technique, cfg.Technique))
	if !cfg.Downmix {
		s.WriteString(" not downmixing")
	}
	if cfg.Noise {
		s.WriteString(" with noise")
	}
	return s.String()
}

// the length of the per-channel strings
const numDigits = registers.NumToneChannels

// SetThresholds from a string of three hex digits, one for each channel. For
// example "444".
func (cfg *Config) SetThresholds(s string) error {
	if len(s) != numDigits {
		return curated.Errorf(InvalidConfig, fmt.Sprintf("attenuation must be %d hex digits (%s)", numDigits, s))
	}
	for c := range cfg.Channels {
		v, err := strconv.ParseUint(s[c:c+1], 16, 8)
		if err != nil {
			return curated.Errorf(InvalidConfig, fmt.Sprintf("attenuation must be %d hex digits (%s)", numDigits, s))
		}
		cfg.Channels[c].Threshold = uint8(v)
	}
	return nil
}

// Thresholds returns the string form of the channel thresholds. The inverse
// of SetThresholds().
func (cfg Config) Thresholds() string {
	s := strings.Builder{}
	for _, ch := range cfg.Channels {
		s.WriteString(fmt.Sprintf("%x", ch.Threshold))
	}
	return s.String()
}

// SetTranspose from a string of three hex digits, one for each channel. The
// values 0 to 7 are positive and the values 8 to f are -8 to -1. For example
// "01f" leaves channel 1 alone, transposes channel 2 up an octave and
// transposes channel 3 down an octave.
func (cfg *Config) SetTranspose(s string) error {
	if len(s) != numDigits {
		return curated.Errorf(InvalidConfig, fmt.Sprintf("transpose must be %d hex digits (%s)", numDigits, s))
	}
	for c := range cfg.Channels {
		v, err := strconv.ParseUint(s[c:c+1], 16, 8)
		if err != nil {
			return curated.Errorf(InvalidConfig, fmt.Sprintf("transpose must be %d hex digits (%s)", numDigits, s))
		}
		t := int(v)
		if t > MaxTranspose {
			t -= 16
		}
		cfg.Channels[c].Transpose = t
	}
	return nil
}

// Transpose returns the string form of the channel transpose values. The
// inverse of SetTranspose().
func (cfg Config) Transpose() string {
	s := strings.Builder{}
	for _, ch := range cfg.Channels {
		s.WriteString(fmt.Sprintf("%x", ch.Transpose&0x0f))
	}
	return s.String()
}

// SetChannels from a string listing the enabled channels. For example "13"
// enables channels 1 and 3.
func (cfg *Config) SetChannels(s string) error {
	for _, r := range s {
		if r < '1' || r > '0'+numDigits {
			return curated.Errorf(InvalidConfig, fmt.Sprintf("unknown channel in channel list (%s)", s))
		}
	}
	for c := range cfg.Channels {
		cfg.Channels[c].Enabled = strings.ContainsRune(s, rune('1'+c))
	}
	return nil
}

// EnabledChannels returns the string form of the enabled channels. The
// inverse of SetChannels().
func (cfg Config) EnabledChannels() string {
	s := strings.Builder{}
	for c, ch := range cfg.Channels {
		if ch.Enabled {
			s.WriteRune(rune('1' + c))
		}
	}
	return s.String()
}
