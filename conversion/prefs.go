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
	"github.com/jetsetilly/vgm2electron/downmix"
	"github.com/jetsetilly/vgm2electron/paths"
	"github.com/jetsetilly/vgm2electron/prefs"
)

// the name of the preferences file in the resource directory
const prefsFile = "preferences"

// Preferences are the conversion settings that persist between runs of the
// program. The values are stored in the same string forms used on the command
// line.
type Preferences struct {
	dsk *prefs.Disk

	Attenuation prefs.String
	Transpose   prefs.String
	Channels    prefs.String
	Technique   prefs.Int
	Downmix     prefs.Bool
	Noise       prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file in the
// resource directory if it exists.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	// each string is checked by the same Config method that reads it
	p.Attenuation.SetHookPre(func(v prefs.Value) error {
		cfg := DefaultConfig()
		return cfg.SetThresholds(v.(string))
	})
	p.Transpose.SetHookPre(func(v prefs.Value) error {
		cfg := DefaultConfig()
		return cfg.SetTranspose(v.(string))
	})
	p.Channels.SetHookPre(func(v prefs.Value) error {
		cfg := DefaultConfig()
		return cfg.SetChannels(v.(string))
	})

	p.Technique.SetHookPre(func(v prefs.Value) error {
		_, err := downmix.NewTechnique(downmix.MixTechnique(v.(int)), true)
		return err
	})

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Add("conversion.attenuation", &p.Attenuation); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("conversion.transpose", &p.Transpose); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("conversion.channels", &p.Channels); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("conversion.technique", &p.Technique); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("conversion.downmix", &p.Downmix); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("conversion.noise", &p.Noise); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(false); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults sets the values of DefaultConfig().
func (p *Preferences) SetDefaults() {
	p.SetConfig(DefaultConfig())
}

// SetConfig sets the preference values from the Config.
func (p *Preferences) SetConfig(cfg Config) {
	p.Attenuation.Set(cfg.Thresholds())
	p.Transpose.Set(cfg.Transpose())
	p.Channels.Set(cfg.EnabledChannels())
	p.Technique.Set(int(cfg.Technique))
	p.Downmix.Set(cfg.Downmix)
	p.Noise.Set(cfg.Noise)
}

// Config returns a Config created from the preference values.
func (p *Preferences) Config() (Config, error) {
	cfg := DefaultConfig()

	if err := cfg.SetThresholds(p.Attenuation.String()); err != nil {
		return cfg, err
	}
	if err := cfg.SetTranspose(p.Transpose.String()); err != nil {
		return cfg, err
	}
	if err := cfg.SetChannels(p.Channels.String()); err != nil {
		return cfg, err
	}
	cfg.Technique = downmix.MixTechnique(p.Technique.Get().(int))
	cfg.Downmix = p.Downmix.Get().(bool)
	cfg.Noise = p.Noise.Get().(bool)

	return cfg, cfg.Validate()
}

// Save the current preference values to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
