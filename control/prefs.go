// This file is part of padreplay.
//
// padreplay is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// padreplay is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with padreplay.  If not, see <https://www.gnu.org/licenses/>.

package control

import (
	"time"

	"github.com/jetsetilly/padreplay/arbiter"
	"github.com/jetsetilly/padreplay/curated"
	"github.com/jetsetilly/padreplay/device"
	"github.com/jetsetilly/padreplay/engine"
	"github.com/jetsetilly/padreplay/prefs"
)

// Preferences for the control surface.
type Preferences struct {
	dsk *prefs.Disk

	// ticks per second for playback. changes take effect at the next start
	TickRate prefs.Int

	// whether playback wraps to the start of the sequence
	Loop prefs.Bool

	// whether playback is mirrored horizontally. changes take effect at the
	// next start
	Invert prefs.Bool

	// interval in milliseconds between writes of manual input
	Cadence prefs.Int

	// the type of controller presented by the virtual device
	Controller prefs.String

	// button name to controller mapping in the form "name=target,name=target"
	Mapping *prefs.Generic
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// newPreferences creates the Preferences type and binds the values to the
// components of the surface. Values are loaded from the file at path.
func newPreferences(srf *Surface, path string) (*Preferences, error) {
	p := &Preferences{}

	p.TickRate.SetHookPre(func(v prefs.Value) error {
		return srf.eng.SetTickRate(v.(int))
	})
	p.Loop.SetHookPost(func(v prefs.Value) error {
		return srf.eng.SetLoop(v.(bool))
	})
	p.Invert.SetHookPost(func(v prefs.Value) error {
		return srf.eng.SetInvert(v.(bool))
	})
	p.Cadence.SetHookPre(func(v prefs.Value) error {
		return srf.arb.SetCadence(time.Duration(v.(int)) * time.Millisecond)
	})
	p.Controller.SetHookPre(func(v prefs.Value) error {
		return srf.dev.SetController(v.(string))
	})
	p.Mapping = prefs.NewGeneric(
		func(s string) error {
			m := make(device.Mapping)
			if err := m.Parse(s); err != nil {
				return err
			}
			srf.dev.SetMapping(m)
			return nil
		},
		func() string {
			return srf.dev.Mapping().String()
		},
	)

	err := p.SetDefaults()
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("playback.tickrate", &p.TickRate)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("playback.loop", &p.Loop)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("playback.invert", &p.Invert)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("manual.cadence", &p.Cadence)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("device.controller", &p.Controller)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("device.mapping", p.Mapping)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() error {
	if err := p.TickRate.Set(engine.DefaultTickRate); err != nil {
		return err
	}
	if err := p.Loop.Set(false); err != nil {
		return err
	}
	if err := p.Invert.Set(false); err != nil {
		return err
	}
	if err := p.Cadence.Set(int(arbiter.DefaultCadence / time.Millisecond)); err != nil {
		return err
	}
	if err := p.Controller.Set(device.ControllerXbox); err != nil {
		return err
	}
	return p.Mapping.Set("")
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
