// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package preferences

import (
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/compat"
	"github.com/jetsetilly/gopher8/prefs"
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// the compatibility mode used when a machine is created. one of the
	// strings accepted by compat.ParseMode()
	Mode prefs.String

	// the number of instructions executed every frame
	InstructionsPerFrame prefs.Int

	// the number of frames per second. the delay and sound timers are
	// decremented once per frame
	FPS prefs.Float

	// seed for the random number generator. zero means the generator is
	// seeded from the current time
	RandSeed prefs.Int
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. If pth is empty the preferences are not associated with a file and
// calls to Load() and Save() do nothing.
func NewPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.Mode.SetHookPre(func(v prefs.Value) error {
		_, err := compat.ParseMode(v.(string))
		return err
	})
	p.InstructionsPerFrame.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return fmt.Errorf("preferences: instructions per frame must be at least one")
		}
		return nil
	})
	p.FPS.SetHookPre(func(v prefs.Value) error {
		if v.(float64) <= 0 {
			return fmt.Errorf("preferences: fps must be greater than zero")
		}
		return nil
	})

	if pth == "" {
		return p, nil
	}

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("hardware.mode", &p.Mode)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.instructionsPerFrame", &p.InstructionsPerFrame)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.fps", &p.FPS)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.randSeed", &p.RandSeed)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all hardware preferences to the default values.
func (p *Preferences) SetDefaults() {
	p.Mode.Set(compat.Legacy.String())
	p.InstructionsPerFrame.Set(12)
	p.FPS.Set(60.0)
	p.RandSeed.Set(0)
}

// CompatMode returns the Mode preference as a compat.Mode. The value of the
// preference is validated whenever it is set so an error is not possible.
func (p *Preferences) CompatMode() compat.Mode {
	m, _ := compat.ParseMode(p.Mode.Get().(string))
	return m
}

// Load hardware preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load()
}

// Save hardware preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
