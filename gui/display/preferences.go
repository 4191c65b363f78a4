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


package display

import (
	"fmt"

	"github.com/jetsetilly/gopher8/prefs"
)

// Preferences for the display.
type Preferences struct {
	dsk *prefs.Disk

	// window scaling. the physical grid is multiplied by this value
	Scale prefs.Float

	// colours of lit and unlit pixels. in the form #rrggbb
	FgColour prefs.String
	BgColour prefs.String
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. If pth is empty the preferences are not associated with a file.
func NewPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.Scale.SetHookPre(func(v prefs.Value) error {
		if v.(float64) < 1.0 {
			return fmt.Errorf("display: scale must be at least one")
		}
		return nil
	})

	checkColour := func(v prefs.Value) error {
		_, err := ParseColour(v.(string))
		return err
	}
	p.FgColour.SetHookPre(checkColour)
	p.BgColour.SetHookPre(checkColour)

	if pth == "" {
		return p, nil
	}

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("display.scale", &p.Scale)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.fgColour", &p.FgColour)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.bgColour", &p.BgColour)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all display preferences to the default values.
func (p *Preferences) SetDefaults() {
	p.Scale.Set(6.0)
	p.FgColour.Set("#e0e0e0")
	p.BgColour.Set("#101010")
}

// Colours returns the foreground and background colours. The values are
// validated when they are set so an error is not possible.
func (p *Preferences) Colours() (Colour, Colour) {
	fg, _ := ParseColour(p.FgColour.Get().(string))
	bg, _ := ParseColour(p.BgColour.Get().(string))
	return fg, bg
}

// Load display preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load()
}

// Save display preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
