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


package playmode

import (
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/gui"
)

func (pl *playmode) handleEvent(ev gui.Event) error {
	switch ev := ev.(type) {
	case gui.EventWindowClose:
		pl.state = govern.Ending

	case gui.EventKeyboard:
		return pl.handleKeyboard(ev)
	}

	return nil
}

func (pl *playmode) handleKeyboard(ev gui.EventKeyboard) error {
	if k, ok := pl.keyMap.Lookup(ev.Key); ok {
		if ev.Down {
			pl.keys.Press(k)
		} else {
			pl.keys.Release(k)
		}
		return nil
	}

	if !ev.Down {
		return nil
	}

	switch ev.Key {
	case "Escape":
		pl.state = govern.Ending

	case "P":
		switch pl.state {
		case govern.Running:
			return pl.setState(govern.Paused)
		case govern.Paused:
			return pl.setState(govern.Running)
		}
	}

	return nil
}
