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


package gui

// Event represents all the different type of events that can occur in the GUI.
// Events are sent over the channel given to the GUI with the ReqSetEventChan
// request.
type Event interface{}

// KeyMod identifies the modifier key that was held when a key was pressed.
type KeyMod int

// list of valid key modifiers.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// EventWindowClose is sent when the GUI window has been closed.
type EventWindowClose struct{}

// EventKeyboard is sent when a key is pressed or released. Key is the name of
// the key as described by the GUI implementation. For example, "Q" or
// "Escape".
type EventKeyboard struct {
	Key  string
	Mod  KeyMod
	Down bool
}
