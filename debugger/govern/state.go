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


package govern

// State indicates the interpreter's state.
type State int

// List of possible states. The zero value is Initialising so that a driver
// that has not yet started reports something sensible.
const (
	Initialising State = iota

	// the machine is stopped and waiting for instruction. in the debugger
	// this is the state at the prompt
	Paused

	// a single instruction or a fixed number of instructions is being
	// executed
	Stepping

	// frames are being run without pause
	Running

	// the driver is shutting down. no further state changes will occur
	Ending
)

var stateNames = [...]string{"Initialising", "Paused", "Stepping", "Running", "Ending"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown state"
	}
	return stateNames[s]
}

// Active returns true if the state is one in which the machine is executing
// instructions.
func (s State) Active() bool {
	return s == Stepping || s == Running
}
