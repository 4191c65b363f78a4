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

package cpu

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/hardware/compat"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// NumRegisters is the number of general purpose registers.
const NumRegisters = 16

// Flag is the index of the register that is also used as the carry, borrow
// and collision flag.
const Flag = 0xf

// State is the state of the machine.
type State struct {
	Mem *memory.Memory

	// general purpose registers. VF is the flag register
	V [NumRegisters]uint8

	// index register
	I uint16

	// program counter
	PC uint16

	// return addresses
	Stack []uint16

	Delay uint8
	Sound uint8

	// the mode is fixed for the lifetime of the state
	Mode compat.Mode
}

// NewState is the preferred method of initialisation for the State type.
func NewState(env *environment.Environment, mode compat.Mode) *State {
	st := &State{
		Mem:  memory.NewMemory(env),
		Mode: mode,
	}
	st.Reset()
	return st
}

// Reset registers, timers and the call stack. The program counter is set to
// the start of the program. Memory is not changed.
func (st *State) Reset() {
	st.V = [NumRegisters]uint8{}
	st.I = 0
	st.PC = memory.ProgramStart
	st.Stack = st.Stack[:0]
	st.Delay = 0
	st.Sound = 0
}

// DecrementTimers decrements the delay and sound timers if they are not zero.
// Returns true if the sound timer is still active after the decrement.
func (st *State) DecrementTimers() bool {
	if st.Delay > 0 {
		st.Delay--
	}
	if st.Sound > 0 {
		st.Sound--
	}
	return st.Sound > 0
}

func (st *State) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC=%#04x I=%#04x DT=%d ST=%d SP=%d [%s]\n", st.PC, st.I, st.Delay, st.Sound, len(st.Stack), st.Mode))
	for i, v := range st.V {
		s.WriteString(fmt.Sprintf("V%X=%02x", i, v))
		if i == NumRegisters/2-1 {
			s.WriteRune('\n')
		} else if i < NumRegisters-1 {
			s.WriteRune(' ')
		}
	}
	return s.String()
}
