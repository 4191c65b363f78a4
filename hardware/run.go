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


package hardware

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/govern"
)

// UnsupportedState is returned by Run() when the continueCheck() function
// returns a state that Run() can not handle.
const UnsupportedState = "machine: unsupported emulation state (%v) in Run() function"

// Run sets the emulation running one frame at a time. The continueCheck()
// function is called at the end of every frame and controls what happens next.
// Running is the normal state. Paused will cause the machine to idle until a
// different state is returned. Ending and Initialising will cause Run() to
// return.
//
// Run() does not limit the speed of the emulation. That's the job of the
// continueCheck() function, if it's required.
func (m *Machine) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending && state != govern.Initialising {
		switch state {
		case govern.Running:
			err := m.RunFrame()
			if err != nil {
				return err
			}
		case govern.Paused:
		default:
			return curated.Errorf(UnsupportedState, state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount sets the emulation running for the specified number of
// frames. Useful for performance tests.
func (m *Machine) RunForFrameCount(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	targetFrame := m.FrameNum + numFrames

	var err error

	state := govern.Running
	for m.FrameNum < targetFrame && state != govern.Ending {
		err = m.RunFrame()
		if err != nil {
			return err
		}

		state, err = continueCheck(m.FrameNum)
		if err != nil {
			return err
		}
	}

	return nil
}
