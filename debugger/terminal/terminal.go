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


package terminal

import (
	"os"
)

// Input is the reading half of a terminal.
type Input interface {
	// TermRead blocks until a line of input has been placed in the buffer.
	// It returns the number of bytes written. The prompt is shown to the user
	// if the implementation has somewhere to show it.
	//
	// A signal arriving on the ReadEvents interrupt channel causes TermRead()
	// to return a UserInterrupt error.
	TermRead(buffer []byte, prompt Prompt, events *ReadEvents) (int, error)

	// IsInteractive is false if input comes from a file or a pipe.
	IsInteractive() bool
}

// Patterns for errors returned by TermRead(). Test for them with curated.Is().
const (
	UserInterrupt = "user interrupt"
	UserAbort     = "user abort"
)

// ReadEvents are the events TermRead() should respond to while waiting for
// input.
type ReadEvents struct {
	IntEvents chan os.Signal
}

// Output is the writing half of a terminal.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal is everything the debugger needs from its command line.
type Terminal interface {
	Input
	Output

	// Initialise is called once before the first TermRead().
	Initialise() error

	// CleanUp restores the underlying device to how it was before
	// Initialise().
	CleanUp()

	// RegisterTabCompletion is a no-op for terminals that can't edit a line.
	RegisterTabCompletion(TabCompletion)

	// Silence suppresses everything except StyleError output.
	Silence(silenced bool)
}

// TabCompletion completes a partial command line. Reset() is called whenever
// the line is edited by anything other than a completion.
type TabCompletion interface {
	Complete(input string) string
	Reset()
}
