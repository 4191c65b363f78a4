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

package debugger

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/commandline"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/peripherals"
)

// Sentinel error patterns.
const (
	NoMachine       = "debugger: no machine"
	NoTerminal      = "debugger: no terminal"
	UnknownCommand  = "debugger: unknown command (%s)"
	WrongArgCount   = "debugger: wrong number of arguments for %s"
	InvalidArgument = "debugger: invalid argument (%s)"
)

const (
	inputBufferSize  = 256
	defaultDisasmLen = 10
	defaultMemLen    = 16
	defaultLogLen    = 10
)

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	m    *hardware.Machine
	keys *peripherals.Keypad
	term terminal.Terminal

	state govern.State

	events terminal.ReadEvents
	buffer []byte
}

// NewDebugger creates and initialises everything required for a new debugging
// session. The keypad can be nil in which case the KEY command will only
// report that there is no keypad.
func NewDebugger(m *hardware.Machine, keys *peripherals.Keypad, term terminal.Terminal) (*Debugger, error) {
	if m == nil {
		return nil, curated.Errorf(NoMachine)
	}
	if term == nil {
		return nil, curated.Errorf(NoTerminal)
	}

	dbg := &Debugger{
		m:      m,
		keys:   keys,
		term:   term,
		state:  govern.Initialising,
		buffer: make([]byte, inputBufferSize),
		events: terminal.ReadEvents{
			IntEvents: make(chan os.Signal, 1),
		},
	}

	return dbg, nil
}

// State returns the current state of the debugger.
func (dbg *Debugger) State() govern.State {
	return dbg.state
}

// Start the main debugger sequence. The function returns when the user quits,
// the terminal input ends or the context is cancelled.
func (dbg *Debugger) Start(ctx context.Context) error {
	err := dbg.term.Initialise()
	if err != nil {
		return fmt.Errorf("debugger: %w", err)
	}
	defer dbg.term.CleanUp()

	dbg.term.RegisterTabCompletion(commandline.NewTabCompletion(keywords()))

	signal.Notify(dbg.events.IntEvents, os.Interrupt)
	defer signal.Stop(dbg.events.IntEvents)

	dbg.state = govern.Paused

	for dbg.state != govern.Ending {
		if ctx.Err() != nil {
			dbg.state = govern.Ending
			break
		}

		n, err := dbg.term.TermRead(dbg.buffer, dbg.prompt(), &dbg.events)
		if err != nil {
			if curated.Is(err, terminal.UserAbort) {
				dbg.state = govern.Ending
				break
			}
			if curated.Is(err, terminal.UserInterrupt) {
				dbg.printLine(terminal.StyleFeedbackNonInteractive, "use QUIT to leave the debugger")
				continue
			}
			return fmt.Errorf("debugger: %w", err)
		}

		err = dbg.parseInput(string(dbg.buffer[:n]))
		if err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	return nil
}

// prompt shows the address and disassembly of the next instruction.
func (dbg *Debugger) prompt() terminal.Prompt {
	p := terminal.Prompt{
		Type:    terminal.PromptTypeCPUStep,
		Waiting: dbg.m.CPU.LastResult.Final && dbg.m.CPU.LastResult.Status == execution.NotReady,
	}

	pc := dbg.m.CPU.State.PC
	w, err := dbg.m.Mem.ReadWord(pc)
	if err != nil {
		p.Content = fmt.Sprintf("%#06x ??", pc)
		return p
	}

	op, err := instructions.Decode(w)
	if err != nil {
		p.Content = fmt.Sprintf("%#06x DW #%04X", pc, w)
		return p
	}

	p.Content = fmt.Sprintf("%#06x %s", pc, op)
	return p
}

// parseInput splits the input into lines and runs each line as a command.
func (dbg *Debugger) parseInput(input string) error {
	for _, line := range strings.Split(strings.TrimRight(input, "\r\n"), "\n") {
		err := dbg.parseCommand(line)
		if err != nil {
			return err
		}
		if dbg.state == govern.Ending {
			break
		}
	}
	return nil
}

func (dbg *Debugger) printLine(style terminal.Style, s string, a ...any) {
	dbg.term.TermPrintLine(style, fmt.Sprintf(s, a...))
}

// interrupted returns true if an interrupt signal has arrived. the signal is
// consumed.
func (dbg *Debugger) interrupted() bool {
	select {
	case <-dbg.events.IntEvents:
		return true
	default:
	}
	return false
}
