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
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/commandline"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/peripherals"
	"github.com/jetsetilly/gopher8/logger"
)

// parse a number in decimal or, with a 0x prefix, in hexadecimal. tokens have
// already had the $ and # prefixes normalised.
func parseNumber(s string, bitSize int) (uint64, error) {
	base := 10
	if strings.HasPrefix(strings.ToLower(s), "0x") {
		base = 16
		s = s[2:]
	}
	n, err := strconv.ParseUint(s, base, bitSize)
	if err != nil {
		return 0, curated.Errorf(InvalidArgument, s)
	}
	return n, nil
}

// optionalNumber returns the next token as a number or the default value if
// there is no next token.
func optionalNumber(tokens *commandline.Tokens, bitSize int, def uint64) (uint64, error) {
	s, ok := tokens.Get()
	if !ok {
		return def, nil
	}
	return parseNumber(s, bitSize)
}

func (dbg *Debugger) parseCommand(input string) error {
	tokens := commandline.TokeniseInput(input)

	keyword, ok := tokens.Get()
	if !ok {
		// an empty line steps a single instruction
		return dbg.step(1)
	}
	keyword = strings.ToUpper(keyword)

	cmd, ok := commands[keyword]
	if !ok {
		return curated.Errorf(UnknownCommand, keyword)
	}

	if n := tokens.Remaining(); n < cmd.minArgs || n > cmd.maxArgs {
		return curated.Errorf(WrongArgCount, keyword)
	}

	dbg.printLine(terminal.StyleEcho, "%s", tokens)

	switch keyword {
	case cmdHelp:
		if kw, ok := tokens.Get(); ok {
			dbg.printLine(terminal.StyleHelp, "%s", help(kw))
		} else {
			dbg.printLine(terminal.StyleHelp, "%s", helpOverview())
		}

	case cmdQuit:
		dbg.state = govern.Ending

	case cmdStep:
		n, err := optionalNumber(tokens, 32, 1)
		if err != nil {
			return err
		}
		return dbg.step(int(n))

	case cmdFrame:
		n, err := optionalNumber(tokens, 32, 1)
		if err != nil {
			return err
		}
		return dbg.frame(int(n))

	case cmdReset:
		dbg.m.Reset()
		dbg.printLine(terminal.StyleFeedback, "machine reset")

	case cmdRegs:
		dbg.printLines(terminal.StyleInstrument, dbg.m.CPU.State.String())

	case cmdMem:
		addr, err := optionalNumber(tokens, 16, 0)
		if err != nil {
			return err
		}
		n, err := optionalNumber(tokens, 32, defaultMemLen)
		if err != nil {
			return err
		}
		return dbg.memory(uint16(addr), int(n))

	case cmdPoke:
		addr, err := optionalNumber(tokens, 16, 0)
		if err != nil {
			return err
		}
		v, err := optionalNumber(tokens, 8, 0)
		if err != nil {
			return err
		}
		err = dbg.m.Mem.Write(uint16(addr), 0, uint8(v))
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "%#06x = %02X", addr, v)

	case cmdDisplay:
		dbg.printLine(terminal.StyleInstrument, "%s (%dx%d)", dbg.m.FB.Resolution, dbg.m.FB.Width(), dbg.m.FB.Height())
		dbg.printLines(terminal.StyleInstrument, dbg.m.FB.String())

	case cmdKey:
		return dbg.key(tokens)

	case cmdDisasm:
		addr, err := optionalNumber(tokens, 16, uint64(dbg.m.CPU.State.PC))
		if err != nil {
			return err
		}
		n, err := optionalNumber(tokens, 32, defaultDisasmLen)
		if err != nil {
			return err
		}
		return dbg.disasm(uint16(addr), int(n))

	case cmdLog:
		n, err := optionalNumber(tokens, 32, defaultLogLen)
		if err != nil {
			return err
		}
		s := &strings.Builder{}
		logger.Tail(s, int(n))
		if s.Len() == 0 {
			dbg.printLine(terminal.StyleFeedback, "log is empty")
		} else {
			dbg.printLines(terminal.StyleFeedback, s.String())
		}

	case cmdViz:
		filename, _ := tokens.Get()
		return dbg.viz(filename)
	}

	return nil
}

// print each line of a multi-line string
func (dbg *Debugger) printLines(style terminal.Style, s string) {
	for _, l := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		dbg.term.TermPrintLine(style, l)
	}
}

func (dbg *Debugger) step(n int) error {
	dbg.state = govern.Stepping
	defer func() {
		dbg.state = govern.Paused
	}()

	for range n {
		if dbg.interrupted() {
			break
		}

		res, err := dbg.m.Step()
		if err != nil {
			return err
		}

		if res.Status == execution.NotReady {
			dbg.printLine(terminal.StyleCPUStep, "%s (%s)", res, res.Status)
		} else {
			dbg.printLine(terminal.StyleCPUStep, "%s", res)
		}
	}

	return nil
}

func (dbg *Debugger) frame(n int) error {
	dbg.state = govern.Running
	defer func() {
		dbg.state = govern.Paused
	}()

	err := dbg.m.RunForFrameCount(n, func(_ int) (govern.State, error) {
		if dbg.interrupted() {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	if err != nil {
		return err
	}

	dbg.printLine(terminal.StyleFeedback, "frame %d", dbg.m.FrameNum)
	return nil
}

func (dbg *Debugger) memory(addr uint16, n int) error {
	data, err := dbg.m.Mem.Slice(addr, n)
	if err != nil {
		return err
	}

	const rowLen = 16

	for i := 0; i < len(data); i += rowLen {
		row := data[i:min(i+rowLen, len(data))]
		s := strings.Builder{}
		for j, v := range row {
			if j > 0 {
				s.WriteRune(' ')
			}
			s.WriteString(fmt.Sprintf("%02X", v))
		}
		dbg.printLine(terminal.StyleInstrument, "%#06x  %s", int(addr)+i, s.String())
	}

	return nil
}

func (dbg *Debugger) key(tokens *commandline.Tokens) error {
	if dbg.keys == nil {
		return curated.Errorf(InvalidArgument, "no keypad")
	}

	k, ok := tokens.Get()
	if !ok {
		dbg.printLine(terminal.StyleInstrument, "keypad: %s", dbg.keys)
		return nil
	}

	k = strings.TrimPrefix(strings.ToLower(k), "0x")
	key, err := strconv.ParseUint(k, 16, 8)
	if err != nil || key >= peripherals.NumKeys {
		return curated.Errorf(InvalidArgument, k)
	}

	action, ok := tokens.Get()
	if !ok {
		return curated.Errorf(WrongArgCount, cmdKey)
	}

	switch strings.ToUpper(action) {
	case "ON", "DOWN":
		dbg.keys.Press(uint8(key))
	case "OFF", "UP":
		dbg.keys.Release(uint8(key))
	default:
		return curated.Errorf(InvalidArgument, action)
	}

	dbg.printLine(terminal.StyleFeedback, "keypad: %s", dbg.keys)
	return nil
}

func (dbg *Debugger) disasm(addr uint16, n int) error {
	// the widest instruction is four bytes
	dsm := disassembly.FromMemory(dbg.m.Mem, addr, n*4)

	s := &strings.Builder{}
	for i, e := range dsm.Entries {
		if i >= n {
			break
		}
		err := dsm.WriteEntry(s, disassembly.WriteAttr{ByteCode: true}, e)
		if err != nil {
			return err
		}
	}

	if s.Len() > 0 {
		dbg.printLines(terminal.StyleInstrument, s.String())
	}
	return nil
}

// vizState is the part of the machine state that is included in the VIZ
// output. memory is omitted because the graph would be unreadable.
type vizState struct {
	PC    uint16
	I     uint16
	V     [16]uint8
	Stack []uint16
	Delay uint8
	Sound uint8
	Mode  string
	Last  string
	Keys  string
}

func (dbg *Debugger) viz(filename string) error {
	st := dbg.m.CPU.State

	v := &vizState{
		PC:    st.PC,
		I:     st.I,
		V:     st.V,
		Stack: append([]uint16{}, st.Stack...),
		Delay: st.Delay,
		Sound: st.Sound,
		Mode:  st.Mode.String(),
		Last:  dbg.m.CPU.LastResult.String(),
	}
	if dbg.keys != nil {
		v.Keys = dbg.keys.String()
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("debugger: %w", err)
	}

	memviz.Map(f, v)

	err = f.Close()
	if err != nil {
		return fmt.Errorf("debugger: %w", err)
	}

	dbg.printLine(terminal.StyleFeedback, "machine state written to %s", filename)
	return nil
}
