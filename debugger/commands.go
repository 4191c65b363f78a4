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
	"sort"
	"strings"
)

// debugger keywords.
const (
	cmdDisasm  = "DISASM"
	cmdDisplay = "DISPLAY"
	cmdFrame   = "FRAME"
	cmdHelp    = "HELP"
	cmdKey     = "KEY"
	cmdLog     = "LOG"
	cmdMem     = "MEM"
	cmdPoke    = "POKE"
	cmdQuit    = "QUIT"
	cmdRegs    = "REGS"
	cmdReset   = "RESET"
	cmdStep    = "STEP"
	cmdViz     = "VIZ"
)

type command struct {
	usage string
	help  string

	// argument count limits
	minArgs int
	maxArgs int
}

var commands = map[string]command{
	cmdDisasm: {
		usage:   "DISASM [address] [count]",
		help:    "Disassemble count instructions (default 10) from address (default PC)",
		maxArgs: 2,
	},
	cmdDisplay: {
		usage: "DISPLAY",
		help:  "Show the contents of the display at the current resolution",
	},
	cmdFrame: {
		usage:   "FRAME [n]",
		help:    "Run the emulation for n frames (default 1)",
		maxArgs: 1,
	},
	cmdHelp: {
		usage:   "HELP [command]",
		help:    "List commands or show help for a command",
		maxArgs: 1,
	},
	cmdKey: {
		usage:   "KEY [key ON|OFF]",
		help:    "Show the keypad or press/release a key (0 to F)",
		maxArgs: 2,
	},
	cmdLog: {
		usage:   "LOG [n]",
		help:    "Show the last n log entries (default 10)",
		maxArgs: 1,
	},
	cmdMem: {
		usage:   "MEM address [length]",
		help:    "Show length bytes (default 16) of memory from address",
		minArgs: 1,
		maxArgs: 2,
	},
	cmdPoke: {
		usage:   "POKE address value",
		help:    "Write a byte to memory",
		minArgs: 2,
		maxArgs: 2,
	},
	cmdQuit: {
		usage: "QUIT",
		help:  "Leave the debugger",
	},
	cmdRegs: {
		usage: "REGS",
		help:  "Show the CPU registers, timers and stack depth",
	},
	cmdReset: {
		usage: "RESET",
		help:  "Reset the machine. Memory is not cleared",
	},
	cmdStep: {
		usage:   "STEP [n]",
		help:    "Execute n instructions (default 1)",
		maxArgs: 1,
	},
	cmdViz: {
		usage:   "VIZ file",
		help:    "Write a graphviz description of the machine state to file",
		minArgs: 1,
		maxArgs: 1,
	},
}

// keywords returns the sorted list of command keywords.
func keywords() []string {
	k := make([]string, 0, len(commands))
	for c := range commands {
		k = append(k, c)
	}
	sort.Strings(k)
	return k
}

// helpOverview returns a columnised list of all commands.
func helpOverview() string {
	const cols = 6
	s := strings.Builder{}
	for i, k := range keywords() {
		s.WriteString(fmt.Sprintf("%-10s", k))
		if i%cols == cols-1 {
			s.WriteString("\n")
		}
	}
	return strings.TrimRight(s.String(), " \n")
}

// help returns the help and usage for a command.
func help(keyword string) string {
	keyword = strings.ToUpper(keyword)
	cmd, ok := commands[keyword]
	if !ok {
		return fmt.Sprintf("no help for %s", keyword)
	}
	return fmt.Sprintf("%s\n\n  Usage: %s", cmd.help, cmd.usage)
}
