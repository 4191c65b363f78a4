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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// Status of the execution.
type Status int

// List of valid Status values.
const (
	// the operation completed and the program counter has moved on
	Completed Status = iota

	// the operation could not complete this cycle and must be tried again. the
	// program counter has not changed
	NotReady
)

func (s Status) String() string {
	switch s {
	case Completed:
		return "completed"
	case NotReady:
		return "not ready"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Result records the outcome of executing one operation.
type Result struct {
	// address of the instruction word
	Address uint16

	Op instructions.Operation

	// the raw 16bit value that follows a SetIndexWide instruction word
	Wide uint16

	Status Status

	// whether a skip operation caused the next instruction to be skipped
	Skipped bool

	// whether the result has been filled in by an execution. the other fields
	// are undefined unless Final is true
	Final bool
}

// Reset the result to the zero value.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if !r.Final {
		return "no result"
	}

	s := fmt.Sprintf("%#06x %04X %s", r.Address, r.Op.Word, r.Op)
	if r.Op.Kind == instructions.SetIndexWide {
		s = fmt.Sprintf("%#06x %04X %04X %s I, #%04X", r.Address, r.Op.Word, r.Wide, r.Op.Definition().Mnemonic, r.Wide)
	}

	if r.Status == NotReady {
		s = fmt.Sprintf("%s [%s]", s, r.Status)
	} else if r.Skipped {
		s = fmt.Sprintf("%s [skipped]", s)
	}

	return s
}
