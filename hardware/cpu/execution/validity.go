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

// IsValid checks whether the instance of Result contains information
// consistent with the operation.
func (r Result) IsValid() error {
	if !r.Final {
		return fmt.Errorf("execution: result not finalised")
	}

	if r.Status == NotReady {
		switch r.Op.Kind {
		case instructions.Draw, instructions.WaitKey:
		default:
			return fmt.Errorf("execution: %s cannot be not ready", r.Op.Kind)
		}
	}

	if r.Skipped && r.Op.Definition().Effect != instructions.Skip {
		return fmt.Errorf("execution: %s cannot skip", r.Op.Kind)
	}

	if r.Address&0x0001 != 0 {
		return fmt.Errorf("execution: instruction address is not even (%#04x)", r.Address)
	}

	return nil
}
