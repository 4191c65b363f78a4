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

package peripherals

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// Keypad implements the Input interface. The state of each key is one bit of
// an atomic value so that the keypad can be updated from the GUI goroutine
// while it is being queried by the emulation.
type Keypad struct {
	state atomic.Uint32
}

// Press key. Keys outside of the range 0x0 to 0xf are ignored.
func (kp *Keypad) Press(key uint8) {
	if key >= NumKeys {
		return
	}
	for {
		o := kp.state.Load()
		if kp.state.CompareAndSwap(o, o|1<<key) {
			return
		}
	}
}

// Release key. Keys outside of the range 0x0 to 0xf are ignored.
func (kp *Keypad) Release(key uint8) {
	if key >= NumKeys {
		return
	}
	for {
		o := kp.state.Load()
		if kp.state.CompareAndSwap(o, o&^(1<<key)) {
			return
		}
	}
}

// ReleaseAll keys.
func (kp *Keypad) ReleaseAll() {
	kp.state.Store(0)
}

// IsPressed implements the Input interface.
func (kp *Keypad) IsPressed(key uint8) bool {
	if key >= NumKeys {
		return false
	}
	return kp.state.Load()&(1<<key) != 0
}

func (kp *Keypad) String() string {
	s := strings.Builder{}
	st := kp.state.Load()
	for k := range NumKeys {
		if st&(1<<k) != 0 {
			s.WriteString(fmt.Sprintf("%X", k))
		} else {
			s.WriteRune('-')
		}
	}
	return s.String()
}
