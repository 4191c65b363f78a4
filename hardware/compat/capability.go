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

package compat

import (
	"strings"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// Quirk is a bit set of the special case behaviours that can apply to an
// operation.
type Quirk uint

// List of quirks.
const (
	// the shift operations copy VY into VX before shifting
	ShiftUsesVY Quirk = 1 << iota

	// the register store/load operations advance the index register by X+1
	IndexIncrementOnLoadStore

	// changing resolution clears the framebuffer
	ClearOnResolutionChange

	// a draw with a height of zero draws a 16x16 sprite. without this quirk a
	// zero height draw does nothing
	BigSpriteOnZeroHeight

	// a draw waits for the framebuffer to be presented since the last draw
	DisplayWait
)

var quirkNames = []string{
	"ShiftUsesVY",
	"IndexIncrementOnLoadStore",
	"ClearOnResolutionChange",
	"BigSpriteOnZeroHeight",
	"DisplayWait",
}

func (q Quirk) String() string {
	var s []string
	for i, n := range quirkNames {
		if q&(1<<i) != 0 {
			s = append(s, n)
		}
	}
	if len(s) == 0 {
		return "none"
	}
	return strings.Join(s, "|")
}

// Has returns true if all the quirks in v are set.
func (q Quirk) Has(v Quirk) bool {
	return q&v == v
}

// Capability is an entry in the capability table.
type Capability struct {
	Available bool
	Quirks    Quirk
}

type availability uint8

const (
	inLegacy availability = 1 << iota
	inExtended
	inXO

	everywhere = inLegacy | inExtended | inXO
	extendedUp = inExtended | inXO
)

func (a availability) has(mode Mode) bool {
	switch mode {
	case Legacy:
		return a&inLegacy != 0
	case Extended:
		return a&inExtended != 0
	case ExtendedXO:
		return a&inXO != 0
	}
	return false
}

type entry struct {
	avail  availability
	quirks [3]Quirk
}

// capabilities is indexed by instruction kind. any kind not listed is
// available everywhere with no quirks.
var capabilities = map[instructions.Kind]entry{
	instructions.ScrollDown: {avail: extendedUp},
	instructions.ScrollUp:   {avail: extendedUp},
	instructions.LowRes: {
		avail:  extendedUp,
		quirks: [3]Quirk{ExtendedXO: ClearOnResolutionChange},
	},
	instructions.HighRes: {
		avail:  extendedUp,
		quirks: [3]Quirk{ExtendedXO: ClearOnResolutionChange},
	},
	instructions.SaveRange:    {avail: inXO},
	instructions.LoadRange:    {avail: inXO},
	instructions.SetIndexWide: {avail: inXO},
	instructions.AudioPattern: {avail: inXO},
	instructions.SetPitch:     {avail: inXO},
	instructions.ShiftRight: {
		avail:  everywhere,
		quirks: [3]Quirk{Legacy: ShiftUsesVY},
	},
	instructions.ShiftLeft: {
		avail:  everywhere,
		quirks: [3]Quirk{Legacy: ShiftUsesVY},
	},
	instructions.StoreRegisters: {
		avail:  everywhere,
		quirks: [3]Quirk{Legacy: IndexIncrementOnLoadStore},
	},
	instructions.LoadRegisters: {
		avail:  everywhere,
		quirks: [3]Quirk{Legacy: IndexIncrementOnLoadStore},
	},
	instructions.Draw: {
		avail: everywhere,
		quirks: [3]Quirk{
			Legacy:     DisplayWait,
			Extended:   DisplayWait | BigSpriteOnZeroHeight,
			ExtendedXO: DisplayWait | BigSpriteOnZeroHeight,
		},
	},
}

// Lookup returns the capability of an operation kind in the specified mode.
func Lookup(mode Mode, kind instructions.Kind) Capability {
	if mode < Legacy || mode > ExtendedXO {
		return Capability{}
	}

	e, ok := capabilities[kind]
	if !ok {
		return Capability{Available: true}
	}

	return Capability{
		Available: e.avail.has(mode),
		Quirks:    e.quirks[mode],
	}
}
