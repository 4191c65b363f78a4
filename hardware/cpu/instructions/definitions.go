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

package instructions

import "fmt"

// Kind identifies an operation independently of its operands.
type Kind int

// List of operation kinds. The order matches the order of the instruction
// table returned by Definitions().
const (
	ScrollDown Kind = iota
	ScrollUp
	Clear
	Return
	ScrollRight
	ScrollLeft
	LowRes
	HighRes
	Jump
	Call
	SkipEqualConst
	SkipNotEqualConst
	SkipEqualReg
	SaveRange
	LoadRange
	SetConst
	AddConst
	SetReg
	Or
	And
	Xor
	AddReg
	SubYFromX
	ShiftRight
	SubXFromY
	ShiftLeft
	SkipNotEqualReg
	SetIndex
	JumpOffset
	Random
	Draw
	SkipKey
	SkipNotKey
	SetIndexWide
	AudioPattern
	GetDelay
	WaitKey
	SetDelay
	SetSound
	AddIndex
	FontAddress
	BCD
	SetPitch
	StoreRegisters
	LoadRegisters

	NumKinds
)

func (k Kind) String() string {
	if k < 0 || k >= NumKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return definitions[k].Name
}

// EffectCategory categorises an operation by the part of the machine it
// affects.
type EffectCategory int

// List of effect categories.
const (
	Register EffectCategory = iota
	Memory
	Display

	// flow operations change the program counter by something other than the
	// normal advance
	Flow

	// skip operations conditionally advance the program counter by an
	// additional instruction
	Skip

	Subroutine
	Input
	Timer
	Audio
)

// Definition describes one entry in the instruction table.
type Definition struct {
	Kind Kind

	// name of the kind
	Name string

	// assembly mnemonic
	Mnemonic string

	// encoding pattern in the form used by most instruction set references.
	// for example "8XY4"
	Pattern string

	// the number of bytes read when the instruction is executed. this is 2 for
	// everything except for SetIndexWide
	Bytes int

	Effect EffectCategory
}

func (defn Definition) String() string {
	return fmt.Sprintf("%s %s +%dbytes", defn.Pattern, defn.Mnemonic, defn.Bytes)
}

var definitions = [NumKinds]Definition{
	{ScrollDown, "ScrollDown", "SCD", "00CN", 2, Display},
	{ScrollUp, "ScrollUp", "SCU", "00DN", 2, Display},
	{Clear, "Clear", "CLS", "00E0", 2, Display},
	{Return, "Return", "RET", "00EE", 2, Subroutine},
	{ScrollRight, "ScrollRight", "SCR", "00FB", 2, Display},
	{ScrollLeft, "ScrollLeft", "SCL", "00FC", 2, Display},
	{LowRes, "LowRes", "LOW", "00FE", 2, Display},
	{HighRes, "HighRes", "HIGH", "00FF", 2, Display},
	{Jump, "Jump", "JP", "1NNN", 2, Flow},
	{Call, "Call", "CALL", "2NNN", 2, Subroutine},
	{SkipEqualConst, "SkipEqualConst", "SE", "3XNN", 2, Skip},
	{SkipNotEqualConst, "SkipNotEqualConst", "SNE", "4XNN", 2, Skip},
	{SkipEqualReg, "SkipEqualReg", "SE", "5XY0", 2, Skip},
	{SaveRange, "SaveRange", "SAVE", "5XY2", 2, Memory},
	{LoadRange, "LoadRange", "LOAD", "5XY3", 2, Memory},
	{SetConst, "SetConst", "LD", "6XNN", 2, Register},
	{AddConst, "AddConst", "ADD", "7XNN", 2, Register},
	{SetReg, "SetReg", "LD", "8XY0", 2, Register},
	{Or, "Or", "OR", "8XY1", 2, Register},
	{And, "And", "AND", "8XY2", 2, Register},
	{Xor, "Xor", "XOR", "8XY3", 2, Register},
	{AddReg, "AddReg", "ADD", "8XY4", 2, Register},
	{SubYFromX, "SubYFromX", "SUB", "8XY5", 2, Register},
	{ShiftRight, "ShiftRight", "SHR", "8XY6", 2, Register},
	{SubXFromY, "SubXFromY", "SUBN", "8XY7", 2, Register},
	{ShiftLeft, "ShiftLeft", "SHL", "8XYE", 2, Register},
	{SkipNotEqualReg, "SkipNotEqualReg", "SNE", "9XY0", 2, Skip},
	{SetIndex, "SetIndex", "LD", "ANNN", 2, Register},
	{JumpOffset, "JumpOffset", "JP", "BNNN", 2, Flow},
	{Random, "Random", "RND", "CXNN", 2, Register},
	{Draw, "Draw", "DRW", "DXYN", 2, Display},
	{SkipKey, "SkipKey", "SKP", "EX9E", 2, Skip},
	{SkipNotKey, "SkipNotKey", "SKNP", "EXA1", 2, Skip},
	{SetIndexWide, "SetIndexWide", "LD", "F000", 4, Register},
	{AudioPattern, "AudioPattern", "AUDIO", "F002", 2, Audio},
	{GetDelay, "GetDelay", "LD", "FX07", 2, Timer},
	{WaitKey, "WaitKey", "LD", "FX0A", 2, Input},
	{SetDelay, "SetDelay", "LD", "FX15", 2, Timer},
	{SetSound, "SetSound", "LD", "FX18", 2, Timer},
	{AddIndex, "AddIndex", "ADD", "FX1E", 2, Register},
	{FontAddress, "FontAddress", "LD", "FX29", 2, Register},
	{BCD, "BCD", "LD", "FX33", 2, Memory},
	{SetPitch, "SetPitch", "PITCH", "FX3A", 2, Audio},
	{StoreRegisters, "StoreRegisters", "LD", "FX55", 2, Memory},
	{LoadRegisters, "LoadRegisters", "LD", "FX65", 2, Memory},
}

// Definitions returns a copy of the instruction table, indexed by Kind.
func Definitions() []Definition {
	d := make([]Definition, NumKinds)
	copy(d, definitions[:])
	return d
}
