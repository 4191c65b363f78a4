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

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
)

// MalformedInstruction is the pattern of the error returned by Decode() when
// the word is not in the instruction table. The single value is the word.
const MalformedInstruction = "instructions: malformed instruction (%#04x)"

// Operation is a decoded instruction word. Only the operand fields that are
// meaningful for the Kind are populated.
type Operation struct {
	Kind Kind

	// register operands
	X uint8
	Y uint8

	// 4bit immediate
	N uint8

	// 8bit immediate
	NN uint8

	// 12bit immediate
	NNN uint16

	// the raw instruction word
	Word uint16
}

// Definition returns the instruction table entry for the operation.
func (op Operation) Definition() Definition {
	return definitions[op.Kind]
}

// Decode a single instruction word.
func Decode(word uint16) (Operation, error) {
	op := Operation{Word: word}

	x := uint8(word>>8) & 0x0f
	y := uint8(word>>4) & 0x0f
	n := uint8(word) & 0x0f
	nn := uint8(word)
	nnn := word & 0x0fff

	switch word >> 12 {
	case 0x0:
		switch {
		case word&0xfff0 == 0x00c0:
			op.Kind = ScrollDown
			op.N = n
		case word&0xfff0 == 0x00d0:
			op.Kind = ScrollUp
			op.N = n
		case word == 0x00e0:
			op.Kind = Clear
		case word == 0x00ee:
			op.Kind = Return
		case word == 0x00fb:
			op.Kind = ScrollRight
		case word == 0x00fc:
			op.Kind = ScrollLeft
		case word == 0x00fe:
			op.Kind = LowRes
		case word == 0x00ff:
			op.Kind = HighRes
		default:
			return op, curated.Errorf(MalformedInstruction, word)
		}

	case 0x1:
		op.Kind = Jump
		op.NNN = nnn
	case 0x2:
		op.Kind = Call
		op.NNN = nnn
	case 0x3:
		op.Kind = SkipEqualConst
		op.X, op.NN = x, nn
	case 0x4:
		op.Kind = SkipNotEqualConst
		op.X, op.NN = x, nn

	case 0x5:
		op.X, op.Y = x, y
		switch n {
		case 0x0:
			op.Kind = SkipEqualReg
		case 0x2:
			op.Kind = SaveRange
		case 0x3:
			op.Kind = LoadRange
		default:
			return Operation{Word: word}, curated.Errorf(MalformedInstruction, word)
		}

	case 0x6:
		op.Kind = SetConst
		op.X, op.NN = x, nn
	case 0x7:
		op.Kind = AddConst
		op.X, op.NN = x, nn

	case 0x8:
		op.X, op.Y = x, y
		switch n {
		case 0x0:
			op.Kind = SetReg
		case 0x1:
			op.Kind = Or
		case 0x2:
			op.Kind = And
		case 0x3:
			op.Kind = Xor
		case 0x4:
			op.Kind = AddReg
		case 0x5:
			op.Kind = SubYFromX
		case 0x6:
			op.Kind = ShiftRight
		case 0x7:
			op.Kind = SubXFromY
		case 0xe:
			op.Kind = ShiftLeft
		default:
			return Operation{Word: word}, curated.Errorf(MalformedInstruction, word)
		}

	case 0x9:
		if n != 0x0 {
			return op, curated.Errorf(MalformedInstruction, word)
		}
		op.Kind = SkipNotEqualReg
		op.X, op.Y = x, y

	case 0xa:
		op.Kind = SetIndex
		op.NNN = nnn
	case 0xb:
		op.Kind = JumpOffset
		op.NNN = nnn
	case 0xc:
		op.Kind = Random
		op.X, op.NN = x, nn
	case 0xd:
		op.Kind = Draw
		op.X, op.Y, op.N = x, y, n

	case 0xe:
		op.X = x
		switch nn {
		case 0x9e:
			op.Kind = SkipKey
		case 0xa1:
			op.Kind = SkipNotKey
		default:
			return Operation{Word: word}, curated.Errorf(MalformedInstruction, word)
		}

	case 0xf:
		// the two XO words are exact matches and take priority over the FX07
		// style family
		switch word {
		case 0xf000:
			op.Kind = SetIndexWide
			return op, nil
		case 0xf002:
			op.Kind = AudioPattern
			return op, nil
		}

		op.X = x
		switch nn {
		case 0x07:
			op.Kind = GetDelay
		case 0x0a:
			op.Kind = WaitKey
		case 0x15:
			op.Kind = SetDelay
		case 0x18:
			op.Kind = SetSound
		case 0x1e:
			op.Kind = AddIndex
		case 0x29:
			op.Kind = FontAddress
		case 0x33:
			op.Kind = BCD
		case 0x3a:
			op.Kind = SetPitch
		case 0x55:
			op.Kind = StoreRegisters
		case 0x65:
			op.Kind = LoadRegisters
		default:
			return Operation{Word: word}, curated.Errorf(MalformedInstruction, word)
		}
	}

	return op, nil
}

// String returns the operation in assembly notation.
func (op Operation) String() string {
	mnem := definitions[op.Kind].Mnemonic

	switch op.Kind {
	case Clear, Return, ScrollRight, ScrollLeft, LowRes, HighRes, AudioPattern:
		return mnem
	case ScrollDown, ScrollUp:
		return fmt.Sprintf("%s %d", mnem, op.N)
	case Jump, Call:
		return fmt.Sprintf("%s #%03X", mnem, op.NNN)
	case JumpOffset:
		return fmt.Sprintf("%s V0, #%03X", mnem, op.NNN)
	case SetIndex:
		return fmt.Sprintf("%s I, #%03X", mnem, op.NNN)
	case SetIndexWide:
		return fmt.Sprintf("%s I, LONG", mnem)
	case SkipEqualConst, SkipNotEqualConst, SetConst, AddConst, Random:
		return fmt.Sprintf("%s V%X, #%02X", mnem, op.X, op.NN)
	case SaveRange, LoadRange:
		return fmt.Sprintf("%s V%X - V%X", mnem, op.X, op.Y)
	case Draw:
		return fmt.Sprintf("%s V%X, V%X, %d", mnem, op.X, op.Y, op.N)
	case SkipKey, SkipNotKey, SetPitch:
		return fmt.Sprintf("%s V%X", mnem, op.X)
	case GetDelay:
		return fmt.Sprintf("%s V%X, DT", mnem, op.X)
	case WaitKey:
		return fmt.Sprintf("%s V%X, K", mnem, op.X)
	case SetDelay:
		return fmt.Sprintf("%s DT, V%X", mnem, op.X)
	case SetSound:
		return fmt.Sprintf("%s ST, V%X", mnem, op.X)
	case AddIndex:
		return fmt.Sprintf("%s I, V%X", mnem, op.X)
	case FontAddress:
		return fmt.Sprintf("%s F, V%X", mnem, op.X)
	case BCD:
		return fmt.Sprintf("%s B, V%X", mnem, op.X)
	case StoreRegisters:
		return fmt.Sprintf("%s [I], V%X", mnem, op.X)
	case LoadRegisters:
		return fmt.Sprintf("%s V%X, [I]", mnem, op.X)
	}

	// two register operations
	return fmt.Sprintf("%s V%X, V%X", mnem, op.X, op.Y)
}
