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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/compat"
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/framebuffer"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/peripherals"
)

func flag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// the registers in the inclusive range x to y. the range is empty if x is
// greater than y
func registerRange(x uint8, y uint8) []uint8 {
	var r []uint8
	for i := int(x); i <= int(y); i++ {
		r = append(r, uint8(i))
	}
	return r
}

// execute the operation in the result. next is the address of the following
// instruction. no state is changed if an error is returned
func (mc *CPU) execute(res execution.Result, quirks compat.Quirk, next int, fb *framebuffer.Framebuffer) (execution.Result, error) {
	st := mc.State
	op := res.Op
	vx := &st.V[op.X]
	vy := st.V[op.Y]

	skip := func(cond bool) {
		if cond {
			next += 2
			res.Skipped = true
		}
	}

	switch op.Kind {
	// the scroll amount is one more than N
	case instructions.ScrollDown:
		fb.ScrollDown(int(op.N) + 1)
	case instructions.ScrollUp:
		fb.ScrollUp(int(op.N) + 1)
	case instructions.Clear:
		fb.Clear()
	case instructions.Return:
		if len(st.Stack) == 0 {
			return res, outOfRange(curated.Errorf(StackUnderflow, st.PC))
		}
		next = int(st.Stack[len(st.Stack)-1])
		st.Stack = st.Stack[:len(st.Stack)-1]
	case instructions.ScrollRight:
		fb.ScrollRight()
	case instructions.ScrollLeft:
		fb.ScrollLeft()
	case instructions.LowRes:
		fb.SetResolution(framebuffer.LowRes, quirks.Has(compat.ClearOnResolutionChange))
	case instructions.HighRes:
		fb.SetResolution(framebuffer.HighRes, quirks.Has(compat.ClearOnResolutionChange))

	case instructions.Jump:
		next = int(op.NNN)
	case instructions.Call:
		st.Stack = append(st.Stack, uint16(next))
		next = int(op.NNN)
	case instructions.JumpOffset:
		next = int(op.NNN) + int(st.V[0])

	case instructions.SkipEqualConst:
		skip(*vx == op.NN)
	case instructions.SkipNotEqualConst:
		skip(*vx != op.NN)
	case instructions.SkipEqualReg:
		skip(*vx == vy)
	case instructions.SkipNotEqualReg:
		skip(*vx != vy)
	case instructions.SkipKey:
		skip(mc.probe(fb, *vx))
	case instructions.SkipNotKey:
		skip(!mc.probe(fb, *vx))

	case instructions.SaveRange:
		regs := registerRange(op.X, op.Y)
		if err := st.Mem.InRange(st.I, len(regs)); err != nil {
			return res, outOfRange(err)
		}
		for i, r := range regs {
			_ = st.Mem.Write(st.I, i, st.V[r])
		}
	case instructions.LoadRange:
		regs := registerRange(op.X, op.Y)
		data, err := st.Mem.Slice(st.I, len(regs))
		if err != nil {
			return res, outOfRange(err)
		}
		for i, r := range regs {
			st.V[r] = data[i]
		}

	case instructions.SetConst:
		*vx = op.NN
	case instructions.AddConst:
		*vx += op.NN
	case instructions.SetReg:
		*vx = vy

	// the flag register is written after the result so that the flag is
	// correct when X is the flag register
	case instructions.Or:
		*vx |= vy
		st.V[Flag] = 0
	case instructions.And:
		*vx &= vy
		st.V[Flag] = 0
	case instructions.Xor:
		*vx ^= vy
		st.V[Flag] = 0
	case instructions.AddReg:
		sum := uint16(*vx) + uint16(vy)
		*vx = uint8(sum)
		st.V[Flag] = uint8(sum >> 8)
	case instructions.SubYFromX:
		x := *vx
		*vx = x - vy
		st.V[Flag] = flag(x >= vy)
	case instructions.SubXFromY:
		x := *vx
		*vx = vy - x
		st.V[Flag] = flag(vy >= x)
	case instructions.ShiftRight:
		if quirks.Has(compat.ShiftUsesVY) {
			*vx = vy
		}
		out := *vx & 0x01
		*vx >>= 1
		st.V[Flag] = out
	case instructions.ShiftLeft:
		if quirks.Has(compat.ShiftUsesVY) {
			*vx = vy
		}
		out := *vx >> 7
		*vx <<= 1
		st.V[Flag] = out

	case instructions.SetIndex:
		st.I = op.NNN
	case instructions.SetIndexWide:
		w, err := st.Mem.ReadWord(st.PC + 2)
		if err != nil {
			return res, outOfRange(err)
		}
		st.I = w
		res.Wide = w
	case instructions.AddIndex:
		st.I += uint16(*vx)
	case instructions.FontAddress:
		st.I = memory.GlyphAddress(*vx)

	case instructions.Random:
		*vx = mc.rand.Uint8() & op.NN

	case instructions.Draw:
		ready, err := mc.draw(quirks, op, fb)
		if err != nil {
			return res, err
		}
		if !ready {
			res.Status = execution.NotReady
			return res, nil
		}

	case instructions.WaitKey:
		// the wait resolves when the key found by the previous scan is
		// released
		if fb.LastKeyProbePressed && !mc.probe(fb, *vx) {
			break
		}
		for k := range uint8(peripherals.NumKeys) {
			if mc.probe(fb, k) {
				*vx = k
				break
			}
		}
		res.Status = execution.NotReady
		return res, nil

	case instructions.GetDelay:
		*vx = st.Delay
	case instructions.SetDelay:
		st.Delay = *vx
	case instructions.SetSound:
		st.Sound = *vx

	case instructions.BCD:
		if err := st.Mem.InRange(st.I, 3); err != nil {
			return res, outOfRange(err)
		}
		_ = st.Mem.Write(st.I, 0, *vx/100)
		_ = st.Mem.Write(st.I, 1, *vx/10%10)
		_ = st.Mem.Write(st.I, 2, *vx%10)

	case instructions.StoreRegisters:
		n := int(op.X) + 1
		if err := st.Mem.InRange(st.I, n); err != nil {
			return res, outOfRange(err)
		}
		for i := range n {
			_ = st.Mem.Write(st.I, i, st.V[i])
		}
		if quirks.Has(compat.IndexIncrementOnLoadStore) {
			st.I += uint16(n)
		}
	case instructions.LoadRegisters:
		n := int(op.X) + 1
		data, err := st.Mem.Slice(st.I, n)
		if err != nil {
			return res, outOfRange(err)
		}
		copy(st.V[:n], data)
		if quirks.Has(compat.IndexIncrementOnLoadStore) {
			st.I += uint16(n)
		}

	case instructions.AudioPattern:
		data, err := st.Mem.Slice(st.I, peripherals.PatternSize)
		if err != nil {
			return res, outOfRange(err)
		}
		var pattern [peripherals.PatternSize]uint8
		copy(pattern[:], data)
		mc.audio.SetPattern(pattern)
	case instructions.SetPitch:
		mc.audio.SetPitch(*vx)

	default:
		return res, fmt.Errorf("cpu: unhandled operation (%v)", op.Kind)
	}

	// a skip from the last instruction in memory
	if next > 0xffff {
		return res, outOfRange(fmt.Errorf("program counter overflow at %#04x", st.PC))
	}

	st.PC = uint16(next)

	return res, nil
}

// draw returns false if the operation must wait for the display to be
// refreshed
func (mc *CPU) draw(quirks compat.Quirk, op instructions.Operation, fb *framebuffer.Framebuffer) (bool, error) {
	st := mc.State

	if quirks.Has(compat.DisplayWait) && !fb.JustRefreshed {
		return false, nil
	}

	x := int(st.V[op.X]) % fb.Width()
	y := int(st.V[op.Y]) % fb.Height()

	width := 8
	height := int(op.N)
	if height == 0 && quirks.Has(compat.BigSpriteOnZeroHeight) {
		width = 16
		height = 16
	}

	sprite, err := st.Mem.Slice(st.I, height*width/8)
	if err != nil {
		return false, outOfRange(err)
	}

	fb.JustRefreshed = false
	st.V[Flag] = 0

	var collision bool
	for row := range height {
		var bits uint16
		if width == 16 {
			bits = uint16(sprite[row*2])<<8 | uint16(sprite[row*2+1])
		} else {
			bits = uint16(sprite[row]) << 8
		}
		for col := range width {
			if bits&(0x8000>>col) != 0 && fb.Toggle(x+col, y+row) {
				collision = true
			}
		}
	}

	st.V[Flag] = flag(collision)

	return true, nil
}
