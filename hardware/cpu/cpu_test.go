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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/compat"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/framebuffer"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/test"
)

var allModes = []compat.Mode{compat.Legacy, compat.Extended, compat.ExtendedXO}

func TestInitialState(t *testing.T) {
	tm := newTestMachine(t, compat.Legacy)
	st := tm.mc.State
	test.ExpectEquality(t, st.PC, uint16(0x200))
	test.ExpectEquality(t, st.I, uint16(0))
	test.ExpectEquality(t, len(st.Stack), 0)
	test.ExpectEquality(t, st.Mem.Peek(memory.FontBase), uint8(0xf0))
	test.ExpectEquality(t, st.Mode, compat.Legacy)
	test.ExpectFailure(t, tm.mc.LastResult.Final)
}

func TestFetchDoesNotAdvance(t *testing.T) {
	tm := newTestMachine(t, compat.Legacy)
	tm.load(0x6a3c)
	addr, w, err := tm.mc.Fetch()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, addr, uint16(0x200))
	test.ExpectEquality(t, w, uint16(0x6a3c))
	test.ExpectEquality(t, tm.mc.State.PC, uint16(0x200))

	res := tm.step(t, 1)
	test.ExpectEquality(t, tm.mc.State.V[0xa], uint8(0x3c))
	test.ExpectEquality(t, tm.mc.State.PC, uint16(0x202))
	test.ExpectEquality(t, res.Address, uint16(0x200))
	test.ExpectEquality(t, res.Status, execution.Completed)
	test.ExpectEquality(t, tm.mc.LastResult, res)
}

func TestAddReg(t *testing.T) {
	tm := newTestMachine(t, compat.Legacy)
	tm.run(t, 0x61c8, 0x6264, 0x8124) // V1=200 V2=100 V1+=V2
	test.ExpectEquality(t, tm.mc.State.V[1], uint8(44))
	test.ExpectEquality(t, tm.mc.State.V[cpu.Flag], uint8(1))

	tm.run(t, 0x6101, 0x8124)
	test.ExpectEquality(t, tm.mc.State.V[1], uint8(101))
	test.ExpectEquality(t, tm.mc.State.V[cpu.Flag], uint8(0))

	// constant addition wraps and never touches the flag
	tm.run(t, 0x6f07, 0x61ff, 0x7102)
	test.ExpectEquality(t, tm.mc.State.V[1], uint8(1))
	test.ExpectEquality(t, tm.mc.State.V[cpu.Flag], uint8(7))
}

func TestSub(t *testing.T) {
	tm := newTestMachine(t, compat.Legacy)

	// V1 - V2 with borrow
	tm.run(t, 0x6164, 0x62c8, 0x8125)
	test.ExpectEquality(t, tm.mc.State.V[1], uint8(156))
	test.ExpectEquality(t, tm.mc.State.V[cpu.Flag], uint8(0))

	// V1 - V2 without borrow
	tm.run(t, 0x61c8, 0x6264, 0x8125)
	test.ExpectEquality(t, tm.mc.State.V[1], uint8(100))
	test.ExpectEquality(t, tm.mc.State.V[cpu.Flag], uint8(1))

	// equal values are not a borrow
	tm.run(t, 0x6132, 0x6232, 0x8125)
	test.ExpectEquality(t, tm.mc.State.V[1], uint8(0))
	test.ExpectEquality(t, tm.mc.State.V[cpu.Flag], uint8(1))

	// V2 - V1 stored in V1
	tm.run(t, 0x6164, 0x62c8, 0x8127)
	test.ExpectEquality(t, tm.mc.State.V[1], uint8(100))
	test.ExpectEquality(t, tm.mc.State.V[cpu.Flag], uint8(1))

	tm.run(t, 0x61c8, 0x6264, 0x8127)
	test.ExpectEquality(t, tm.mc.State.V[1], uint8(156))
	test.ExpectEquality(t, tm.mc.State.V[cpu.Flag], uint8(0))
}

func TestLogic(t *testing.T) {
	tm := newTestMachine(t, compat.Legacy)

	tm.run(t, 0x6f05, 0x61f0, 0x620f, 0x8121)
	test.ExpectEquality(t, tm.mc.State.V[1], uint8(0xff))
	test.ExpectEquality(t, tm.mc.State.V[cpu.Flag], uint8(0))

	tm.run(t, 0x6f05, 0x61f3, 0x620f, 0x8122)
	test.ExpectEquality(t, tm.mc.State.V[1], uint8(0x03))
	test.ExpectEquality(t, tm.mc.State.V[cpu.Flag], uint8(0))

	tm.run(t, 0x6f05, 0x61ff, 0x620f, 0x8123)
	test.ExpectEquality(t, tm.mc.State.V[1], uint8(0xf0))
	test.ExpectEquality(t, tm.mc.State.V[cpu.Flag], uint8(0))

	// the flag is written last when it is also the destination
	tm.run(t, 0x6f05, 0x6101, 0x8f11)
	test.ExpectEquality(t, tm.mc.State.V[cpu.Flag], uint8(0))
	tm.run(t, 0x6ff0, 0x6120, 0x8f14)
	test.ExpectEquality(t, tm.mc.State.V[cpu.Flag], uint8(1))
}

func TestShift(t *testing.T) {
	for _, m := range []compat.Mode{compat.Extended, compat.ExtendedXO} {
		tm := newTestMachine(t, m)

		tm.run(t, 0x6181, 0x6200, 0x812e)
		test.ExpectEquality(t, tm.mc.State.V[1], uint8(0x02), m)
		test.ExpectEquality(t, tm.mc.State.V[cpu.Flag], uint8(1), m)

		tm.run(t, 0x6103, 0x812e)
		test.ExpectEquality(t, tm.mc.State.V[1], uint8(0x06), m)
		test.ExpectEquality(t, tm.mc.State.V[cpu.Flag], uint8(0), m)

		tm.run(t, 0x6103, 0x8126)
		test.ExpectEquality(t, tm.mc.State.V[1], uint8(0x01), m)
		test.ExpectEquality(t, tm.mc.State.V[cpu.Flag], uint8(1), m)

		tm.run(t, 0x6102, 0x8126)
		test.ExpectEquality(t, tm.mc.State.V[1], uint8(0x01), m)
		test.ExpectEquality(t, tm.mc.State.V[cpu.Flag], uint8(0), m)
	}

	// legacy shifts copy VY into VX first
	tm := newTestMachine(t, compat.Legacy)
	tm.run(t, 0x6100, 0x6281, 0x812e)
	test.ExpectEquality(t, tm.mc.State.V[1], uint8(0x02))
	test.ExpectEquality(t, tm.mc.State.V[2], uint8(0x81))
	test.ExpectEquality(t, tm.mc.State.V[cpu.Flag], uint8(1))

	tm.run(t, 0x6100, 0x6203, 0x8126)
	test.ExpectEquality(t, tm.mc.State.V[1], uint8(0x01))
	test.ExpectEquality(t, tm.mc.State.V[cpu.Flag], uint8(1))
}

func TestBCD(t *testing.T) {
	for _, m := range allModes {
		tm := newTestMachine(t, m)
		tm.run(t, 0x6a9d, 0xa300, 0xfa33)
		test.ExpectEquality(t, tm.mc.State.Mem.Peek(0x300), uint8(1), m)
		test.ExpectEquality(t, tm.mc.State.Mem.Peek(0x301), uint8(5), m)
		test.ExpectEquality(t, tm.mc.State.Mem.Peek(0x302), uint8(7), m)
		test.ExpectEquality(t, tm.mc.State.I, uint16(0x300), m)
	}
}

func TestFontAddress(t *testing.T) {
	tm := newTestMachine(t, compat.Legacy)
	tm.run(t, 0x650a, 0xf529)
	test.ExpectEquality(t, tm.mc.State.I, uint16(0x82))

	// only the low nibble is used
	tm.run(t, 0x65f3, 0xf529)
	test.ExpectEquality(t, tm.mc.State.I, uint16(0x50+3*5))
}

func TestIndex(t *testing.T) {
	tm := newTestMachine(t, compat.Legacy)
	tm.run(t, 0xa123)
	test.ExpectEquality(t, tm.mc.State.I, uint16(0x123))

	tm.run(t, 0x6410, 0xf41e)
	test.ExpectEquality(t, tm.mc.State.I, uint16(0x133))
}

func TestDrawCollision(t *testing.T) {
	for _, m := range allModes {
		tm := newTestMachine(t, m)

		// 8x1 sprite of all set bits at 0x300
		tm.mc.State.Mem.Poke(0x300, 0xff)
		tm.run(t, 0xa300, 0x6004, 0x6102, 0xd011)
		test.ExpectEquality(t, tm.mc.State.V[cpu.Flag], uint8(0), m)
		test.ExpectEquality(t, tm.fb.LitCount(), 8*4, m)

		tm.fb.Present()
		tm.run(t, 0xd011)
		test.ExpectEquality(t, tm.mc.State.V[cpu.Flag], uint8(1), m)
		test.ExpectEquality(t, tm.fb.LitCount(), 0, m)
	}
}

func TestDrawWait(t *testing.T) {
	for _, m := range allModes {
		tm := newTestMachine(t, m)
		tm.mc.State.Mem.Poke(0x300, 0x80)
		tm.run(t, 0xa300, 0xd011)
		test.ExpectFailure(t, tm.fb.JustRefreshed, m)

		// a second draw must wait for the display to be presented
		pc := tm.mc.State.PC
		tm.load(0xd011)
		res := tm.step(t, 1)
		test.ExpectEquality(t, res.Status, execution.NotReady, m)
		test.ExpectEquality(t, tm.mc.State.PC, pc, m)
		test.ExpectEquality(t, tm.fb.LitCount(), 4, m)

		// and is still waiting until the frame is presented
		res = tm.step(t, 1)
		test.ExpectEquality(t, res.Status, execution.NotReady, m)

		tm.fb.Present()
		res = tm.step(t, 1)
		test.ExpectEquality(t, res.Status, execution.Completed, m)
		test.ExpectEquality(t, tm.mc.State.PC, pc+2, m)
		test.ExpectEquality(t, tm.fb.LitCount(), 0, m)
	}
}

func TestDrawWrapAndClip(t *testing.T) {
	tm := newTestMachine(t, compat.Extended)
	tm.mc.State.Mem.Poke(0x300, 0xff)

	// x coordinate wraps modulo the logical width and the sprite is clipped
	// at the right hand edge
	tm.run(t, 0xa300, 0x6000+64+60, 0x6100, 0xd011)
	test.ExpectEquality(t, tm.fb.LitCount(), 4*4)
	test.ExpectSuccess(t, tm.fb.Lit(127, 0))
	test.ExpectFailure(t, tm.fb.Lit(0, 0))
}

func TestDrawZeroHeight(t *testing.T) {
	tm := newTestMachine(t, compat.Legacy)
	tm.mc.State.Mem.Poke(0x300, 0xff)
	tm.run(t, 0x6f01, 0xa300, 0xd000)
	test.ExpectEquality(t, tm.fb.LitCount(), 0)
	test.ExpectEquality(t, tm.mc.State.V[cpu.Flag], uint8(0))

	for _, m := range []compat.Mode{compat.Extended, compat.ExtendedXO} {
		tm := newTestMachine(t, m)
		for i := range uint16(32) {
			tm.mc.State.Mem.Poke(0x300+i, 0xff)
		}
		tm.run(t, 0x00ff, 0xa300, 0xd000)
		test.ExpectEquality(t, tm.fb.LitCount(), 16*16, m)
		test.ExpectSuccess(t, tm.fb.Lit(15, 15), m)
		test.ExpectFailure(t, tm.fb.Lit(16, 0), m)
	}
}

func TestModeGating(t *testing.T) {
	for _, m := range []compat.Mode{compat.Legacy, compat.Extended} {
		for _, w := range []uint16{0xf000, 0xf002, 0x5012, 0x5013, 0xf03a} {
			tm := newTestMachine(t, m)
			tm.load(w)
			_, err := tm.mc.Step(tm.fb)
			test.ExpectSuccess(t, curated.Is(err, cpu.UnsupportedInMode), m, w)
			test.ExpectEquality(t, tm.mc.State.PC, uint16(0x200), m, w)
		}
	}

	for _, w := range []uint16{0x00c1, 0x00d1, 0x00fe, 0x00ff} {
		tm := newTestMachine(t, compat.Legacy)
		tm.load(w)
		_, err := tm.mc.Step(tm.fb)
		test.ExpectSuccess(t, curated.Is(err, cpu.UnsupportedInMode), w)
	}
}

func TestSetIndexWide(t *testing.T) {
	tm := newTestMachine(t, compat.ExtendedXO)
	tm.fb.JustRefreshed = false
	tm.load(0xf000, 0x1234)
	res := tm.step(t, 1)
	test.ExpectEquality(t, res.Op.Kind, instructions.SetIndexWide)
	test.ExpectEquality(t, res.Wide, uint16(0x1234))
	test.ExpectEquality(t, tm.mc.State.I, uint16(0x1234))
	test.ExpectEquality(t, tm.mc.State.PC, uint16(0x204))
	test.ExpectFailure(t, tm.fb.JustRefreshed)
}

func TestAudio(t *testing.T) {
	tm := newTestMachine(t, compat.ExtendedXO)
	for i := range uint16(16) {
		tm.mc.State.Mem.Poke(0x300+i, uint8(i))
	}
	tm.run(t, 0xa300, 0xf002)
	test.ExpectSuccess(t, tm.audio.patternSet)
	test.ExpectEquality(t, tm.audio.pattern[15], uint8(15))
	test.ExpectSuccess(t, tm.fb.JustRefreshed)

	// pitch is the value of VX
	tm.run(t, 0x6570, 0xf53a)
	test.ExpectSuccess(t, tm.audio.pitchSet)
	test.ExpectEquality(t, tm.audio.pitch, uint8(0x70))

	// pattern must be inside memory
	tm.mc.State.I = 0xfff8
	tm.load(0xf002)
	_, err := tm.mc.Step(tm.fb)
	test.ExpectSuccess(t, curated.Is(err, cpu.OutOfRange))
}

func TestResolution(t *testing.T) {
	tm := newTestMachine(t, compat.ExtendedXO)
	tm.fb.Toggle(0, 0)
	tm.run(t, 0x00ff)
	test.ExpectEquality(t, tm.fb.Resolution, framebuffer.HighRes)
	test.ExpectEquality(t, tm.fb.LitCount(), 0)

	tm = newTestMachine(t, compat.Extended)
	tm.fb.Toggle(0, 0)
	tm.run(t, 0x00ff)
	test.ExpectEquality(t, tm.fb.Resolution, framebuffer.HighRes)
	test.ExpectEquality(t, tm.fb.LitCount(), 4)

	tm.run(t, 0x00fe)
	test.ExpectEquality(t, tm.fb.Resolution, framebuffer.LowRes)
	test.ExpectEquality(t, tm.fb.LitCount(), 4)
}

func TestScroll(t *testing.T) {
	tm := newTestMachine(t, compat.Extended)
	tm.run(t, 0x00ff)
	tm.fb.Toggle(10, 10)

	// the number of rows scrolled is one more than the operand
	tm.run(t, 0x00c0)
	test.ExpectSuccess(t, tm.fb.Lit(10, 11))
	test.ExpectFailure(t, tm.fb.Lit(10, 10))
	tm.run(t, 0x00c2)
	test.ExpectSuccess(t, tm.fb.Lit(10, 14))
	tm.run(t, 0x00d2)
	test.ExpectSuccess(t, tm.fb.Lit(10, 11))
	tm.run(t, 0x00fb)
	test.ExpectSuccess(t, tm.fb.Lit(14, 11))
	tm.run(t, 0x00fc, 0x00fc)
	test.ExpectSuccess(t, tm.fb.Lit(6, 11))
	test.ExpectEquality(t, tm.fb.LitCount(), 1)

	tm.run(t, 0x00e0)
	test.ExpectEquality(t, tm.fb.LitCount(), 0)

	// horizontal scrolling is available in legacy mode
	tm = newTestMachine(t, compat.Legacy)
	tm.run(t, 0x00fb, 0x00fc)
}

func TestStoreLoadRoundTrip(t *testing.T) {
	for _, m := range allModes {
		tm := newTestMachine(t, m)
		for i := range uint8(6) {
			tm.mc.State.V[i] = 0x10 + i
		}
		tm.run(t, 0xa400, 0xf555)

		if m == compat.Legacy {
			test.ExpectEquality(t, tm.mc.State.I, uint16(0x406), m)
		} else {
			test.ExpectEquality(t, tm.mc.State.I, uint16(0x400), m)
		}

		for i := range 6 {
			tm.mc.State.V[i] = 0
		}

		tm.run(t, 0xa400, 0xf565)
		for i := range uint8(6) {
			test.ExpectEquality(t, tm.mc.State.V[i], 0x10+i, m)
		}
		test.ExpectEquality(t, tm.mc.State.V[6], uint8(0), m)

		if m == compat.Legacy {
			test.ExpectEquality(t, tm.mc.State.I, uint16(0x406), m)
		} else {
			test.ExpectEquality(t, tm.mc.State.I, uint16(0x400), m)
		}
	}
}

func TestSaveLoadRange(t *testing.T) {
	tm := newTestMachine(t, compat.ExtendedXO)
	for i := range uint8(16) {
		tm.mc.State.V[i] = i
	}

	tm.run(t, 0xa500, 0x5242)
	test.ExpectEquality(t, tm.mc.State.Mem.Peek(0x500), uint8(2))
	test.ExpectEquality(t, tm.mc.State.Mem.Peek(0x502), uint8(4))
	test.ExpectEquality(t, tm.mc.State.Mem.Peek(0x503), uint8(0))
	test.ExpectEquality(t, tm.mc.State.I, uint16(0x500))

	// nothing is copied when X is greater than Y
	tm.run(t, 0xa600, 0x5422)
	for a := uint16(0x600); a <= 0x602; a++ {
		test.ExpectEquality(t, tm.mc.State.Mem.Peek(a), uint8(0), a)
	}
	tm.run(t, 0xa500, 0x5c23)
	test.ExpectEquality(t, tm.mc.State.V[0xc], uint8(0xc))

	tm.run(t, 0xa500, 0x5ac3)
	test.ExpectEquality(t, tm.mc.State.V[0xa], uint8(2))
	test.ExpectEquality(t, tm.mc.State.V[0xb], uint8(3))
	test.ExpectEquality(t, tm.mc.State.V[0xc], uint8(4))
	test.ExpectEquality(t, tm.mc.State.I, uint16(0x500))
}

func TestOutOfRange(t *testing.T) {
	tm := newTestMachine(t, compat.Extended)
	tm.run(t, 0xafff)
	tm.mc.State.I = 0xfffe
	tm.load(0xf555)
	pc := tm.mc.State.PC
	_, err := tm.mc.Step(tm.fb)
	test.ExpectSuccess(t, curated.Is(err, cpu.OutOfRange))
	test.ExpectSuccess(t, curated.Has(err, memory.OutOfRange))
	test.ExpectEquality(t, tm.mc.State.PC, pc)

	tm.load(0xf333)
	_, err = tm.mc.Step(tm.fb)
	test.ExpectSuccess(t, curated.Is(err, cpu.OutOfRange))

	tm.mc.State.I = 0xfffd
	_, err = tm.mc.Step(tm.fb)
	test.ExpectSuccess(t, err)

	// fetch at the very end of memory
	tm.mc.State.PC = 0xffff
	_, err = tm.mc.Step(tm.fb)
	test.ExpectSuccess(t, curated.Is(err, cpu.OutOfRange))

	// the last word of memory can hold a jump or a return
	tm.mc.State.PC = 0xfffe
	tm.run(t, 0x1300)
	test.ExpectEquality(t, tm.mc.State.PC, uint16(0x300))

	tm.mc.State.PC = 0xfffe
	tm.mc.State.Stack = append(tm.mc.State.Stack, 0x400)
	tm.run(t, 0x00ee)
	test.ExpectEquality(t, tm.mc.State.PC, uint16(0x400))
	test.ExpectEquality(t, len(tm.mc.State.Stack), 0)

	// but not a call, which has nowhere to return to
	tm.mc.State.PC = 0xfffe
	tm.load(0x2300)
	_, err = tm.mc.Step(tm.fb)
	test.ExpectSuccess(t, curated.Is(err, cpu.OutOfRange))
	test.ExpectEquality(t, tm.mc.State.PC, uint16(0xfffe))
	test.ExpectEquality(t, len(tm.mc.State.Stack), 0)

	// or an operation that continues to the next instruction
	tm.mc.State.V[0] = 0
	tm.load(0x6005)
	_, err = tm.mc.Step(tm.fb)
	test.ExpectSuccess(t, curated.Is(err, cpu.OutOfRange))
	test.ExpectEquality(t, tm.mc.State.V[0], uint8(0))
}

func TestCallReturn(t *testing.T) {
	tm := newTestMachine(t, compat.Legacy)
	tm.load(0x2300)
	tm.mc.State.PC = 0x300
	tm.load(0x00ee)
	tm.mc.State.PC = 0x200

	tm.step(t, 1)
	test.ExpectEquality(t, tm.mc.State.PC, uint16(0x300))
	test.ExpectEquality(t, len(tm.mc.State.Stack), 1)

	tm.step(t, 1)
	test.ExpectEquality(t, tm.mc.State.PC, uint16(0x202))
	test.ExpectEquality(t, len(tm.mc.State.Stack), 0)

	// return with an empty stack
	tm.mc.State.PC = 0x300
	_, err := tm.mc.Step(tm.fb)
	test.ExpectSuccess(t, curated.Is(err, cpu.OutOfRange))
	test.ExpectSuccess(t, curated.Has(err, cpu.StackUnderflow))
	test.ExpectEquality(t, tm.mc.State.PC, uint16(0x300))
}

func TestJumps(t *testing.T) {
	tm := newTestMachine(t, compat.Legacy)
	tm.run(t, 0x1456)
	test.ExpectEquality(t, tm.mc.State.PC, uint16(0x456))

	// offset is always V0
	tm.run(t, 0x6010, 0x6520, 0xb300)
	test.ExpectEquality(t, tm.mc.State.PC, uint16(0x310))
}

func TestSkips(t *testing.T) {
	tm := newTestMachine(t, compat.Legacy)

	res := tm.run(t, 0x6105, 0x3105)
	test.ExpectSuccess(t, res.Skipped)
	test.ExpectEquality(t, tm.mc.State.PC, uint16(0x206))

	tm.mc.State.PC = 0x200
	res = tm.run(t, 0x4105)
	test.ExpectFailure(t, res.Skipped)
	test.ExpectEquality(t, tm.mc.State.PC, uint16(0x202))

	tm.mc.State.PC = 0x200
	res = tm.run(t, 0x6205, 0x5120)
	test.ExpectSuccess(t, res.Skipped)
	test.ExpectEquality(t, tm.mc.State.PC, uint16(0x206))

	tm.mc.State.PC = 0x200
	res = tm.run(t, 0x9120)
	test.ExpectFailure(t, res.Skipped)

	// key skips
	tm.mc.State.PC = 0x200
	tm.keys.Press(0x5)
	res = tm.run(t, 0xe19e)
	test.ExpectSuccess(t, res.Skipped)
	test.ExpectSuccess(t, tm.fb.LastKeyProbePressed)

	tm.mc.State.PC = 0x200
	res = tm.run(t, 0xe1a1)
	test.ExpectFailure(t, res.Skipped)

	tm.keys.Release(0x5)
	tm.mc.State.PC = 0x200
	res = tm.run(t, 0xe1a1)
	test.ExpectSuccess(t, res.Skipped)
	test.ExpectFailure(t, tm.fb.LastKeyProbePressed)
}

func TestWaitKey(t *testing.T) {
	tm := newTestMachine(t, compat.Legacy)
	tm.load(0xf30a)

	// nothing pressed
	res := tm.step(t, 1)
	test.ExpectEquality(t, res.Status, execution.NotReady)
	test.ExpectEquality(t, tm.mc.State.PC, uint16(0x200))

	// key pressed. the key is recorded but the wait does not resolve while
	// the key is held
	tm.keys.Press(0xb)
	res = tm.step(t, 1)
	test.ExpectEquality(t, res.Status, execution.NotReady)
	test.ExpectEquality(t, tm.mc.State.V[3], uint8(0xb))
	res = tm.step(t, 1)
	test.ExpectEquality(t, res.Status, execution.NotReady)
	test.ExpectEquality(t, tm.mc.State.PC, uint16(0x200))

	// release resolves the wait
	tm.keys.Release(0xb)
	res = tm.step(t, 1)
	test.ExpectEquality(t, res.Status, execution.Completed)
	test.ExpectEquality(t, tm.mc.State.V[3], uint8(0xb))
	test.ExpectEquality(t, tm.mc.State.PC, uint16(0x202))
}

func TestTimers(t *testing.T) {
	tm := newTestMachine(t, compat.Legacy)
	tm.run(t, 0x6102, 0xf115, 0xf118)
	test.ExpectEquality(t, tm.mc.State.Delay, uint8(2))
	test.ExpectEquality(t, tm.mc.State.Sound, uint8(2))

	test.ExpectSuccess(t, tm.mc.State.DecrementTimers())
	test.ExpectFailure(t, tm.mc.State.DecrementTimers())
	test.ExpectFailure(t, tm.mc.State.DecrementTimers())
	test.ExpectEquality(t, tm.mc.State.Delay, uint8(0))

	tm.mc.State.Delay = 9
	tm.run(t, 0xf407)
	test.ExpectEquality(t, tm.mc.State.V[4], uint8(9))
}

func TestRandom(t *testing.T) {
	a := newTestMachine(t, compat.Legacy)
	b := newTestMachine(t, compat.Legacy)

	for range 20 {
		a.mc.State.PC = 0x200
		b.mc.State.PC = 0x200
		a.run(t, 0xc10f)
		b.run(t, 0xc10f)
		test.ExpectEquality(t, a.mc.State.V[1], b.mc.State.V[1])
		test.ExpectEquality(t, a.mc.State.V[1]&0xf0, uint8(0))
	}
}

func TestMalformed(t *testing.T) {
	tm := newTestMachine(t, compat.ExtendedXO)
	tm.load(0x5121)
	_, err := tm.mc.Step(tm.fb)
	test.ExpectSuccess(t, curated.Is(err, instructions.MalformedInstruction))
	test.ExpectEquality(t, tm.mc.State.PC, uint16(0x200))
}

func TestReset(t *testing.T) {
	tm := newTestMachine(t, compat.Legacy)
	tm.run(t, 0x6a3c, 0x2300)
	tm.mc.Reset()
	test.ExpectEquality(t, tm.mc.State.PC, uint16(0x200))
	test.ExpectEquality(t, tm.mc.State.V[0xa], uint8(0))
	test.ExpectEquality(t, len(tm.mc.State.Stack), 0)
	test.ExpectFailure(t, tm.mc.LastResult.Final)

	// memory is untouched
	test.ExpectEquality(t, tm.mc.State.Mem.Peek(0x200), uint8(0x6a))
}
