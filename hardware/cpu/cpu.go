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
	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/hardware/compat"
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/framebuffer"
	"github.com/jetsetilly/gopher8/hardware/peripherals"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/random"
)

// Sentinel error patterns.
const (
	// the kind of operation and the mode
	UnsupportedInMode = "cpu: %v not supported in %v mode"

	// the error from the memory package or a StackUnderflow error
	OutOfRange = "cpu: out of range: %v"

	// the address of the return instruction
	StackUnderflow = "cpu: stack underflow at %#04x"
)

// CPU executes operations against the machine state.
type CPU struct {
	env *environment.Environment

	State *State

	audio peripherals.Audio
	input peripherals.Input
	rand  *random.Random

	// the result of the most recent execution
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU type. The audio
// and input arguments can be nil.
func NewCPU(env *environment.Environment, mode compat.Mode, audio peripherals.Audio, input peripherals.Input) *CPU {
	if audio == nil {
		audio = peripherals.NullAudio{}
	}
	if input == nil {
		input = &peripherals.Keypad{}
	}
	mc := &CPU{
		env:   env,
		State: NewState(env, mode),
		audio: audio,
		input: input,
	}
	if env != nil {
		mc.rand = env.Random
	} else {
		mc.rand = random.NewRandom(0)
	}
	return mc
}

func (mc *CPU) String() string {
	return mc.State.String()
}

// Reset the CPU state. Memory is not changed.
func (mc *CPU) Reset() {
	mc.State.Reset()
	mc.LastResult.Reset()
}

// Fetch returns the address of the program counter and the instruction word
// found there. The program counter is not changed.
func (mc *CPU) Fetch() (uint16, uint16, error) {
	pc := mc.State.PC
	w, err := mc.State.Mem.ReadWord(pc)
	if err != nil {
		return pc, 0, curated.Errorf(OutOfRange, err)
	}
	return pc, w, nil
}

// Step fetches, decodes and executes the instruction at the program counter.
func (mc *CPU) Step(fb *framebuffer.Framebuffer) (execution.Result, error) {
	pc, w, err := mc.Fetch()
	if err != nil {
		return execution.Result{Address: pc}, err
	}

	op, err := instructions.Decode(w)
	if err != nil {
		logger.Logf(mc.env, "cpu", "%v at %#04x", err, pc)
		return execution.Result{Address: pc, Op: op}, err
	}

	return mc.Execute(op, fb)
}

// Execute a decoded operation. The operation is assumed to be the instruction
// at the program counter.
//
// On error the program counter is not changed. On success the program counter
// is changed unless the result status is execution.NotReady.
func (mc *CPU) Execute(op instructions.Operation, fb *framebuffer.Framebuffer) (execution.Result, error) {
	st := mc.State

	res := execution.Result{
		Address: st.PC,
		Op:      op,
	}

	capability := compat.Lookup(st.Mode, op.Kind)
	if !capability.Available {
		err := curated.Errorf(UnsupportedInMode, op.Kind, st.Mode)
		logger.Logf(mc.env, "cpu", "%v at %#04x", err, st.PC)
		return res, err
	}

	// operations that replace the program counter outright never need the
	// address of the following instruction
	next := int(st.PC) + op.Definition().Bytes
	if next > 0xffff && !replacesPC(op.Kind) {
		return res, curated.Errorf(OutOfRange, fmt.Errorf("program counter overflow at %#04x", st.PC))
	}

	var err error
	res, err = mc.execute(res, capability.Quirks, next, fb)
	if err != nil {
		return res, err
	}

	res.Final = true
	mc.LastResult = res

	return res, nil
}

func replacesPC(kind instructions.Kind) bool {
	switch kind {
	case instructions.Jump, instructions.JumpOffset, instructions.Return:
		return true
	}
	return false
}

// probe the input for the key and record the result in the framebuffer
func (mc *CPU) probe(fb *framebuffer.Framebuffer, key uint8) bool {
	fb.LastKeyProbePressed = mc.input.IsPressed(key & 0x0f)
	return fb.LastKeyProbePressed
}

func outOfRange(err error) error {
	return curated.Errorf(OutOfRange, err)
}
