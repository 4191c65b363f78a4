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

	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/hardware/compat"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/framebuffer"
	"github.com/jetsetilly/gopher8/hardware/peripherals"
	"github.com/jetsetilly/gopher8/test"
)

type audioRecorder struct {
	pattern    [peripherals.PatternSize]uint8
	patternSet bool
	pitch      uint8
	pitchSet   bool
	playing    bool
}

func (a *audioRecorder) SetPattern(p [peripherals.PatternSize]uint8) {
	a.pattern = p
	a.patternSet = true
}

func (a *audioRecorder) SetPitch(p uint8) {
	a.pitch = p
	a.pitchSet = true
}

func (a *audioRecorder) SetPlaying(p bool) {
	a.playing = p
}

type testMachine struct {
	mc    *cpu.CPU
	fb    *framebuffer.Framebuffer
	keys  *peripherals.Keypad
	audio *audioRecorder
}

func newTestMachine(t *testing.T, mode compat.Mode) *testMachine {
	t.Helper()

	env, err := environment.NewEnvironment("test", nil)
	test.DemandSuccess(t, err)
	env.Random.Reseed(1)

	tm := &testMachine{
		fb:    framebuffer.NewFramebuffer(),
		keys:  &peripherals.Keypad{},
		audio: &audioRecorder{},
	}
	tm.mc = cpu.NewCPU(env, mode, tm.audio, tm.keys)
	return tm
}

// load instruction words at the current program counter
func (tm *testMachine) load(words ...uint16) {
	a := tm.mc.State.PC
	for _, w := range words {
		tm.mc.State.Mem.Poke(a, uint8(w>>8))
		tm.mc.State.Mem.Poke(a+1, uint8(w))
		a += 2
	}
}

// step the cpu the specified number of times. every step must succeed
func (tm *testMachine) step(t *testing.T, n int) execution.Result {
	t.Helper()

	var res execution.Result
	var err error
	for range n {
		res, err = tm.mc.Step(tm.fb)
		test.DemandSuccess(t, err)
		test.DemandSuccess(t, res.IsValid())
	}
	return res
}

// load words and execute them all
func (tm *testMachine) run(t *testing.T, words ...uint16) execution.Result {
	t.Helper()
	tm.load(words...)
	return tm.step(t, len(words))
}
