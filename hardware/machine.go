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


package hardware

import (
	"io"

	"github.com/jetsetilly/gopher8/audio"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/hardware/compat"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/framebuffer"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/peripherals"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
)

// Sentinel error patterns.
const (
	NoEnvironment = "machine: no environment"
)

// Machine is the main container for the emulated components.
type Machine struct {
	env *environment.Environment

	CPU *cpu.CPU
	Mem *memory.Memory
	FB  *framebuffer.Framebuffer

	audio   peripherals.Audio
	samples SampleSource

	renderers []PixelRenderer
	mixers    []AudioMixer

	// the number of frames completed since the last reset
	FrameNum int

	// the number of instructions executed since the last reset. an
	// instruction that is not ready counts
	InstructionCount int

	// fractional number of samples carried over to the next frame
	sampleDebt float64
	sampleBuf  []uint8
}

// NewMachine creates a new Machine and everything associated with the
// hardware. It is used for all aspects of emulation: debugging sessions,
// performance testing and regular play.
//
// The audio and input arguments can be nil.
func NewMachine(env *environment.Environment, mode compat.Mode, aud peripherals.Audio, input peripherals.Input) (*Machine, error) {
	if env == nil {
		return nil, curated.Errorf(NoEnvironment)
	}

	if aud == nil {
		aud = peripherals.NullAudio{}
	}

	m := &Machine{
		env:   env,
		audio: aud,
		FB:    framebuffer.NewFramebuffer(),
	}

	m.CPU = cpu.NewCPU(env, mode, aud, input)
	m.Mem = m.CPU.State.Mem

	if s, ok := aud.(SampleSource); ok {
		m.samples = s
	}

	return m, nil
}

func (m *Machine) String() string {
	return m.CPU.String()
}

// Preferences returns the preferences used by the machine.
func (m *Machine) Preferences() *preferences.Preferences {
	return m.env.Prefs
}

// Mode returns the compatibility mode of the machine.
func (m *Machine) Mode() compat.Mode {
	return m.CPU.State.Mode
}

// AttachPixelRenderer adds a renderer to the machine. A renderer can only be
// attached once.
func (m *Machine) AttachPixelRenderer(r PixelRenderer) {
	for _, e := range m.renderers {
		if e == r {
			return
		}
	}
	m.renderers = append(m.renderers, r)
}

// AttachAudioMixer adds a mixer to the machine. A mixer can only be attached
// once.
func (m *Machine) AttachAudioMixer(a AudioMixer) {
	for _, e := range m.mixers {
		if e == a {
			return
		}
	}
	m.mixers = append(m.mixers, a)
}

// LoadROM copies the data from the reader into memory at the program start
// address and resets the machine. Returns the number of bytes copied.
func (m *Machine) LoadROM(r io.Reader) (int, error) {
	n, err := m.Mem.LoadROM(r)
	if err != nil {
		return n, err
	}
	m.Reset()
	logger.Logf(m.env, "machine", "loaded %d bytes", n)
	return n, nil
}

// Reset the CPU and the framebuffer. Memory is not changed.
func (m *Machine) Reset() {
	m.CPU.Reset()
	*m.FB = *framebuffer.NewFramebuffer()
	m.audio.SetPlaying(false)
	m.FrameNum = 0
	m.InstructionCount = 0
	m.sampleDebt = 0
}

// Step the machine by one instruction. Timers are not changed and the
// framebuffer is not presented.
func (m *Machine) Step() (execution.Result, error) {
	m.InstructionCount++
	return m.CPU.Step(m.FB)
}

// RunFrame executes one frame's worth of instructions. The framebuffer is
// presented to every attached PixelRenderer, the timers are decremented and
// the audio for the frame is sent to every attached AudioMixer.
//
// An error stops the frame immediately and the frame count is not advanced.
func (m *Machine) RunFrame() error {
	ipf := m.env.Prefs.InstructionsPerFrame.Get().(int)
	for range ipf {
		if _, err := m.Step(); err != nil {
			return err
		}
	}

	frame := Frame{
		Num:        m.FrameNum,
		Resolution: m.FB.Resolution,
		Pixels:     m.FB.Present(),
	}
	for _, r := range m.renderers {
		if err := r.NewFrame(frame); err != nil {
			return err
		}
	}

	m.audio.SetPlaying(m.CPU.State.DecrementTimers())

	if err := m.mix(); err != nil {
		return err
	}

	m.FrameNum++

	return nil
}

// generate the samples for one frame and send them to the mixers
func (m *Machine) mix() error {
	if m.samples == nil || len(m.mixers) == 0 {
		return nil
	}

	m.sampleDebt += audio.SampleRate / m.env.Prefs.FPS.Get().(float64)
	n := int(m.sampleDebt)
	m.sampleDebt -= float64(n)

	if cap(m.sampleBuf) < n {
		m.sampleBuf = make([]uint8, n)
	}
	buf := m.sampleBuf[:n]
	m.samples.GenerateInto(buf)

	for _, a := range m.mixers {
		if err := a.SetAudio(buf); err != nil {
			return err
		}
	}

	return nil
}

// End the machine's use of the attached renderers and mixers. The renderers
// and mixers are detached. Errors are logged and the first error is returned.
func (m *Machine) End() error {
	var first error

	for _, r := range m.renderers {
		if err := r.EndRendering(); err != nil {
			logger.Log(m.env, "machine", err)
			if first == nil {
				first = err
			}
		}
	}
	for _, a := range m.mixers {
		if err := a.EndMixing(); err != nil {
			logger.Log(m.env, "machine", err)
			if first == nil {
				first = err
			}
		}
	}

	m.renderers = m.renderers[:0]
	m.mixers = m.mixers[:0]

	return first
}
