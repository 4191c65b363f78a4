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

package audio

import (
	"math"
	"sync"

	"github.com/jetsetilly/gopher8/hardware/peripherals"
)

// Output format of the generated samples. Samples are unsigned 8bit mono.
const (
	SampleRate = 32768
	BitDepth   = 8
	Channels   = 1
)

// Sample values.
const (
	High    = 0xff
	Low     = 0x00
	Silence = 0x80
)

// DefaultPitch is the pitch value that plays the pattern at 4000 bits per
// second.
const DefaultPitch = 64

// the number of bits in the pattern
const patternBits = peripherals.PatternSize * 8

// DefaultPattern is a square wave.
var DefaultPattern = [peripherals.PatternSize]uint8{
	0x0f, 0x0f, 0x0f, 0x0f, 0x0f, 0x0f, 0x0f, 0x0f,
	0x0f, 0x0f, 0x0f, 0x0f, 0x0f, 0x0f, 0x0f, 0x0f,
}

// BitRate returns the number of pattern bits played per second for the pitch
// value.
func BitRate(pitch uint8) float64 {
	return 4000 * math.Pow(2, (float64(pitch)-DefaultPitch)/48)
}

// Synth generates samples from the waveform pattern.
type Synth struct {
	crit sync.Mutex

	pattern [peripherals.PatternSize]uint8
	playing bool

	// position in the pattern and the amount to advance for every sample.
	// both are measured in bits
	phase float64
	inc   float64
}

// NewSynth is the preferred method of initialisation for the Synth type.
func NewSynth() *Synth {
	return &Synth{
		pattern: DefaultPattern,
		inc:     BitRate(DefaultPitch) / SampleRate,
	}
}

// SetPattern implements the peripherals.Audio interface.
func (s *Synth) SetPattern(pattern [peripherals.PatternSize]uint8) {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.pattern = pattern
}

// SetPitch implements the peripherals.Audio interface. The playback position
// returns to the start of the pattern.
func (s *Synth) SetPitch(pitch uint8) {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.inc = BitRate(pitch) / SampleRate
	s.phase = 0
}

// SetPlaying implements the peripherals.Audio interface.
func (s *Synth) SetPlaying(playing bool) {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.playing = playing
}

// Playing returns true if the synth is currently producing sound.
func (s *Synth) Playing() bool {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.playing
}

// Generate returns n samples. If the synth is not playing the samples are
// all the Silence value.
func (s *Synth) Generate(n int) []uint8 {
	buf := make([]uint8, n)
	s.GenerateInto(buf)
	return buf
}

// GenerateInto fills the buffer with samples.
func (s *Synth) GenerateInto(buf []uint8) {
	s.crit.Lock()
	defer s.crit.Unlock()

	if !s.playing {
		for i := range buf {
			buf[i] = Silence
		}
		return
	}

	for i := range buf {
		bit := int(s.phase)
		if s.pattern[bit/8]&(1<<(bit%8)) != 0 {
			buf[i] = High
		} else {
			buf[i] = Low
		}
		s.phase = math.Mod(s.phase+s.inc, patternBits)
	}
}
