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

// PatternSize is the number of bytes in an audio waveform pattern.
const PatternSize = 16

// Audio is the interface to the audio collaborator.
type Audio interface {
	// set the 128bit waveform pattern
	SetPattern(pattern [PatternSize]uint8)

	// set the pitch of the pattern playback. 64 is the default pitch
	SetPitch(pitch uint8)

	// set whether audio is playing. called after every timer tick
	SetPlaying(playing bool)
}

// Input is the interface to the input collaborator.
type Input interface {
	// returns true if the key is down. key is in the range 0x0 to 0xf
	IsPressed(key uint8) bool
}

// NullAudio implements the Audio interface and does nothing.
type NullAudio struct{}

// SetPattern implements the Audio interface.
func (NullAudio) SetPattern([PatternSize]uint8) {}

// SetPitch implements the Audio interface.
func (NullAudio) SetPitch(uint8) {}

// SetPlaying implements the Audio interface.
func (NullAudio) SetPlaying(bool) {}
