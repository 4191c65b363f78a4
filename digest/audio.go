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

package digest

import (
	"crypto/sha1"
	"fmt"
)

// the length of the buffer before the digest is updated. the first part of
// the buffer is the previous digest.
const audioBufferLength = 1024 + sha1.Size

// Audio is an implementation of hardware.AudioMixer that produces a hash of
// the sample stream.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{
		buffer:   make([]uint8, audioBufferLength),
		bufferCt: sha1.Size,
	}
}

// Hash implements the Digest interface. Samples that have been received but
// not yet included in the digest are flushed first.
func (dig *Audio) Hash() string {
	if dig.bufferCt > sha1.Size {
		dig.flush()
	}
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	clear(dig.digest[:])
	dig.bufferCt = sha1.Size
}

// SetAudio implements the hardware.AudioMixer interface.
func (dig *Audio) SetAudio(samples []uint8) error {
	for len(samples) > 0 {
		n := copy(dig.buffer[dig.bufferCt:], samples)
		samples = samples[n:]
		dig.bufferCt += n
		if dig.bufferCt >= audioBufferLength {
			dig.flush()
		}
	}
	return nil
}

func (dig *Audio) flush() {
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = sha1.Size
}

// EndMixing implements the hardware.AudioMixer interface.
func (dig *Audio) EndMixing() error {
	return nil
}
