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

import "github.com/jetsetilly/gopher8/hardware/framebuffer"

// Frame is sent to every PixelRenderer at the end of each frame.
type Frame struct {
	// the number of the frame, counting from zero
	Num int

	// the logical resolution of the framebuffer when the frame was presented
	Resolution framebuffer.Resolution

	// copy of the physical grid
	Pixels framebuffer.Snapshot
}

// PixelRenderer implementations display, or otherwise work with, the visual
// output of the machine.
type PixelRenderer interface {
	NewFrame(frame Frame) error

	// some renderers may need to conclude and/or dispose of resources gently.
	// the PixelRenderer should be considered unusable after EndRendering() has
	// been called
	EndRendering() error
}

// AudioMixer implementations work with sound; most probably playing it. An
// example of an AudioMixer that does not play sound but otherwise works with
// it is the wavwriter.WavWriter type.
type AudioMixer interface {
	// samples are unsigned 8bit mono at audio.SampleRate. the slice must not
	// be retained after the function returns
	SetAudio(samples []uint8) error

	// the AudioMixer should be considered unusable after EndMixing() has been
	// called
	EndMixing() error
}

// SampleSource is implemented by audio collaborators that can generate
// samples. If the audio collaborator given to NewMachine() does not implement
// this interface then no audio is sent to the attached AudioMixers.
type SampleSource interface {
	GenerateInto(buf []uint8)
}
