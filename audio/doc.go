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

// Package audio synthesises the sound output of the machine.
//
// The sound is a 128 bit waveform pattern played back at a rate determined by
// the pitch value. Each bit of the pattern is either high or low. The pattern
// is read from the least significant bit of the first byte to the most
// significant bit of the last byte and then repeats.
//
// The Synth type implements the peripherals.Audio interface. Samples are
// produced on demand with the Generate() function, usually from a different
// goroutine to the one running the emulation.
package audio
