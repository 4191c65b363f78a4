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


// Package hardware is the base package for the emulated machine. The Machine
// type ties together the CPU, memory and framebuffer and drives them one frame
// at a time.
//
// The frame is the unit of time as far as anything outside the machine is
// concerned. RunFrame() executes the preferred number of instructions, presents
// the framebuffer to every attached PixelRenderer, ticks the timers, and sends
// the audio generated during the frame to every attached AudioMixer.
//
// Output can be attached with AttachPixelRenderer() and AttachAudioMixer().
// Neither is required and a machine with no attachments is perfectly usable.
package hardware
