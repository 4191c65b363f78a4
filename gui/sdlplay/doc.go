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


// Package sdlplay implements the gui.GUI interface using SDL. The window shows
// the framebuffer and nothing else.
//
// SDL requires that window and event handling occurs on the main thread. The
// NewSdlPlay(), Service() and Destroy() functions must therefore only be
// called from the main thread. The remaining functions, including the
// implementations of hardware.PixelRenderer and hardware.AudioMixer, are safe
// to call from the emulation goroutine.
package sdlplay
