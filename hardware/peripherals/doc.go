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

// Package peripherals defines the narrow interfaces through which the
// execution engine talks to the audio and input collaborators, along with
// simple implementations of them.
//
// Calls to the Audio interface are fire-and-forget parameter updates. Calls to
// the Input interface are point-in-time queries. Implementations must be safe
// to call from the emulation goroutine while being updated from another
// goroutine (for example, a GUI event loop or an audio callback).
package peripherals
