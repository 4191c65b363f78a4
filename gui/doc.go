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


// Package gui is an abstraction layer for real GUI implementations. It defines
// the Events that can be passed from the GUI to the emulation code and also
// the Requests that can be made from the emulation code to the GUI.
//
// Implementations of the GUI interface live in sub-packages. For example,
// gui/sdlplay.
package gui
