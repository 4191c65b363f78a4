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

// Package framebuffer implements the monochrome display of the machine.
//
// The physical grid is always 128x64 cells. In low resolution each logical
// pixel covers a 2x2 block of physical cells, so the logical resolution is
// 64x32. Scrolling always operates on physical cells.
//
// The framebuffer also carries two flags that are used by the execution
// engine. JustRefreshed is set when the framebuffer is presented to the
// display and is consumed by the draw operation. LastKeyProbePressed records
// the result of the most recent key query.
package framebuffer
