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


package display

import "github.com/jetsetilly/gopher8/hardware/framebuffer"

// PixelDepth is the number of bytes per pixel in the data produced by
// Convert(). The byte order is red, green, blue, alpha.
const PixelDepth = 4

// PixelsSize is the length of the slice required by Convert().
const PixelsSize = framebuffer.PhysicalWidth * framebuffer.PhysicalHeight * PixelDepth

// Convert the snapshot into pixel data. The physical grid is always converted
// so the pixel data is always the same size regardless of resolution. The dst
// slice must be at least PixelsSize in length.
func Convert(dst []byte, snap *framebuffer.Snapshot, fg Colour, bg Colour) {
	i := 0
	for y := range snap {
		for _, lit := range snap[y] {
			c := bg
			if lit {
				c = fg
			}
			dst[i] = c.R
			dst[i+1] = c.G
			dst[i+2] = c.B
			dst[i+3] = 0xff
			i += PixelDepth
		}
	}
}
