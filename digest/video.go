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

	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/framebuffer"
)

// Video is an implementation of hardware.PixelRenderer that produces a hash
// of every frame.
type Video struct {
	digest [sha1.Size]byte

	// the previous digest followed by one byte per physical cell and one byte
	// for the resolution
	pixels []byte

	// number of the last frame included in the digest
	FrameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{
		pixels: make([]byte, sha1.Size+framebuffer.PhysicalWidth*framebuffer.PhysicalHeight+1),
	}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
}

// NewFrame implements the hardware.PixelRenderer interface.
func (dig *Video) NewFrame(frame hardware.Frame) error {
	copy(dig.pixels, dig.digest[:])

	i := sha1.Size
	for y := range framebuffer.PhysicalHeight {
		for x := range framebuffer.PhysicalWidth {
			if frame.Pixels[y][x] {
				dig.pixels[i] = 1
			} else {
				dig.pixels[i] = 0
			}
			i++
		}
	}
	dig.pixels[i] = uint8(frame.Resolution)

	dig.digest = sha1.Sum(dig.pixels)
	dig.FrameNum = frame.Num

	return nil
}

// EndRendering implements the hardware.PixelRenderer interface.
func (dig *Video) EndRendering() error {
	return nil
}
