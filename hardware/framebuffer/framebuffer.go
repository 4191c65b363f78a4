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

package framebuffer

import (
	"fmt"
	"strings"
)

// Size of the physical grid.
const (
	PhysicalWidth  = 128
	PhysicalHeight = 64
)

// the number of cells moved by ScrollLeft() and ScrollRight()
const horizontalScroll = 4

// Resolution is the logical resolution of the framebuffer.
type Resolution int

// List of resolutions.
const (
	LowRes Resolution = iota
	HighRes
)

func (r Resolution) String() string {
	switch r {
	case LowRes:
		return "lowres"
	case HighRes:
		return "hires"
	}
	return fmt.Sprintf("Resolution(%d)", int(r))
}

// Snapshot is a copy of the physical grid, indexed by row and then column.
type Snapshot [PhysicalHeight][PhysicalWidth]bool

// Framebuffer is the display of the machine.
type Framebuffer struct {
	grid Snapshot

	Resolution Resolution

	// true immediately after a call to Present(). cleared by the draw
	// operation
	JustRefreshed bool

	// whether the most recent key query found the probed key down
	LastKeyProbePressed bool
}

// NewFramebuffer is the preferred method of initialisation for the
// Framebuffer type. The framebuffer starts in low resolution with
// JustRefreshed set.
func NewFramebuffer() *Framebuffer {
	return &Framebuffer{
		Resolution:    LowRes,
		JustRefreshed: true,
	}
}

func (fb *Framebuffer) scale() int {
	if fb.Resolution == LowRes {
		return 2
	}
	return 1
}

// Width returns the logical width of the framebuffer.
func (fb *Framebuffer) Width() int {
	return PhysicalWidth / fb.scale()
}

// Height returns the logical height of the framebuffer.
func (fb *Framebuffer) Height() int {
	return PhysicalHeight / fb.scale()
}

// Toggle flips the logical pixel at x, y and returns true if the pixel was lit
// before the toggle. Coordinates outside of the logical resolution have no
// effect and return false.
func (fb *Framebuffer) Toggle(x int, y int) bool {
	if x < 0 || y < 0 || x >= fb.Width() || y >= fb.Height() {
		return false
	}

	s := fb.scale()
	px := x * s
	py := y * s

	// collision is decided by the top-left cell of the block
	collision := fb.grid[py][px]

	for dy := range s {
		for dx := range s {
			fb.grid[py+dy][px+dx] = !fb.grid[py+dy][px+dx]
		}
	}

	return collision
}

// ScrollDown moves the content of the framebuffer down by n rows. Vacated rows
// are unlit.
func (fb *Framebuffer) ScrollDown(n int) {
	if n <= 0 {
		return
	}
	for y := PhysicalHeight - 1; y >= 0; y-- {
		if y-n >= 0 {
			fb.grid[y] = fb.grid[y-n]
		} else {
			fb.grid[y] = [PhysicalWidth]bool{}
		}
	}
}

// ScrollUp moves the content of the framebuffer up by n rows. Vacated rows are
// unlit.
func (fb *Framebuffer) ScrollUp(n int) {
	if n <= 0 {
		return
	}
	for y := range PhysicalHeight {
		if y+n < PhysicalHeight {
			fb.grid[y] = fb.grid[y+n]
		} else {
			fb.grid[y] = [PhysicalWidth]bool{}
		}
	}
}

// ScrollRight moves the content of the framebuffer four cells to the right.
func (fb *Framebuffer) ScrollRight() {
	for y := range PhysicalHeight {
		row := &fb.grid[y]
		copy(row[horizontalScroll:], row[:PhysicalWidth-horizontalScroll])
		clear(row[:horizontalScroll])
	}
}

// ScrollLeft moves the content of the framebuffer four cells to the left.
func (fb *Framebuffer) ScrollLeft() {
	for y := range PhysicalHeight {
		row := &fb.grid[y]
		copy(row[:], row[horizontalScroll:])
		clear(row[PhysicalWidth-horizontalScroll:])
	}
}

// SetResolution changes the logical resolution. The content of the
// framebuffer is cleared if clearContent is true.
func (fb *Framebuffer) SetResolution(res Resolution, clearContent bool) {
	fb.Resolution = res
	if clearContent {
		fb.Clear()
	}
}

// Clear turns off every cell.
func (fb *Framebuffer) Clear() {
	fb.grid = Snapshot{}
}

// Lit returns the state of the physical cell at x, y. Coordinates outside of
// the physical grid are never lit.
func (fb *Framebuffer) Lit(x int, y int) bool {
	if x < 0 || y < 0 || x >= PhysicalWidth || y >= PhysicalHeight {
		return false
	}
	return fb.grid[y][x]
}

// Snapshot returns a copy of the physical grid.
func (fb *Framebuffer) Snapshot() Snapshot {
	return fb.grid
}

// Present returns a copy of the physical grid for display and sets the
// JustRefreshed flag.
func (fb *Framebuffer) Present() Snapshot {
	fb.JustRefreshed = true
	return fb.grid
}

// LitCount returns the number of lit physical cells.
func (fb *Framebuffer) LitCount() int {
	var n int
	for y := range PhysicalHeight {
		for x := range PhysicalWidth {
			if fb.grid[y][x] {
				n++
			}
		}
	}
	return n
}

// String renders the framebuffer at its logical resolution, one line per row.
func (fb *Framebuffer) String() string {
	s := strings.Builder{}
	sc := fb.scale()
	for y := range fb.Height() {
		for x := range fb.Width() {
			if fb.grid[y*sc][x*sc] {
				s.WriteRune('#')
			} else {
				s.WriteRune('.')
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}
