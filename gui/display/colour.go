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

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Colour is an RGB colour.
type Colour struct {
	R, G, B uint8
}

func (c Colour) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// BadColour is returned by ParseColour() for strings that do not describe a
// colour.
const BadColour = "display: bad colour (%s)"

// ParseColour parses a colour in the form #rrggbb. The leading # is optional.
func ParseColour(s string) (Colour, error) {
	t := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(t) != 6 {
		return Colour{}, curated.Errorf(BadColour, s)
	}

	v, err := strconv.ParseUint(t, 16, 32)
	if err != nil {
		return Colour{}, curated.Errorf(BadColour, s)
	}

	return Colour{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}
