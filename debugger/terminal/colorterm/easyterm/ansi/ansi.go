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

// Package ansi defines the ANSI control sequences used by the colour terminal.
package ansi

import (
	"fmt"
	"strings"
)

// ansi colour numbers. the index into the slice is the colour number.
var colours = []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// ansi target.
const (
	targetPen       = 3
	targetBrightPen = 9
)

// ansi attribute.
const (
	attrBold      = 1
	attrUnderline = 4
)

// Pens is the table of colours to be used for text.
var Pens = map[string]string{}

// DimPens is the table of pastel colours to be used for text.
var DimPens = map[string]string{}

// PenStyles is the table of styles to be used for text.
var PenStyles = map[string]string{
	"bold":      fmt.Sprintf("\033[%dm", attrBold),
	"underline": fmt.Sprintf("\033[%dm", attrUnderline),
}

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[m"

func init() {
	for i, c := range colours {
		Pens[c] = fmt.Sprintf("\033[%d%dm", targetBrightPen, i)
		DimPens[c] = fmt.Sprintf("\033[%d%dm", targetPen, i)
	}
}

// Pen returns the sequence for the named colour. An unknown colour returns the
// normal pen.
func Pen(colour string, bright bool) string {
	colour = strings.ToLower(colour)
	var s string
	var ok bool
	if bright {
		s, ok = Pens[colour]
	} else {
		s, ok = DimPens[colour]
	}
	if !ok {
		return NormalPen
	}
	return s
}

// ClearLine is the CSI sequence to clear the entire of the current line.
const ClearLine = "\033[2K"

// CursorMove is the CSI sequence to move the cursor n characters forward
// (positive numbers) or n characters backwards (negative numbers).
func CursorMove(n int) string {
	if n < 0 {
		return fmt.Sprintf("\033[%dD", -n)
	} else if n > 0 {
		return fmt.Sprintf("\033[%dC", n)
	}
	return ""
}
