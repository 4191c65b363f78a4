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

package ansi_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/debugger/terminal/colorterm/easyterm/ansi"
	"github.com/jetsetilly/gopher8/test"
)

func TestPens(t *testing.T) {
	test.ExpectEquality(t, ansi.Pen("red", true), "\033[91m")
	test.ExpectEquality(t, ansi.Pen("RED", false), "\033[31m")
	test.ExpectEquality(t, ansi.Pen("white", false), "\033[37m")
	test.ExpectEquality(t, ansi.Pen("mauve", true), ansi.NormalPen)
	test.ExpectEquality(t, ansi.PenStyles["bold"], "\033[1m")
}

func TestCursorMove(t *testing.T) {
	test.ExpectEquality(t, ansi.CursorMove(0), "")
	test.ExpectEquality(t, ansi.CursorMove(3), "\033[3C")
	test.ExpectEquality(t, ansi.CursorMove(-2), "\033[2D")
}
