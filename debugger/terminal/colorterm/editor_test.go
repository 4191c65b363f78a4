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

package colorterm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/commandline"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/colorterm"
	"github.com/jetsetilly/gopher8/test"
)

func TestEditing(t *testing.T) {
	var le colorterm.LineEditor
	out := &bytes.Buffer{}

	// typing, backspace and cursor movement
	r := strings.NewReader("regs\rab\x7fc\rxz\x1b[Dy\r")

	s, err := le.Edit(r, out, "> ")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s, "regs")

	s, err = le.Edit(r, out, "> ")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s, "ac")

	s, err = le.Edit(r, out, "> ")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s, "xyz")

	test.ExpectSuccess(t, strings.Contains(out.String(), "> "))

	// out of input
	_, err = le.Edit(r, out, "> ")
	test.ExpectSuccess(t, curated.Is(err, terminal.UserAbort))
}

func TestHistory(t *testing.T) {
	var le colorterm.LineEditor
	out := &bytes.Buffer{}

	r := strings.NewReader("step\rregs\rregs\r\r\x1b[A\x1b[A\r\x1b[A\x1b[A\x1b[B\r")

	for range 4 {
		_, err := le.Edit(r, out, "")
		test.DemandSuccess(t, err)
	}

	// repeated lines and empty lines are not added to the history
	h := le.History()
	test.DemandEquality(t, len(h), 2)
	test.ExpectEquality(t, h[0], "step")
	test.ExpectEquality(t, h[1], "regs")

	// up twice
	s, err := le.Edit(r, out, "")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s, "step")

	// up twice then down once
	s, err = le.Edit(r, out, "")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s, "step")
}

func TestInterruptKey(t *testing.T) {
	var le colorterm.LineEditor
	_, err := le.Edit(strings.NewReader("reg\x03"), &bytes.Buffer{}, "")
	test.ExpectSuccess(t, curated.Is(err, terminal.UserInterrupt))
}

func TestTabCompletion(t *testing.T) {
	var le colorterm.LineEditor
	le.TabCompletion = commandline.NewTabCompletion([]string{"step", "regs"})

	s, err := le.Edit(strings.NewReader("st\t1\r"), &bytes.Buffer{}, "")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s, "STEP 1")
}
