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

package terminal_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/test"
)

func TestPrompt(t *testing.T) {
	p := terminal.Prompt{Content: " 0x0200 CLS "}
	test.ExpectEquality(t, p.String(), "[ 0x0200 CLS ] >> ")

	p.Waiting = true
	test.ExpectEquality(t, p.String(), "[ 0x0200 CLS (waiting) ] >> ")

	p = terminal.Prompt{Type: terminal.PromptTypeConfirm, Content: "quit? "}
	test.ExpectEquality(t, p.String(), "quit? ")
}
