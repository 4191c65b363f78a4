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

package colorterm

import (
	"io"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/colorterm/easyterm"
	"github.com/jetsetilly/gopher8/debugger/terminal/colorterm/easyterm/ansi"
)

// LineEditor reads a line of input one byte at a time, echoing and editing as
// it goes. Completed lines are added to the history.
type LineEditor struct {
	TabCompletion terminal.TabCompletion

	// called when the suspend key is pressed. may be nil
	OnSuspend func()

	history []string
}

// History returns a copy of the lines entered so far.
func (le *LineEditor) History() []string {
	h := make([]string, len(le.history))
	copy(h, le.history)
	return h
}

// Edit returns the next line of input, without the line terminator. Output
// (the prompt and the echoed input) is written to out.
func (le *LineEditor) Edit(r io.ByteReader, out io.Writer, prompt string) (string, error) {
	var line []byte
	var cursor int
	histIdx := len(le.history)

	redraw := func() {
		io.WriteString(out, "\r")
		io.WriteString(out, ansi.ClearLine)
		io.WriteString(out, prompt)
		out.Write(line)
		io.WriteString(out, ansi.CursorMove(cursor-len(line)))
	}

	recall := func(s string) {
		line = []byte(s)
		cursor = len(line)
	}

	redraw()

	for {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF {
				return "", curated.Errorf(terminal.UserAbort)
			}
			return "", err
		}

		if b != easyterm.KeyTab && le.TabCompletion != nil {
			le.TabCompletion.Reset()
		}

		switch b {
		case easyterm.KeyInterrupt:
			io.WriteString(out, "\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyEOF:
			if len(line) == 0 {
				io.WriteString(out, "\n")
				return "", curated.Errorf(terminal.UserAbort)
			}

		case easyterm.KeySuspend:
			if le.OnSuspend != nil {
				le.OnSuspend()
			}

		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			io.WriteString(out, "\n")
			s := string(line)
			if strings.TrimSpace(s) != "" {
				if len(le.history) == 0 || le.history[len(le.history)-1] != s {
					le.history = append(le.history, s)
				}
			}
			return s, nil

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if cursor > 0 {
				line = append(line[:cursor-1], line[cursor:]...)
				cursor--
			}

		case easyterm.KeyTab:
			if le.TabCompletion != nil {
				recall(le.TabCompletion.Complete(string(line)))
			}

		case easyterm.KeyEsc:
			b, err = r.ReadByte()
			if err != nil || b != easyterm.EscCursor {
				break
			}
			b, err = r.ReadByte()
			if err != nil {
				break
			}
			switch b {
			case easyterm.CursorUp:
				if histIdx > 0 {
					histIdx--
					recall(le.history[histIdx])
				}
			case easyterm.CursorDown:
				if histIdx < len(le.history) {
					histIdx++
					if histIdx == len(le.history) {
						recall("")
					} else {
						recall(le.history[histIdx])
					}
				}
			case easyterm.CursorForward:
				if cursor < len(line) {
					cursor++
				}
			case easyterm.CursorBackward:
				if cursor > 0 {
					cursor--
				}
			}

		default:
			// printable ASCII only
			if b >= 32 && b < 127 {
				line = append(line, 0)
				copy(line[cursor+1:], line[cursor:])
				line[cursor] = b
				cursor++
			}
		}

		redraw()
	}
}
