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
	"os"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/colorterm/easyterm"
	"github.com/jetsetilly/gopher8/debugger/terminal/colorterm/easyterm/ansi"
	"github.com/jetsetilly/gopher8/logger"
)

// ColorTerminal implements debugger UI interface with a basic ANSI terminal.
type ColorTerminal struct {
	easyterm.EasyTerm

	editor   LineEditor
	silenced bool
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	err := ct.EasyTerm.Initialise(os.Stdout)
	if err != nil {
		return err
	}

	ct.editor.OnSuspend = func() {
		_ = ct.CanonicalMode()
		if err := easyterm.SuspendProcess(); err != nil {
			logger.Logf(logger.Allow, "colorterm", "%v", err)
		}
		_ = ct.CBreakMode()
	}

	return ct.CBreakMode()
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.TermPrint("\r")
	ct.EasyTerm.CleanUp()
}

// RegisterTabCompletion implements the terminal.Terminal interface.
func (ct *ColorTerminal) RegisterTabCompletion(tc terminal.TabCompletion) {
	ct.editor.TabCompletion = tc
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if ct.silenced && style != terminal.StyleError {
		return
	}

	// input has already been echoed by the line editor
	if style == terminal.StyleEcho {
		return
	}

	ct.TermPrint("\r")

	switch style {
	case terminal.StyleHelp:
		ct.TermPrint(ansi.DimPens["white"])
	case terminal.StyleFeedback:
		ct.TermPrint(ansi.DimPens["white"])
	case terminal.StyleCPUStep:
		ct.TermPrint(ansi.Pens["yellow"])
	case terminal.StyleInstrument:
		ct.TermPrint(ansi.Pens["cyan"])
	case terminal.StyleFeedbackNonInteractive:
		ct.TermPrint(ansi.DimPens["green"])
	case terminal.StyleError:
		ct.TermPrint(ansi.Pens["red"])
		ct.TermPrint("* ")
	}

	ct.TermPrint(s)
	ct.TermPrint(ansi.NormalPen)
	ct.TermPrint("\n")
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(buffer []byte, prompt terminal.Prompt, events *terminal.ReadEvents) (int, error) {
	if ct.silenced {
		return 0, nil
	}

	// an interrupt that arrived between reads
	if events != nil {
		select {
		case <-events.IntEvents:
			return 0, curated.Errorf(terminal.UserInterrupt)
		default:
		}
	}

	p := ansi.PenStyles["bold"] + prompt.String() + ansi.NormalPen
	s, err := ct.editor.Edit(&ct.EasyTerm, &ct.EasyTerm, p)
	if err != nil {
		return 0, err
	}

	return copy(buffer, s+"\n"), nil
}
