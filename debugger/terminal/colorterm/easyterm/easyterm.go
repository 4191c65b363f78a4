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

// Package easyterm is a wrapper for "github.com/pkg/term". It opens the
// controlling terminal and wraps the mode switching methods in functions with
// friendlier names.
package easyterm

import (
	"fmt"
	"io"

	"github.com/pkg/term"
)

// the controlling terminal for the process.
const ttyDevice = "/dev/tty"

// EasyTerm is the main container for posix terminals. usually embedded in
// other struct types.
type EasyTerm struct {
	tty    *term.Term
	output io.Writer
}

// Initialise opens the controlling terminal. Output will be sent to the
// supplied io.Writer.
func (et *EasyTerm) Initialise(output io.Writer) error {
	if output == nil {
		return fmt.Errorf("easyterm: requires an output writer")
	}

	var err error
	et.tty, err = term.Open(ttyDevice)
	if err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	et.output = output

	return nil
}

// CleanUp returns the terminal to the state it was in when Initialise() was
// called and closes it.
func (et *EasyTerm) CleanUp() {
	if et.tty == nil {
		return
	}
	_ = et.tty.Restore()
	_ = et.tty.Close()
	et.tty = nil
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (et *EasyTerm) CanonicalMode() error {
	return et.tty.Restore()
}

// CBreakMode puts terminal into cbreak mode. Keys are delivered as soon as
// they are pressed and are not echoed.
func (et *EasyTerm) CBreakMode() error {
	return et.tty.SetCbreak()
}

// ReadByte reads a single byte from the terminal.
func (et *EasyTerm) ReadByte() (byte, error) {
	var b [1]byte
	_, err := et.tty.Read(b[:])
	return b[0], err
}

// TermPrint writes the string to the output.
func (et *EasyTerm) TermPrint(s string) {
	io.WriteString(et.output, s)
}

// Write implements the io.Writer interface.
func (et *EasyTerm) Write(p []byte) (int, error) {
	return et.output.Write(p)
}
