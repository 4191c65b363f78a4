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

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/test"
)

func newSync() *mainSync {
	return &mainSync{
		state:         make(chan stateRequest, 1),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}
}

func TestCommandLinePrefs(t *testing.T) {
	md := &modalflag.Modes{}
	md.NewArgs([]string{"-mode", "xo", "-ipf", "30", "-prefs", "hardware.fps::50"})
	mf := addMachineFlags(md)
	_, err := md.Parse()
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, mf.commandLinePrefs(), "hardware.fps::50; hardware.mode::xo; hardware.instructionsPerFrame::30")
}

func TestDisasmMode(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.ch8")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0x00, 0xe0, 0x12, 0x00}, 0o600))

	sync := newSync()
	launch(sync, []string{"disasm", fn})

	req := <-sync.state
	test.ExpectEquality(t, req.req, reqQuit)
	test.ExpectEquality(t, req.args, nil)
}

func TestMissingProgram(t *testing.T) {
	sync := newSync()
	launch(sync, []string{"disasm"})

	req := <-sync.state
	test.ExpectEquality(t, req.req, reqQuit)
	test.ExpectEquality(t, req.args, interface{}(20))
}

func TestBadFlag(t *testing.T) {
	sync := newSync()
	launch(sync, []string{"disasm", "-nothing", "x.ch8"})

	req := <-sync.state
	test.ExpectEquality(t, req.req, reqQuit)
	test.ExpectEquality(t, req.args, interface{}(20))
}
