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


package performance_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/compat"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/test"
)

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("cpu, TRACE")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileTrace)
	test.ExpectEquality(t, p.String(), "cpu,trace")

	p, err = performance.ParseProfile("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)
	test.ExpectEquality(t, p.String(), "none")

	p, err = performance.ParseProfile("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	_, err = performance.ParseProfile("cpu,disk")
	test.ExpectSuccess(t, curated.Is(err, performance.UnknownProfile))
}

func TestCalcFPS(t *testing.T) {
	fps, accuracy := performance.CalcFPS(60, 120, 4)
	test.ExpectEquality(t, fps, 30.0)
	test.ExpectEquality(t, accuracy, 50.0)

	fps, accuracy = performance.CalcFPS(60, 120, 0)
	test.ExpectEquality(t, fps, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)
}

func TestCheckFrames(t *testing.T) {
	env, err := environment.NewEnvironment("test", nil)
	test.DemandSuccess(t, err)

	m, err := hardware.NewMachine(env, compat.Legacy, nil, nil)
	test.DemandSuccess(t, err)

	// JP #200
	_, err = m.LoadROM(bytes.NewReader([]byte{0x12, 0x00}))
	test.DemandSuccess(t, err)

	out := &test.CompareWriter{}
	err = performance.Check(out, performance.ProfileNone, m, 60, true, "", 10)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.FrameNum, 10)
	test.ExpectEquality(t, m.InstructionCount, 120)
	test.ExpectSuccess(t, strings.Contains(out.String(), "(10 frames in"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "instructions per second"))
}
