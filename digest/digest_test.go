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

package digest_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/audio"
	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/compat"
	"github.com/jetsetilly/gopher8/test"
)

var zeroHash = strings.Repeat("0", 40)

// run the program for a number of frames and return the video and audio digests
func run(t *testing.T, frames int, words ...uint16) (string, string) {
	t.Helper()

	env, err := environment.NewEnvironment("test", nil)
	test.DemandSuccess(t, err)
	env.Normalise(1)

	m, err := hardware.NewMachine(env, compat.Legacy, audio.NewSynth(), nil)
	test.DemandSuccess(t, err)

	var b []byte
	for _, w := range words {
		b = append(b, uint8(w>>8), uint8(w))
	}
	_, err = m.LoadROM(bytes.NewReader(b))
	test.DemandSuccess(t, err)

	vid := digest.NewVideo()
	aud := digest.NewAudio()
	test.ExpectEquality(t, vid.Hash(), zeroHash)
	test.ExpectEquality(t, aud.Hash(), zeroHash)

	m.AttachPixelRenderer(vid)
	m.AttachAudioMixer(aud)

	for range frames {
		test.DemandSuccess(t, m.RunFrame())
	}
	test.ExpectEquality(t, vid.FrameNum, frames-1)

	return vid.Hash(), aud.Hash()
}

var glyph = []uint16{
	0x6005, // LD V0, #05
	0xf029, // LD F, V0
	0xd005, // DRW V0, V0, 5
	0x6120, // LD V1, #20
	0xf118, // LD ST, V1
	0x120a, // JP #20A
}

var blank = []uint16{
	0x6005, // LD V0, #05
	0x1202, // JP #202
}

func TestDeterministic(t *testing.T) {
	v1, a1 := run(t, 10, glyph...)
	v2, a2 := run(t, 10, glyph...)
	test.ExpectEquality(t, v1, v2)
	test.ExpectEquality(t, a1, a2)
	test.ExpectInequality(t, v1, zeroHash)
	test.ExpectInequality(t, a1, zeroHash)
}

func TestDifferent(t *testing.T) {
	v1, a1 := run(t, 10, glyph...)
	v2, a2 := run(t, 10, blank...)
	test.ExpectInequality(t, v1, v2)
	test.ExpectInequality(t, a1, a2)

	// hashes are chained so the number of frames matters even when the
	// display doesn't change
	v3, _ := run(t, 11, blank...)
	test.ExpectInequality(t, v2, v3)
}

func TestReset(t *testing.T) {
	aud := digest.NewAudio()
	test.DemandSuccess(t, aud.SetAudio(make([]uint8, 3000)))
	test.ExpectInequality(t, aud.Hash(), zeroHash)

	aud.ResetDigest()
	test.ExpectEquality(t, aud.Hash(), zeroHash)

	vid := digest.NewVideo()
	test.DemandSuccess(t, vid.NewFrame(hardware.Frame{}))
	test.ExpectInequality(t, vid.Hash(), zeroHash)
	vid.ResetDigest()
	test.ExpectEquality(t, vid.Hash(), zeroHash)
}
