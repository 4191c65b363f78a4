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

package peripherals_test

import (
	"sync"
	"testing"

	"github.com/jetsetilly/gopher8/hardware/peripherals"
	"github.com/jetsetilly/gopher8/test"
)

func TestKeypad(t *testing.T) {
	var kp peripherals.Keypad
	test.ExpectFailure(t, kp.IsPressed(0x5))

	kp.Press(0x5)
	kp.Press(0xf)
	test.ExpectSuccess(t, kp.IsPressed(0x5))
	test.ExpectSuccess(t, kp.IsPressed(0xf))
	test.ExpectEquality(t, kp.String(), "-----5---------F")

	kp.Release(0x5)
	test.ExpectFailure(t, kp.IsPressed(0x5))
	test.ExpectSuccess(t, kp.IsPressed(0xf))

	// out of range keys are ignored
	kp.Press(0x10)
	test.ExpectFailure(t, kp.IsPressed(0x10))

	kp.ReleaseAll()
	test.ExpectEquality(t, kp.String(), "----------------")
}

func TestKeypadConcurrent(t *testing.T) {
	var kp peripherals.Keypad
	var wg sync.WaitGroup
	for k := range uint8(peripherals.NumKeys) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			kp.Press(k)
		}()
	}
	wg.Wait()

	for k := range uint8(peripherals.NumKeys) {
		test.ExpectSuccess(t, kp.IsPressed(k), k)
	}
}

func TestKeyMap(t *testing.T) {
	k, ok := peripherals.DefaultKeyMap.Lookup("v")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, uint8(0xf))

	k, ok = peripherals.DefaultKeyMap.Lookup("X")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, uint8(0x0))

	_, ok = peripherals.DefaultKeyMap.Lookup("P")
	test.ExpectFailure(t, ok)

	// every keypad key is mapped exactly once
	seen := make(map[uint8]bool)
	for _, v := range peripherals.DefaultKeyMap {
		test.ExpectFailure(t, seen[v], v)
		seen[v] = true
	}
	test.ExpectEquality(t, len(seen), peripherals.NumKeys)
}
