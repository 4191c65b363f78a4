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

package random_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/random"
	"github.com/jetsetilly/gopher8/test"
)

func TestSeeded(t *testing.T) {
	a := random.NewRandom(1234)
	b := random.NewRandom(1234)
	for i := range 100 {
		test.ExpectEquality(t, a.Uint8(), b.Uint8(), i)
	}
	test.ExpectEquality(t, a.Seed(), uint64(1234))
}

func TestReseed(t *testing.T) {
	a := random.NewRandom(99)
	first := []int{a.Intn(1000), a.Intn(1000), a.Intn(1000)}
	a.Reseed(99)
	second := []int{a.Intn(1000), a.Intn(1000), a.Intn(1000)}
	for i := range first {
		test.ExpectEquality(t, first[i], second[i], i)
	}
}

func TestTimeSeed(t *testing.T) {
	a := random.NewRandom(0)
	test.ExpectInequality(t, a.Seed(), uint64(0))
}
