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

package random

import (
	"math/rand/v2"
	"time"
)

// Random is a random number generator for the emulation.
type Random struct {
	seed uint64
	rng  *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type. A
// seed of zero means the generator will be seeded with the current time.
func NewRandom(seed uint64) *Random {
	rnd := &Random{}
	rnd.Reseed(seed)
	return rnd
}

// Reseed the generator. The same rules for the seed value apply as for
// NewRandom().
func (rnd *Random) Reseed(seed uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rnd.seed = seed
	rnd.rng = rand.New(rand.NewPCG(seed, seed>>1|1))
}

// Seed returns the value used to seed the generator.
func (rnd *Random) Seed() uint64 {
	return rnd.seed
}

// Intn returns a random number in the range [0, n).
func (rnd *Random) Intn(n int) int {
	return rnd.rng.IntN(n)
}

// Uint8 returns a random number in the range [0, 255].
func (rnd *Random) Uint8() uint8 {
	return uint8(rnd.rng.UintN(256))
}
