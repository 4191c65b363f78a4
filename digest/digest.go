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

// Package digest contains implementations of the hardware protocol
// interfaces, namely PixelRenderer and AudioMixer, such that a cryptographic
// hash is produced. The hash can be used to compare the output of one run of a
// program with another. If the hash differs then something has changed.
//
// Hashes are chained: the digest of every frame (or block of audio) includes
// the digest of the previous one.
package digest

// Digest implementations return a cryptographic hash of everything they have
// been given since the last reset.
type Digest interface {
	Hash() string
	ResetDigest()
}
