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

// Package curated wraps the plain Go error type with a pattern that can be
// tested for later. Errors are created with Errorf(), which takes a formatting
// pattern and placeholder values in the same way as fmt.Errorf().
//
// The pattern identifies the error. Packages that raise errors export the
// pattern as a constant so that callers can decide on a recovery policy:
//
//	const OutOfRange = "memory: address out of range (%#04x+%d)"
//
//	err := curated.Errorf(OutOfRange, base, offset)
//
//	if curated.Is(err, OutOfRange) {
//		...
//	}
//
// Has() is similar to Is() but searches the entire chain of wrapped errors.
//
//	f := curated.Errorf("cpu: %v", err)
//	curated.Is(f, OutOfRange)  // false
//	curated.Has(f, OutOfRange) // true
//
// The Error() implementation removes duplicate adjacent parts of the message.
// This means that a package can prefix an error with its own name without
// worrying about whether the wrapped error has already done so.
//
// Curated errors also implement Unwrap() so the errors package in the standard
// library can see through them.
package curated
