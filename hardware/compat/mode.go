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

package compat

import (
	"fmt"
	"strings"
)

// Mode is the compatibility profile of the machine. The mode is fixed for the
// lifetime of the machine.
type Mode int

// List of supported modes.
const (
	// the original COSMAC VIP interpreter
	Legacy Mode = iota

	// SUPER-CHIP
	Extended

	// XO-CHIP
	ExtendedXO
)

func (m Mode) String() string {
	switch m {
	case Legacy:
		return "legacy"
	case Extended:
		return "extended"
	case ExtendedXO:
		return "xo"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// UnknownMode is the pattern of the error returned by ParseMode().
const UnknownMode = "compat: unknown mode (%s)"

// ParseMode converts a string to a Mode. Case insensitive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "legacy", "cosmac", "c":
		return Legacy, nil
	case "extended", "super", "s":
		return Extended, nil
	case "xo", "x", "extendedxo":
		return ExtendedXO, nil
	}
	return Legacy, fmt.Errorf(UnknownMode, s)
}

// Modes returns the names of all modes, as accepted by ParseMode().
func Modes() []string {
	return []string{Legacy.String(), Extended.String(), ExtendedXO.String()}
}
