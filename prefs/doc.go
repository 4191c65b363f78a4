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

// Package prefs facilitates the storage and retrieval of user preferences.
// Preference values are typed (Bool, Int, Float, String) and each type
// supports hook functions that run immediately before and after a value is
// changed.
//
// Values are associated with a key and added to a Disk instance, which can
// then Load() and Save() all of its values to a file. Each line in the file
// has the form:
//
//	key :: value
//
// Preferences can also be specified for a single run of the program with
// PushCommandLineStack(). The command line string has the form:
//
//	key::value; key::value
//
// Command line values override values loaded from disk. They are saved only if
// Save() is called after they have been applied.
package prefs
