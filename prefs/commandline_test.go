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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/test"
)

func TestCommandLineStackValues(t *testing.T) {
	prefs.PushCommandLineStack("foo::bar; baz::qux")
	defer prefs.PopCommandLineStack()

	ok, v := prefs.GetCommandLinePref("foo")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "bar")

	// values are consumed when they are retrieved
	ok, _ = prefs.GetCommandLinePref("foo")
	test.ExpectFailure(t, ok)

	ok, _ = prefs.GetCommandLinePref("wibble")
	test.ExpectFailure(t, ok)
}

func TestCommandLineStack(t *testing.T) {
	ok, _ := prefs.GetCommandLinePref("foo")
	test.ExpectFailure(t, ok)

	prefs.PushCommandLineStack("foo::bar")
	prefs.PushCommandLineStack("baz::qux; zed::1")

	// the older group is hidden by the newer group
	ok, _ = prefs.GetCommandLinePref("foo")
	test.ExpectFailure(t, ok)

	ok, v := prefs.GetCommandLinePref("zed")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "1")

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")

	ok, v = prefs.GetCommandLinePref("foo")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "bar")

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}
