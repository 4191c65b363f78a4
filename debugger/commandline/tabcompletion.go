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

package commandline

import (
	"sort"
	"strings"
)

// TabCompletion completes the first word of the input from a list of
// keywords. It implements the terminal.TabCompletion interface.
type TabCompletion struct {
	keywords []string

	// the current completion session. matches is nil when there is no
	// session in progress
	prefix  string
	matches []string
	idx     int
}

// NewTabCompletion initialises a new TabCompletion instance. Keywords are
// stored in upper case.
func NewTabCompletion(keywords []string) *TabCompletion {
	tc := &TabCompletion{
		keywords: make([]string, len(keywords)),
	}
	for i, k := range keywords {
		tc.keywords[i] = strings.ToUpper(k)
	}
	sort.Strings(tc.keywords)
	return tc
}

// Complete transforms the input such that the first word is a keyword. Repeated
// calls to Complete() cycle through all keywords that match the original
// input. Input that already has more than one word is returned unchanged.
func (tc *TabCompletion) Complete(input string) string {
	if strings.Contains(strings.TrimSpace(input), " ") {
		return input
	}

	if tc.matches == nil {
		tc.prefix = strings.ToUpper(strings.TrimSpace(input))
		tc.matches = []string{}
		for _, k := range tc.keywords {
			if strings.HasPrefix(k, tc.prefix) {
				tc.matches = append(tc.matches, k)
			}
		}
		tc.idx = -1
	}

	if len(tc.matches) == 0 {
		return input
	}

	tc.idx = (tc.idx + 1) % len(tc.matches)
	return tc.matches[tc.idx] + " "
}

// Reset ends the current completion session.
func (tc *TabCompletion) Reset() {
	tc.matches = nil
	tc.prefix = ""
	tc.idx = 0
}
