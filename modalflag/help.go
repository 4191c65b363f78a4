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

package modalflag

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// help writes the usage of the current layer to the Output writer.
func (md *Modes) help() {
	if md.Output == nil {
		return
	}

	flags := &strings.Builder{}
	md.flags.SetOutput(flags)
	md.flags.PrintDefaults()
	md.flags.SetOutput(io.Discard)

	path := md.Path()

	if flags.Len() == 0 && len(md.subModes) == 0 {
		if path == "" {
			fmt.Fprintln(md.Output, "No help available")
		} else {
			fmt.Fprintf(md.Output, "No help available for %s\n", path)
		}
		return
	}

	if path == "" {
		fmt.Fprintln(md.Output, "Usage:")
	} else {
		fmt.Fprintf(md.Output, "Usage for %s mode:\n", path)
	}

	io.WriteString(md.Output, flags.String())

	if len(md.subModes) > 0 {
		if flags.Len() > 0 {
			io.WriteString(md.Output, "\n")
		}
		fmt.Fprintf(md.Output, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(md.Output, "    default: %s\n", md.subModes[0])

		if len(md.aliases) > 0 {
			var a []string
			for k, v := range md.aliases {
				a = append(a, fmt.Sprintf("%s=%s", k, v))
			}
			sort.Strings(a)
			fmt.Fprintf(md.Output, "    aliases: %s\n", strings.Join(a, ", "))
		}
	}

	if md.additionalHelp != "" {
		fmt.Fprintf(md.Output, "\n%s\n", md.additionalHelp)
	}
}
