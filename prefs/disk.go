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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand while the emulator is running ***"

const separator = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref

	// values found in the file that have not been added to the Disk. these
	// are preserved when the file is saved
	unknown map[string]string
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, fmt.Errorf("prefs: no path for preferences file")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
		unknown: make(map[string]string),
	}, nil
}

func (dsk *Disk) String() string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k]))
	}
	return s.String()
}

// Add a preference value to the disk.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, separator) || strings.TrimSpace(key) == "" {
		return fmt.Errorf("prefs: illegal key %q", key)
	}
	dsk.entries[key] = p
	return nil
}

// Load preference values from disk. A missing file is not an error. Values
// specified on the command line stack are applied after the file has been
// read.
func (dsk *Disk) Load() error {
	if err := dsk.load(); err != nil {
		return err
	}

	for key, p := range dsk.entries {
		if ok, v := GetCommandLinePref(key); ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", key, err)
			}
		}
	}

	return nil
}

func (dsk *Disk) load() error {
	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// the first line is the boilerplate warning
	scanner.Scan()

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), separator, 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.TrimSpace(kv[0])
		if p, ok := dsk.entries[key]; ok {
			if err := p.Set(kv[1]); err != nil {
				return fmt.Errorf("prefs: %s: %w", key, err)
			}
		} else {
			dsk.unknown[key] = kv[1]
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Save all preference values to disk. Values for keys that were found in the
// file but not added to this Disk are preserved.
func (dsk *Disk) Save() (rerr error) {
	if err := os.MkdirAll(filepath.Dir(dsk.path), 0o700); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	lines := make([]string, 0, len(dsk.entries)+len(dsk.unknown))
	for k, v := range dsk.unknown {
		lines = append(lines, fmt.Sprintf("%s%s%s", k, separator, v))
	}
	for k, p := range dsk.entries {
		lines = append(lines, fmt.Sprintf("%s%s%s", k, separator, p))
	}
	sort.Strings(lines)

	f, err := os.Create(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("prefs: %w", err)
		}
	}()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}
