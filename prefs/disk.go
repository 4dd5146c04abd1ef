// This file is part of padreplay.
//
// padreplay is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// padreplay is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with padreplay.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/padreplay/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand. use the -prefs flag or the remote interface ***"

// the separator between key and value in the prefs file.
const keySep = " :: "

// Sentinal errors returned by the Disk type.
const (
	NoPrefsFile   = "prefs: file does not exist (%s)"
	DuplicateKey  = "prefs: key already registered (%s)"
	LoadFailed    = "prefs: load: %v"
	SaveFailed    = "prefs: save: %v"
	InvalidFormat = "prefs: invalid format at line %d"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

func (dsk Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:    path,
		entries: make(map[string]pref),
	}
	return dsk, nil
}

// Add preference value to list of values to store/load from Disk.
func (dsk *Disk) Add(key string, p pref) error {
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Reset all registered preference values to their zero value.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return err
		}
	}
	return nil
}

// read the prefs file into a map of key/values. entries for keys that are not
// registered with this disk instance are preserved so that Save() does not
// clobber them.
func (dsk *Disk) read() (map[string]string, error) {
	data := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return data, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return data, curated.Errorf(LoadFailed, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	ln := 0
	for scanner.Scan() {
		ln++
		s := scanner.Text()

		// ignore boilerplate line and empty lines
		if ln == 1 && s == WarningBoilerPlate {
			continue
		}
		if strings.TrimSpace(s) == "" {
			continue
		}

		kv := strings.SplitN(s, keySep, 2)
		if len(kv) != 2 {
			return data, curated.Errorf(InvalidFormat, ln)
		}
		data[strings.TrimSpace(kv[0])] = kv[1]
	}

	if err := scanner.Err(); err != nil {
		return data, curated.Errorf(LoadFailed, err)
	}

	return data, nil
}

// Load preference values from disk. Registered keys that are not present in
// the file keep their current value. Command line overrides (see
// PushCommandLineStack()) are applied after the file has been read.
//
// A missing prefs file is reported with the NoPrefsFile error but command
// line overrides are still applied.
func (dsk *Disk) Load() error {
	data, loadErr := dsk.read()
	if loadErr != nil && !curated.Is(loadErr, NoPrefsFile) {
		return loadErr
	}

	for _, k := range dsk.keys() {
		if v, ok := data[k]; ok {
			if err := dsk.entries[k].Set(v); err != nil {
				return curated.Errorf(LoadFailed, err)
			}
		}
		if ok, v := GetCommandLinePref(k); ok {
			if err := dsk.entries[k].Set(v); err != nil {
				return curated.Errorf(LoadFailed, err)
			}
		}
	}

	return loadErr
}

// Save current preference values to disk.
func (dsk *Disk) Save() error {
	data, err := dsk.read()
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return curated.Errorf(SaveFailed, err)
	}

	for k, p := range dsk.entries {
		data[k] = p.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, data[k]))
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0o600); err != nil {
		return curated.Errorf(SaveFailed, err)
	}

	return nil
}
