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
	"fmt"
	"sort"
	"strings"
	"sync"
)

// the command line stack is shared by every Disk instance. entries are
// consumed as they are used.
var commandLine struct {
	crit  sync.Mutex
	stack []map[string]string
}

// SizeCommandLineStack returns the number of entries on the command line stack.
func SizeCommandLineStack() int {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	return len(commandLine.stack)
}

// PushCommandLineStack parses a prefs string of the form:
//
//	key::value; key::value
//
// and pushes the result onto the command line stack. Values in the most recent
// entry override values loaded from disk.
func PushCommandLineStack(prefs string) {
	cl := make(map[string]string)

	for _, p := range strings.Split(prefs, ";") {
		kv := strings.Split(p, "::")
		if len(kv) == 2 {
			cl[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	commandLine.stack = append(commandLine.stack, cl)
}

// PopCommandLineStack removes the most recent entry from the command line
// stack and returns the entries that were not consumed in the prefs string
// format.
func PopCommandLineStack() string {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	if len(commandLine.stack) == 0 {
		return ""
	}

	popped := commandLine.stack[len(commandLine.stack)-1]
	commandLine.stack = commandLine.stack[:len(commandLine.stack)-1]

	keys := make([]string, 0, len(popped))
	for key := range popped {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, key := range keys {
		s.WriteString(fmt.Sprintf("%s::%s; ", key, popped[key]))
	}

	return strings.TrimSuffix(s.String(), "; ")
}

// GetCommandLinePref returns the value for the key in the most recent entry of
// the command line stack. The value is removed from the stack once it has been
// returned.
func GetCommandLinePref(key string) (bool, string) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	if len(commandLine.stack) == 0 {
		return false, ""
	}

	cl := commandLine.stack[len(commandLine.stack)-1]
	if v, ok := cl[key]; ok {
		delete(cl, key)
		return true, v
	}

	return false, ""
}
