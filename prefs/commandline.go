// This file is part of TASHarness.
//
// TASHarness is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// TASHarness is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with TASHarness.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// a group of key/value pairs parsed from a single -prefs argument
type commandLineGroup map[string]string

// the command line stack allows preference overrides to be scoped. for
// example, a regression run can push the values for one entry and pop them
// when the entry has finished.
var commandLineStack []commandLineGroup

// SizeCommandLineStack returns the number of groups that have been added with
// PushCommandLineStack().
func SizeCommandLineStack() int {
	return len(commandLineStack)
}

// PushCommandLineStack parses a prefs string and adds it as a new group. The
// string is a list of key::value pairs separated by semi-colons. Malformed
// pairs are ignored.
func PushCommandLineStack(prefs string) {
	grp := make(commandLineGroup)
	for _, p := range strings.Split(prefs, ";") {
		k, v, ok := strings.Cut(p, "::")
		if !ok || strings.Contains(v, "::") {
			continue
		}
		grp[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	commandLineStack = append(commandLineStack, grp)
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack().
//
// Returns the unused preferences of the group in the same format accepted by
// PushCommandLineStack(). Keys are sorted.
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}

	grp := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]

	s := make([]string, 0, len(grp))
	for _, k := range slices.Sorted(maps.Keys(grp)) {
		s = append(s, fmt.Sprintf("%s::%s", k, grp[k]))
	}

	return strings.Join(s, "; ")
}

// GetCommandLinePref returns the value for key from the current group. The
// value is deleted from the group when it is returned.
func GetCommandLinePref(key string) (bool, Value) {
	if len(commandLineStack) == 0 {
		return false, nil
	}

	grp := commandLineStack[len(commandLineStack)-1]
	if v, ok := grp[key]; ok {
		delete(grp, key)
		return true, v
	}

	return false, nil
}
