// This file is part of riscvemu.
//
// riscvemu is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// riscvemu is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with riscvemu.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// each group on the command line stack is the result of a single call to
// PushCommandLineStack()
type commandLineGroup map[string]string

func (g commandLineGroup) String() string {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := make([]string, 0, len(keys))
	for _, k := range keys {
		s = append(s, fmt.Sprintf("%s::%s", k, g[k]))
	}
	return strings.Join(s, "; ")
}

var commandLineStack []commandLineGroup

// PushCommandLineStack forwards command line arguments to the prefs system.
// The prefs string is a list of key/value pairs separated by semicolons:
//
//	"hardware.cpu.stackPointer::0x8000; hardware.trace::true"
//
// Badly formed pairs are ignored. The number of valid pairs is returned.
func PushCommandLineStack(prefs string) int {
	g := make(commandLineGroup)

	for _, p := range strings.Split(prefs, ";") {
		k, v, ok := strings.Cut(p, "::")
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		g[k] = strings.TrimSpace(v)
	}

	commandLineStack = append(commandLineStack, g)

	return len(g)
}

// PopCommandLineStack removes the top group from the stack. The entries in
// the group that have not been used by GetCommandLinePref() are returned as a
// prefs string, sorted by key.
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}
	g := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]
	return g.String()
}

// GetCommandLinePref returns the value for the key in the top group of the
// stack. The entry is removed so that it is used only once.
func GetCommandLinePref(key string) (bool, Value) {
	if len(commandLineStack) == 0 {
		return false, nil
	}

	g := commandLineStack[len(commandLineStack)-1]
	if v, ok := g[key]; ok {
		delete(g, key)
		return true, v
	}

	return false, nil
}
