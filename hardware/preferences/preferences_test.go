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

package preferences_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ItsIronicIInsist/riscvEmu/hardware/preferences"
	"github.com/ItsIronicIInsist/riscvEmu/prefs"
	"github.com/ItsIronicIInsist/riscvEmu/test"
)

func TestDefaults(t *testing.T) {
	p := preferences.NewDefaults()
	test.ExpectEquality(t, p.MemorySize.Get().(uint64), uint64(1024*1024))
	test.ExpectEquality(t, p.StackPointer.Get().(uint64), uint64(preferences.DefaultStackPointer))
	test.ExpectEquality(t, p.PrivilegeCheck.Get().(bool), true)
	test.ExpectEquality(t, p.DynamicRounding.Get().(bool), false)
	test.ExpectEquality(t, p.MaxSteps.Get().(int), 0)
	test.ExpectEquality(t, p.SentinelPC.Get().(uint64), uint64(0))

	test.ExpectSuccess(t, p.Load())
	test.ExpectFailure(t, p.Save())
}

func TestDiskRoundTrip(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, p.StackPointer.Set("0x8000"))
	test.ExpectSuccess(t, p.MaxSteps.Set(100))
	test.ExpectSuccess(t, p.Trace.Set(true))
	test.DemandSuccess(t, p.Save())

	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "hardware.cpu.stackPointer :: 0x8000\n"))
	test.ExpectSuccess(t, strings.Contains(string(data), "hardware.maxSteps :: 100\n"))

	q, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.StackPointer.Get().(uint64), uint64(0x8000))
	test.ExpectEquality(t, q.MaxSteps.Get().(int), 100)
	test.ExpectEquality(t, q.Trace.Get().(bool), true)
	test.ExpectEquality(t, q.PrivilegeCheck.Get().(bool), true)
}

func TestCommandLine(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	prefs.PushCommandLineStack("hardware.cpu.privilegeCheck::false; hardware.memory.size::4096")
	p, err := preferences.NewPreferencesFromFile(pth)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.PrivilegeCheck.Get().(bool), false)
	test.ExpectEquality(t, p.MemorySize.Get().(uint64), uint64(4096))
}

func TestString(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")
	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)

	// the string is the same whether or not the preferences are connected to
	// a file
	test.ExpectEquality(t, p.String(), preferences.NewDefaults().String())
}
