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

package preferences

import (
	"fmt"
	"strings"

	"github.com/ItsIronicIInsist/riscvEmu/hardware/memory"
	"github.com/ItsIronicIInsist/riscvEmu/prefs"
	"github.com/ItsIronicIInsist/riscvEmu/resources"
)

// DefaultStackPointer is the initial value of the stack pointer register.
const DefaultStackPointer = 1024 * 1024

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// size of the DRAM in bytes
	MemorySize prefs.Uint64

	// initial value of x2
	StackPointer prefs.Uint64

	// allow instructions with the dynamic rounding mode to use the rounding
	// mode in the frm register
	DynamicRounding prefs.Bool

	// check the privilege level of CSR accesses
	PrivilegeCheck prefs.Bool

	// the machine halts after this many steps. a value of zero means there is
	// no limit
	MaxSteps prefs.Int

	// the machine halts when the PC reaches this address. the check is not
	// made before the first step
	SentinelPC prefs.Uint64

	// log every executed instruction
	Trace prefs.Bool
}

func (p *Preferences) String() string {
	if p.dsk != nil {
		return p.dsk.String()
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("hardware.cpu.dynamicRounding :: %s\n", p.DynamicRounding.String()))
	s.WriteString(fmt.Sprintf("hardware.cpu.privilegeCheck :: %s\n", p.PrivilegeCheck.String()))
	s.WriteString(fmt.Sprintf("hardware.cpu.stackPointer :: %s\n", p.StackPointer.String()))
	s.WriteString(fmt.Sprintf("hardware.maxSteps :: %s\n", p.MaxSteps.String()))
	s.WriteString(fmt.Sprintf("hardware.memory.size :: %s\n", p.MemorySize.String()))
	s.WriteString(fmt.Sprintf("hardware.sentinelPC :: %s\n", p.SentinelPC.String()))
	s.WriteString(fmt.Sprintf("hardware.trace :: %s\n", p.Trace.String()))
	return s.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the global preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is the same as NewPreferences() except that the
// location of the preferences file is specified.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := NewDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.memory.size", &p.MemorySize)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.cpu.stackPointer", &p.StackPointer)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.cpu.dynamicRounding", &p.DynamicRounding)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.cpu.privilegeCheck", &p.PrivilegeCheck)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.maxSteps", &p.MaxSteps)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.sentinelPC", &p.SentinelPC)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.trace", &p.Trace)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// NewDefaults returns preferences with default values that are not
// connected to a preferences file.
func NewDefaults() *Preferences {
	p := &Preferences{}
	p.SetDefaults()
	return p
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.MemorySize.Set(uint64(memory.DefaultSize))
	p.StackPointer.Set(uint64(DefaultStackPointer))
	p.DynamicRounding.Set(false)
	p.PrivilegeCheck.Set(true)
	p.MaxSteps.Set(0)
	p.SentinelPC.Set(uint64(0))
	p.Trace.Set(false)
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return fmt.Errorf("preferences: not connected to a preferences file")
	}
	return p.dsk.Save()
}
