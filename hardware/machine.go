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

package hardware

import (
	"io"

	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/govern"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/memory"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/preferences"
)

// Machine is the main container for the emulated components.
type Machine struct {
	Prefs *preferences.Preferences
	CPU   *cpu.CPU
	Mem   *memory.DRAM

	// destination for the write environment call. if Output is nil then
	// written data is discarded
	Output io.Writer

	// reason the machine stopped. NotHalted while the machine can continue
	Halt govern.Halt

	// value passed to the exit environment call
	ExitCode int

	// number of instructions retired since the last reset
	Steps int
}

// NewMachine creates a new Machine with the image loaded at address zero.
// The prefs argument can be nil, in which case default preferences are used.
func NewMachine(prefs *preferences.Preferences, image []uint8) (*Machine, error) {
	if prefs == nil {
		prefs = preferences.NewDefaults()
	}

	mem, err := memory.NewDRAM(prefs.MemorySize.Get().(uint64), image)
	if err != nil {
		return nil, err
	}

	m := &Machine{
		Prefs: prefs,
		Mem:   mem,
	}
	m.CPU = cpu.NewCPU(prefs, m.Mem)

	return m, nil
}

// Reset the CPU and the halt condition. Memory is not changed.
func (m *Machine) Reset() {
	m.CPU.Reset()
	m.Halt = govern.NotHalted
	m.ExitCode = 0
	m.Steps = 0
}

// AllowLogging implements the logger.Permission interface. Steps are only
// logged when the trace preference is set.
func (m *Machine) AllowLogging() bool {
	return m.Prefs.Trace.Get().(bool)
}
