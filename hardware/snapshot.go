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
	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/govern"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/memory"
)

// State stores the machine sub-systems. It is produced by the Snapshot()
// function and can be restored with the Plumb() function.
type State struct {
	CPU   *cpu.CPU
	Mem   *memory.DRAM
	Halt  govern.Halt
	Steps int
}

// Snapshot the state of the machine.
func (m *Machine) Snapshot() *State {
	s := &State{
		CPU:   m.CPU.Snapshot(),
		Mem:   m.Mem.Snapshot(),
		Halt:  m.Halt,
		Steps: m.Steps,
	}
	s.CPU.Plumb(s.Mem)
	return s
}

// Plumb a previously snapshotted state into the machine.
func (m *Machine) Plumb(state *State) {
	if state == nil {
		panic("hardware: cannot plumb in a nil state")
	}

	// take another snapshot of the state before plumbing. the machine must
	// not change what is stored in the state
	m.CPU = state.CPU.Snapshot()
	m.Mem = state.Mem.Snapshot()
	m.CPU.Plumb(m.Mem)
	m.Halt = state.Halt
	m.Steps = state.Steps
}
