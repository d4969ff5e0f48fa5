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

	"github.com/bradleyjkemp/memviz"

	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu/registers"
)

// register file with the ABI names of each register. used by DumpState()
type namedRegister struct {
	Name  string
	Value uint64
}

// the parts of the machine rendered by DumpState(). the memory itself is
// too large to be usefully drawn
type machineState struct {
	PC        uint64
	Privilege string
	Halt      string
	Steps     int
	Last      string
	FCSR      string
	Regs      []namedRegister
	FRegs     []namedRegister
}

// DumpState writes a graphviz description of the CPU state to w.
func (m *Machine) DumpState(w io.Writer) {
	s := &machineState{
		PC:        m.CPU.PC,
		Privilege: m.CPU.Privilege.String(),
		Halt:      m.Halt.String(),
		Steps:     m.Steps,
		Last:      m.CPU.LastResult.String(),
		FCSR:      m.CPU.FPU.Status.String(),
	}

	regs := m.CPU.Regs.Snapshot()
	fregs := m.CPU.FRegs.Snapshot()
	for i := range regs {
		s.Regs = append(s.Regs, namedRegister{Name: registers.ABIName(uint8(i)), Value: regs[i]})
		s.FRegs = append(s.FRegs, namedRegister{Name: registers.FloatABIName(uint8(i)), Value: fregs[i]})
	}

	memviz.Map(w, s)
}
