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

package cpu

import (
	"github.com/ItsIronicIInsist/riscvEmu/curated"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu/instructions"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu/registers"
)

func (mc *CPU) executeCSR(ins instructions.RegImm) error {
	addr := uint16(ins.Imm & 0xfff)

	// source operand. the immediate forms use the rs1 field as a literal
	var src uint64
	switch ins.Mnemonic {
	case instructions.CSRRWI, instructions.CSRRSI, instructions.CSRRCI:
		src = uint64(ins.Rs1)
	default:
		src = mc.Regs.Read(ins.Rs1)
	}

	switch ins.Mnemonic {
	case instructions.CSRRW, instructions.CSRRWI:
		var old uint64
		if ins.Rd != 0 {
			var err error
			old, err = mc.CSR.Read(addr, mc.Privilege)
			if err != nil {
				return err
			}
		}
		if err := mc.CSR.Write(addr, src, mc.Privilege); err != nil {
			return err
		}
		mc.Regs.Write(ins.Rd, old)

	case instructions.CSRRS, instructions.CSRRSI, instructions.CSRRC, instructions.CSRRCI:
		old, err := mc.CSR.Read(addr, mc.Privilege)
		if err != nil {
			return err
		}
		if ins.Rs1 != 0 {
			v := old | src
			if ins.Mnemonic == instructions.CSRRC || ins.Mnemonic == instructions.CSRRCI {
				v = old &^ src
			}
			if err := mc.CSR.Write(addr, v, mc.Privilege); err != nil {
				return err
			}
		}
		mc.Regs.Write(ins.Rd, old)

	default:
		return unimplemented(ins)
	}

	return nil
}

// privilege level held in a two bit mstatus field. the reserved encoding
// returns to user mode
func fieldPrivilege(v uint64) registers.Privilege {
	p := registers.Privilege(v & 0x03)
	if !p.Valid() {
		return registers.User
	}
	return p
}

func (mc *CPU) executeSystem(ins instructions.RegImm) error {
	switch ins.Mnemonic {
	case instructions.ECALL:
		return curated.Errorf(EnvironmentCall, mc.Privilege)

	case instructions.EBREAK:
		return curated.Errorf(Breakpoint, mc.PC)

	case instructions.FENCE, instructions.FENCEI, instructions.WFI:
		return nil

	case instructions.MRET:
		if mc.CSR.CheckPrivilege && mc.Privilege < registers.Machine {
			return curated.Errorf(PrivilegeViolation, ins.Mnemonic, registers.Machine, mc.Privilege)
		}
		status := mc.CSR.Peek(registers.MSTATUS)
		mc.Privilege = fieldPrivilege(status >> 11)

		// MIE takes the value of MPIE. MPIE is set and MPP returns to user
		status &^= registers.StatusMIE | registers.StatusMPP
		if status&registers.StatusMPIE != 0 {
			status |= registers.StatusMIE
		}
		status |= registers.StatusMPIE
		mc.CSR.Poke(registers.MSTATUS, status)

		mc.PC = mc.CSR.Peek(registers.MEPC) - 4
		return nil

	case instructions.SRET:
		if mc.CSR.CheckPrivilege && mc.Privilege < registers.Supervisor {
			return curated.Errorf(PrivilegeViolation, ins.Mnemonic, registers.Supervisor, mc.Privilege)
		}
		status := mc.CSR.Peek(registers.MSTATUS)
		mc.Privilege = registers.User
		if status&registers.StatusSPP != 0 {
			mc.Privilege = registers.Supervisor
		}

		status &^= registers.StatusSIE | registers.StatusSPP
		if status&registers.StatusSPIE != 0 {
			status |= registers.StatusSIE
		}
		status |= registers.StatusSPIE
		mc.CSR.Poke(registers.MSTATUS, status)

		mc.PC = mc.CSR.Peek(registers.SEPC) - 4
		return nil
	}

	return unimplemented(ins)
}
