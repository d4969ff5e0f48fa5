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
	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu/instructions"
)

func (mc *CPU) executeRegReg(ins instructions.RegReg) error {
	a := mc.Regs.Read(ins.Rs1)
	b := mc.Regs.Read(ins.Rs2)

	var r uint64

	switch ins.Mnemonic {
	case instructions.ADD:
		r = a + b
	case instructions.SUB:
		r = a - b
	case instructions.SLL:
		r = a << (b & 0x3f)
	case instructions.SLT:
		r = boolToReg(int64(a) < int64(b))
	case instructions.SLTU:
		r = boolToReg(a < b)
	case instructions.XOR:
		r = a ^ b
	case instructions.SRL:
		r = a >> (b & 0x3f)
	case instructions.SRA:
		r = uint64(int64(a) >> (b & 0x3f))
	case instructions.OR:
		r = a | b
	case instructions.AND:
		r = a & b
	case instructions.ADDW:
		r = sext32(uint32(a) + uint32(b))
	case instructions.SUBW:
		r = sext32(uint32(a) - uint32(b))
	case instructions.SLLW:
		r = sext32(uint32(a) << (b & 0x1f))
	case instructions.SRLW:
		r = sext32(uint32(a) >> (b & 0x1f))
	case instructions.SRAW:
		r = uint64(int64(int32(a) >> (b & 0x1f)))
	default:
		return unimplemented(ins)
	}

	mc.Regs.Write(ins.Rd, r)
	return nil
}

func (mc *CPU) executeRegImm(ins instructions.RegImm) error {
	a := mc.Regs.Read(ins.Rs1)
	imm := uint64(ins.Imm)

	var r uint64

	switch ins.Mnemonic {
	case instructions.ADDI:
		r = a + imm
	case instructions.SLTI:
		r = boolToReg(int64(a) < ins.Imm)
	case instructions.SLTIU:
		r = boolToReg(a < imm)
	case instructions.XORI:
		r = a ^ imm
	case instructions.ORI:
		r = a | imm
	case instructions.ANDI:
		r = a & imm
	case instructions.SLLI:
		r = a << (imm & 0x3f)
	case instructions.SRLI:
		r = a >> (imm & 0x3f)
	case instructions.SRAI:
		r = uint64(int64(a) >> (imm & 0x3f))
	case instructions.ADDIW:
		r = sext32(uint32(a + imm))
	case instructions.SLLIW:
		r = sext32(uint32(a) << (imm & 0x1f))
	case instructions.SRLIW:
		r = sext32(uint32(a) >> (imm & 0x1f))
	case instructions.SRAIW:
		r = uint64(int64(int32(a) >> (imm & 0x1f)))

	case instructions.LB, instructions.LH, instructions.LW, instructions.LD,
		instructions.LBU, instructions.LHU, instructions.LWU:
		return mc.executeLoad(ins, a+imm)

	case instructions.JALR:
		// the target is calculated before rd is written because rd and rs1
		// may be the same register
		target := (a + imm) &^ 1
		mc.Regs.Write(ins.Rd, mc.PC+4)
		mc.PC = target - 4
		return nil

	default:
		return unimplemented(ins)
	}

	mc.Regs.Write(ins.Rd, r)
	return nil
}

func (mc *CPU) executeLoad(ins instructions.RegImm, address uint64) error {
	var width int
	var signed bool

	switch ins.Mnemonic {
	case instructions.LB:
		width, signed = 1, true
	case instructions.LH:
		width, signed = 2, true
	case instructions.LW:
		width, signed = 4, true
	case instructions.LD:
		width = 8
	case instructions.LBU:
		width = 1
	case instructions.LHU:
		width = 2
	case instructions.LWU:
		width = 4
	}

	v, err := mc.mem.Load(address, width)
	if err != nil {
		return err
	}

	if signed {
		shift := uint(64 - width*8)
		v = uint64(int64(v<<shift) >> shift)
	}

	mc.Regs.Write(ins.Rd, v)
	return nil
}

func (mc *CPU) executeStore(ins instructions.Store) error {
	address := mc.Regs.Read(ins.Rs1) + uint64(ins.Imm)
	v := mc.Regs.Read(ins.Rs2)

	var width int

	switch ins.Mnemonic {
	case instructions.SB:
		width = 1
	case instructions.SH:
		width = 2
	case instructions.SW:
		width = 4
	case instructions.SD:
		width = 8
	default:
		return unimplemented(ins)
	}

	mask := uint64(0xffffffffffffffff) >> uint(64-width*8)
	return mc.mem.Store(address, v&mask, width)
}

func (mc *CPU) executeBranch(ins instructions.Branch) error {
	a := mc.Regs.Read(ins.Rs1)
	b := mc.Regs.Read(ins.Rs2)

	var taken bool

	switch ins.Mnemonic {
	case instructions.BEQ:
		taken = a == b
	case instructions.BNE:
		taken = a != b
	case instructions.BLT:
		taken = int64(a) < int64(b)
	case instructions.BGE:
		taken = int64(a) >= int64(b)
	case instructions.BLTU:
		taken = a < b
	case instructions.BGEU:
		taken = a >= b
	default:
		return unimplemented(ins)
	}

	if taken {
		mc.PC += uint64(ins.Offset()) - 4
	}

	return nil
}

func (mc *CPU) executeUpperImm(ins instructions.UpperImm) error {
	v := uint64(ins.Imm << 12)

	switch ins.Mnemonic {
	case instructions.LUI:
		mc.Regs.Write(ins.Rd, v)
	case instructions.AUIPC:
		mc.Regs.Write(ins.Rd, mc.PC+v)
	default:
		return unimplemented(ins)
	}

	return nil
}

func (mc *CPU) executeJump(ins instructions.Jump) error {
	if ins.Mnemonic != instructions.JAL {
		return unimplemented(ins)
	}

	mc.Regs.Write(ins.Rd, mc.PC+4)
	mc.PC += uint64(ins.Imm) - 4

	return nil
}
