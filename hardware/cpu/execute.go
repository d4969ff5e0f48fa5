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
)

// sign extend a 32 bit value to 64 bits
func sext32(v uint32) uint64 {
	return uint64(int64(int32(v)))
}

func boolToReg(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

func unimplemented(ins instructions.Instruction) error {
	return curated.Errorf(UnimplementedInstruction, ins)
}

// Execute a decoded instruction. The PC is left pointing four bytes before
// the next instruction.
func (mc *CPU) Execute(ins instructions.Instruction) error {
	switch ins := ins.(type) {
	case instructions.RegReg:
		switch ins.Mnemonic.Extension() {
		case instructions.Multiply:
			return mc.executeMulDiv(ins)
		case instructions.Atomic:
			return mc.executeAtomic(ins)
		case instructions.SingleFloat:
			return mc.executeFloat(ins)
		}
		return mc.executeRegReg(ins)

	case instructions.RegRegReg:
		return mc.executeFusedMultiply(ins)

	case instructions.RegImm:
		switch ins.Mnemonic.Extension() {
		case instructions.ControlStatus:
			return mc.executeCSR(ins)
		case instructions.Privileged:
			return mc.executeSystem(ins)
		case instructions.SingleFloat:
			return mc.executeFloatLoad(ins)
		}
		switch ins.Mnemonic {
		case instructions.ECALL, instructions.EBREAK, instructions.FENCE, instructions.FENCEI:
			return mc.executeSystem(ins)
		}
		return mc.executeRegImm(ins)

	case instructions.Store:
		if ins.Mnemonic == instructions.FSW {
			return mc.executeFloatStore(ins)
		}
		return mc.executeStore(ins)

	case instructions.Branch:
		return mc.executeBranch(ins)

	case instructions.UpperImm:
		return mc.executeUpperImm(ins)

	case instructions.Jump:
		return mc.executeJump(ins)
	}

	return unimplemented(ins)
}
