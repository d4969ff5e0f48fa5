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
	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu/fpu"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu/instructions"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu/registers"
)

func (mc *CPU) executeFloatLoad(ins instructions.RegImm) error {
	if ins.Mnemonic != instructions.FLW {
		return unimplemented(ins)
	}

	address := mc.Regs.Read(ins.Rs1) + uint64(ins.Imm)
	v, err := mc.mem.Load(address, 4)
	if err != nil {
		return err
	}

	mc.FRegs.WriteSingle(ins.Rd, uint32(v))
	return nil
}

func (mc *CPU) executeFloatStore(ins instructions.Store) error {
	address := mc.Regs.Read(ins.Rs1) + uint64(ins.Imm)

	// the low 32 bits are stored whether or not the register is boxed
	v := mc.FRegs.Read(ins.Rs2) & 0xffffffff
	return mc.mem.Store(address, v, 4)
}

func (mc *CPU) executeFusedMultiply(ins instructions.RegRegReg) error {
	mode, err := mc.FPU.Resolve(ins.Rm)
	if err != nil {
		return err
	}

	a := mc.FRegs.ReadSingle(ins.Rs1)
	b := mc.FRegs.ReadSingle(ins.Rs2)
	c := mc.FRegs.ReadSingle(ins.Rs3)

	var r uint32

	switch ins.Mnemonic {
	case instructions.FMADDS:
		r = mc.FPU.FPMulAdd(a, b, c, false, false, mode)
	case instructions.FMSUBS:
		r = mc.FPU.FPMulAdd(a, b, c, false, true, mode)
	case instructions.FNMSUBS:
		r = mc.FPU.FPMulAdd(a, b, c, true, false, mode)
	case instructions.FNMADDS:
		r = mc.FPU.FPMulAdd(a, b, c, true, true, mode)
	default:
		return unimplemented(ins)
	}

	mc.FRegs.WriteSingle(ins.Rd, r)
	return nil
}

// instructions that take a rounding mode from the rm field
func roundingInstruction(m instructions.Mnemonic) bool {
	switch m {
	case instructions.FADDS, instructions.FSUBS, instructions.FMULS,
		instructions.FDIVS, instructions.FSQRTS,
		instructions.FCVTWS, instructions.FCVTWUS, instructions.FCVTLS, instructions.FCVTLUS,
		instructions.FCVTSW, instructions.FCVTSWU, instructions.FCVTSL, instructions.FCVTSLU:
		return true
	}
	return false
}

func (mc *CPU) executeFloat(ins instructions.RegReg) error {
	var mode fpu.RoundingMode
	if roundingInstruction(ins.Mnemonic) {
		var err error
		mode, err = mc.FPU.Resolve(ins.Rm)
		if err != nil {
			return err
		}
	}

	a := mc.FRegs.ReadSingle(ins.Rs1)
	b := mc.FRegs.ReadSingle(ins.Rs2)
	x := mc.Regs.Read(ins.Rs1)

	switch ins.Mnemonic {
	case instructions.FADDS:
		mc.FRegs.WriteSingle(ins.Rd, mc.FPU.FPAdd(a, b, mode))
	case instructions.FSUBS:
		mc.FRegs.WriteSingle(ins.Rd, mc.FPU.FPSub(a, b, mode))
	case instructions.FMULS:
		mc.FRegs.WriteSingle(ins.Rd, mc.FPU.FPMul(a, b, mode))
	case instructions.FDIVS:
		mc.FRegs.WriteSingle(ins.Rd, mc.FPU.FPDiv(a, b, mode))
	case instructions.FSQRTS:
		mc.FRegs.WriteSingle(ins.Rd, mc.FPU.FPSqrt(a, mode))

	case instructions.FSGNJS:
		mc.FRegs.WriteSingle(ins.Rd, fpu.FPSignInject(a, b, fpu.SignCopy))
	case instructions.FSGNJNS:
		mc.FRegs.WriteSingle(ins.Rd, fpu.FPSignInject(a, b, fpu.SignNegate))
	case instructions.FSGNJXS:
		mc.FRegs.WriteSingle(ins.Rd, fpu.FPSignInject(a, b, fpu.SignXor))
	case instructions.FMINS:
		mc.FRegs.WriteSingle(ins.Rd, mc.FPU.FPMin(a, b))
	case instructions.FMAXS:
		mc.FRegs.WriteSingle(ins.Rd, mc.FPU.FPMax(a, b))

	case instructions.FCVTWS:
		mc.Regs.Write(ins.Rd, mc.FPU.FPToFixed(a, 32, false, mode))
	case instructions.FCVTWUS:
		mc.Regs.Write(ins.Rd, mc.FPU.FPToFixed(a, 32, true, mode))
	case instructions.FCVTLS:
		mc.Regs.Write(ins.Rd, mc.FPU.FPToFixed(a, 64, false, mode))
	case instructions.FCVTLUS:
		mc.Regs.Write(ins.Rd, mc.FPU.FPToFixed(a, 64, true, mode))

	case instructions.FCVTSW:
		mc.FRegs.WriteSingle(ins.Rd, mc.FPU.FixedToFP(x, 32, false, mode))
	case instructions.FCVTSWU:
		mc.FRegs.WriteSingle(ins.Rd, mc.FPU.FixedToFP(x, 32, true, mode))
	case instructions.FCVTSL:
		mc.FRegs.WriteSingle(ins.Rd, mc.FPU.FixedToFP(x, 64, false, mode))
	case instructions.FCVTSLU:
		mc.FRegs.WriteSingle(ins.Rd, mc.FPU.FixedToFP(x, 64, true, mode))

	case instructions.FMVXW:
		// the raw low 32 bits are moved whether or not the value is boxed
		mc.Regs.Write(ins.Rd, sext32(uint32(mc.FRegs.Read(ins.Rs1))))
	case instructions.FMVWX:
		mc.FRegs.Write(ins.Rd, registers.Box(uint32(x)))

	case instructions.FEQS:
		mc.Regs.Write(ins.Rd, boolToReg(mc.FPU.FPCompareEQ(a, b)))
	case instructions.FLTS:
		mc.Regs.Write(ins.Rd, boolToReg(mc.FPU.FPCompareLT(a, b)))
	case instructions.FLES:
		mc.Regs.Write(ins.Rd, boolToReg(mc.FPU.FPCompareLE(a, b)))
	case instructions.FCLASSS:
		mc.Regs.Write(ins.Rd, uint64(fpu.FPClassify(a)))

	default:
		return unimplemented(ins)
	}

	return nil
}
