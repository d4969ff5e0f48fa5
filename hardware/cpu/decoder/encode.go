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

package decoder

import (
	"fmt"

	"github.com/ItsIronicIInsist/riscvEmu/curated"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu/instructions"
)

func encR(d, s1, s2 uint8) uint32 {
	return uint32(d)<<7 | uint32(s1)<<15 | uint32(s2)<<20
}

func encImmS(imm int64) uint32 {
	v := uint32(imm)
	return (v>>5&0x7f)<<25 | (v&0x1f)<<7
}

func encImmB(offset int64) uint32 {
	v := uint32(offset)
	return (v>>12&0x01)<<31 | (v>>5&0x3f)<<25 | (v>>1&0x0f)<<8 | (v>>11&0x01)<<7
}

func encImmJ(offset int64) uint32 {
	v := uint32(offset)
	return (v>>20&0x01)<<31 | (v>>1&0x3ff)<<21 | (v>>11&0x01)<<20 | (v>>12&0xff)<<12
}

func inRange(v, lo, hi int64) bool {
	return v >= lo && v <= hi
}

// Encode an instruction as a 32 bit instruction word.
func Encode(ins instructions.Instruction) (uint32, error) {
	if ins == nil {
		return 0, curated.Errorf(UnencodableInstruction, "nil", "no instruction")
	}

	defn, ok := instructions.Lookup(ins.Operation())
	if !ok {
		return 0, curated.Errorf(UnencodableInstruction, ins, "no definition for mnemonic")
	}

	if ins.Format() != defn.Encoding.Format() {
		return 0, curated.Errorf(UnencodableInstruction, ins, fmt.Sprintf("%s requires the %s format", defn.Mnemonic, defn.Encoding.Format()))
	}

	fields, err := operands(defn, ins)
	if err != nil {
		return 0, curated.Errorf(UnencodableInstruction, ins, err)
	}

	// operands must not disturb the fixed fields of the definition
	if fields&defn.Mask != defn.Match&fields&defn.Mask {
		return 0, curated.Errorf(UnencodableInstruction, ins, "operand conflicts with fixed field")
	}

	return defn.Match | fields, nil
}

// operands returns the operand fields of the instruction, in place in the
// instruction word.
func operands(defn instructions.Definition, ins instructions.Instruction) (uint32, error) {
	switch ins := ins.(type) {
	case instructions.RegReg:
		if ins.Rd > 31 || ins.Rs1 > 31 || ins.Rs2 > 31 {
			return 0, fmt.Errorf("register out of range")
		}
		if ins.Rm > 7 {
			return 0, fmt.Errorf("rounding mode out of range")
		}

		w := encR(ins.Rd, ins.Rs1, ins.Rs2)

		switch defn.Encoding {
		case instructions.EncRFloat, instructions.EncRUnary:
			w |= uint32(ins.Rm) << 12
		case instructions.EncAMO, instructions.EncLR:
			if ins.Aq {
				w |= 1 << 26
			}
			if ins.Rl {
				w |= 1 << 25
			}
		}

		// where rs2 is a fixed selector it must agree with the definition
		switch defn.Encoding {
		case instructions.EncRUnary, instructions.EncRUnaryFixed, instructions.EncLR:
			if uint32(ins.Rs2) != (defn.Match>>20)&0x1f {
				return 0, fmt.Errorf("rs2 field must be %d", (defn.Match>>20)&0x1f)
			}
		}

		return w, nil

	case instructions.RegRegReg:
		if ins.Rd > 31 || ins.Rs1 > 31 || ins.Rs2 > 31 || ins.Rs3 > 31 {
			return 0, fmt.Errorf("register out of range")
		}
		if ins.Rm > 7 {
			return 0, fmt.Errorf("rounding mode out of range")
		}
		return encR(ins.Rd, ins.Rs1, ins.Rs2) | uint32(ins.Rs3)<<27 | uint32(ins.Rm)<<12, nil

	case instructions.RegImm:
		if ins.Rd > 31 || ins.Rs1 > 31 {
			return 0, fmt.Errorf("register out of range")
		}

		w := encR(ins.Rd, ins.Rs1, 0)

		switch defn.Encoding {
		case instructions.EncI:
			if !inRange(ins.Imm, -2048, 2047) {
				return 0, fmt.Errorf("immediate out of range")
			}
			w |= uint32(ins.Imm&0xfff) << 20
		case instructions.EncShift64:
			if !inRange(ins.Imm, 0, 63) {
				return 0, fmt.Errorf("shift amount out of range")
			}
			w |= uint32(ins.Imm) << 20
		case instructions.EncShift32:
			if !inRange(ins.Imm, 0, 31) {
				return 0, fmt.Errorf("shift amount out of range")
			}
			w |= uint32(ins.Imm) << 20
		case instructions.EncCSR, instructions.EncFence:
			if !inRange(ins.Imm, 0, 4095) {
				return 0, fmt.Errorf("immediate out of range")
			}
			w |= uint32(ins.Imm) << 20
		case instructions.EncSystem:
			if ins.Rd != 0 || ins.Rs1 != 0 || ins.Imm != 0 {
				return 0, fmt.Errorf("instruction takes no operands")
			}
		}

		return w, nil

	case instructions.Store:
		if ins.Rs1 > 31 || ins.Rs2 > 31 {
			return 0, fmt.Errorf("register out of range")
		}
		if !inRange(ins.Imm, -2048, 2047) {
			return 0, fmt.Errorf("immediate out of range")
		}
		return encR(0, ins.Rs1, ins.Rs2) | encImmS(ins.Imm), nil

	case instructions.Branch:
		if ins.Rs1 > 31 || ins.Rs2 > 31 {
			return 0, fmt.Errorf("register out of range")
		}
		if !inRange(ins.Imm, -2048, 2047) {
			return 0, fmt.Errorf("branch offset out of range")
		}
		return encR(0, ins.Rs1, ins.Rs2) | encImmB(ins.Offset()), nil

	case instructions.UpperImm:
		if ins.Rd > 31 {
			return 0, fmt.Errorf("register out of range")
		}
		if !inRange(ins.Imm, -(1 << 19), (1<<19)-1) {
			return 0, fmt.Errorf("immediate out of range")
		}
		return encR(ins.Rd, 0, 0) | uint32(ins.Imm&0xfffff)<<12, nil

	case instructions.Jump:
		if ins.Rd > 31 {
			return 0, fmt.Errorf("register out of range")
		}
		if !inRange(ins.Imm, -(1 << 20), (1<<20)-2) || ins.Imm&1 != 0 {
			return 0, fmt.Errorf("jump offset out of range or odd")
		}
		return encR(ins.Rd, 0, 0) | encImmJ(ins.Imm), nil
	}

	return 0, fmt.Errorf("unknown instruction type %T", ins)
}
