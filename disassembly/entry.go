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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu/fpu"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu/instructions"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu/registers"
)

// Entry is the disassembly of a single instruction word.
type Entry struct {
	Address uint64
	Word    uint32

	// the decoded instruction. nil if the word could not be decoded
	Instruction instructions.Instruction

	Operator string
	Operand  string
}

// String returns the operator and operand of the entry separated by a space.
func (e *Entry) String() string {
	if e.Operand == "" {
		return e.Operator
	}
	return fmt.Sprintf("%s %s", e.Operator, e.Operand)
}

// Format returns the assembly language representation of the instruction.
func Format(ins instructions.Instruction) string {
	operator, operand := split(ins)
	if operand == "" {
		return operator
	}
	return fmt.Sprintf("%s %s", operator, operand)
}

func x(n uint8) string {
	return registers.ABIName(n)
}

func f(n uint8) string {
	return registers.FloatABIName(n)
}

func join(operands ...string) string {
	return strings.Join(operands, ", ")
}

// the rounding mode is only shown when it is not the dynamic mode
func withRounding(operand string, rm uint8) string {
	if rm == uint8(fpu.FPRoundDynamic) {
		return operand
	}
	return join(operand, fpu.RoundingMode(rm).String())
}

// split the instruction into its operator and operand strings.
func split(ins instructions.Instruction) (string, string) {
	m := ins.Operation()
	operator := m.String()

	switch ins := ins.(type) {
	case instructions.RegReg:
		switch m.Extension() {
		case instructions.Atomic:
			if ins.Aq {
				operator += ".aq"
			}
			if ins.Rl {
				operator += ".rl"
			}
			if m == instructions.LRW || m == instructions.LRD {
				return operator, join(x(ins.Rd), fmt.Sprintf("(%s)", x(ins.Rs1)))
			}
			return operator, join(x(ins.Rd), x(ins.Rs2), fmt.Sprintf("(%s)", x(ins.Rs1)))

		case instructions.SingleFloat:
			return operator, floatOperands(ins)
		}
		return operator, join(x(ins.Rd), x(ins.Rs1), x(ins.Rs2))

	case instructions.RegRegReg:
		return operator, withRounding(join(f(ins.Rd), f(ins.Rs1), f(ins.Rs2), f(ins.Rs3)), ins.Rm)

	case instructions.RegImm:
		switch m {
		case instructions.ECALL, instructions.EBREAK, instructions.FENCE, instructions.FENCEI,
			instructions.MRET, instructions.SRET, instructions.WFI:
			return operator, ""

		case instructions.LB, instructions.LH, instructions.LW, instructions.LD,
			instructions.LBU, instructions.LHU, instructions.LWU, instructions.JALR:
			return operator, join(x(ins.Rd), fmt.Sprintf("%d(%s)", ins.Imm, x(ins.Rs1)))

		case instructions.FLW:
			return operator, join(f(ins.Rd), fmt.Sprintf("%d(%s)", ins.Imm, x(ins.Rs1)))

		case instructions.CSRRW, instructions.CSRRS, instructions.CSRRC:
			return operator, join(x(ins.Rd), registers.CSRName(uint16(ins.Imm)), x(ins.Rs1))

		case instructions.CSRRWI, instructions.CSRRSI, instructions.CSRRCI:
			return operator, join(x(ins.Rd), registers.CSRName(uint16(ins.Imm)), fmt.Sprintf("%d", ins.Rs1))
		}
		return operator, join(x(ins.Rd), x(ins.Rs1), fmt.Sprintf("%d", ins.Imm))

	case instructions.Store:
		src := x(ins.Rs2)
		if m == instructions.FSW {
			src = f(ins.Rs2)
		}
		return operator, join(src, fmt.Sprintf("%d(%s)", ins.Imm, x(ins.Rs1)))

	case instructions.Branch:
		return operator, join(x(ins.Rs1), x(ins.Rs2), fmt.Sprintf("%d", ins.Offset()))

	case instructions.UpperImm:
		return operator, join(x(ins.Rd), fmt.Sprintf("%#x", ins.Imm&0xfffff))

	case instructions.Jump:
		return operator, join(x(ins.Rd), fmt.Sprintf("%d", ins.Imm))
	}

	return operator, ""
}

// operands for the single precision instructions in the RegReg format. the
// register file of each operand depends on the instruction
func floatOperands(ins instructions.RegReg) string {
	switch ins.Mnemonic {
	case instructions.FADDS, instructions.FSUBS, instructions.FMULS, instructions.FDIVS:
		return withRounding(join(f(ins.Rd), f(ins.Rs1), f(ins.Rs2)), ins.Rm)
	case instructions.FSQRTS:
		return withRounding(join(f(ins.Rd), f(ins.Rs1)), ins.Rm)
	case instructions.FSGNJS, instructions.FSGNJNS, instructions.FSGNJXS, instructions.FMINS, instructions.FMAXS:
		return join(f(ins.Rd), f(ins.Rs1), f(ins.Rs2))
	case instructions.FEQS, instructions.FLTS, instructions.FLES:
		return join(x(ins.Rd), f(ins.Rs1), f(ins.Rs2))
	case instructions.FCVTWS, instructions.FCVTWUS, instructions.FCVTLS, instructions.FCVTLUS:
		return withRounding(join(x(ins.Rd), f(ins.Rs1)), ins.Rm)
	case instructions.FMVXW, instructions.FCLASSS:
		return join(x(ins.Rd), f(ins.Rs1))
	case instructions.FCVTSW, instructions.FCVTSWU, instructions.FCVTSL, instructions.FCVTSLU:
		return withRounding(join(f(ins.Rd), x(ins.Rs1)), ins.Rm)
	case instructions.FMVWX:
		return join(f(ins.Rd), x(ins.Rs1))
	}
	return join(f(ins.Rd), f(ins.Rs1), f(ins.Rs2))
}
