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
	"math"
	"math/bits"

	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu/instructions"
)

// high 64 bits of the signed product
func mulh(a, b int64) uint64 {
	hi, _ := bits.Mul64(uint64(a), uint64(b))
	if a < 0 {
		hi -= uint64(b)
	}
	if b < 0 {
		hi -= uint64(a)
	}
	return hi
}

// high 64 bits of the product of signed a and unsigned b
func mulhsu(a int64, b uint64) uint64 {
	hi, _ := bits.Mul64(uint64(a), b)
	if a < 0 {
		hi -= b
	}
	return hi
}

// signed division. division by zero returns all ones and overflow returns
// the dividend
func div(a, b int64) int64 {
	if b == 0 {
		return -1
	}
	if a == math.MinInt64 && b == -1 {
		return a
	}
	return a / b
}

func divu(a, b uint64) uint64 {
	if b == 0 {
		return math.MaxUint64
	}
	return a / b
}

// signed remainder. division by zero returns the dividend and overflow
// returns zero
func rem(a, b int64) int64 {
	if b == 0 {
		return a
	}
	if a == math.MinInt64 && b == -1 {
		return 0
	}
	return a % b
}

func remu(a, b uint64) uint64 {
	if b == 0 {
		return a
	}
	return a % b
}

func div32(a, b int32) int32 {
	if b == 0 {
		return -1
	}
	if a == math.MinInt32 && b == -1 {
		return a
	}
	return a / b
}

func divu32(a, b uint32) uint32 {
	if b == 0 {
		return math.MaxUint32
	}
	return a / b
}

func rem32(a, b int32) int32 {
	if b == 0 {
		return a
	}
	if a == math.MinInt32 && b == -1 {
		return 0
	}
	return a % b
}

func remu32(a, b uint32) uint32 {
	if b == 0 {
		return a
	}
	return a % b
}

func (mc *CPU) executeMulDiv(ins instructions.RegReg) error {
	a := mc.Regs.Read(ins.Rs1)
	b := mc.Regs.Read(ins.Rs2)

	var r uint64

	switch ins.Mnemonic {
	case instructions.MUL:
		r = a * b
	case instructions.MULH:
		r = mulh(int64(a), int64(b))
	case instructions.MULHSU:
		r = mulhsu(int64(a), b)
	case instructions.MULHU:
		r, _ = bits.Mul64(a, b)
	case instructions.DIV:
		r = uint64(div(int64(a), int64(b)))
	case instructions.DIVU:
		r = divu(a, b)
	case instructions.REM:
		r = uint64(rem(int64(a), int64(b)))
	case instructions.REMU:
		r = remu(a, b)
	case instructions.MULW:
		r = sext32(uint32(a) * uint32(b))
	case instructions.DIVW:
		r = sext32(uint32(div32(int32(a), int32(b))))
	case instructions.DIVUW:
		r = sext32(divu32(uint32(a), uint32(b)))
	case instructions.REMW:
		r = sext32(uint32(rem32(int32(a), int32(b))))
	case instructions.REMUW:
		r = sext32(remu32(uint32(a), uint32(b)))
	default:
		return unimplemented(ins)
	}

	mc.Regs.Write(ins.Rd, r)
	return nil
}
