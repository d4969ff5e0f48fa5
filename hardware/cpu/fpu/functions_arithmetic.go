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

package fpu

import (
	"math"
)

// exactZero returns the zero that results from an exact sum of zero. The sum
// of two zeros of the same sign keeps that sign, otherwise the result is
// positive except when rounding down.
func exactZero(allNegative bool, allPositive bool, mode RoundingMode) uint32 {
	if allNegative {
		return FPZero(true)
	}
	if allPositive {
		return FPZero(false)
	}
	return FPZero(mode == FPRoundDown)
}

func (fpu *FPU) FPAdd(op1 uint32, op2 uint32, mode RoundingMode) uint32 {
	typ1, sign1, value1 := FPUnpack(op1)
	typ2, sign2, value2 := FPUnpack(op2)
	if done, result := fpu.FPProcessNaNs(typ1, typ2); done {
		return result
	}

	inf1 := typ1 == FPType_Infinity
	inf2 := typ2 == FPType_Infinity
	zero1 := typ1 == FPType_Zero
	zero2 := typ2 == FPType_Zero

	if inf1 && inf2 && sign1 != sign2 {
		fpu.FPProcessException(FPExc_InvalidOp)
		return FPDefaultNaN()
	}
	if inf1 {
		return FPInfinity(sign1)
	}
	if inf2 {
		return FPInfinity(sign2)
	}
	if zero1 && zero2 {
		return exactZero(sign1 && sign2, !sign1 && !sign2, mode)
	}

	s, err := twoSum(value1, value2)
	if s == 0 && err == 0 {
		return exactZero(false, false, mode)
	}

	return fpu.FPRound(s, signum(err), mode)
}

func (fpu *FPU) FPSub(op1 uint32, op2 uint32, mode RoundingMode) uint32 {
	return fpu.FPAdd(op1, op2^signBit, mode)
}

func (fpu *FPU) FPMul(op1 uint32, op2 uint32, mode RoundingMode) uint32 {
	typ1, sign1, value1 := FPUnpack(op1)
	typ2, sign2, value2 := FPUnpack(op2)
	if done, result := fpu.FPProcessNaNs(typ1, typ2); done {
		return result
	}

	inf1 := typ1 == FPType_Infinity
	inf2 := typ2 == FPType_Infinity
	zero1 := typ1 == FPType_Zero
	zero2 := typ2 == FPType_Zero
	resultSign := sign1 != sign2

	if (inf1 && zero2) || (zero1 && inf2) {
		fpu.FPProcessException(FPExc_InvalidOp)
		return FPDefaultNaN()
	}
	if inf1 || inf2 {
		return FPInfinity(resultSign)
	}
	if zero1 || zero2 {
		return FPZero(resultSign)
	}

	// the product of two binary32 values is exact in float64
	return fpu.FPRound(value1*value2, 0, mode)
}

func (fpu *FPU) FPDiv(op1 uint32, op2 uint32, mode RoundingMode) uint32 {
	typ1, sign1, value1 := FPUnpack(op1)
	typ2, sign2, value2 := FPUnpack(op2)
	if done, result := fpu.FPProcessNaNs(typ1, typ2); done {
		return result
	}

	inf1 := typ1 == FPType_Infinity
	inf2 := typ2 == FPType_Infinity
	zero1 := typ1 == FPType_Zero
	zero2 := typ2 == FPType_Zero
	resultSign := sign1 != sign2

	if (inf1 && inf2) || (zero1 && zero2) {
		fpu.FPProcessException(FPExc_InvalidOp)
		return FPDefaultNaN()
	}
	if inf1 || zero2 {
		if !inf1 {
			fpu.FPProcessException(FPExc_DivideByZero)
		}
		return FPInfinity(resultSign)
	}
	if zero1 || inf2 {
		return FPZero(resultSign)
	}

	q := value1 / value2

	// the remainder of the float64 division is exact
	rem := math.FMA(-q, value2, value1)

	return fpu.FPRound(q, signum(rem)*signum(value2), mode)
}

func (fpu *FPU) FPSqrt(op uint32, mode RoundingMode) uint32 {
	typ, sign, value := FPUnpack(op)
	if done, result := fpu.FPProcessNaNs(typ); done {
		return result
	}

	if typ == FPType_Zero {
		return op
	}
	if sign {
		fpu.FPProcessException(FPExc_InvalidOp)
		return FPDefaultNaN()
	}
	if typ == FPType_Infinity {
		return op
	}

	q := math.Sqrt(value)
	rem := math.FMA(-q, q, value)

	return fpu.FPRound(q, signum(rem), mode)
}

// FPMulAdd computes (op1 * op2) + op3 with a single rounding. The product and
// the addend are negated as required by the FMSUB, FNMSUB and FNMADD
// instructions.
func (fpu *FPU) FPMulAdd(op1 uint32, op2 uint32, op3 uint32, negateProduct bool, negateAddend bool, mode RoundingMode) uint32 {
	typ1, sign1, value1 := FPUnpack(op1)
	typ2, sign2, value2 := FPUnpack(op2)
	typ3, sign3, value3 := FPUnpack(op3)

	inf1 := typ1 == FPType_Infinity
	inf2 := typ2 == FPType_Infinity
	zero1 := typ1 == FPType_Zero
	zero2 := typ2 == FPType_Zero

	// infinity times zero is invalid even if the addend is a quiet NaN
	invalidProduct := (inf1 && zero2) || (zero1 && inf2)
	if invalidProduct && !isNaN(typ1) && !isNaN(typ2) {
		fpu.FPProcessNaNs(typ3)
		fpu.FPProcessException(FPExc_InvalidOp)
		return FPDefaultNaN()
	}

	if done, result := fpu.FPProcessNaNs(typ1, typ2, typ3); done {
		return result
	}

	productSign := (sign1 != sign2) != negateProduct
	addendSign := sign3 != negateAddend
	inf3 := typ3 == FPType_Infinity
	zero3 := typ3 == FPType_Zero

	if inf1 || inf2 {
		if inf3 && productSign != addendSign {
			fpu.FPProcessException(FPExc_InvalidOp)
			return FPDefaultNaN()
		}
		return FPInfinity(productSign)
	}
	if inf3 {
		return FPInfinity(addendSign)
	}

	if (zero1 || zero2) && zero3 {
		return exactZero(productSign && addendSign, !productSign && !addendSign, mode)
	}

	// the product is exact in float64. the sum is exact once the error term
	// is taken into account
	p := value1 * value2
	if negateProduct {
		p = -p
	}
	c := value3
	if negateAddend {
		c = -c
	}

	s, err := twoSum(p, c)
	if s == 0 && err == 0 {
		return exactZero(false, false, mode)
	}

	return fpu.FPRound(s, signum(err), mode)
}
