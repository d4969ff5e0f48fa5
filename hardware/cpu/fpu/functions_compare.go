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

// FPMin returns the smaller of the two operands. If only one operand is a
// NaN the other operand is returned. Negative zero is less than positive
// zero.
func (fpu *FPU) FPMin(op1 uint32, op2 uint32) uint32 {
	return fpu.minMax(op1, op2, true)
}

// FPMax returns the larger of the two operands. NaN and zero operands are
// treated as they are by FPMin().
func (fpu *FPU) FPMax(op1 uint32, op2 uint32) uint32 {
	return fpu.minMax(op1, op2, false)
}

func (fpu *FPU) minMax(op1 uint32, op2 uint32, min bool) uint32 {
	typ1, _, value1 := FPUnpack(op1)
	typ2, _, value2 := FPUnpack(op2)

	if typ1 == FPType_SNaN || typ2 == FPType_SNaN {
		fpu.FPProcessException(FPExc_InvalidOp)
	}

	nan1 := isNaN(typ1)
	nan2 := isNaN(typ2)

	switch {
	case nan1 && nan2:
		return FPDefaultNaN()
	case nan1:
		return op2
	case nan2:
		return op1
	}

	if value1 == value2 {
		// the only equal values with different bit patterns are the two
		// zeros. the sign bit decides between them
		if min {
			return op1 | op2
		}
		return op1 & op2
	}

	if (value1 < value2) == min {
		return op1
	}
	return op2
}

// FPCompareEQ is a quiet comparison. Only signalling NaN operands raise the
// invalid operation flag.
func (fpu *FPU) FPCompareEQ(op1 uint32, op2 uint32) bool {
	typ1, _, value1 := FPUnpack(op1)
	typ2, _, value2 := FPUnpack(op2)
	if typ1 == FPType_SNaN || typ2 == FPType_SNaN {
		fpu.FPProcessException(FPExc_InvalidOp)
	}
	if isNaN(typ1) || isNaN(typ2) {
		return false
	}
	return value1 == value2
}

// FPCompareLT is a signalling comparison. Any NaN operand raises the invalid
// operation flag.
func (fpu *FPU) FPCompareLT(op1 uint32, op2 uint32) bool {
	typ1, _, value1 := FPUnpack(op1)
	typ2, _, value2 := FPUnpack(op2)
	if isNaN(typ1) || isNaN(typ2) {
		fpu.FPProcessException(FPExc_InvalidOp)
		return false
	}
	return value1 < value2
}

// FPCompareLE is a signalling comparison in the same way as FPCompareLT().
func (fpu *FPU) FPCompareLE(op1 uint32, op2 uint32) bool {
	typ1, _, value1 := FPUnpack(op1)
	typ2, _, value2 := FPUnpack(op2)
	if isNaN(typ1) || isNaN(typ2) {
		fpu.FPProcessException(FPExc_InvalidOp)
		return false
	}
	return value1 <= value2
}

// List of bits in the result of FPClassify().
const (
	ClassNegInfinity  = 1 << 0
	ClassNegNormal    = 1 << 1
	ClassNegSubnormal = 1 << 2
	ClassNegZero      = 1 << 3
	ClassPosZero      = 1 << 4
	ClassPosSubnormal = 1 << 5
	ClassPosNormal    = 1 << 6
	ClassPosInfinity  = 1 << 7
	ClassSNaN         = 1 << 8
	ClassQNaN         = 1 << 9
)

// FPClassify returns a mask with exactly one bit set that describes the
// class of the value. No flags are raised.
func FPClassify(op uint32) uint32 {
	typ, sign, _ := FPUnpack(op)

	switch typ {
	case FPType_SNaN:
		return ClassSNaN
	case FPType_QNaN:
		return ClassQNaN
	case FPType_Infinity:
		if sign {
			return ClassNegInfinity
		}
		return ClassPosInfinity
	case FPType_Zero:
		if sign {
			return ClassNegZero
		}
		return ClassPosZero
	}

	subnormal := op&expBits == 0
	switch {
	case sign && subnormal:
		return ClassNegSubnormal
	case sign:
		return ClassNegNormal
	case subnormal:
		return ClassPosSubnormal
	}
	return ClassPosNormal
}

// SignInjection selects how the sign of the result of FPSignInject() is
// chosen.
type SignInjection int

// List of valid SignInjection values.
const (
	SignCopy SignInjection = iota
	SignNegate
	SignXor
)

// FPSignInject returns op1 with a sign bit taken from op2. The operation
// works on the bit patterns only, NaN values are not canonicalised and no
// flags are raised.
func FPSignInject(op1 uint32, op2 uint32, inject SignInjection) uint32 {
	switch inject {
	case SignNegate:
		return (op1 &^ signBit) | (^op2 & signBit)
	case SignXor:
		return op1 ^ (op2 & signBit)
	}
	return (op1 &^ signBit) | (op2 & signBit)
}

// FPNeg returns the negated value.
func FPNeg(op uint32) uint32 {
	return op ^ signBit
}

// FPAbs returns the absolute value.
func FPAbs(op uint32) uint32 {
	return op &^ signBit
}

// ToFloat32 returns the binary32 bit pattern as a float32. Used when printing
// register values.
func ToFloat32(op uint32) float32 {
	return math.Float32frombits(op)
}
