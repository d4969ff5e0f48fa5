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

// CanonicalNaN is the quiet NaN produced by every operation that has a NaN
// result.
const CanonicalNaN uint32 = 0x7fc00000

const (
	signBit  uint32 = 0x80000000
	expBits  uint32 = 0x7f800000
	fracBits uint32 = 0x007fffff
	quietBit uint32 = 0x00400000
)

type FPType int

const (
	FPType_Nonzero FPType = iota
	FPType_Zero
	FPType_Infinity
	FPType_QNaN
	FPType_SNaN
)

// FPUnpack classifies the binary32 value and returns its sign and its value
// as a float64. The float64 value is exact. NaN values are returned as zero.
func FPUnpack(fpval uint32) (FPType, bool, float64) {
	sign := fpval&signBit == signBit
	exp := fpval & expBits
	frac := fpval & fracBits

	var typ FPType
	var value float64

	switch exp {
	case 0:
		if frac == 0 {
			typ = FPType_Zero
		} else {
			typ = FPType_Nonzero
		}
		value = float64(math.Float32frombits(fpval))
	case expBits:
		if frac == 0 {
			typ = FPType_Infinity
			value = float64(math.Float32frombits(fpval))
		} else if frac&quietBit == quietBit {
			typ = FPType_QNaN
		} else {
			typ = FPType_SNaN
		}
	default:
		typ = FPType_Nonzero
		value = float64(math.Float32frombits(fpval))
	}

	return typ, sign, value
}

func isNaN(typ FPType) bool {
	return typ == FPType_QNaN || typ == FPType_SNaN
}

// FPZero returns the zero value with the sign.
func FPZero(sign bool) uint32 {
	if sign {
		return signBit
	}
	return 0
}

// FPInfinity returns the infinity value with the sign.
func FPInfinity(sign bool) uint32 {
	if sign {
		return signBit | expBits
	}
	return expBits
}

// FPDefaultNaN returns the canonical NaN.
func FPDefaultNaN() uint32 {
	return CanonicalNaN
}
