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
	"math/bits"
)

// FPToFixed converts the binary32 value to an integer of N bits, signed or
// unsigned, rounding with the rounding mode. Values outside the range of the
// integer saturate and raise the invalid operation flag. NaN converts to the
// largest integer.
//
// The result is returned as a 64 bit register value: 32 bit results are sign
// extended, including unsigned results.
func (fpu *FPU) FPToFixed(op uint32, N int, unsigned bool, mode RoundingMode) uint64 {
	if N != 32 && N != 64 {
		panic("unsupported number of bits in FPToFixed()")
	}

	var min, max float64
	var minResult, maxResult uint64

	switch {
	case N == 32 && unsigned:
		min, max = 0, math.MaxUint32
		minResult, maxResult = 0, 0xffffffffffffffff
	case N == 32:
		min, max = math.MinInt32, math.MaxInt32
		minResult, maxResult = 0xffffffff80000000, 0x000000007fffffff
	case unsigned:
		min, max = 0, 0x1p64
		minResult, maxResult = 0, 0xffffffffffffffff
	default:
		min, max = -0x1p63, 0x1p63
		minResult, maxResult = 0x8000000000000000, 0x7fffffffffffffff
	}

	typ, sign, value := FPUnpack(op)

	if isNaN(typ) {
		fpu.FPProcessException(FPExc_InvalidOp)
		return maxResult
	}

	if typ == FPType_Infinity {
		fpu.FPProcessException(FPExc_InvalidOp)
		if sign {
			return minResult
		}
		return maxResult
	}

	rounded := roundIntegral(value, mode)

	// the 64 bit upper bounds are not representable as integers in float64 so
	// the comparison against them is exclusive
	if rounded < min || rounded > max || (N == 64 && rounded == max) {
		fpu.FPProcessException(FPExc_InvalidOp)
		if rounded < min {
			return minResult
		}
		return maxResult
	}

	if rounded != value {
		fpu.FPProcessException(FPExc_Inexact)
	}

	if N == 32 {
		if unsigned {
			return uint64(int64(int32(uint32(rounded))))
		}
		return uint64(int64(int32(rounded)))
	}

	if unsigned {
		return uint64(rounded)
	}
	return uint64(int64(rounded))
}

// FixedToFP converts the integer of N bits, signed or unsigned, to binary32
// rounding with the rounding mode. Only the low N bits of the value are used.
func (fpu *FPU) FixedToFP(v uint64, N int, unsigned bool, mode RoundingMode) uint32 {
	if N != 32 && N != 64 {
		panic("unsupported number of bits in FixedToFP()")
	}

	var neg bool
	var mag uint64

	switch {
	case N == 32 && unsigned:
		mag = uint64(uint32(v))
	case N == 32:
		x := int64(int32(v))
		neg = x < 0
		if neg {
			mag = uint64(-x)
		} else {
			mag = uint64(x)
		}
	case unsigned:
		mag = v
	default:
		neg = int64(v) < 0
		if neg {
			mag = -v
		} else {
			mag = v
		}
	}

	if mag == 0 {
		return FPZero(false)
	}

	// position of most significant bit
	msb := 63 - bits.LeadingZeros64(mag)

	// the value fits in the 24 bit significand
	if msb <= 23 {
		f := float32(mag)
		if neg {
			f = -f
		}
		return math.Float32bits(f)
	}

	shift := msb - 23
	keep := mag >> shift
	rem := mag & ((1 << shift) - 1)
	half := uint64(1) << (shift - 1)

	var roundUp bool
	switch mode {
	case FPRoundNearestEven:
		roundUp = rem > half || (rem == half && keep&0x01 == 0x01)
	case FPRoundDown:
		roundUp = neg && rem != 0
	case FPRoundUp:
		roundUp = !neg && rem != 0
	case FPRoundMaxMagnitude:
		roundUp = rem >= half
	}

	if rem != 0 {
		fpu.FPProcessException(FPExc_Inexact)
	}

	if roundUp {
		keep++
		if keep == 1<<24 {
			keep >>= 1
			shift++
		}
	}

	f := math.Ldexp(float64(keep), shift)
	if neg {
		f = -f
	}
	return math.Float32bits(float32(f))
}
