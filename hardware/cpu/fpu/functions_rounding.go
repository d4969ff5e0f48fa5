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

const (
	// smallest positive normal binary32 value
	minNormal = 0x1p-126

	// the magnitude one binary32 ulp beyond the largest finite value
	overflowBoundary = 0x1p128
)

func signum(v float64) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

// twoSum returns the float64 sum of a and b and the exact error of that sum.
func twoSum(a, b float64) (float64, float64) {
	s := a + b
	bb := s - a
	err := (a - (s - bb)) + (b - bb)
	return s, err
}

// value of a binary32 candidate for the purpose of comparison. infinity is
// treated as the first value beyond the overflow boundary
func candidate(f float32) float64 {
	if math.IsInf(float64(f), 0) {
		return math.Copysign(overflowBoundary, float64(f))
	}
	return float64(f)
}

// FPRound rounds the value represented by hi and dir to binary32.
//
// The value being rounded is not hi itself but a value infinitesimally close
// to it: dir is the sign of the difference between the exact value and hi.
// When dir is zero hi is exact.
//
// Flags in the FCSR are updated as appropriate. Tininess is detected after
// rounding.
func (fpu *FPU) FPRound(hi float64, dir int, mode RoundingMode) uint32 {
	res, inexact := roundBinary32(hi, dir, mode)
	if !inexact {
		return math.Float32bits(res)
	}

	fpu.FPProcessException(FPExc_Inexact)

	if math.IsInf(float64(res), 0) || math.Abs(hi) > overflowBoundary ||
		(math.Abs(hi) == overflowBoundary && dir*signum(hi) >= 0) {
		fpu.FPProcessException(FPExc_Overflow)
	}

	if tiny(hi, dir, mode) {
		fpu.FPProcessException(FPExc_Underflow)
	}

	return math.Float32bits(res)
}

// tiny returns true if the value, rounded to binary32 precision with an
// unbounded exponent range, is smaller in magnitude than the smallest normal.
func tiny(hi float64, dir int, mode RoundingMode) bool {
	a := math.Abs(hi)
	if a >= minNormal {
		return false
	}

	// rounding can only carry into the normal range from the top binade of
	// the subnormals
	if a < minNormal/2 {
		return true
	}

	// scaling by a power of two is exact and moves the value into the normal
	// range, where binary32 rounding has the full precision
	const scale = 0x1p64
	s, _ := roundBinary32(hi*scale, dir, mode)
	return math.Abs(float64(s)) < minNormal*scale
}

// roundBinary32 rounds the value represented by hi and dir to binary32
// without updating any flags. The second return value is true if the result
// is inexact.
func roundBinary32(hi float64, dir int, mode RoundingMode) (float32, bool) {
	r := float32(hi)
	if math.IsInf(float64(r), 0) {
		r = float32(math.Copysign(math.MaxFloat32, hi))
	}

	// which side of r the exact value lies on
	side := signum(hi - float64(r))
	if side == 0 {
		side = dir
	}

	// exact result
	if side == 0 {
		return r, false
	}

	// the other binary32 candidate
	var n float32
	if side > 0 {
		n = math.Nextafter32(r, float32(math.Inf(1)))
	} else {
		n = math.Nextafter32(r, float32(math.Inf(-1)))
	}

	rv := candidate(r)
	nv := candidate(n)

	var res float32

	switch mode {
	case FPRoundZero:
		if math.Abs(rv) < math.Abs(nv) {
			res = r
		} else {
			res = n
		}
	case FPRoundDown:
		if rv < nv {
			res = r
		} else {
			res = n
		}
	case FPRoundUp:
		if rv > nv {
			res = r
		} else {
			res = n
		}
	default:
		mid := (rv + nv) / 2
		s := signum(hi - mid)
		if s == 0 {
			s = dir
		}

		switch {
		case s == 0:
			// exactly half way between the two candidates
			if mode == FPRoundMaxMagnitude {
				if math.Abs(rv) > math.Abs(nv) {
					res = r
				} else {
					res = n
				}
			} else {
				if math.Float32bits(r)&0x01 == 0 {
					res = r
				} else {
					res = n
				}
			}
		case s == signum(nv-rv):
			res = n
		default:
			res = r
		}
	}

	return res, true
}

// roundIntegral rounds the value to an integral value with the rounding mode.
// The result is exact.
func roundIntegral(v float64, mode RoundingMode) float64 {
	switch mode {
	case FPRoundZero:
		return math.Trunc(v)
	case FPRoundDown:
		return math.Floor(v)
	case FPRoundUp:
		return math.Ceil(v)
	case FPRoundMaxMagnitude:
		return math.Round(v)
	}
	return math.RoundToEven(v)
}
