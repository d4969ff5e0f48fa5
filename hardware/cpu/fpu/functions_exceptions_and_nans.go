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

type FPException int

// List of exceptions. The value is the bit position of the flag in the FCSR.
const (
	FPExc_Inexact FPException = iota
	FPExc_Underflow
	FPExc_Overflow
	FPExc_DivideByZero
	FPExc_InvalidOp
)

func (exc FPException) String() string {
	switch exc {
	case FPExc_Inexact:
		return "NX"
	case FPExc_Underflow:
		return "UF"
	case FPExc_Overflow:
		return "OF"
	case FPExc_DivideByZero:
		return "DZ"
	case FPExc_InvalidOp:
		return "NV"
	}
	return "unknown exception"
}

// FPProcessException sets the flag of the exception in the FCSR. Exceptions
// never trap.
func (fpu *FPU) FPProcessException(exception FPException) {
	fpu.Status.value |= 0x01 << exception
}

// FPProcessNaNs returns true and the canonical NaN if any of the types is a
// NaN. The invalid operation flag is raised for signalling NaNs.
func (fpu *FPU) FPProcessNaNs(typ ...FPType) (bool, uint32) {
	var done bool
	for _, t := range typ {
		if t == FPType_SNaN {
			fpu.FPProcessException(FPExc_InvalidOp)
		}
		if isNaN(t) {
			done = true
		}
	}
	if done {
		return true, FPDefaultNaN()
	}
	return false, 0
}
