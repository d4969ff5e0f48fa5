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
	"github.com/ItsIronicIInsist/riscvEmu/curated"
)

// Sentinal error patterns.
const (
	DynamicRoundingUnsupported = "fpu: dynamic rounding mode is not supported"
	IllegalRoundingMode        = "fpu: illegal rounding mode (%s)"
)

// FPU is the floating-point unit.
type FPU struct {
	Status FCSR

	// the dynamic rounding mode of an instruction resolves to the rounding
	// mode in the FCSR only when this is true
	DynamicRounding bool
}

// NewFPU is the preferred method of initialisation for the FPU type.
func NewFPU() *FPU {
	return &FPU{}
}

func (fpu *FPU) String() string {
	return fpu.Status.String()
}

// Reset the FCSR. The DynamicRounding field is not changed.
func (fpu *FPU) Reset() {
	fpu.Status = FCSR{}
}

// Resolve the rounding mode field of an instruction.
func (fpu *FPU) Resolve(rm uint8) (RoundingMode, error) {
	mode := RoundingMode(rm & 0x07)

	if mode == FPRoundDynamic {
		if !fpu.DynamicRounding {
			return 0, curated.Errorf(DynamicRoundingUnsupported)
		}
		mode = fpu.Status.FRM()
	}

	if mode >= numValidRoundingMode {
		return 0, curated.Errorf(IllegalRoundingMode, mode)
	}

	return mode, nil
}
