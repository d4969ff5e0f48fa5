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

import "fmt"

// FCSR is the floating-point control and status register. Bits [7:5] are the
// rounding mode (frm) and bits [4:0] are the accrued exception flags
// (fflags).
type FCSR struct {
	value uint32
}

func (fcsr FCSR) String() string {
	return fmt.Sprintf("frm=%s flags=%05b", fcsr.FRM(), fcsr.Flags())
}

// Value returns the eight bits of the FCSR.
func (fcsr FCSR) Value() uint32 {
	return fcsr.value & 0xff
}

// SetValue sets the eight bits of the FCSR. Upper bits are ignored.
func (fcsr *FCSR) SetValue(v uint32) {
	fcsr.value = v & 0xff
}

// Flags returns the accrued exception flags.
func (fcsr FCSR) Flags() uint32 {
	// bits 0-4
	return fcsr.value & 0x1f
}

// SetFlags sets the accrued exception flags.
func (fcsr *FCSR) SetFlags(v uint32) {
	// bits 0-4
	fcsr.value &= 0xe0
	fcsr.value |= v & 0x1f
}

// FRM returns the dynamic rounding mode.
func (fcsr FCSR) FRM() RoundingMode {
	// bits 5-7
	return RoundingMode((fcsr.value & 0xe0) >> 5)
}

// SetFRM sets the dynamic rounding mode.
func (fcsr *FCSR) SetFRM(mode RoundingMode) {
	// bits 5-7
	fcsr.value &= 0x1f
	fcsr.value |= (uint32(mode) & 0x07) << 5
}

func (fcsr FCSR) NV() bool {
	// bit 4
	return fcsr.value&0x10 == 0x10
}

func (fcsr FCSR) DZ() bool {
	// bit 3
	return fcsr.value&0x08 == 0x08
}

func (fcsr FCSR) OF() bool {
	// bit 2
	return fcsr.value&0x04 == 0x04
}

func (fcsr FCSR) UF() bool {
	// bit 1
	return fcsr.value&0x02 == 0x02
}

func (fcsr FCSR) NX() bool {
	// bit 0
	return fcsr.value&0x01 == 0x01
}

// RoundingMode is the rounding mode field of an instruction or of the FCSR.
type RoundingMode uint8

// List of valid rounding modes. Values five and six are reserved.
const (
	FPRoundNearestEven   RoundingMode = 0b000
	FPRoundZero          RoundingMode = 0b001
	FPRoundDown          RoundingMode = 0b010
	FPRoundUp            RoundingMode = 0b011
	FPRoundMaxMagnitude  RoundingMode = 0b100
	FPRoundDynamic       RoundingMode = 0b111
	numValidRoundingMode              = 5
)

func (mode RoundingMode) String() string {
	switch mode {
	case FPRoundNearestEven:
		return "rne"
	case FPRoundZero:
		return "rtz"
	case FPRoundDown:
		return "rdn"
	case FPRoundUp:
		return "rup"
	case FPRoundMaxMagnitude:
		return "rmm"
	case FPRoundDynamic:
		return "dyn"
	}
	return fmt.Sprintf("reserved(%d)", uint8(mode))
}

// CSR addresses of the FCSR views
const (
	csrFFLAGS = 0x001
	csrFRM    = 0x002
	csrFCSR   = 0x003
)

// ReadCSR implements the registers.Mapping interface.
func (fpu *FPU) ReadCSR(addr uint16) uint64 {
	switch addr {
	case csrFFLAGS:
		return uint64(fpu.Status.Flags())
	case csrFRM:
		return uint64(fpu.Status.FRM())
	}
	return uint64(fpu.Status.Value())
}

// WriteCSR implements the registers.Mapping interface.
func (fpu *FPU) WriteCSR(addr uint16, v uint64) {
	switch addr {
	case csrFFLAGS:
		fpu.Status.SetFlags(uint32(v))
	case csrFRM:
		fpu.Status.SetFRM(RoundingMode(v))
	default:
		fpu.Status.SetValue(uint32(v))
	}
}

// CSRAddresses returns the CSR addresses that should be mapped to the FPU.
func CSRAddresses() []uint16 {
	return []uint16{csrFFLAGS, csrFRM, csrFCSR}
}
