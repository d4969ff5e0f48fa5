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

package registers

import (
	"fmt"
	"strings"
)

// CanonicalNaN is the value read from a floating-point register that does not
// hold a properly NaN-boxed single-precision value.
const CanonicalNaN = 0x7fc00000

const boxBits = 0xffffffff00000000

// Box places a single-precision value in a 64 bit register value with the
// upper 32 bits set to one.
func Box(v uint32) uint64 {
	return boxBits | uint64(v)
}

// Unbox returns the single-precision value in a 64 bit register value. If
// the upper 32 bits are not all one the canonical NaN is returned.
func Unbox(v uint64) uint32 {
	if v&boxBits != boxBits {
		return CanonicalNaN
	}
	return uint32(v)
}

// FloatRegisters is the floating-point register file. Each register is 64
// bits wide.
type FloatRegisters struct {
	regs [NumRegisters]uint64
}

// Label returns the canonical name for the register file.
func (r *FloatRegisters) Label() string {
	return "F"
}

// String lists the registers that are not zero. Properly boxed values are
// shown as 32 bit values.
func (r *FloatRegisters) String() string {
	s := strings.Builder{}
	for i := 0; i < NumRegisters; i++ {
		if r.regs[i] == 0 {
			continue
		}
		if s.Len() > 0 {
			s.WriteRune(' ')
		}
		if r.regs[i]&boxBits == boxBits {
			s.WriteString(fmt.Sprintf("%s=%#08x", FloatABIName(uint8(i)), uint32(r.regs[i])))
		} else {
			s.WriteString(fmt.Sprintf("%s=%#x", FloatABIName(uint8(i)), r.regs[i]))
		}
	}
	return s.String()
}

// Reset all registers to zero.
func (r *FloatRegisters) Reset() {
	r.regs = [NumRegisters]uint64{}
}

// Read the raw 64 bit value of register n.
func (r *FloatRegisters) Read(n uint8) uint64 {
	return r.regs[n&0x1f]
}

// Write a raw 64 bit value to register n.
func (r *FloatRegisters) Write(n uint8, v uint64) {
	r.regs[n&0x1f] = v
}

// ReadSingle returns the unboxed single-precision bits of register n.
func (r *FloatRegisters) ReadSingle(n uint8) uint32 {
	return Unbox(r.regs[n&0x1f])
}

// WriteSingle writes the single-precision bits to register n, NaN-boxed.
func (r *FloatRegisters) WriteSingle(n uint8, v uint32) {
	r.regs[n&0x1f] = Box(v)
}

// Snapshot returns a copy of the register file.
func (r *FloatRegisters) Snapshot() [NumRegisters]uint64 {
	return r.regs
}
