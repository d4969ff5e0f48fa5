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

// NumRegisters is the number of registers in the integer and floating-point
// register files.
const NumRegisters = 32

// StackPointer is the index of the register used as the stack pointer by the
// calling convention.
const StackPointer = 2

var abiNames = [NumRegisters]string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

// ABIName returns the calling convention name of the integer register.
func ABIName(n uint8) string {
	if n >= NumRegisters {
		return fmt.Sprintf("x%d", n)
	}
	return abiNames[n]
}

// FloatABIName returns the calling convention name of the floating-point
// register.
func FloatABIName(n uint8) string {
	switch {
	case n <= 7:
		return fmt.Sprintf("ft%d", n)
	case n <= 9:
		return fmt.Sprintf("fs%d", n-8)
	case n <= 17:
		return fmt.Sprintf("fa%d", n-10)
	case n <= 27:
		return fmt.Sprintf("fs%d", n-16)
	case n <= 31:
		return fmt.Sprintf("ft%d", n-20)
	}
	return fmt.Sprintf("f%d", n)
}

// Registers is the integer register file.
type Registers struct {
	regs [NumRegisters]uint64
}

// Label returns the canonical name for the register file.
func (r *Registers) Label() string {
	return "X"
}

// String lists the registers that are not zero.
func (r *Registers) String() string {
	s := strings.Builder{}
	for i := 1; i < NumRegisters; i++ {
		if r.regs[i] == 0 {
			continue
		}
		if s.Len() > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%s=%#x", abiNames[i], r.regs[i]))
	}
	return s.String()
}

// Reset all registers to zero.
func (r *Registers) Reset() {
	r.regs = [NumRegisters]uint64{}
}

// Read the value of register n.
func (r *Registers) Read(n uint8) uint64 {
	return r.regs[n&0x1f]
}

// Write a value to register n. Writes to x0 are discarded.
func (r *Registers) Write(n uint8, v uint64) {
	n &= 0x1f
	if n == 0 {
		return
	}
	r.regs[n] = v
}

// Snapshot returns a copy of the register file.
func (r *Registers) Snapshot() [NumRegisters]uint64 {
	return r.regs
}
