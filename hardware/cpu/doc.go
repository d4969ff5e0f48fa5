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

// Package cpu emulates a single RV64IMAF hart with the Zicsr extension.
//
// The CPU type holds the processor state: the program counter, the integer
// and floating-point register files, the CSR bank, the FPU and the current
// privilege level. Step() fetches, decodes and executes one instruction.
//
// Every control transfer sets the PC to four bytes before its target. Step()
// always adds four to the PC after a successful execution and so the PC
// arrives at the target. When execution fails the PC is not advanced and
// still points at the instruction that failed.
//
// The ECALL and EBREAK instructions are not handled by the CPU. Execute()
// returns an error with the EnvironmentCall or Breakpoint pattern and it is
// up to the caller to decide what happens next. Use Advance() to move past
// the instruction if execution should continue.
package cpu
