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

// Package registers implements the register files of the RISC-V hart: the
// integer registers, the floating-point registers and the bank of control and
// status registers.
//
// The integer register file never stores a value in register zero. Writes to
// x0 are discarded by Write() so that reading x0 always returns zero.
//
// Single-precision values are stored NaN-boxed in the 64 bit floating-point
// registers. ReadSingle() returns the canonical NaN for a register that does
// not hold a properly boxed value.
//
// The CSR bank checks the privilege level of each access. The privilege
// required to access a CSR, and whether it is writable at all, is encoded in
// the CSR address. The check can be switched off with the CheckPrivilege
// field.
package registers
