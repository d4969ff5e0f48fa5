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

// Package fpu implements the single-precision floating-point operations of
// the RISC-V F extension.
//
// Operands and results are the raw 32 bit patterns of IEEE 754 binary32
// values. Any operation that produces a NaN produces the canonical NaN
// (0x7fc00000). Exceptions are accumulated in the flags of the FCSR and never
// trap.
//
// Arithmetic is performed in float64 and then rounded once to binary32 with
// the requested rounding mode. The float64 step is either exact or is
// accompanied by the sign of its error term so that the final rounding is
// correct for every mode, including the fused multiply-add operations.
//
// The FPU implements the CSR Mapping interface of the registers package so
// that the fflags, frm and fcsr registers are views of the FCSR.
package fpu
