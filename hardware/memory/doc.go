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

// Package memory implements the flat, byte addressable memory used by the
// RISC-V CPU.
//
// The CPU only knows about the Memory interface. Load() and Store() take an
// explicit width in bytes, which must be one of 1, 2, 4 or 8. Values are
// little-endian.
//
// The DRAM type is the only implementation of the Memory interface. It is a
// single area of memory starting at address zero. The binary image of the
// program is copied into memory verbatim, also starting at address zero.
//
// Accesses outside of the memory area are errors. They never cause a panic.
package memory
