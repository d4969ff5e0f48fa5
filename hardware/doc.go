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

// Package hardware is the base package for the RISC-V emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Machine type is the root of the emulation and contains references to
// the CPU and the memory. From here, the emulation can either be started to
// run continuously (with an optional callback to check for continuation) or
// it can be stepped one instruction at a time.
//
// The Machine also services a small number of environment calls on behalf
// of the program. The call number is taken from register a7:
//
//	64	write a2 bytes from the address in a1 to the output. a0 is set to
//		the number of bytes written
//	93	exit with the status in a0
//
// Any other environment call halts the machine.
package hardware
