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

// Package disassembly renders decoded RISC-V instructions as assembly
// language. Registers are given their ABI names and control and status
// registers are named where possible.
//
// A Disassembly is created from a binary image with FromImage(). Every four
// byte word of the image has an Entry, including words that do not decode.
// The Write() function prints the entries and the Grep() function prints the
// entries that match a search string.
package disassembly
