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

// Package instructions defines the mnemonics and the decoded instruction
// formats of the RV64IMAF instruction set, with the Zicsr extension and the
// return-from-trap instructions of the privileged architecture.
//
// A decoded instruction is one of seven types: RegReg, RegRegReg, RegImm,
// Store, Branch, UpperImm and Jump. All of them implement the Instruction
// interface and no other type can. A type switch over the seven types is
// therefore exhaustive.
//
// The table of Definitions describes how each mnemonic is encoded. It is
// used by the decoder package in both directions.
package instructions
