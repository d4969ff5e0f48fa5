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

package decoder

import (
	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu/instructions"
)

// field extraction
func rd(w uint32) uint8      { return uint8((w >> 7) & 0x1f) }
func rs1(w uint32) uint8     { return uint8((w >> 15) & 0x1f) }
func rs2(w uint32) uint8     { return uint8((w >> 20) & 0x1f) }
func rs3(w uint32) uint8     { return uint8(w >> 27) }
func funct3(w uint32) uint32 { return (w >> 12) & 0x07 }
func aq(w uint32) bool       { return w&(1<<26) != 0 }
func rl(w uint32) bool       { return w&(1<<25) != 0 }

// immI is the sign extended twelve bit immediate in bits [31:20]
func immI(w uint32) int64 {
	return int64(int32(w) >> 20)
}

// immS is the sign extended twelve bit immediate split between bits [31:25]
// and bits [11:7]
func immS(w uint32) int64 {
	return int64(int32(w)>>25<<5) | int64((w>>7)&0x1f)
}

// immB is the branch offset in bytes. bit 0 of the offset is always zero and
// is not encoded
func immB(w uint32) int64 {
	v := (w>>31)<<12 | ((w>>7)&0x01)<<11 | ((w>>25)&0x3f)<<5 | ((w>>8)&0x0f)<<1

	// sign extend from bit 12
	return int64(int32(v<<19) >> 19)
}

// immU is the sign extended twenty bit immediate in bits [31:12]
func immU(w uint32) int64 {
	return int64(int32(w) >> 12)
}

// immJ is the jump offset in bytes. bit 0 of the offset is always zero and is
// not encoded
func immJ(w uint32) int64 {
	v := (w>>31)<<20 | ((w>>12)&0xff)<<12 | ((w>>20)&0x01)<<11 | ((w>>21)&0x3ff)<<1

	// sign extend from bit 20
	return int64(int32(v<<11) >> 11)
}

// Decode a single instruction word.
func Decode(word uint32) (instructions.Instruction, error) {
	for _, defn := range instructions.Group(word) {
		if defn.Matches(word) {
			return decode(defn, word), nil
		}
	}
	return nil, newDecodeError(word)
}

func decode(defn instructions.Definition, w uint32) instructions.Instruction {
	m := defn.Mnemonic

	switch defn.Encoding {
	case instructions.EncR, instructions.EncRUnaryFixed:
		return instructions.RegReg{Mnemonic: m, Rd: rd(w), Rs1: rs1(w), Rs2: rs2(w)}
	case instructions.EncRFloat, instructions.EncRUnary:
		return instructions.RegReg{Mnemonic: m, Rd: rd(w), Rs1: rs1(w), Rs2: rs2(w), Rm: uint8(funct3(w))}
	case instructions.EncAMO, instructions.EncLR:
		return instructions.RegReg{Mnemonic: m, Rd: rd(w), Rs1: rs1(w), Rs2: rs2(w), Aq: aq(w), Rl: rl(w)}
	case instructions.EncR4:
		return instructions.RegRegReg{Mnemonic: m, Rd: rd(w), Rs1: rs1(w), Rs2: rs2(w), Rs3: rs3(w), Rm: uint8(funct3(w))}
	case instructions.EncI:
		return instructions.RegImm{Mnemonic: m, Rd: rd(w), Rs1: rs1(w), Imm: immI(w)}
	case instructions.EncShift64:
		return instructions.RegImm{Mnemonic: m, Rd: rd(w), Rs1: rs1(w), Imm: int64((w >> 20) & 0x3f)}
	case instructions.EncShift32:
		return instructions.RegImm{Mnemonic: m, Rd: rd(w), Rs1: rs1(w), Imm: int64((w >> 20) & 0x1f)}
	case instructions.EncCSR, instructions.EncFence:
		// csr address and fence fields are unsigned
		return instructions.RegImm{Mnemonic: m, Rd: rd(w), Rs1: rs1(w), Imm: int64(w >> 20)}
	case instructions.EncSystem:
		return instructions.RegImm{Mnemonic: m}
	case instructions.EncS:
		return instructions.Store{Mnemonic: m, Rs1: rs1(w), Rs2: rs2(w), Imm: immS(w)}
	case instructions.EncB:
		return instructions.Branch{Mnemonic: m, Rs1: rs1(w), Rs2: rs2(w), Imm: immB(w) >> 1}
	case instructions.EncU:
		return instructions.UpperImm{Mnemonic: m, Rd: rd(w), Imm: immU(w)}
	case instructions.EncJ:
		return instructions.Jump{Mnemonic: m, Rd: rd(w), Imm: immJ(w)}
	}

	panic("decoder: definition with unknown encoding")
}
