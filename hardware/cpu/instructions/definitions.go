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

package instructions

import "fmt"

// List of primary opcodes. The primary opcode is bits [6:0] of the
// instruction word.
const (
	OpLoad     = 0x03
	OpLoadFP   = 0x07
	OpMiscMem  = 0x0f
	OpImm      = 0x13
	OpAUIPC    = 0x17
	OpImm32    = 0x1b
	OpStore    = 0x23
	OpStoreFP  = 0x27
	OpAMO      = 0x2f
	OpReg      = 0x33
	OpLUI      = 0x37
	OpReg32    = 0x3b
	OpMADD     = 0x43
	OpMSUB     = 0x47
	OpNMSUB    = 0x4b
	OpNMADD    = 0x4f
	OpFP       = 0x53
	OpBranch   = 0x63
	OpJALR     = 0x67
	OpJAL      = 0x6f
	OpSystem   = 0x73
	OpcodeMask = 0x7f
)

// Encoding describes which fields of the instruction word are operands and
// how they are arranged.
type Encoding int

// List of valid Encoding values.
const (
	// rd, rs1 and rs2
	EncR Encoding = iota

	// rd, rs1, rs2 and the rounding mode in the funct3 field
	EncRFloat

	// rd, rs1 and the rounding mode. the rs2 field is a fixed selector
	EncRUnary

	// rd and rs1. the rs2 and funct3 fields are fixed
	EncRUnaryFixed

	// rd, rs1, rs2, rs3 and the rounding mode
	EncR4

	// rd, rs1, rs2 and the aq/rl ordering bits
	EncAMO

	// rd, rs1 and the aq/rl ordering bits. the rs2 field is zero
	EncLR

	// rd, rs1 and a sign extended 12 bit immediate
	EncI

	// rd, rs1 and a six bit shift amount
	EncShift64

	// rd, rs1 and a five bit shift amount
	EncShift32

	// rd, rs1 (or a five bit literal) and an unsigned 12 bit CSR address
	EncCSR

	// rd, rs1 and the unsigned fence fields
	EncFence

	// no operands
	EncSystem

	EncS
	EncB
	EncU
	EncJ
)

// Format returns the instruction format used by instructions with this
// encoding.
func (enc Encoding) Format() Format {
	switch enc {
	case EncR, EncRFloat, EncRUnary, EncRUnaryFixed, EncAMO, EncLR:
		return RegRegFormat
	case EncR4:
		return RegRegRegFormat
	case EncS:
		return StoreFormat
	case EncB:
		return BranchFormat
	case EncU:
		return UpperImmFormat
	case EncJ:
		return JumpFormat
	}
	return RegImmFormat
}

// Definition defines each instruction in the instruction set; one per
// mnemonic. An instruction word matches the definition when the bits selected
// by Mask are equal to Match.
type Definition struct {
	Mnemonic Mnemonic
	Match    uint32
	Mask     uint32
	Encoding Encoding
	Effect   Category
}

func (defn Definition) String() string {
	return fmt.Sprintf("%s match=%08x mask=%08x [%s %s]", defn.Mnemonic, defn.Match, defn.Mask, defn.Encoding.Format(), defn.Effect)
}

// Opcode returns the primary opcode of the definition.
func (defn Definition) Opcode() uint32 {
	return defn.Match & OpcodeMask
}

// Matches returns true if the instruction word matches the definition.
func (defn Definition) Matches(word uint32) bool {
	return word&defn.Mask == defn.Match
}

// masks for the fixed fields of each encoding
const (
	maskOpcode  = 0x0000007f
	maskF3      = 0x0000707f
	maskF7      = 0xfe00707f
	maskF7Only  = 0xfe00007f
	maskF7Rs2   = 0xfff0007f
	maskF7Rs2F3 = 0xfff0707f
	maskShift64 = 0xfc00707f
	maskAMO     = 0xf800707f
	maskLR      = 0xf9f0707f
	maskR4      = 0x0600007f
	maskAll     = 0xffffffff
)

func i(op, f3 uint32) uint32 {
	return op | f3<<12
}

func r(op, f3, f7 uint32) uint32 {
	return op | f3<<12 | f7<<25
}

func fp(f3, f7, rs2 uint32) uint32 {
	return OpFP | f3<<12 | rs2<<20 | f7<<25
}

func amo(f3, f5 uint32) uint32 {
	return OpAMO | f3<<12 | f5<<27
}

var definitions = []Definition{
	{LUI, OpLUI, maskOpcode, EncU, Modify},
	{AUIPC, OpAUIPC, maskOpcode, EncU, Modify},
	{JAL, OpJAL, maskOpcode, EncJ, Flow},
	{JALR, i(OpJALR, 0), maskF3, EncI, Flow},

	{BEQ, i(OpBranch, 0), maskF3, EncB, Flow},
	{BNE, i(OpBranch, 1), maskF3, EncB, Flow},
	{BLT, i(OpBranch, 4), maskF3, EncB, Flow},
	{BGE, i(OpBranch, 5), maskF3, EncB, Flow},
	{BLTU, i(OpBranch, 6), maskF3, EncB, Flow},
	{BGEU, i(OpBranch, 7), maskF3, EncB, Flow},

	{LB, i(OpLoad, 0), maskF3, EncI, Read},
	{LH, i(OpLoad, 1), maskF3, EncI, Read},
	{LW, i(OpLoad, 2), maskF3, EncI, Read},
	{LD, i(OpLoad, 3), maskF3, EncI, Read},
	{LBU, i(OpLoad, 4), maskF3, EncI, Read},
	{LHU, i(OpLoad, 5), maskF3, EncI, Read},
	{LWU, i(OpLoad, 6), maskF3, EncI, Read},

	{SB, i(OpStore, 0), maskF3, EncS, Write},
	{SH, i(OpStore, 1), maskF3, EncS, Write},
	{SW, i(OpStore, 2), maskF3, EncS, Write},
	{SD, i(OpStore, 3), maskF3, EncS, Write},

	{ADDI, i(OpImm, 0), maskF3, EncI, Modify},
	{SLTI, i(OpImm, 2), maskF3, EncI, Modify},
	{SLTIU, i(OpImm, 3), maskF3, EncI, Modify},
	{XORI, i(OpImm, 4), maskF3, EncI, Modify},
	{ORI, i(OpImm, 6), maskF3, EncI, Modify},
	{ANDI, i(OpImm, 7), maskF3, EncI, Modify},
	{SLLI, r(OpImm, 1, 0x00), maskShift64, EncShift64, Modify},
	{SRLI, r(OpImm, 5, 0x00), maskShift64, EncShift64, Modify},
	{SRAI, r(OpImm, 5, 0x20), maskShift64, EncShift64, Modify},

	{ADD, r(OpReg, 0, 0x00), maskF7, EncR, Modify},
	{SUB, r(OpReg, 0, 0x20), maskF7, EncR, Modify},
	{SLL, r(OpReg, 1, 0x00), maskF7, EncR, Modify},
	{SLT, r(OpReg, 2, 0x00), maskF7, EncR, Modify},
	{SLTU, r(OpReg, 3, 0x00), maskF7, EncR, Modify},
	{XOR, r(OpReg, 4, 0x00), maskF7, EncR, Modify},
	{SRL, r(OpReg, 5, 0x00), maskF7, EncR, Modify},
	{SRA, r(OpReg, 5, 0x20), maskF7, EncR, Modify},
	{OR, r(OpReg, 6, 0x00), maskF7, EncR, Modify},
	{AND, r(OpReg, 7, 0x00), maskF7, EncR, Modify},

	{ADDIW, i(OpImm32, 0), maskF3, EncI, Modify},
	{SLLIW, r(OpImm32, 1, 0x00), maskF7, EncShift32, Modify},
	{SRLIW, r(OpImm32, 5, 0x00), maskF7, EncShift32, Modify},
	{SRAIW, r(OpImm32, 5, 0x20), maskF7, EncShift32, Modify},

	{ADDW, r(OpReg32, 0, 0x00), maskF7, EncR, Modify},
	{SUBW, r(OpReg32, 0, 0x20), maskF7, EncR, Modify},
	{SLLW, r(OpReg32, 1, 0x00), maskF7, EncR, Modify},
	{SRLW, r(OpReg32, 5, 0x00), maskF7, EncR, Modify},
	{SRAW, r(OpReg32, 5, 0x20), maskF7, EncR, Modify},

	{FENCE, i(OpMiscMem, 0), maskF3, EncFence, System},
	{FENCEI, i(OpMiscMem, 1), maskF3, EncFence, System},
	{ECALL, 0x00000073, maskAll, EncSystem, System},
	{EBREAK, 0x00100073, maskAll, EncSystem, System},
	{SRET, 0x10200073, maskAll, EncSystem, Flow},
	{MRET, 0x30200073, maskAll, EncSystem, Flow},
	{WFI, 0x10500073, maskAll, EncSystem, System},

	{MUL, r(OpReg, 0, 0x01), maskF7, EncR, Modify},
	{MULH, r(OpReg, 1, 0x01), maskF7, EncR, Modify},
	{MULHSU, r(OpReg, 2, 0x01), maskF7, EncR, Modify},
	{MULHU, r(OpReg, 3, 0x01), maskF7, EncR, Modify},
	{DIV, r(OpReg, 4, 0x01), maskF7, EncR, Modify},
	{DIVU, r(OpReg, 5, 0x01), maskF7, EncR, Modify},
	{REM, r(OpReg, 6, 0x01), maskF7, EncR, Modify},
	{REMU, r(OpReg, 7, 0x01), maskF7, EncR, Modify},
	{MULW, r(OpReg32, 0, 0x01), maskF7, EncR, Modify},
	{DIVW, r(OpReg32, 4, 0x01), maskF7, EncR, Modify},
	{DIVUW, r(OpReg32, 5, 0x01), maskF7, EncR, Modify},
	{REMW, r(OpReg32, 6, 0x01), maskF7, EncR, Modify},
	{REMUW, r(OpReg32, 7, 0x01), maskF7, EncR, Modify},

	{LRW, amo(2, 0x02), maskLR, EncLR, Read},
	{SCW, amo(2, 0x03), maskAMO, EncAMO, Write},
	{AMOSWAPW, amo(2, 0x01), maskAMO, EncAMO, ReadModifyWrite},
	{AMOADDW, amo(2, 0x00), maskAMO, EncAMO, ReadModifyWrite},
	{AMOXORW, amo(2, 0x04), maskAMO, EncAMO, ReadModifyWrite},
	{AMOANDW, amo(2, 0x0c), maskAMO, EncAMO, ReadModifyWrite},
	{AMOORW, amo(2, 0x08), maskAMO, EncAMO, ReadModifyWrite},
	{AMOMINW, amo(2, 0x10), maskAMO, EncAMO, ReadModifyWrite},
	{AMOMAXW, amo(2, 0x14), maskAMO, EncAMO, ReadModifyWrite},
	{AMOMINUW, amo(2, 0x18), maskAMO, EncAMO, ReadModifyWrite},
	{AMOMAXUW, amo(2, 0x1c), maskAMO, EncAMO, ReadModifyWrite},
	{LRD, amo(3, 0x02), maskLR, EncLR, Read},
	{SCD, amo(3, 0x03), maskAMO, EncAMO, Write},
	{AMOSWAPD, amo(3, 0x01), maskAMO, EncAMO, ReadModifyWrite},
	{AMOADDD, amo(3, 0x00), maskAMO, EncAMO, ReadModifyWrite},
	{AMOXORD, amo(3, 0x04), maskAMO, EncAMO, ReadModifyWrite},
	{AMOANDD, amo(3, 0x0c), maskAMO, EncAMO, ReadModifyWrite},
	{AMOORD, amo(3, 0x08), maskAMO, EncAMO, ReadModifyWrite},
	{AMOMIND, amo(3, 0x10), maskAMO, EncAMO, ReadModifyWrite},
	{AMOMAXD, amo(3, 0x14), maskAMO, EncAMO, ReadModifyWrite},
	{AMOMINUD, amo(3, 0x18), maskAMO, EncAMO, ReadModifyWrite},
	{AMOMAXUD, amo(3, 0x1c), maskAMO, EncAMO, ReadModifyWrite},

	{FLW, i(OpLoadFP, 2), maskF3, EncI, Read},
	{FSW, i(OpStoreFP, 2), maskF3, EncS, Write},
	{FMADDS, OpMADD, maskR4, EncR4, Modify},
	{FMSUBS, OpMSUB, maskR4, EncR4, Modify},
	{FNMSUBS, OpNMSUB, maskR4, EncR4, Modify},
	{FNMADDS, OpNMADD, maskR4, EncR4, Modify},
	{FADDS, fp(0, 0x00, 0), maskF7Only, EncRFloat, Modify},
	{FSUBS, fp(0, 0x04, 0), maskF7Only, EncRFloat, Modify},
	{FMULS, fp(0, 0x08, 0), maskF7Only, EncRFloat, Modify},
	{FDIVS, fp(0, 0x0c, 0), maskF7Only, EncRFloat, Modify},
	{FSQRTS, fp(0, 0x2c, 0), maskF7Rs2, EncRUnary, Modify},
	{FSGNJS, fp(0, 0x10, 0), maskF7, EncR, Modify},
	{FSGNJNS, fp(1, 0x10, 0), maskF7, EncR, Modify},
	{FSGNJXS, fp(2, 0x10, 0), maskF7, EncR, Modify},
	{FMINS, fp(0, 0x14, 0), maskF7, EncR, Modify},
	{FMAXS, fp(1, 0x14, 0), maskF7, EncR, Modify},
	{FCVTWS, fp(0, 0x60, 0), maskF7Rs2, EncRUnary, Modify},
	{FCVTWUS, fp(0, 0x60, 1), maskF7Rs2, EncRUnary, Modify},
	{FCVTLS, fp(0, 0x60, 2), maskF7Rs2, EncRUnary, Modify},
	{FCVTLUS, fp(0, 0x60, 3), maskF7Rs2, EncRUnary, Modify},
	{FMVXW, fp(0, 0x70, 0), maskF7Rs2F3, EncRUnaryFixed, Modify},
	{FEQS, fp(2, 0x50, 0), maskF7, EncR, Modify},
	{FLTS, fp(1, 0x50, 0), maskF7, EncR, Modify},
	{FLES, fp(0, 0x50, 0), maskF7, EncR, Modify},
	{FCLASSS, fp(1, 0x70, 0), maskF7Rs2F3, EncRUnaryFixed, Modify},
	{FCVTSW, fp(0, 0x68, 0), maskF7Rs2, EncRUnary, Modify},
	{FCVTSWU, fp(0, 0x68, 1), maskF7Rs2, EncRUnary, Modify},
	{FCVTSL, fp(0, 0x68, 2), maskF7Rs2, EncRUnary, Modify},
	{FCVTSLU, fp(0, 0x68, 3), maskF7Rs2, EncRUnary, Modify},
	{FMVWX, fp(0, 0x78, 0), maskF7Rs2F3, EncRUnaryFixed, Modify},

	{CSRRW, i(OpSystem, 1), maskF3, EncCSR, System},
	{CSRRS, i(OpSystem, 2), maskF3, EncCSR, System},
	{CSRRC, i(OpSystem, 3), maskF3, EncCSR, System},
	{CSRRWI, i(OpSystem, 5), maskF3, EncCSR, System},
	{CSRRSI, i(OpSystem, 6), maskF3, EncCSR, System},
	{CSRRCI, i(OpSystem, 7), maskF3, EncCSR, System},
}

// definitions indexed by mnemonic and by primary opcode
var byMnemonic map[Mnemonic]Definition
var byOpcode map[uint32][]Definition

func init() {
	byMnemonic = make(map[Mnemonic]Definition, len(definitions))
	byOpcode = make(map[uint32][]Definition)
	for _, defn := range definitions {
		byMnemonic[defn.Mnemonic] = defn
		byOpcode[defn.Opcode()] = append(byOpcode[defn.Opcode()], defn)
	}
}

// GetDefinitions returns the table of instruction definitions.
func GetDefinitions() []Definition {
	return definitions
}

// Lookup returns the definition for the mnemonic.
func Lookup(m Mnemonic) (Definition, bool) {
	defn, ok := byMnemonic[m]
	return defn, ok
}

// Group returns all definitions that share the primary opcode. Returns nil
// if the opcode is not used by any instruction.
func Group(opcode uint32) []Definition {
	return byOpcode[opcode&OpcodeMask]
}
