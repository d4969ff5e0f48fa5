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

// Format identifies which of the seven instruction layouts a decoded
// instruction uses.
type Format int

// List of valid Format values.
const (
	RegRegFormat Format = iota
	RegRegRegFormat
	RegImmFormat
	StoreFormat
	BranchFormat
	UpperImmFormat
	JumpFormat
)

func (f Format) String() string {
	switch f {
	case RegRegFormat:
		return "RegReg"
	case RegRegRegFormat:
		return "RegRegReg"
	case RegImmFormat:
		return "RegImm"
	case StoreFormat:
		return "Store"
	case BranchFormat:
		return "Branch"
	case UpperImmFormat:
		return "UpperImm"
	case JumpFormat:
		return "Jump"
	}
	return "unknown format"
}

// Instruction is a decoded instruction. It is implemented by exactly seven
// types, one for each Format. Instructions are values and are never modified
// after decoding.
type Instruction interface {
	fmt.Stringer

	// Operation returns the mnemonic of the instruction
	Operation() Mnemonic

	// Format returns the layout of the instruction
	Format() Format

	isInstruction()
}

// RegReg instructions take two source registers and a destination register.
// Atomic memory operations use this format with the Aq and Rl ordering bits.
// Floating-point operations use the Rm field for the encoded rounding mode.
//
// For single operand floating-point operations (FSQRT.S, FCVT.*, FMV.*,
// FCLASS.S) the Rs2 field holds the selector value from the instruction word
// rather than a register.
type RegReg struct {
	Mnemonic Mnemonic
	Rd       uint8
	Rs1      uint8
	Rs2      uint8
	Rm       uint8
	Aq       bool
	Rl       bool
}

func (ins RegReg) Operation() Mnemonic { return ins.Mnemonic }
func (ins RegReg) Format() Format      { return RegRegFormat }
func (ins RegReg) isInstruction()      {}

func (ins RegReg) String() string {
	return fmt.Sprintf("%s rd=%d rs1=%d rs2=%d", ins.Mnemonic, ins.Rd, ins.Rs1, ins.Rs2)
}

// RegRegReg instructions take three source registers and a destination
// register. Only the fused multiply-add family uses this format.
type RegRegReg struct {
	Mnemonic Mnemonic
	Rd       uint8
	Rs1      uint8
	Rs2      uint8
	Rs3      uint8
	Rm       uint8
}

func (ins RegRegReg) Operation() Mnemonic { return ins.Mnemonic }
func (ins RegRegReg) Format() Format      { return RegRegRegFormat }
func (ins RegRegReg) isInstruction()      {}

func (ins RegRegReg) String() string {
	return fmt.Sprintf("%s rd=%d rs1=%d rs2=%d rs3=%d", ins.Mnemonic, ins.Rd, ins.Rs1, ins.Rs2, ins.Rs3)
}

// RegImm instructions take one source register and a signed immediate.
//
// CSR instructions use this format. The Imm field is the 12 bit CSR address
// (never negative) and the Rs1 field is either a register or, for the
// immediate forms, a five bit literal. For shift instructions Imm is the shift
// amount.
type RegImm struct {
	Mnemonic Mnemonic
	Rd       uint8
	Rs1      uint8
	Imm      int64
}

func (ins RegImm) Operation() Mnemonic { return ins.Mnemonic }
func (ins RegImm) Format() Format      { return RegImmFormat }
func (ins RegImm) isInstruction()      {}

func (ins RegImm) String() string {
	return fmt.Sprintf("%s rd=%d rs1=%d imm=%d", ins.Mnemonic, ins.Rd, ins.Rs1, ins.Imm)
}

// Store instructions take two source registers and a signed immediate. There
// is no destination register.
type Store struct {
	Mnemonic Mnemonic
	Rs1      uint8
	Rs2      uint8
	Imm      int64
}

func (ins Store) Operation() Mnemonic { return ins.Mnemonic }
func (ins Store) Format() Format      { return StoreFormat }
func (ins Store) isInstruction()      {}

func (ins Store) String() string {
	return fmt.Sprintf("%s rs1=%d rs2=%d imm=%d", ins.Mnemonic, ins.Rs1, ins.Rs2, ins.Imm)
}

// Branch instructions take two source registers and a signed immediate.
//
// The immediate is held pre-halved, as it is in the instruction encoding. The
// byte offset of the branch target is returned by Offset().
type Branch struct {
	Mnemonic Mnemonic
	Rs1      uint8
	Rs2      uint8
	Imm      int64
}

func (ins Branch) Operation() Mnemonic { return ins.Mnemonic }
func (ins Branch) Format() Format      { return BranchFormat }
func (ins Branch) isInstruction()      {}

// Offset returns the branch offset in bytes.
func (ins Branch) Offset() int64 {
	return ins.Imm << 1
}

func (ins Branch) String() string {
	return fmt.Sprintf("%s rs1=%d rs2=%d imm=%d", ins.Mnemonic, ins.Rs1, ins.Rs2, ins.Imm)
}

// UpperImm instructions take a signed 20 bit immediate and a destination
// register. The immediate is the upper 20 bits of a 32 bit value.
type UpperImm struct {
	Mnemonic Mnemonic
	Rd       uint8
	Imm      int64
}

func (ins UpperImm) Operation() Mnemonic { return ins.Mnemonic }
func (ins UpperImm) Format() Format      { return UpperImmFormat }
func (ins UpperImm) isInstruction()      {}

func (ins UpperImm) String() string {
	return fmt.Sprintf("%s rd=%d imm=%d", ins.Mnemonic, ins.Rd, ins.Imm)
}

// Jump instructions take a signed immediate and a destination register. The
// immediate is a byte offset.
type Jump struct {
	Mnemonic Mnemonic
	Rd       uint8
	Imm      int64
}

func (ins Jump) Operation() Mnemonic { return ins.Mnemonic }
func (ins Jump) Format() Format      { return JumpFormat }
func (ins Jump) isInstruction()      {}

func (ins Jump) String() string {
	return fmt.Sprintf("%s rd=%d imm=%d", ins.Mnemonic, ins.Rd, ins.Imm)
}
