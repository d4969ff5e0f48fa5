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

// Mnemonic identifies the operation of an instruction. It determines how the
// instruction is executed by the CPU.
type Mnemonic int

// List of valid Mnemonic values. Grouped by extension.
const (
	Undefined Mnemonic = iota

	// RV64I
	LUI
	AUIPC
	JAL
	JALR
	BEQ
	BNE
	BLT
	BGE
	BLTU
	BGEU
	LB
	LH
	LW
	LD
	LBU
	LHU
	LWU
	SB
	SH
	SW
	SD
	ADDI
	SLTI
	SLTIU
	XORI
	ORI
	ANDI
	SLLI
	SRLI
	SRAI
	ADD
	SUB
	SLL
	SLT
	SLTU
	XOR
	SRL
	SRA
	OR
	AND
	ADDIW
	SLLIW
	SRLIW
	SRAIW
	ADDW
	SUBW
	SLLW
	SRLW
	SRAW
	FENCE
	FENCEI
	ECALL
	EBREAK

	// privileged
	MRET
	SRET
	WFI

	// M extension
	MUL
	MULH
	MULHSU
	MULHU
	DIV
	DIVU
	REM
	REMU
	MULW
	DIVW
	DIVUW
	REMW
	REMUW

	// A extension
	LRW
	SCW
	AMOSWAPW
	AMOADDW
	AMOXORW
	AMOANDW
	AMOORW
	AMOMINW
	AMOMAXW
	AMOMINUW
	AMOMAXUW
	LRD
	SCD
	AMOSWAPD
	AMOADDD
	AMOXORD
	AMOANDD
	AMOORD
	AMOMIND
	AMOMAXD
	AMOMINUD
	AMOMAXUD

	// F extension
	FLW
	FSW
	FMADDS
	FMSUBS
	FNMSUBS
	FNMADDS
	FADDS
	FSUBS
	FMULS
	FDIVS
	FSQRTS
	FSGNJS
	FSGNJNS
	FSGNJXS
	FMINS
	FMAXS
	FCVTWS
	FCVTWUS
	FCVTLS
	FCVTLUS
	FMVXW
	FEQS
	FLTS
	FLES
	FCLASSS
	FCVTSW
	FCVTSWU
	FCVTSL
	FCVTSLU
	FMVWX

	// Zicsr extension
	CSRRW
	CSRRS
	CSRRC
	CSRRWI
	CSRRSI
	CSRRCI

	numMnemonics
)

// the assembler name of each mnemonic
var mnemonicNames = [numMnemonics]string{
	Undefined: "undefined",

	LUI: "lui", AUIPC: "auipc", JAL: "jal", JALR: "jalr",
	BEQ: "beq", BNE: "bne", BLT: "blt", BGE: "bge", BLTU: "bltu", BGEU: "bgeu",
	LB: "lb", LH: "lh", LW: "lw", LD: "ld", LBU: "lbu", LHU: "lhu", LWU: "lwu",
	SB: "sb", SH: "sh", SW: "sw", SD: "sd",
	ADDI: "addi", SLTI: "slti", SLTIU: "sltiu", XORI: "xori", ORI: "ori", ANDI: "andi",
	SLLI: "slli", SRLI: "srli", SRAI: "srai",
	ADD: "add", SUB: "sub", SLL: "sll", SLT: "slt", SLTU: "sltu",
	XOR: "xor", SRL: "srl", SRA: "sra", OR: "or", AND: "and",
	ADDIW: "addiw", SLLIW: "slliw", SRLIW: "srliw", SRAIW: "sraiw",
	ADDW: "addw", SUBW: "subw", SLLW: "sllw", SRLW: "srlw", SRAW: "sraw",
	FENCE: "fence", FENCEI: "fence.i", ECALL: "ecall", EBREAK: "ebreak",

	MRET: "mret", SRET: "sret", WFI: "wfi",

	MUL: "mul", MULH: "mulh", MULHSU: "mulhsu", MULHU: "mulhu",
	DIV: "div", DIVU: "divu", REM: "rem", REMU: "remu",
	MULW: "mulw", DIVW: "divw", DIVUW: "divuw", REMW: "remw", REMUW: "remuw",

	LRW: "lr.w", SCW: "sc.w", AMOSWAPW: "amoswap.w", AMOADDW: "amoadd.w",
	AMOXORW: "amoxor.w", AMOANDW: "amoand.w", AMOORW: "amoor.w",
	AMOMINW: "amomin.w", AMOMAXW: "amomax.w", AMOMINUW: "amominu.w", AMOMAXUW: "amomaxu.w",
	LRD: "lr.d", SCD: "sc.d", AMOSWAPD: "amoswap.d", AMOADDD: "amoadd.d",
	AMOXORD: "amoxor.d", AMOANDD: "amoand.d", AMOORD: "amoor.d",
	AMOMIND: "amomin.d", AMOMAXD: "amomax.d", AMOMINUD: "amominu.d", AMOMAXUD: "amomaxu.d",

	FLW: "flw", FSW: "fsw",
	FMADDS: "fmadd.s", FMSUBS: "fmsub.s", FNMSUBS: "fnmsub.s", FNMADDS: "fnmadd.s",
	FADDS: "fadd.s", FSUBS: "fsub.s", FMULS: "fmul.s", FDIVS: "fdiv.s", FSQRTS: "fsqrt.s",
	FSGNJS: "fsgnj.s", FSGNJNS: "fsgnjn.s", FSGNJXS: "fsgnjx.s",
	FMINS: "fmin.s", FMAXS: "fmax.s",
	FCVTWS: "fcvt.w.s", FCVTWUS: "fcvt.wu.s", FCVTLS: "fcvt.l.s", FCVTLUS: "fcvt.lu.s",
	FMVXW: "fmv.x.w", FEQS: "feq.s", FLTS: "flt.s", FLES: "fle.s", FCLASSS: "fclass.s",
	FCVTSW: "fcvt.s.w", FCVTSWU: "fcvt.s.wu", FCVTSL: "fcvt.s.l", FCVTSLU: "fcvt.s.lu",
	FMVWX: "fmv.w.x",

	CSRRW: "csrrw", CSRRS: "csrrs", CSRRC: "csrrc",
	CSRRWI: "csrrwi", CSRRSI: "csrrsi", CSRRCI: "csrrci",
}

func (m Mnemonic) String() string {
	if m < 0 || m >= numMnemonics {
		return "unknown"
	}
	return mnemonicNames[m]
}

// Extension returns the ISA extension that defines the mnemonic.
func (m Mnemonic) Extension() Extension {
	switch {
	case m >= LUI && m <= EBREAK:
		return BaseInteger
	case m >= MRET && m <= WFI:
		return Privileged
	case m >= MUL && m <= REMUW:
		return Multiply
	case m >= LRW && m <= AMOMAXUD:
		return Atomic
	case m >= FLW && m <= FMVWX:
		return SingleFloat
	case m >= CSRRW && m <= CSRRCI:
		return ControlStatus
	}
	return NoExtension
}

// Mnemonics returns the list of all defined mnemonics in order.
func Mnemonics() []Mnemonic {
	l := make([]Mnemonic, 0, numMnemonics-1)
	for m := LUI; m < numMnemonics; m++ {
		l = append(l, m)
	}
	return l
}
