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

package disassembly_test

import (
	"encoding/binary"
	"testing"

	"github.com/ItsIronicIInsist/riscvEmu/disassembly"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu/instructions"
	"github.com/ItsIronicIInsist/riscvEmu/test"
)

func TestFormat(t *testing.T) {
	var tests = []struct {
		ins      instructions.Instruction
		expected string
	}{
		{instructions.RegImm{Mnemonic: instructions.ADDI, Rd: 10, Rs1: 11, Imm: -3}, "addi a0, a1, -3"},
		{instructions.RegReg{Mnemonic: instructions.ADD, Rd: 10, Rs1: 11, Rs2: 12}, "add a0, a1, a2"},
		{instructions.RegImm{Mnemonic: instructions.LD, Rd: 1, Rs1: 2, Imm: 8}, "ld ra, 8(sp)"},
		{instructions.Store{Mnemonic: instructions.SD, Rs1: 2, Rs2: 1, Imm: -8}, "sd ra, -8(sp)"},
		{instructions.Branch{Mnemonic: instructions.BNE, Rs1: 10, Rs2: 0, Imm: -4}, "bne a0, zero, -8"},
		{instructions.Jump{Mnemonic: instructions.JAL, Rd: 1, Imm: 16}, "jal ra, 16"},
		{instructions.RegImm{Mnemonic: instructions.JALR, Rd: 0, Rs1: 1}, "jalr zero, 0(ra)"},
		{instructions.UpperImm{Mnemonic: instructions.LUI, Rd: 5, Imm: -1}, "lui t0, 0xfffff"},
		{instructions.RegImm{Mnemonic: instructions.CSRRS, Rd: 5, Rs1: 0, Imm: 0x300}, "csrrs t0, mstatus, zero"},
		{instructions.RegImm{Mnemonic: instructions.CSRRWI, Rd: 0, Rs1: 3, Imm: 0x002}, "csrrwi zero, frm, 3"},
		{instructions.RegImm{Mnemonic: instructions.CSRRW, Rd: 0, Rs1: 1, Imm: 0x7c0}, "csrrw zero, 0x7c0, ra"},
		{instructions.RegImm{Mnemonic: instructions.ECALL}, "ecall"},
		{instructions.RegImm{Mnemonic: instructions.MRET}, "mret"},
		{instructions.RegReg{Mnemonic: instructions.AMOADDW, Rd: 10, Rs1: 11, Rs2: 12, Aq: true}, "amoadd.w.aq a0, a2, (a1)"},
		{instructions.RegReg{Mnemonic: instructions.LRD, Rd: 10, Rs1: 11}, "lr.d a0, (a1)"},
		{instructions.RegReg{Mnemonic: instructions.FADDS, Rd: 10, Rs1: 11, Rs2: 12, Rm: 7}, "fadd.s fa0, fa1, fa2"},
		{instructions.RegReg{Mnemonic: instructions.FCVTWS, Rd: 10, Rs1: 11, Rm: 1}, "fcvt.w.s a0, fa1, rtz"},
		{instructions.RegReg{Mnemonic: instructions.FMVWX, Rd: 8, Rs1: 10}, "fmv.w.x fs0, a0"},
		{instructions.RegReg{Mnemonic: instructions.FLES, Rd: 10, Rs1: 0, Rs2: 31}, "fle.s a0, ft0, ft11"},
		{instructions.RegRegReg{Mnemonic: instructions.FMADDS, Rd: 1, Rs1: 2, Rs2: 3, Rs3: 4, Rm: 7}, "fmadd.s ft1, ft2, ft3, ft4"},
		{instructions.RegImm{Mnemonic: instructions.FLW, Rd: 18, Rs1: 10, Imm: 4}, "flw fs2, 4(a0)"},
		{instructions.Store{Mnemonic: instructions.FSW, Rs1: 10, Rs2: 18, Imm: 4}, "fsw fs2, 4(a0)"},
	}

	for _, tt := range tests {
		test.ExpectEquality(t, disassembly.Format(tt.ins), tt.expected)
	}
}

func image(words ...uint32) []uint8 {
	b := make([]uint8, 0, len(words)*4)
	for _, w := range words {
		b = binary.LittleEndian.AppendUint32(b, w)
	}
	return b
}

func TestWrite(t *testing.T) {
	img := append(image(0x00108093, 0x00004073, 0x00000073), 0xff)
	dsm := disassembly.FromImage(img)
	test.ExpectEquality(t, len(dsm.Entries), 3)
	test.ExpectEquality(t, dsm.Trailing, 1)
	test.ExpectEquality(t, dsm.Entries[1].Instruction == nil, true)

	w := &test.Writer{}
	test.ExpectSuccess(t, dsm.Write(w, disassembly.WriteAttr{}))
	test.ExpectEquality(t, w.String(), "addi ra, ra, 1\n.word 0x00004073\necall\n")

	w.Clear()
	test.ExpectSuccess(t, dsm.Write(w, disassembly.WriteAttr{Address: true, ByteCode: true}))
	test.ExpectEquality(t, w.String(),
		"       0: 00108093  addi ra, ra, 1\n"+
			"       4: 00004073  .word 0x00004073\n"+
			"       8: 00000073  ecall\n")
}

func TestGrep(t *testing.T) {
	dsm := disassembly.FromImage(image(0x00108093, 0x002081b3, 0x00000073))

	w := &test.Writer{}
	test.ExpectSuccess(t, dsm.Grep(w, disassembly.WriteAttr{}, disassembly.GrepOperator, "ADD", false))
	test.ExpectEquality(t, w.String(), "addi ra, ra, 1\nadd gp, ra, sp\n")

	w.Clear()
	test.ExpectSuccess(t, dsm.Grep(w, disassembly.WriteAttr{}, disassembly.GrepOperand, "gp", true))
	test.ExpectEquality(t, w.String(), "add gp, ra, sp\n")

	w.Clear()
	test.ExpectSuccess(t, dsm.Grep(w, disassembly.WriteAttr{}, disassembly.GrepAll, "ADD", true))
	test.ExpectEquality(t, w.String(), "")
}
