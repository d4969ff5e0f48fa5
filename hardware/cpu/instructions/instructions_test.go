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

package instructions_test

import (
	"testing"

	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu/instructions"
	"github.com/ItsIronicIInsist/riscvEmu/test"
)

func TestDefinitionsComplete(t *testing.T) {
	seen := make(map[instructions.Mnemonic]bool)
	for _, defn := range instructions.GetDefinitions() {
		test.ExpectEquality(t, seen[defn.Mnemonic], false, defn.Mnemonic, "duplicate")
		seen[defn.Mnemonic] = true

		// match must not have bits outside of the mask
		test.ExpectEquality(t, defn.Match&^defn.Mask, uint32(0), defn.Mnemonic)

		// the primary opcode is always part of the mask
		test.ExpectEquality(t, defn.Mask&instructions.OpcodeMask, uint32(instructions.OpcodeMask), defn.Mnemonic)
	}

	for _, m := range instructions.Mnemonics() {
		test.ExpectSuccess(t, seen[m], m, "no definition")
		defn, ok := instructions.Lookup(m)
		test.ExpectSuccess(t, ok, m)
		test.ExpectEquality(t, defn.Mnemonic, m)
	}
}

func TestDefinitionsDisjoint(t *testing.T) {
	defns := instructions.GetDefinitions()
	for i := range defns {
		for j := i + 1; j < len(defns); j++ {
			a := defns[i]
			b := defns[j]

			// two definitions overlap if no bit that both masks cover
			// differs between the two match values
			overlap := (a.Match^b.Match)&a.Mask&b.Mask == 0
			test.ExpectEquality(t, overlap, false, a.Mnemonic, b.Mnemonic)
		}
	}
}

func TestGroup(t *testing.T) {
	for _, defn := range instructions.Group(instructions.OpSystem) {
		test.ExpectEquality(t, defn.Opcode(), uint32(instructions.OpSystem))
	}
	test.ExpectEquality(t, len(instructions.Group(instructions.OpSystem)), 11)
	test.ExpectEquality(t, len(instructions.Group(0x7f)), 0)
	test.ExpectEquality(t, len(instructions.Group(instructions.OpLUI)), 1)
}

func TestMatches(t *testing.T) {
	defn, ok := instructions.Lookup(instructions.ADDI)
	test.DemandSuccess(t, ok)
	test.ExpectSuccess(t, defn.Matches(0x00108093))
	test.ExpectFailure(t, defn.Matches(0x00109093))

	defn, ok = instructions.Lookup(instructions.ECALL)
	test.DemandSuccess(t, ok)
	test.ExpectSuccess(t, defn.Matches(0x00000073))
	test.ExpectFailure(t, defn.Matches(0x00100073))
}

func TestMnemonicNames(t *testing.T) {
	test.ExpectEquality(t, instructions.ADD.String(), "add")
	test.ExpectEquality(t, instructions.FENCEI.String(), "fence.i")
	test.ExpectEquality(t, instructions.LRW.String(), "lr.w")
	test.ExpectEquality(t, instructions.FCVTSWU.String(), "fcvt.s.wu")
	test.ExpectEquality(t, instructions.Mnemonic(-1).String(), "unknown")

	for _, m := range instructions.Mnemonics() {
		test.ExpectInequality(t, m.String(), "", int(m))
	}
}

func TestExtension(t *testing.T) {
	test.ExpectEquality(t, instructions.LUI.Extension(), instructions.BaseInteger)
	test.ExpectEquality(t, instructions.EBREAK.Extension(), instructions.BaseInteger)
	test.ExpectEquality(t, instructions.MRET.Extension(), instructions.Privileged)
	test.ExpectEquality(t, instructions.REMUW.Extension(), instructions.Multiply)
	test.ExpectEquality(t, instructions.AMOMAXUD.Extension(), instructions.Atomic)
	test.ExpectEquality(t, instructions.FLW.Extension(), instructions.SingleFloat)
	test.ExpectEquality(t, instructions.CSRRCI.Extension(), instructions.ControlStatus)
	test.ExpectEquality(t, instructions.Undefined.Extension(), instructions.NoExtension)
}

func TestInstructionString(t *testing.T) {
	var ins instructions.Instruction
	ins = instructions.RegReg{Mnemonic: instructions.ADD, Rd: 1, Rs1: 2, Rs2: 3}
	test.ExpectEquality(t, ins.String(), "add rd=1 rs1=2 rs2=3")
	test.ExpectEquality(t, ins.Format(), instructions.RegRegFormat)

	ins = instructions.Branch{Mnemonic: instructions.BEQ, Rs1: 1, Rs2: 2, Imm: -4}
	test.ExpectEquality(t, ins.(instructions.Branch).Offset(), int64(-8))
	test.ExpectEquality(t, ins.Format(), instructions.BranchFormat)
}
