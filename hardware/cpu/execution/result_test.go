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

package execution_test

import (
	"testing"

	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu/execution"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu/instructions"
	"github.com/ItsIronicIInsist/riscvEmu/test"
)

func TestResult(t *testing.T) {
	var r execution.Result
	r.Address = 0x100
	r.Word = 0xffffffff
	test.ExpectEquality(t, r.String(), "0x00000100 ffffffff ???")

	r.Word = 0x00108093
	r.Instruction = instructions.RegImm{Mnemonic: instructions.ADDI, Rd: 1, Rs1: 1, Imm: 1}
	test.ExpectEquality(t, r.String(), "0x00000100 00108093 addi rd=1 rs1=1 imm=1")

	r.Error = "bad"
	test.ExpectEquality(t, r.String(), "0x00000100 00108093 addi rd=1 rs1=1 imm=1 [bad]")

	r.Reset()
	test.ExpectEquality(t, r.Address, uint64(0))
	test.ExpectEquality(t, r.Instruction, nil)
}
