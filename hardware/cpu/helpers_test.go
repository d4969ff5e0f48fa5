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

package cpu_test

import (
	"encoding/binary"
	"testing"

	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu/decoder"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu/instructions"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/memory"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/preferences"
	"github.com/ItsIronicIInsist/riscvEmu/test"
)

// assemble the program at address zero and return a new CPU attached to it
func newCPU(t *testing.T, prefs *preferences.Preferences, program ...instructions.Instruction) (*cpu.CPU, *memory.DRAM) {
	t.Helper()

	image := make([]uint8, 0, len(program)*4)
	for _, ins := range program {
		w, err := decoder.Encode(ins)
		test.DemandSuccess(t, err, ins)
		image = binary.LittleEndian.AppendUint32(image, w)
	}

	mem, err := memory.NewDRAM(memory.DefaultSize, image)
	test.DemandSuccess(t, err)

	return cpu.NewCPU(prefs, mem), mem
}

// step the CPU n times. every step must succeed
func step(t *testing.T, mc *cpu.CPU, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		test.DemandSuccess(t, mc.Step(), mc.LastResult.String())
	}
}

func rr(m instructions.Mnemonic, rd, rs1, rs2 uint8) instructions.RegReg {
	return instructions.RegReg{Mnemonic: m, Rd: rd, Rs1: rs1, Rs2: rs2}
}

func ri(m instructions.Mnemonic, rd, rs1 uint8, imm int64) instructions.RegImm {
	return instructions.RegImm{Mnemonic: m, Rd: rd, Rs1: rs1, Imm: imm}
}
