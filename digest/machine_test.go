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


package digest_test

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/ItsIronicIInsist/riscvEmu/digest"
	"github.com/ItsIronicIInsist/riscvEmu/hardware"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu/decoder"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu/instructions"
	"github.com/ItsIronicIInsist/riscvEmu/test"
)

func newMachine(t *testing.T) *hardware.Machine {
	t.Helper()

	program := []instructions.Instruction{
		instructions.RegImm{Mnemonic: instructions.ADDI, Rd: 5, Imm: 42},
		instructions.RegImm{Mnemonic: instructions.ADDI, Rd: 10, Imm: 0},
		instructions.RegImm{Mnemonic: instructions.ADDI, Rd: 17, Imm: 93},
		instructions.RegImm{Mnemonic: instructions.ECALL},
	}

	var image []uint8
	for _, ins := range program {
		w, err := decoder.Encode(ins)
		test.DemandSuccess(t, err, ins)
		image = binary.LittleEndian.AppendUint32(image, w)
	}

	m, err := hardware.NewMachine(nil, image)
	test.DemandSuccess(t, err)
	return m
}

var zeroHash = strings.Repeat("0", 40)

func TestDeterminism(t *testing.T) {
	a := newMachine(t)
	b := newMachine(t)
	test.DemandSuccess(t, a.Run(nil))
	test.DemandSuccess(t, b.Run(nil))

	var da, db digest.Digest
	ma := digest.NewMachine(a)
	mb := digest.NewMachine(b)
	da, db = ma, mb

	test.ExpectEquality(t, da.Hash(), zeroHash)

	test.DemandSuccess(t, ma.Update())
	test.DemandSuccess(t, mb.Update())
	test.ExpectInequality(t, da.Hash(), zeroHash)
	test.ExpectEquality(t, da.Hash(), db.Hash())

	da.ResetDigest()
	test.ExpectEquality(t, da.Hash(), zeroHash)
}

func TestChaining(t *testing.T) {
	m := newMachine(t)
	dig := digest.NewMachine(m)

	test.DemandSuccess(t, dig.Update())
	first := dig.Hash()

	// the machine has not changed but the previous digest is part of the
	// hashed data
	test.DemandSuccess(t, dig.Update())
	test.ExpectInequality(t, dig.Hash(), first)

	// starting again from a reset digest reproduces the first value
	dig.ResetDigest()
	test.DemandSuccess(t, dig.Update())
	test.ExpectEquality(t, dig.Hash(), first)
}

func TestStateChanges(t *testing.T) {
	m := newMachine(t)
	dig := digest.NewMachine(m)
	test.DemandSuccess(t, dig.Update())
	initial := dig.Hash()

	// a single step changes the registers and the counters
	test.DemandSuccess(t, m.Step())
	dig.ResetDigest()
	test.DemandSuccess(t, dig.Update())
	stepped := dig.Hash()
	test.ExpectInequality(t, stepped, initial)

	// a change in memory only
	test.DemandSuccess(t, m.Mem.Poke(0x200, 0xff))
	dig.ResetDigest()
	test.DemandSuccess(t, dig.Update())
	test.ExpectInequality(t, dig.Hash(), stepped)
}
