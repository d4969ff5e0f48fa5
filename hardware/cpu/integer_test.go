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
	"testing"

	"github.com/ItsIronicIInsist/riscvEmu/curated"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu/decoder"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu/instructions"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu/registers"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/memory"
	"github.com/ItsIronicIInsist/riscvEmu/test"
)

func TestReset(t *testing.T) {
	mc, _ := newCPU(t, nil)
	test.ExpectEquality(t, mc.PC, uint64(0))
	test.ExpectEquality(t, mc.Privilege, registers.Machine)
	test.ExpectEquality(t, mc.Regs.Read(registers.StackPointer), uint64(0x100000))
	test.ExpectEquality(t, mc.String(), "pc=0x0 priv=machine sp=0x100000")

	mc.Regs.Write(5, 10)
	mc.PC = 0x40
	mc.Reset()
	test.ExpectEquality(t, mc.Regs.Read(5), uint64(0))
	test.ExpectEquality(t, mc.PC, uint64(0))
}

func TestAddSubWrap(t *testing.T) {
	mc, _ := newCPU(t, nil,
		rr(instructions.ADD, 3, 1, 2),
		rr(instructions.SUB, 4, 0, 2),
		rr(instructions.ADDW, 5, 6, 2),
	)
	mc.Regs.Write(1, 0xffffffffffffffff)
	mc.Regs.Write(2, 1)
	mc.Regs.Write(6, 0x7fffffff)

	step(t, mc, 3)
	test.ExpectEquality(t, mc.Regs.Read(3), uint64(0))
	test.ExpectEquality(t, mc.Regs.Read(4), uint64(0xffffffffffffffff))
	test.ExpectEquality(t, mc.Regs.Read(5), uint64(0xffffffff80000000))
	test.ExpectEquality(t, mc.PC, uint64(12))
}

func TestAddiSequence(t *testing.T) {
	mc, _ := newCPU(t, nil,
		ri(instructions.ADDI, 1, 0, 5),
		ri(instructions.ADDI, 2, 1, -3),
		ri(instructions.ADDI, 0, 1, 1),
		ri(instructions.SLTI, 3, 2, 3),
		ri(instructions.SLTIU, 4, 2, -1),
		ri(instructions.SRAI, 5, 6, 4),
		ri(instructions.SRLIW, 7, 6, 4),
	)
	mc.Regs.Write(6, 0xfffffffffffffff0)

	step(t, mc, 7)
	test.ExpectEquality(t, mc.Regs.Read(1), uint64(5))
	test.ExpectEquality(t, mc.Regs.Read(2), uint64(2))
	test.ExpectEquality(t, mc.Regs.Read(0), uint64(0))
	test.ExpectEquality(t, mc.Regs.Read(3), uint64(1))
	test.ExpectEquality(t, mc.Regs.Read(4), uint64(1))
	test.ExpectEquality(t, mc.Regs.Read(5), uint64(0xffffffffffffffff))
	test.ExpectEquality(t, mc.Regs.Read(7), uint64(0x0fffffff))
}

func TestShifts(t *testing.T) {
	mc, _ := newCPU(t, nil,
		rr(instructions.SLL, 3, 1, 2),
		rr(instructions.SRA, 4, 5, 2),
		rr(instructions.SRLW, 6, 5, 2),
		rr(instructions.SRAW, 7, 5, 2),
		rr(instructions.SLLW, 8, 1, 9),
	)
	mc.Regs.Write(1, 1)
	mc.Regs.Write(2, 0x44) // only the low six bits count
	mc.Regs.Write(5, 0x8000000080000000)
	mc.Regs.Write(9, 31)

	step(t, mc, 5)
	test.ExpectEquality(t, mc.Regs.Read(3), uint64(0x10))
	test.ExpectEquality(t, mc.Regs.Read(4), uint64(0xf800000008000000))
	test.ExpectEquality(t, mc.Regs.Read(6), uint64(0x08000000))
	test.ExpectEquality(t, mc.Regs.Read(7), uint64(0xfffffffff8000000))
	test.ExpectEquality(t, mc.Regs.Read(8), uint64(0xffffffff80000000))
}

func TestMultiply(t *testing.T) {
	mc, _ := newCPU(t, nil,
		rr(instructions.MULHU, 3, 1, 2),
		rr(instructions.MULH, 4, 1, 1),
		rr(instructions.MULHSU, 5, 1, 2),
		rr(instructions.MUL, 6, 1, 2),
		rr(instructions.MULW, 7, 8, 8),
	)
	mc.Regs.Write(1, 0xffffffffffffffff)
	mc.Regs.Write(2, 2)
	mc.Regs.Write(8, 0x10000)

	step(t, mc, 5)
	test.ExpectEquality(t, mc.Regs.Read(3), uint64(1))
	test.ExpectEquality(t, mc.Regs.Read(4), uint64(0))
	test.ExpectEquality(t, mc.Regs.Read(5), uint64(0xffffffffffffffff))
	test.ExpectEquality(t, mc.Regs.Read(6), uint64(0xfffffffffffffffe))
	test.ExpectEquality(t, mc.Regs.Read(7), uint64(0))
}

func TestDivision(t *testing.T) {
	var tests = []struct {
		m        instructions.Mnemonic
		a, b     uint64
		expected uint64
	}{
		{instructions.DIV, 7, 0, 0xffffffffffffffff},
		{instructions.DIVU, 7, 0, 0xffffffffffffffff},
		{instructions.REM, 7, 0, 7},
		{instructions.REMU, 7, 0, 7},
		{instructions.DIV, 0x8000000000000000, 0xffffffffffffffff, 0x8000000000000000},
		{instructions.REM, 0x8000000000000000, 0xffffffffffffffff, 0},
		{instructions.DIV, 0xfffffffffffffff9, 2, 0xfffffffffffffffd},
		{instructions.REM, 0xfffffffffffffff9, 2, 0xffffffffffffffff},
		{instructions.DIVW, 0x80000000, 0xffffffff, 0xffffffff80000000},
		{instructions.REMW, 0x80000000, 0xffffffff, 0},
		{instructions.DIVW, 5, 0, 0xffffffffffffffff},
		{instructions.DIVUW, 5, 0, 0xffffffffffffffff},
		{instructions.REMW, 0xfffffffb, 0, 0xfffffffffffffffb},
		{instructions.REMUW, 0x1fffffffb, 0, 0xfffffffffffffffb},
		{instructions.DIVUW, 0xffffffff, 2, 0x7fffffff},
	}

	for _, tt := range tests {
		mc, _ := newCPU(t, nil, rr(tt.m, 3, 1, 2))
		mc.Regs.Write(1, tt.a)
		mc.Regs.Write(2, tt.b)
		step(t, mc, 1)
		test.ExpectEquality(t, mc.Regs.Read(3), tt.expected, tt.m)
	}
}

func TestLoadStore(t *testing.T) {
	mc, mem := newCPU(t, nil,
		instructions.Store{Mnemonic: instructions.SB, Rs1: 1, Rs2: 2},
		ri(instructions.LBU, 3, 1, 0),
		ri(instructions.LB, 4, 1, 0),
		instructions.Store{Mnemonic: instructions.SD, Rs1: 1, Rs2: 5, Imm: 8},
		ri(instructions.LW, 6, 1, 8),
		ri(instructions.LWU, 7, 1, 8),
		ri(instructions.LH, 8, 1, 10),
		ri(instructions.LD, 9, 1, 8),
	)
	mc.Regs.Write(1, 0x100)
	mc.Regs.Write(2, 0x1234580)
	mc.Regs.Write(5, 0x01234567f0e0d0c0)

	step(t, mc, 8)
	v, err := mem.Peek(0x100)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x80))
	test.ExpectEquality(t, mc.Regs.Read(3), uint64(0x80))
	test.ExpectEquality(t, mc.Regs.Read(4), uint64(0xffffffffffffff80))
	test.ExpectEquality(t, mc.Regs.Read(6), uint64(0xfffffffff0e0d0c0))
	test.ExpectEquality(t, mc.Regs.Read(7), uint64(0xf0e0d0c0))
	test.ExpectEquality(t, mc.Regs.Read(8), uint64(0xfffffffffffff0e0))
	test.ExpectEquality(t, mc.Regs.Read(9), uint64(0x01234567f0e0d0c0))
}

func TestLoadOutOfBounds(t *testing.T) {
	mc, _ := newCPU(t, nil, ri(instructions.LD, 3, 1, 0))
	mc.Regs.Write(1, memory.DefaultSize-4)

	err := mc.Step()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, memory.OutOfBounds), true)
	test.ExpectEquality(t, mc.PC, uint64(0))
	test.ExpectEquality(t, mc.LastResult.Final, false)
}

func TestBranch(t *testing.T) {
	// taken branch lands on pc + offset
	mc, _ := newCPU(t, nil, instructions.Branch{Mnemonic: instructions.BEQ, Imm: 4})
	step(t, mc, 1)
	test.ExpectEquality(t, mc.PC, uint64(8))

	// branch not taken continues to the next instruction
	mc, _ = newCPU(t, nil, instructions.Branch{Mnemonic: instructions.BNE, Imm: 4})
	step(t, mc, 1)
	test.ExpectEquality(t, mc.PC, uint64(4))

	// backwards branch
	mc, _ = newCPU(t, nil,
		ri(instructions.ADDI, 1, 0, 0),
		ri(instructions.ADDI, 1, 1, 1),
		instructions.Branch{Mnemonic: instructions.BLT, Rs1: 1, Rs2: 2, Imm: -2},
	)
	mc.Regs.Write(2, 3)
	step(t, mc, 7)
	test.ExpectEquality(t, mc.Regs.Read(1), uint64(3))
	test.ExpectEquality(t, mc.PC, uint64(12))

	var tests = []struct {
		m     instructions.Mnemonic
		a, b  uint64
		taken bool
	}{
		{instructions.BLT, 0xffffffffffffffff, 1, true},
		{instructions.BLTU, 0xffffffffffffffff, 1, false},
		{instructions.BGE, 1, 0xffffffffffffffff, true},
		{instructions.BGEU, 1, 0xffffffffffffffff, false},
		{instructions.BGE, 5, 5, true},
	}

	for _, tt := range tests {
		mc, _ := newCPU(t, nil, instructions.Branch{Mnemonic: tt.m, Rs1: 1, Rs2: 2, Imm: 8})
		mc.Regs.Write(1, tt.a)
		mc.Regs.Write(2, tt.b)
		step(t, mc, 1)
		if tt.taken {
			test.ExpectEquality(t, mc.PC, uint64(16), tt.m)
		} else {
			test.ExpectEquality(t, mc.PC, uint64(4), tt.m)
		}
	}
}

func TestJumps(t *testing.T) {
	mc, _ := newCPU(t, nil, instructions.Jump{Mnemonic: instructions.JAL, Rd: 1, Imm: 8})
	step(t, mc, 1)
	test.ExpectEquality(t, mc.PC, uint64(8))
	test.ExpectEquality(t, mc.Regs.Read(1), uint64(4))

	// bit zero of the target is cleared
	mc, _ = newCPU(t, nil, ri(instructions.JALR, 1, 5, 0))
	mc.Regs.Write(5, 0x21)
	step(t, mc, 1)
	test.ExpectEquality(t, mc.PC, uint64(0x20))
	test.ExpectEquality(t, mc.Regs.Read(1), uint64(4))

	// destination and source are the same register
	mc, _ = newCPU(t, nil, ri(instructions.JALR, 1, 1, 4))
	mc.Regs.Write(1, 0x40)
	step(t, mc, 1)
	test.ExpectEquality(t, mc.PC, uint64(0x44))
	test.ExpectEquality(t, mc.Regs.Read(1), uint64(4))
}

func TestUpperImmediate(t *testing.T) {
	mc, _ := newCPU(t, nil,
		instructions.UpperImm{Mnemonic: instructions.LUI, Rd: 1, Imm: 0x12345},
		instructions.UpperImm{Mnemonic: instructions.AUIPC, Rd: 2, Imm: 1},
		instructions.UpperImm{Mnemonic: instructions.LUI, Rd: 3, Imm: -1},
	)
	step(t, mc, 3)
	test.ExpectEquality(t, mc.Regs.Read(1), uint64(0x12345000))
	test.ExpectEquality(t, mc.Regs.Read(2), uint64(0x1004))
	test.ExpectEquality(t, mc.Regs.Read(3), uint64(0xfffffffffffff000))
}

func TestUnrecognised(t *testing.T) {
	mem, err := memory.NewDRAM(memory.DefaultSize, []uint8{0x73, 0x40, 0x00, 0x00})
	test.DemandSuccess(t, err)
	mc := cpu.NewCPU(nil, mem)

	err = mc.Step()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Has(err, decoder.UnrecognisedInstruction), true)
	test.ExpectEquality(t, mc.PC, uint64(0))
	test.ExpectEquality(t, mc.LastResult.Word, uint32(0x00004073))
	test.ExpectEquality(t, mc.LastResult.Error != "", true)
}

func TestUnimplemented(t *testing.T) {
	mc, _ := newCPU(t, nil)
	err := mc.Execute(instructions.RegReg{Mnemonic: instructions.LUI})
	test.ExpectEquality(t, curated.Is(err, cpu.UnimplementedInstruction), true)
}

func TestRetired(t *testing.T) {
	mc, _ := newCPU(t, nil,
		ri(instructions.ADDI, 1, 0, 1),
		ri(instructions.ADDI, 1, 0, 1),
		ri(instructions.CSRRS, 2, 0, int64(registers.INSTRET)),
	)
	step(t, mc, 3)
	test.ExpectEquality(t, mc.Regs.Read(2), uint64(2))
	test.ExpectEquality(t, mc.CSR.Peek(registers.MINSTRET), uint64(3))
	test.ExpectEquality(t, mc.CSR.Peek(registers.CYCLE), uint64(3))
	test.ExpectEquality(t, mc.LastResult.Final, true)
	test.ExpectEquality(t, mc.LastResult.Address, uint64(8))
}

func TestSnapshot(t *testing.T) {
	mc, _ := newCPU(t, nil, ri(instructions.ADDI, 1, 0, 1))
	snap := mc.Snapshot()

	step(t, mc, 1)
	mc.FPU.Status.SetFlags(0x1f)

	test.ExpectEquality(t, snap.PC, uint64(0))
	test.ExpectEquality(t, snap.Regs.Read(1), uint64(0))
	test.ExpectEquality(t, snap.CSR.Peek(registers.FFLAGS), uint64(0))
	test.ExpectEquality(t, mc.CSR.Peek(registers.FFLAGS), uint64(0x1f))
}
