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
	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu/instructions"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/memory"
	"github.com/ItsIronicIInsist/riscvEmu/test"
)

func TestAtomicMemoryOperations(t *testing.T) {
	var tests = []struct {
		m        instructions.Mnemonic
		width    int
		initial  uint64
		src      uint64
		expected uint64
		stored   uint64
	}{
		{instructions.AMOADDW, 4, 5, 3, 5, 8},
		{instructions.AMOADDW, 4, 0xffffffff, 1, 0xffffffffffffffff, 0},
		{instructions.AMOSWAPW, 4, 0x80000000, 7, 0xffffffff80000000, 7},
		{instructions.AMOMINW, 4, 0xfffffffe, 3, 0xfffffffffffffffe, 0xfffffffe},
		{instructions.AMOMINUW, 4, 0xfffffffe, 3, 0xfffffffffffffffe, 3},
		{instructions.AMOMAXW, 4, 0xfffffffe, 3, 0xfffffffffffffffe, 3},
		{instructions.AMOMAXUW, 4, 0xfffffffe, 3, 0xfffffffffffffffe, 0xfffffffe},
		{instructions.AMOANDD, 8, 0xff00, 0x0ff0, 0xff00, 0x0f00},
		{instructions.AMOORD, 8, 0xff00, 0x0ff0, 0xff00, 0xfff0},
		{instructions.AMOXORD, 8, 0xff00, 0x0ff0, 0xff00, 0xf0f0},
		{instructions.AMOSWAPD, 8, 0x1122334455667788, 9, 0x1122334455667788, 9},
		{instructions.AMOMIND, 8, 0xffffffffffffffff, 1, 0xffffffffffffffff, 0xffffffffffffffff},
		{instructions.AMOMINUD, 8, 0xffffffffffffffff, 1, 0xffffffffffffffff, 1},
	}

	for _, tt := range tests {
		mc, mem := newCPU(t, nil, rr(tt.m, 3, 1, 2))
		test.DemandSuccess(t, mem.Store(0x100, tt.initial, tt.width))
		mc.Regs.Write(1, 0x100)
		mc.Regs.Write(2, tt.src)

		step(t, mc, 1)
		test.ExpectEquality(t, mc.Regs.Read(3), tt.expected, tt.m)

		v, err := mem.Load(0x100, tt.width)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, tt.stored, tt.m)
	}
}

func TestMisalignedAtomic(t *testing.T) {
	mc, _ := newCPU(t, nil, rr(instructions.AMOADDD, 3, 1, 2))
	mc.Regs.Write(1, 0x104)

	err := mc.Step()
	test.ExpectEquality(t, curated.Is(err, memory.MisalignedAtomic), true)
	test.ExpectEquality(t, mc.PC, uint64(0))
}

func TestLoadReservedStoreConditional(t *testing.T) {
	mc, mem := newCPU(t, nil,
		rr(instructions.LRD, 3, 1, 0),
		rr(instructions.SCD, 4, 1, 2),
		rr(instructions.SCD, 5, 1, 6),
	)
	test.DemandSuccess(t, mem.Store(0x100, 42, 8))
	mc.Regs.Write(1, 0x100)
	mc.Regs.Write(2, 99)
	mc.Regs.Write(6, 7)

	step(t, mc, 3)
	test.ExpectEquality(t, mc.Regs.Read(3), uint64(42))
	test.ExpectEquality(t, mc.Regs.Read(4), uint64(0))

	// the first store conditional cleared the reservation
	test.ExpectEquality(t, mc.Regs.Read(5), uint64(1))

	v, err := mem.Load(0x100, 8)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint64(99))

	// reservation is for a different address
	mc, mem = newCPU(t, nil,
		rr(instructions.LRW, 3, 1, 0),
		rr(instructions.SCW, 4, 7, 2),
	)
	test.DemandSuccess(t, mem.Store(0x100, 0xfffffff0, 4))
	mc.Regs.Write(1, 0x100)
	mc.Regs.Write(7, 0x108)
	mc.Regs.Write(2, 99)

	step(t, mc, 2)
	test.ExpectEquality(t, mc.Regs.Read(3), uint64(0xfffffffffffffff0))
	test.ExpectEquality(t, mc.Regs.Read(4), uint64(1))

	v, err = mem.Load(0x108, 4)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint64(0))

	// reservation is for a different width
	mc, _ = newCPU(t, nil,
		rr(instructions.LRW, 3, 1, 0),
		rr(instructions.SCD, 4, 1, 2),
	)
	mc.Regs.Write(1, 0x100)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.Regs.Read(4), uint64(1))
}
