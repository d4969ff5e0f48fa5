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

package cpu

import (
	"github.com/ItsIronicIInsist/riscvEmu/curated"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu/instructions"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/memory"
)

func atomicWidth(m instructions.Mnemonic) int {
	if m >= instructions.LRW && m <= instructions.AMOMAXUW {
		return 4
	}
	return 8
}

// the aq and rl bits are ignored. there is only one hart and every memory
// access completes in program order
func (mc *CPU) executeAtomic(ins instructions.RegReg) error {
	width := atomicWidth(ins.Mnemonic)
	address := mc.Regs.Read(ins.Rs1)

	if address%uint64(width) != 0 {
		return curated.Errorf(memory.MisalignedAtomic, address, width)
	}

	switch ins.Mnemonic {
	case instructions.LRW, instructions.LRD:
		v, err := mc.mem.Load(address, width)
		if err != nil {
			return err
		}
		if width == 4 {
			v = sext32(uint32(v))
		}
		mc.reservation = reservation{valid: true, address: address, width: width}
		mc.Regs.Write(ins.Rd, v)
		return nil

	case instructions.SCW, instructions.SCD:
		held := mc.reservation.valid && mc.reservation.address == address && mc.reservation.width == width
		mc.reservation = reservation{}
		if !held {
			mc.Regs.Write(ins.Rd, 1)
			return nil
		}
		if err := mc.mem.Store(address, truncate(mc.Regs.Read(ins.Rs2), width), width); err != nil {
			return err
		}
		mc.Regs.Write(ins.Rd, 0)
		return nil
	}

	old, err := mc.mem.Load(address, width)
	if err != nil {
		return err
	}
	src := mc.Regs.Read(ins.Rs2)

	var v uint64

	switch ins.Mnemonic {
	case instructions.AMOSWAPW, instructions.AMOSWAPD:
		v = src
	case instructions.AMOADDW, instructions.AMOADDD:
		v = old + src
	case instructions.AMOXORW, instructions.AMOXORD:
		v = old ^ src
	case instructions.AMOANDW, instructions.AMOANDD:
		v = old & src
	case instructions.AMOORW, instructions.AMOORD:
		v = old | src
	case instructions.AMOMINW:
		v = old
		if int32(src) < int32(old) {
			v = src
		}
	case instructions.AMOMAXW:
		v = old
		if int32(src) > int32(old) {
			v = src
		}
	case instructions.AMOMINUW:
		v = old
		if uint32(src) < uint32(old) {
			v = src
		}
	case instructions.AMOMAXUW:
		v = old
		if uint32(src) > uint32(old) {
			v = src
		}
	case instructions.AMOMIND:
		v = old
		if int64(src) < int64(old) {
			v = src
		}
	case instructions.AMOMAXD:
		v = old
		if int64(src) > int64(old) {
			v = src
		}
	case instructions.AMOMINUD:
		v = old
		if src < old {
			v = src
		}
	case instructions.AMOMAXUD:
		v = old
		if src > old {
			v = src
		}
	default:
		return unimplemented(ins)
	}

	if err := mc.mem.Store(address, truncate(v, width), width); err != nil {
		return err
	}

	if width == 4 {
		old = sext32(uint32(old))
	}
	mc.Regs.Write(ins.Rd, old)

	return nil
}

func truncate(v uint64, width int) uint64 {
	if width == 4 {
		return v & 0xffffffff
	}
	return v
}
