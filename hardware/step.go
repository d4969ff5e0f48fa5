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

package hardware

import (
	"github.com/ItsIronicIInsist/riscvEmu/curated"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/govern"
	"github.com/ItsIronicIInsist/riscvEmu/logger"
)

// environment call numbers
const (
	hostWrite = 64
	hostExit  = 93
)

// argument registers
const (
	regA0 = 10
	regA1 = 11
	regA2 = 12
	regA7 = 17
)

// Step the emulation one CPU instruction. The Halt field is set when the
// instruction causes the machine to stop.
func (m *Machine) Step() error {
	if m.Halt != govern.NotHalted {
		return curated.Errorf(MachineHalted, m.Halt)
	}

	pc := m.CPU.PC

	err := m.CPU.Step()
	logger.Log(m, "riscv", &m.CPU.LastResult)

	if err != nil {
		switch {
		case curated.Is(err, cpu.EnvironmentCall):
			if err := m.hostCall(); err != nil {
				return curated.Errorf(ExecutionError, pc, err)
			}
		case curated.Is(err, cpu.Breakpoint):
			m.Halt = govern.HaltBreakpoint
			return nil
		default:
			return curated.Errorf(ExecutionError, pc, err)
		}
	}

	m.Steps++

	if m.Halt != govern.NotHalted {
		return nil
	}

	if m.CPU.PC == m.Prefs.SentinelPC.Get().(uint64) {
		m.Halt = govern.HaltSentinel
		return nil
	}

	if max := m.Prefs.MaxSteps.Get().(int); max > 0 && m.Steps >= max {
		m.Halt = govern.HaltMaxSteps
	}

	return nil
}

// hostCall services the environment call that the CPU is stopped on.
func (m *Machine) hostCall() error {
	n := m.CPU.Regs.Read(regA7)

	switch n {
	case hostWrite:
		address := m.CPU.Regs.Read(regA1)
		length := m.CPU.Regs.Read(regA2)

		b, err := m.Mem.ReadBytes(address, length)
		if err != nil {
			return curated.Errorf(HostCallError, n, err)
		}

		if m.Output != nil {
			if _, err := m.Output.Write(b); err != nil {
				return curated.Errorf(HostCallError, n, err)
			}
		}

		m.CPU.Regs.Write(regA0, length)
		m.CPU.Advance()

	case hostExit:
		m.ExitCode = int(int64(m.CPU.Regs.Read(regA0)))
		m.Halt = govern.HaltExit

	default:
		m.Halt = govern.HaltEnvironmentCall
		logger.Logf(logger.Allow, "riscv", "unhandled environment call %d from %s mode", n, m.CPU.Privilege)
	}

	return nil
}
