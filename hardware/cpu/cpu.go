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
	"fmt"
	"strings"

	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu/execution"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu/fpu"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu/registers"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/memory"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/preferences"
)

// reservation made by a load-reserved instruction
type reservation struct {
	valid   bool
	address uint64
	width   int
}

// CPU implements a single RISC-V hart.
type CPU struct {
	prefs *preferences.Preferences
	mem   memory.Memory

	PC        uint64
	Regs      registers.Registers
	FRegs     registers.FloatRegisters
	CSR       *registers.CSR
	FPU       *fpu.FPU
	Privilege registers.Privilege

	reservation reservation

	// the most recent instruction fetched by Step()
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// prefs argument can be nil, in which case default preferences are used.
func NewCPU(prefs *preferences.Preferences, mem memory.Memory) *CPU {
	if prefs == nil {
		prefs = preferences.NewDefaults()
	}

	mc := &CPU{
		prefs: prefs,
		mem:   mem,
		CSR:   registers.NewCSR(),
		FPU:   fpu.NewFPU(),
	}

	for _, a := range fpu.CSRAddresses() {
		mc.CSR.Map(a, mc.FPU)
	}

	mc.Reset()

	return mc
}

// Snapshot creates a copy of the CPU in its current state. The snapshot
// shares the memory of the original CPU.
func (mc *CPU) Snapshot() *CPU {
	n := *mc

	f := *mc.FPU
	n.FPU = &f
	n.CSR = mc.CSR.Snapshot()
	for _, a := range fpu.CSRAddresses() {
		n.CSR.Map(a, n.FPU)
	}

	return &n
}

// Plumb a new memory into the CPU.
func (mc *CPU) Plumb(mem memory.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("pc=%#x priv=%s", mc.PC, mc.Privilege))
	if r := mc.Regs.String(); r != "" {
		s.WriteString(" ")
		s.WriteString(r)
	}
	return s.String()
}

// Reset reinitialises all registers. The stack pointer is loaded with the
// value in the preferences and the hart is put into machine mode.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.reservation = reservation{}

	mc.PC = 0
	mc.Privilege = registers.Machine
	mc.Regs.Reset()
	mc.FRegs.Reset()
	mc.CSR.Reset()
	mc.FPU.Reset()

	mc.Regs.Write(registers.StackPointer, mc.prefs.StackPointer.Get().(uint64))
	mc.FPU.DynamicRounding = mc.prefs.DynamicRounding.Get().(bool)
	mc.CSR.CheckPrivilege = mc.prefs.PrivilegeCheck.Get().(bool)
}

// Advance the PC to the next instruction and count the instruction as
// retired.
func (mc *CPU) Advance() {
	mc.PC += 4
	mc.CSR.Tick()
}
