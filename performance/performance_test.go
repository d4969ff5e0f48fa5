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


package performance_test

import (
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"github.com/ItsIronicIInsist/riscvEmu/hardware"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu/decoder"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu/instructions"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/govern"
	"github.com/ItsIronicIInsist/riscvEmu/performance"
	"github.com/ItsIronicIInsist/riscvEmu/test"
)

func newMachine(t *testing.T, program ...instructions.Instruction) *hardware.Machine {
	t.Helper()
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

func TestParseProfileString(t *testing.T) {
	for _, c := range []struct {
		s string
		p performance.Profile
	}{
		{"", performance.ProfileNone},
		{"none", performance.ProfileNone},
		{"CPU", performance.ProfileCPU},
		{"cpu,mem", performance.ProfileCPU | performance.ProfileMem},
		{"trace, MEM", performance.ProfileTrace | performance.ProfileMem},
		{"ALL", performance.ProfileAll},
	} {
		p, err := performance.ParseProfileString(c.s)
		test.ExpectSuccess(t, err, c.s)
		test.ExpectEquality(t, p, c.p, c.s)
	}

	_, err := performance.ParseProfileString("cpu,disk")
	test.ExpectFailure(t, err)

	test.ExpectEquality(t, performance.ProfileAll.String(), "CPU,MEM,TRACE")
	test.ExpectEquality(t, performance.ProfileNone.String(), "NONE")
}

func TestRunProfiler(t *testing.T) {
	ran := false
	err := performance.RunProfiler(performance.ProfileNone, "test", func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ran, true)

	sentinel := errors.New("run error")
	err = performance.RunProfiler(performance.ProfileNone, "test", func() error {
		return sentinel
	})
	test.ExpectEquality(t, errors.Is(err, sentinel), true)
}

func TestCalcMIPS(t *testing.T) {
	test.ExpectApproximate(t, performance.CalcMIPS(5000000, 2.0), 2.5, 0.001)
	test.ExpectEquality(t, performance.CalcMIPS(100, 0), 0.0)
}

func TestCheck(t *testing.T) {
	// the loop does not include address zero so the sentinel is never reached
	m := newMachine(t,
		instructions.RegImm{Mnemonic: instructions.ADDI},
		instructions.RegImm{Mnemonic: instructions.ADDI, Rd: 5, Rs1: 5, Imm: 1},
		instructions.Jump{Mnemonic: instructions.JAL, Imm: -4},
	)

	out := &test.Writer{}
	test.DemandSuccess(t, performance.Check(out, performance.ProfileNone, m, "50ms"))
	test.ExpectEquality(t, m.Halt, govern.HaltInterrupted)
	test.ExpectEquality(t, strings.Contains(out.String(), " MIPS ("), true)
	test.ExpectEquality(t, strings.Contains(out.String(), "halted"), false)
	test.ExpectEquality(t, m.Steps > 0, true)
}

func TestCheckHalted(t *testing.T) {
	m := newMachine(t,
		instructions.RegImm{Mnemonic: instructions.ADDI, Rd: 17, Imm: 93},
		instructions.RegImm{Mnemonic: instructions.ECALL},
	)

	out := &test.Writer{}
	test.DemandSuccess(t, performance.Check(out, performance.ProfileNone, m, "10s"))
	test.ExpectEquality(t, m.Halt, govern.HaltExit)
	test.ExpectEquality(t, strings.Contains(out.String(), "(2 instructions"), true)
	test.ExpectEquality(t, strings.Contains(out.String(), "machine halted before end of measurement"), true)

	err := performance.Check(out, performance.ProfileNone, m, "five seconds")
	test.ExpectFailure(t, err)
}
