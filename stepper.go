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

package main

import (
	"os"

	"github.com/ItsIronicIInsist/riscvEmu/disassembly"
	"github.com/ItsIronicIInsist/riscvEmu/hardware"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/govern"
	"github.com/ItsIronicIInsist/riscvEmu/logger"
	"github.com/ItsIronicIInsist/riscvEmu/modalflag"
	"github.com/ItsIronicIInsist/riscvEmu/terminal/easyterm"
	"github.com/ItsIronicIInsist/riscvEmu/terminal/easyterm/ansi"
)

const stepperHelp = "space/enter: step   r: run   x: registers   f: float registers   c: csr   q: quit\n"

func stepper(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stdout")
	cmdline := md.AddString("prefs", "", "preferences as key::value pairs separated by semicolons")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(logger.NewColorizer(os.Stdout), false)
	} else {
		logger.SetEcho(nil, false)
	}

	m, err := newMachine(md, *cmdline)
	if err != nil {
		return err
	}

	var term easyterm.Terminal
	if err := term.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}
	defer term.CleanUp()
	term.CBreakMode()

	term.Print(stepperHelp)

	for m.Halt == govern.NotHalted {
		printNext(&term, m)

		key, err := term.ReadKey()
		if err != nil {
			return err
		}

		if sync.interrupted.Load() {
			m.Halt = govern.HaltInterrupted
			break
		}

		switch key {
		case easyterm.KeySpace, easyterm.KeyLineFeed, easyterm.KeyCarriageReturn:
			if err := m.Step(); err != nil {
				return err
			}
		case 'r':
			err := m.Run(func() (govern.State, error) {
				if sync.interrupted.Load() {
					return govern.Ending, nil
				}
				return govern.Running, nil
			})
			if err != nil {
				return err
			}
		case 'x':
			term.Print("%s\n", m.CPU)
		case 'f':
			term.Print("%s %s\n", m.CPU.FRegs.String(), m.CPU.FPU)
		case 'c':
			term.Print("%s\n", m.CPU.CSR)
		case 'q', easyterm.KeyEOF, easyterm.KeyEsc:
			m.Halt = govern.HaltInterrupted
		default:
			term.Print(stepperHelp)
		}
	}

	term.Print("%s! %s after %d steps%s\n", ansi.Pens["yellow"], m.Halt, m.Steps, ansi.NormalPen)

	return nil
}

// print the disassembly of the instruction at the PC
func printNext(term *easyterm.Terminal, m *hardware.Machine) {
	w, err := m.Mem.Load(m.CPU.PC, 4)
	if err != nil {
		term.Print("%s%8x: %v%s\n", ansi.Pens["red"], m.CPU.PC, err, ansi.NormalPen)
		return
	}
	e := disassembly.NewEntry(m.CPU.PC, uint32(w))
	term.Print("%s%8x:%s %08x  %s\n", ansi.DimPens["cyan"], e.Address, ansi.NormalPen, e.Word, e)
}
