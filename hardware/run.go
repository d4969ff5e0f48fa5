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
	"github.com/ItsIronicIInsist/riscvEmu/hardware/govern"
)

// CheckInterval is the number of instructions between calls to the
// continueCheck() function in Run(). Checking for continuation after every
// instruction would slow the emulation considerably.
const CheckInterval = 1000

// Run the emulation until the machine halts or the continueCheck() function
// returns the Ending state. If continueCheck is nil the emulation runs until
// the machine halts.
func (m *Machine) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running
	interval := 0

	for m.Halt == govern.NotHalted {
		switch state {
		case govern.Running:
			if err := m.Step(); err != nil {
				return err
			}
			interval++
		case govern.Paused:
			// paused emulation checks for continuation on every iteration
			interval = CheckInterval
		default:
			return curated.Errorf(UnsupportedRun, state)
		}

		if interval >= CheckInterval {
			interval = 0
			state, err = continueCheck()
			if err != nil {
				return err
			}
			if state == govern.Ending {
				m.Halt = govern.HaltInterrupted
			}
		}
	}

	return nil
}
