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


package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/ItsIronicIInsist/riscvEmu/hardware"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/govern"
)

// Check the performance of the emulator using the supplied machine.
//
// Emulation will run for the specified duration, or until the machine halts,
// and will create a cpu profile, a memory profile or a trace (or a
// combination of those) as defined by the Profile argument.
func Check(output io.Writer, profile Profile, m *hardware.Machine, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	startSteps := m.Steps
	var elapsed time.Duration

	runner := func() error {
		// closed when the duration has elapsed
		timerChan := make(chan struct{})
		timer := time.AfterFunc(dur, func() {
			close(timerChan)
		})
		defer timer.Stop()

		start := time.Now()
		defer func() {
			elapsed = time.Since(start)
		}()

		// Run() only calls the continue check every CheckInterval
		// instructions so selecting on the channel does not slow the
		// emulation noticeably
		return m.Run(func() (govern.State, error) {
			select {
			case <-timerChan:
				return govern.Ending, nil
			default:
			}
			return govern.Running, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	steps := m.Steps - startSteps
	mips := CalcMIPS(steps, elapsed.Seconds())
	output.Write([]byte(fmt.Sprintf("%.2f MIPS (%d instructions in %.2f seconds)\n", mips, steps, elapsed.Seconds())))

	if m.Halt != govern.HaltInterrupted {
		output.Write([]byte(fmt.Sprintf("machine halted before end of measurement: %s\n", m.Halt)))
	}

	return nil
}

// CalcMIPS returns the number of millions of instructions executed per
// second.
func CalcMIPS(steps int, seconds float64) float64 {
	if seconds <= 0 {
		return 0
	}
	return float64(steps) / seconds / 1000000
}
