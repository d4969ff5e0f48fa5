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

package govern

// State indicates the emulation's general state.
type State int

// List of possible emulation states.
const (
	Initialising State = iota
	Paused
	Stepping
	Running
	Ending
)

func (s State) String() string {
	switch s {
	case Initialising:
		return "Initialising"
	case Paused:
		return "Paused"
	case Stepping:
		return "Stepping"
	case Running:
		return "Running"
	case Ending:
		return "Ending"
	}

	return ""
}

// Halt describes why the emulation stopped running.
type Halt int

// List of possible halt reasons. NotHalted is the zero value.
const (
	NotHalted Halt = iota
	HaltSentinel
	HaltExit
	HaltEnvironmentCall
	HaltBreakpoint
	HaltMaxSteps
	HaltInterrupted
)

func (h Halt) String() string {
	switch h {
	case NotHalted:
		return "not halted"
	case HaltSentinel:
		return "sentinel address reached"
	case HaltExit:
		return "exit"
	case HaltEnvironmentCall:
		return "environment call"
	case HaltBreakpoint:
		return "breakpoint"
	case HaltMaxSteps:
		return "step limit reached"
	case HaltInterrupted:
		return "interrupted"
	}

	return ""
}
