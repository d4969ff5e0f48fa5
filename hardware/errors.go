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

// Sentinal errors for the hardware package.
const (
	ExecutionError = "hardware: step at pc %#x: %v"
	MachineHalted  = "hardware: machine has halted (%v)"
	HostCallError  = "hardware: environment call %d: %v"
	UnsupportedRun = "hardware: unsupported emulation state (%v) in Run() function"
)
