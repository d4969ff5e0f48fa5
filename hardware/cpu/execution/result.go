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

// Package execution records the result of the most recent instruction
// executed by the CPU.
package execution

import (
	"fmt"

	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu/instructions"
)

// Result records the state of the most recent instruction fetched by the
// CPU.
type Result struct {
	// address of the instruction
	Address uint64

	// the instruction word as it was read from memory
	Word uint32

	// the decoded instruction. will be nil if the word could not be decoded
	Instruction instructions.Instruction

	// whether the instruction completed. an instruction that caused an error
	// is not final
	Final bool

	// the error caused by the instruction, if any
	Error string
}

// Reset the result to its empty state.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Instruction == nil {
		return fmt.Sprintf("%#08x %08x ???", r.Address, r.Word)
	}
	if r.Error != "" {
		return fmt.Sprintf("%#08x %08x %s [%s]", r.Address, r.Word, r.Instruction, r.Error)
	}
	return fmt.Sprintf("%#08x %08x %s", r.Address, r.Word, r.Instruction)
}
