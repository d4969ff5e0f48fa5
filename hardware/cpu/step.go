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
	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu/decoder"
)

// Step fetches, decodes and executes the instruction at the PC. On success
// the PC is advanced by four bytes. On error the PC is unchanged.
func (mc *CPU) Step() error {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC

	w, err := mc.mem.Load(mc.PC, 4)
	if err != nil {
		mc.LastResult.Error = err.Error()
		return err
	}
	mc.LastResult.Word = uint32(w)

	ins, err := decoder.Decode(uint32(w))
	if err != nil {
		mc.LastResult.Error = err.Error()
		return err
	}
	mc.LastResult.Instruction = ins

	err = mc.Execute(ins)
	if err != nil {
		mc.LastResult.Error = err.Error()
		return err
	}

	mc.Advance()
	mc.LastResult.Final = true

	return nil
}
