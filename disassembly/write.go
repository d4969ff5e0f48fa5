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

package disassembly

import (
	"fmt"
	"io"
)

// WriteAttr controls what is printed by the Write*() functions
type WriteAttr struct {
	// print the address of the instruction
	Address bool

	// print the instruction word
	ByteCode bool
}

// Write the entire disassembly to io.Writer
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range dsm.Entries {
		if err := dsm.WriteLine(output, attr, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteLine writes a single Entry to io.Writer
func (dsm *Disassembly) WriteLine(output io.Writer, attr WriteAttr, e *Entry) error {
	if e == nil {
		return nil
	}

	var s string
	if attr.Address {
		s = fmt.Sprintf("%8x: ", e.Address)
	}
	if attr.ByteCode {
		s = fmt.Sprintf("%s%08x  ", s, e.Word)
	}

	_, err := io.WriteString(output, fmt.Sprintf("%s%s\n", s, e))
	return err
}
