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
	"encoding/binary"
	"fmt"

	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu/decoder"
)

// Disassembly is the disassembly of an entire binary image.
type Disassembly struct {
	Entries []*Entry

	// number of bytes at the end of the image that do not form a complete
	// instruction word
	Trailing int
}

// FromImage disassembles the binary image. The image is assumed to be
// loaded at address zero.
func FromImage(image []uint8) *Disassembly {
	dsm := &Disassembly{
		Entries:  make([]*Entry, 0, len(image)/4),
		Trailing: len(image) % 4,
	}

	for a := 0; a+4 <= len(image); a += 4 {
		dsm.Entries = append(dsm.Entries, NewEntry(uint64(a), binary.LittleEndian.Uint32(image[a:])))
	}

	return dsm
}

// NewEntry disassembles an instruction word found at address.
func NewEntry(address uint64, word uint32) *Entry {
	e := &Entry{
		Address: address,
		Word:    word,
	}

	ins, err := decoder.Decode(word)
	if err != nil {
		e.Operator = ".word"
		e.Operand = fmt.Sprintf("%#08x", word)
		return e
	}

	e.Instruction = ins
	e.Operator, e.Operand = split(ins)

	return e
}
