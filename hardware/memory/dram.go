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

package memory

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/ItsIronicIInsist/riscvEmu/curated"
)

// DRAM is a contiguous area of memory starting at address zero.
type DRAM struct {
	data []uint8
}

// NewDRAM is the preferred method of initialisation for the DRAM type. The
// image is copied to the start of memory. An image larger than the memory
// area is an error.
func NewDRAM(size uint64, image []uint8) (*DRAM, error) {
	if uint64(len(image)) > size {
		return nil, curated.Errorf(ImageTooLarge, len(image), size)
	}

	mem := &DRAM{
		data: make([]uint8, size),
	}
	copy(mem.data, image)

	return mem, nil
}

// Size returns the number of bytes in the memory area.
func (mem *DRAM) Size() uint64 {
	return uint64(len(mem.data))
}

// check that an access of width bytes at address is legal. returns the
// offset into the data array
func (mem *DRAM) check(address uint64, width int) error {
	switch width {
	case 1, 2, 4, 8:
	default:
		return curated.Errorf(InvalidWidth, width)
	}

	// the comparison is arranged so that it can't overflow
	if address >= uint64(len(mem.data)) || uint64(len(mem.data))-address < uint64(width) {
		return curated.Errorf(OutOfBounds, address, width)
	}

	return nil
}

// Load implements the Memory interface.
func (mem *DRAM) Load(address uint64, width int) (uint64, error) {
	if err := mem.check(address, width); err != nil {
		return 0, err
	}

	b := mem.data[address : address+uint64(width)]

	switch width {
	case 1:
		return uint64(b[0]), nil
	case 2:
		return uint64(binary.LittleEndian.Uint16(b)), nil
	case 4:
		return uint64(binary.LittleEndian.Uint32(b)), nil
	}

	return binary.LittleEndian.Uint64(b), nil
}

// Store implements the Memory interface. Only the lowest width bytes of the
// value are written.
func (mem *DRAM) Store(address uint64, value uint64, width int) error {
	if err := mem.check(address, width); err != nil {
		return err
	}

	b := mem.data[address : address+uint64(width)]

	switch width {
	case 1:
		b[0] = uint8(value)
	case 2:
		binary.LittleEndian.PutUint16(b, uint16(value))
	case 4:
		binary.LittleEndian.PutUint32(b, uint32(value))
	case 8:
		binary.LittleEndian.PutUint64(b, value)
	}

	return nil
}

// Peek implements the DebugBus interface.
func (mem *DRAM) Peek(address uint64) (uint8, error) {
	if address >= uint64(len(mem.data)) {
		return 0, curated.Errorf(OutOfBounds, address, 1)
	}
	return mem.data[address], nil
}

// Poke implements the DebugBus interface.
func (mem *DRAM) Poke(address uint64, value uint8) error {
	if address >= uint64(len(mem.data)) {
		return curated.Errorf(OutOfBounds, address, 1)
	}
	mem.data[address] = value
	return nil
}

// Dump returns a hex dump of length bytes of memory starting at origin. The
// dump stops at the end of memory.
func (mem *DRAM) Dump(origin uint64, length int) string {
	s := strings.Builder{}

	for a := origin &^ 0x0f; a < origin+uint64(length) && a < uint64(len(mem.data)); a += 16 {
		s.WriteString(fmt.Sprintf("%08x |", a))
		for x := uint64(0); x < 16 && a+x < uint64(len(mem.data)); x++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.data[a+x]))
		}
		s.WriteString("\n")
	}

	return strings.TrimSuffix(s.String(), "\n")
}

// ReadBytes returns a copy of length bytes starting at address. The whole
// range must be inside the memory area.
func (mem *DRAM) ReadBytes(address uint64, length uint64) ([]uint8, error) {
	if length == 0 {
		return []uint8{}, nil
	}

	// the comparison is arranged so that it can't overflow
	if address >= uint64(len(mem.data)) || uint64(len(mem.data))-address < length {
		return nil, curated.Errorf(OutOfBounds, address, length)
	}

	b := make([]uint8, length)
	copy(b, mem.data[address:address+length])
	return b, nil
}

// Snapshot creates a copy of the memory in its current state.
func (mem *DRAM) Snapshot() *DRAM {
	n := &DRAM{
		data: make([]uint8, len(mem.data)),
	}
	copy(n.data, mem.data)
	return n
}

// WriteTo implements the io.WriterTo interface. The entire memory area is
// written.
func (mem *DRAM) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(mem.data)
	return int64(n), err
}
