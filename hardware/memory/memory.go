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

// Memory defines the operations for the memory system when accessed from the
// CPU. Width is the number of bytes in the access.
type Memory interface {
	Load(address uint64, width int) (uint64, error)
	Store(address uint64, value uint64, width int) error
}

// DebugBus defines the meta-operations for memory. These operations are
// outside of the normal operation of the machine and do not emulate any
// part of a memory access.
type DebugBus interface {
	Peek(address uint64) (uint8, error)
	Poke(address uint64, value uint8) error
}

// Sentinal errors for memory access.
const (
	OutOfBounds      = "memory: address %#x (width %d) is out of bounds"
	InvalidWidth     = "memory: invalid access width (%d)"
	MisalignedAtomic = "memory: misaligned atomic access at %#x (width %d)"
	ImageTooLarge    = "memory: image of %d bytes does not fit in %d bytes of memory"
)

// DefaultSize is the amount of memory used when no other value is specified.
const DefaultSize = 1024 * 1024
