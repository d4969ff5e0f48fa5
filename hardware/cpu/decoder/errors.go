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

package decoder

import (
	"github.com/ItsIronicIInsist/riscvEmu/curated"
)

// Sentinal error patterns.
const (
	UnrecognisedInstruction = "decoder: unrecognised instruction %#08x (opcode %#02x funct3 %#x funct7 %#02x)"
	UnencodableInstruction  = "decoder: cannot encode %v: %v"
)

// DecodeError is returned by Decode() when the instruction word does not
// match any definition. The fields of the word that are used to select an
// instruction are included for diagnostic purposes.
type DecodeError struct {
	Word   uint32
	Opcode uint32
	Funct3 uint32
	Funct7 uint32
}

func newDecodeError(word uint32) *DecodeError {
	return &DecodeError{
		Word:   word,
		Opcode: word & 0x7f,
		Funct3: funct3(word),
		Funct7: word >> 25,
	}
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return e.Unwrap().Error()
}

// Unwrap returns the curated form of the error with the
// UnrecognisedInstruction pattern.
func (e *DecodeError) Unwrap() error {
	return curated.Errorf(UnrecognisedInstruction, e.Word, e.Opcode, e.Funct3, e.Funct7)
}
