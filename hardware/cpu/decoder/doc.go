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

// Package decoder converts 32 bit instruction words into the typed
// instructions of the instructions package, and back again.
//
// Decoding selects the definitions that share the primary opcode of the word
// and picks the one whose fixed fields match. Operands and immediates are
// then extracted according to the encoding of the definition. A word that
// matches no definition results in a *DecodeError.
//
// Encode() is the inverse operation. For any word w that Decode() accepts,
// Encode(Decode(w)) is equal to w.
package decoder
