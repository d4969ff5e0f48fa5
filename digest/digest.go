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


// Package digest produces SHA-1 fingerprints of the emulated machine. It is
// used to check that two emulations have arrived at the same state, for
// example when comparing the emulation of an image before and after a change
// to the emulator.
//
// Digests are chained. Each call to Update() includes the previous digest
// value in the data being hashed, so the final value depends on every state
// that was recorded and on the order in which they were recorded.
package digest

// Digest implementations compute a hash of the state of the emulation.
type Digest interface {
	Hash() string
	ResetDigest()
}
