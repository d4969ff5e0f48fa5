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


package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"hash"

	"github.com/ItsIronicIInsist/riscvEmu/hardware"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/cpu/registers"
)

// the CSRs that contribute to the digest. the counters are included so that
// two states reached after a different number of instructions are distinct
var digestCSRs = []uint16{
	registers.FCSR,
	registers.MSTATUS,
	registers.MEPC,
	registers.MCAUSE,
	registers.MCYCLE,
	registers.MINSTRET,
}

// Machine is an implementation of the Digest interface for the state of the
// entire machine, including memory.
type Machine struct {
	m      *hardware.Machine
	digest [sha1.Size]byte
	h      hash.Hash
	buf    []byte
}

// NewMachine is the preferred method of initialisation for the Machine type.
func NewMachine(m *hardware.Machine) *Machine {
	return &Machine{
		m: m,
		h: sha1.New(),
	}
}

// Hash implements digest.Digest interface.
func (dig *Machine) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Machine) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// Update chains the current state of the machine into the digest.
func (dig *Machine) Update() error {
	dig.h.Reset()

	// chain fingerprints by writing the value of the last fingerprint
	// before the machine state
	dig.buf = append(dig.buf[:0], dig.digest[:]...)

	mc := dig.m.CPU
	dig.buf = binary.LittleEndian.AppendUint64(dig.buf, mc.PC)
	dig.buf = append(dig.buf, uint8(mc.Privilege))
	for _, r := range mc.Regs.Snapshot() {
		dig.buf = binary.LittleEndian.AppendUint64(dig.buf, r)
	}
	for _, r := range mc.FRegs.Snapshot() {
		dig.buf = binary.LittleEndian.AppendUint64(dig.buf, r)
	}
	for _, addr := range digestCSRs {
		dig.buf = binary.LittleEndian.AppendUint64(dig.buf, mc.CSR.Peek(addr))
	}

	if _, err := dig.h.Write(dig.buf); err != nil {
		return fmt.Errorf("digest: %w", err)
	}
	if _, err := dig.m.Mem.WriteTo(dig.h); err != nil {
		return fmt.Errorf("digest: %w", err)
	}

	copy(dig.digest[:], dig.h.Sum(nil))

	return nil
}
