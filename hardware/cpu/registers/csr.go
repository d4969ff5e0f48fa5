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

package registers

import (
	"fmt"
	"strings"

	"github.com/ItsIronicIInsist/riscvEmu/curated"
)

// Sentinal error patterns.
const (
	CSRPrivilegeViolation = "csr: %s requires %s privilege (hart is in %s mode)"
	CSRReadOnly           = "csr: %s is read-only"
)

// NumCSR is the number of addressable control and status registers.
const NumCSR = 4096

// List of CSR addresses with special meaning.
const (
	FFLAGS   = 0x001
	FRM      = 0x002
	FCSR     = 0x003
	SSTATUS  = 0x100
	SIE      = 0x104
	STVEC    = 0x105
	SSCRATCH = 0x140
	SEPC     = 0x141
	SCAUSE   = 0x142
	STVAL    = 0x143
	SIP      = 0x144
	SATP     = 0x180
	MSTATUS  = 0x300
	MISA     = 0x301
	MEDELEG  = 0x302
	MIDELEG  = 0x303
	MIE      = 0x304
	MTVEC    = 0x305
	MSCRATCH = 0x340
	MEPC     = 0x341
	MCAUSE   = 0x342
	MTVAL    = 0x343
	MIP      = 0x344
	MCYCLE   = 0xb00
	MINSTRET = 0xb02
	CYCLE    = 0xc00
	TIME     = 0xc01
	INSTRET  = 0xc02
	MVENDOR  = 0xf11
	MARCHID  = 0xf12
	MIMPID   = 0xf13
	MHARTID  = 0xf14
)

// bits of the mstatus register
const (
	StatusSIE  = 1 << 1
	StatusMIE  = 1 << 3
	StatusSPIE = 1 << 5
	StatusMPIE = 1 << 7
	StatusSPP  = 1 << 8
	StatusMPP  = 3 << 11
	StatusFS   = 3 << 13

	// the bits of mstatus that are visible through sstatus
	sstatusMask = StatusSIE | StatusSPIE | StatusSPP | StatusFS
)

// MISAValue is the value of the misa register: RV64 with the A, F, I, M, S
// and U extensions.
const MISAValue = 2<<62 | 1<<0 | 1<<5 | 1<<8 | 1<<12 | 1<<18 | 1<<20

var csrNames = map[uint16]string{
	FFLAGS: "fflags", FRM: "frm", FCSR: "fcsr",
	SSTATUS: "sstatus", SIE: "sie", STVEC: "stvec", SSCRATCH: "sscratch",
	SEPC: "sepc", SCAUSE: "scause", STVAL: "stval", SIP: "sip", SATP: "satp",
	MSTATUS: "mstatus", MISA: "misa", MEDELEG: "medeleg", MIDELEG: "mideleg",
	MIE: "mie", MTVEC: "mtvec", MSCRATCH: "mscratch", MEPC: "mepc",
	MCAUSE: "mcause", MTVAL: "mtval", MIP: "mip",
	MCYCLE: "mcycle", MINSTRET: "minstret",
	CYCLE: "cycle", TIME: "time", INSTRET: "instret",
	MVENDOR: "mvendorid", MARCHID: "marchid", MIMPID: "mimpid", MHARTID: "mhartid",
}

// CSRName returns the assembler name of the CSR address. Addresses without a
// name are returned in hex.
func CSRName(addr uint16) string {
	if n, ok := csrNames[addr&0xfff]; ok {
		return n
	}
	return fmt.Sprintf("%#03x", addr&0xfff)
}

// RequiredPrivilege returns the lowest privilege level that can access the
// CSR address. It is encoded in bits [9:8] of the address.
func RequiredPrivilege(addr uint16) Privilege {
	return Privilege((addr >> 8) & 0x03)
}

// IsReadOnly returns true if the CSR address is in a read-only region. Bits
// [11:10] of a read-only address are both set.
func IsReadOnly(addr uint16) bool {
	return (addr>>10)&0x03 == 0x03
}

// Mapping is implemented by types that provide the value of one or more
// CSRs. Reads and writes of a mapped address are forwarded instead of using
// the bank.
type Mapping interface {
	ReadCSR(addr uint16) uint64
	WriteCSR(addr uint16, v uint64)
}

// CSR is the bank of control and status registers.
type CSR struct {
	bank     [NumCSR]uint64
	mappings map[uint16]Mapping

	// access is checked against the privilege level encoded in the address.
	// the read-only rule is applied regardless of this value
	CheckPrivilege bool
}

// NewCSR is the preferred method of initialisation for the CSR bank.
func NewCSR() *CSR {
	c := &CSR{
		mappings:       make(map[uint16]Mapping),
		CheckPrivilege: true,
	}
	c.Reset()
	return c
}

// Label returns the canonical name for the CSR bank.
func (c *CSR) Label() string {
	return "CSR"
}

// String lists the CSRs in the bank that are not zero. Mapped CSRs are not
// included.
func (c *CSR) String() string {
	s := strings.Builder{}
	for i := range c.bank {
		if c.bank[i] == 0 {
			continue
		}
		if s.Len() > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%s=%#x", CSRName(uint16(i)), c.bank[i]))
	}
	return s.String()
}

// Reset all CSRs. Mappings are not affected.
func (c *CSR) Reset() {
	c.bank = [NumCSR]uint64{}
	c.bank[MISA] = MISAValue
}

// Snapshot creates a copy of the CSR bank. The mappings of the copy refer to
// the same Mapping implementations as the original.
func (c *CSR) Snapshot() *CSR {
	n := *c
	n.mappings = make(map[uint16]Mapping, len(c.mappings))
	for a, m := range c.mappings {
		n.mappings[a] = m
	}
	return &n
}

// Map forwards accesses of the CSR address to the Mapping. A nil Mapping
// removes the forwarding.
func (c *CSR) Map(addr uint16, m Mapping) {
	addr &= 0xfff
	if m == nil {
		delete(c.mappings, addr)
		return
	}
	c.mappings[addr] = m
}

func (c *CSR) checkAccess(addr uint16, priv Privilege) error {
	if c.CheckPrivilege && priv < RequiredPrivilege(addr) {
		return curated.Errorf(CSRPrivilegeViolation, CSRName(addr), RequiredPrivilege(addr), priv)
	}
	return nil
}

// Read the CSR at the privilege level.
func (c *CSR) Read(addr uint16, priv Privilege) (uint64, error) {
	addr &= 0xfff
	if err := c.checkAccess(addr, priv); err != nil {
		return 0, err
	}
	return c.Peek(addr), nil
}

// Write the CSR at the privilege level.
func (c *CSR) Write(addr uint16, v uint64, priv Privilege) error {
	addr &= 0xfff
	if err := c.checkAccess(addr, priv); err != nil {
		return err
	}
	if IsReadOnly(addr) {
		return curated.Errorf(CSRReadOnly, CSRName(addr))
	}
	c.Poke(addr, v)
	return nil
}

// Peek returns the value of the CSR without any access checks.
func (c *CSR) Peek(addr uint16) uint64 {
	addr &= 0xfff

	if m, ok := c.mappings[addr]; ok {
		return m.ReadCSR(addr)
	}

	switch addr {
	case CYCLE, TIME:
		return c.bank[MCYCLE]
	case INSTRET:
		return c.bank[MINSTRET]
	case SSTATUS:
		return c.bank[MSTATUS] & sstatusMask
	}

	return c.bank[addr]
}

// Poke sets the value of the CSR without any access checks. Read-only CSRs
// can be changed with Poke().
func (c *CSR) Poke(addr uint16, v uint64) {
	addr &= 0xfff

	if m, ok := c.mappings[addr]; ok {
		m.WriteCSR(addr, v)
		return
	}

	switch addr {
	case CYCLE, TIME:
		c.bank[MCYCLE] = v
		return
	case INSTRET:
		c.bank[MINSTRET] = v
		return
	case SSTATUS:
		c.bank[MSTATUS] = (c.bank[MSTATUS] &^ sstatusMask) | (v & sstatusMask)
		return
	}

	c.bank[addr] = v
}

// Tick increments the mcycle and minstret counters.
func (c *CSR) Tick() {
	c.bank[MCYCLE]++
	c.bank[MINSTRET]++
}
