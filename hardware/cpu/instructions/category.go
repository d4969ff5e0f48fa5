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

package instructions

// Extension of the instruction set a mnemonic belongs to.
type Extension int

// List of valid Extension values.
const (
	NoExtension Extension = iota
	BaseInteger
	Privileged
	Multiply
	Atomic
	SingleFloat
	ControlStatus
)

func (e Extension) String() string {
	switch e {
	case BaseInteger:
		return "I"
	case Privileged:
		return "Priv"
	case Multiply:
		return "M"
	case Atomic:
		return "A"
	case SingleFloat:
		return "F"
	case ControlStatus:
		return "Zicsr"
	}
	return "unknown extension"
}

// Category of an instruction describes its effect.
type Category int

// List of valid Category values.
const (
	Modify Category = iota
	Read
	Write
	Flow
	ReadModifyWrite
	System
)

func (e Category) String() string {
	switch e {
	case Modify:
		return "Modify"
	case Read:
		return "Read"
	case Write:
		return "Write"
	case Flow:
		return "Flow"
	case ReadModifyWrite:
		return "RMW"
	case System:
		return "System"
	}
	return "unknown effect"
}
