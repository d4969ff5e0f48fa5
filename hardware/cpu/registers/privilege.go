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

// Privilege is the privilege level of the hart.
type Privilege uint8

// List of valid Privilege values. There is no privilege level two.
const (
	User       Privilege = 0
	Supervisor Privilege = 1
	Machine    Privilege = 3
)

func (p Privilege) String() string {
	switch p {
	case User:
		return "user"
	case Supervisor:
		return "supervisor"
	case Machine:
		return "machine"
	}
	return "reserved"
}

// Valid returns false for the reserved privilege level.
func (p Privilege) Valid() bool {
	return p == User || p == Supervisor || p == Machine
}
