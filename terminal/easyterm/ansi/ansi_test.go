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

package ansi_test

import (
	"testing"

	"github.com/ItsIronicIInsist/riscvEmu/terminal/easyterm/ansi"
	"github.com/ItsIronicIInsist/riscvEmu/test"
)

func TestColorBuild(t *testing.T) {
	s, err := ansi.ColorBuild("red", "", "", true, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[91m")

	s, err = ansi.ColorBuild("red", "blue", "bold", false, true)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[31;104;1m")

	_, err = ansi.ColorBuild("purple", "", "", false, false)
	test.ExpectFailure(t, err)

	test.ExpectEquality(t, ansi.NormalPen, "\033[m")
	test.ExpectEquality(t, ansi.DimPens["green"], "\033[32m")
}
