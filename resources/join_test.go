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

//go:build !release

package resources_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ItsIronicIInsist/riscvEmu/resources"
	"github.com/ItsIronicIInsist/riscvEmu/test"
)

func TestJoinPath(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))

	p, err := resources.JoinPath("sub", "preferences")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, filepath.Join(".riscvemu", "sub", "preferences"))

	// the directory is created but the file is not
	info, err := os.Stat(filepath.Join(".riscvemu", "sub"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())
	_, err = os.Stat(p)
	test.ExpectFailure(t, err)

	// base path is not prepended twice
	q, err := resources.JoinPath(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, q, p)
}
