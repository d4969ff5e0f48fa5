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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectInequality() functions compare comparable
// values of the same type. ExpectSuccess() and ExpectFailure() accept bool and
// error values:
//
//	test.ExpectSuccess(t, err)
//	test.ExpectEquality(t, cpu.Regs.Read(1), uint64(0))
//
// The Demand*() functions are the same as their Expect*() counterparts except
// that a failure stops the test immediately.
//
// Each function accepts an optional list of tags which are printed as a prefix
// to the failure message. This is useful for identifying which entry of a
// table-driven test has failed.
//
// The Writer type implements io.Writer and can be used to compare output
// against an expected string.
package test
