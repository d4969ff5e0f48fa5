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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes (and sub-modes) and allows different
// flags for each mode.
//
// Arguments are given to NewArgs() and then parsed, one mode level at a
// time, with Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.NewMode()
//	md.AddSubModes("RUN", "DISASM", "STEP")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		...
//	}
//
// The first sub-mode in the list is the default mode. The default is used when
// the first argument is not one of the sub-modes. All sub-mode comparisons
// are case insensitive.
//
// Flags for the selected mode are added after a call to NewMode(), followed by
// another call to Parse():
//
//	md.NewMode()
//	maxSteps := md.AddInt("maxsteps", 0, "maximum number of instructions")
//	p, err = md.Parse()
//
// Arguments that remain after the flags are available with RemainingArgs()
// and GetArg(). The series of modes selected so far is returned by Path().
//
// Help is printed to the Output writer when the -help flag is given. The help
// lists the flags for the current mode and the available sub-modes. Extra
// text can be added with AdditionalHelp().
package modalflag
