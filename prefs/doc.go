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

// Package prefs facilitates the storing and loading of preferences to and
// from disk.
//
// The package supports the Bool, String, Int and Uint64 types. Preference
// values are added to a Disk instance under a key, and the Load() and Save()
// functions transfer all of the values at once.
//
//	dsk, err := prefs.NewDisk(path)
//	var trace prefs.Bool
//	dsk.Add("hardware.trace", &trace)
//	err = dsk.Load()
//
// The file on disk has a line for each key:
//
//	hardware.trace :: true
//
// Values can be set from the command line with PushCommandLineStack(). Values
// on the stack are used in preference to values on disk when Load() is
// called. Each value on the stack is used only once.
//
// Callbacks can be attached to a preference with SetHookPre() and
// SetHookPost(). The pre hook can prevent a value from being set by returning
// an error.
package prefs
