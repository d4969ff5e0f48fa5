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

// Package preferences collates the preference values that affect the
// emulated hardware. The values are stored on disk in the global preferences
// file and can be overridden on the command line with the prefs package.
//
// Preferences created with NewDefaults() are not connected to a file. They
// are useful for testing and for emulations that should not be affected by
// the user's saved preferences.
package preferences
