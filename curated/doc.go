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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern and
// placeholder values and returns an error.
//
// The Is() function checks whether an error was created with a specific
// pattern. Packages in riscvemu declare their patterns as constants so that
// callers can test for them:
//
//	const OutOfBounds = "memory: address %#x (width %d) is out of bounds"
//
//	err := curated.Errorf(OutOfBounds, addr, width)
//	if curated.Is(err, memory.OutOfBounds) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf(memory.OutOfBounds, addr, width)
//	f := curated.Errorf("cpu: load: %v", e)
//
//	if curated.Has(f, memory.OutOfBounds) {
//		...
//	}
//
// The IsAny() function checks whether an error is a curated error at all.
// Errors from outside riscvemu (from the standard library for example) are
// not curated and will return false.
//
// When the Error() function is called adjacent duplicate parts of the message
// (parts being separated by ": ") are removed. So this:
//
//	e := curated.Errorf("cpu: %v", curated.Errorf("cpu: %v", "illegal"))
//
// produces the message "cpu: illegal" rather than "cpu: cpu: illegal".
package curated
