// This file is part of ls8.
//
// ls8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ls8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ls8.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface but unlike errors created with
// fmt.Errorf() the formatting is deferred until Error() is called. The pattern
// used to create the error is retained and can be tested for with the Is()
// function.
//
// This means that a package can export the patterns of the errors it returns
// and callers can test for them without string matching:
//
//	const StackOverflow = "cpu: stack overflow (SP=%#02x)"
//
//	...
//
//	if curated.Is(err, cpu.StackOverflow) {
//		...
//	}
//
// Curated errors can be nested by using another curated error as a value. The
// Has() function will search the chain of values for a matching pattern.
//
// When a curated error is nested inside another curated error with the same
// leading part, the Error() function will de-duplicate the message. For
// example, "cpu: cpu: stack overflow" becomes "cpu: stack overflow".
package curated
