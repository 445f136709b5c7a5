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

// Package monitor implements an interactive machine monitor for the LS-8. The
// monitor reads commands from an io.Reader and writes the results to an
// io.Writer. Commands are case insensitive. Numbers can be given in decimal or,
// with the 0x prefix, in hexadecimal.
//
// The monitor keeps a disassembly of the attached program and a profile of
// executed instructions. Both are updated by the instruction hook of the
// LS8, which the monitor takes ownership of.
//
// Breakpoints halt a RUN command when the program counter reaches the
// address of the breakpoint. A RUN command can also be interrupted by calling
// Stop() on the LS8 from another goroutine.
package monitor
