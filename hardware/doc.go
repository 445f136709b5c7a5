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

// Package hardware is the base package for the LS-8 emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The LS8 type is the root of the emulation and contains external references
// to all the LS-8 sub-systems. From here, the emulation can either be started
// to run continuously (with optional callback to check for continuation), run
// at a fixed clock rate, or it can be stepped instruction by instruction.
//
// The LS8 also emulates the timer of the original machine. Interrupt line 0
// is raised whenever the TimerInterval has elapsed. The keyboard interrupt
// (line 1) is raised by the keyboard package through the Interrupts field.
package hardware
