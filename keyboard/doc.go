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

// Package keyboard connects the host keyboard to the keyboard interrupt of the
// LS-8. Every key pressed raises interrupt line 1 and latches the key so that
// the CPU can write it to the key pressed address.
//
// The terminal is put into cbreak mode while the keyboard is attached so that
// keys are delivered as soon as they are pressed. Keys can also be pumped from
// any io.Reader with the Pump() function, which is useful when stdin is not a
// terminal.
package keyboard
