// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package cpu implements the machine state and the execution engine.
//
// The CPU executes one decoded operation per call to Execute(). The program
// counter is only advanced when an operation completes. The draw and key-wait
// operations can instead return a Result with the execution.NotReady status,
// in which case the program counter is left pointing at the operation and the
// caller is expected to try again on a later cycle.
//
// Whether an operation is available in the current compatibility mode, and
// which quirks apply, is decided by the compat package. A request to execute
// an operation that is not available returns an error with the
// UnsupportedInMode pattern. Addressing outside of memory, including popping
// an empty call stack, returns an error with the OutOfRange pattern.
//
// Timers are not decremented by the CPU. The driver should call
// State.DecrementTimers() at a fixed rate.
package cpu
