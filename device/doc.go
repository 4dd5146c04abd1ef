// This file is part of padreplay.
//
// padreplay is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// padreplay is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with padreplay.  If not, see <https://www.gnu.org/licenses/>.

// Package device is the virtual game controller that replayed and manual
// input is written to.
//
// A Device translates a Snapshot (named buttons, direction and analog values)
// into an XInput style Report using a Mapping, and hands the Report to a
// Driver. The Driver is the backend that makes the controller visible to the
// operating system. The capture package provides a Driver that records every
// report, which is used for testing and for dry runs, and EchoDriver writes
// reports to an io.Writer.
//
// A Device has exactly one writer at a time. The writer calls Claim() before
// it starts writing and Apply() will fail with an OwnershipViolation error if
// it is called from any other goroutine.
package device
