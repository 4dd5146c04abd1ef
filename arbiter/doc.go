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

// Package arbiter forwards manual input to the virtual controller when the
// playback engine is not using it.
//
// The Arbiter owns the sink until it is leased to the playback engine with
// Acquire(). While the lease is out, manual input is dropped. Calls to Send()
// report that the input was not accepted but this is not an error. When the
// lease is returned with Release() the Arbiter takes ownership of the sink
// again.
//
// Manual input is level triggered. The most recent input is written to the
// sink at a fixed cadence until it is changed, cleared or superseded by the
// engine acquiring the lease. Acquiring the lease clears any manual input.
//
// There are two input slots. The primary slot holds a direction and a set of
// buttons. The test slot holds a single button and is used when configuring
// the button mapping. Setting one slot clears the other.
package arbiter
