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

// Package engine plays a timeline through a virtual controller at a fixed
// tick rate.
//
// The Engine runs a single service goroutine. Every control function
// (Start(), Stop(), Seek(), etc.) is sent to that goroutine as a command and
// blocks until the command has been applied. Commands are applied in the
// order they are received and only ever between ticks.
//
// On each tick of a running sequence the engine resolves the active frame,
// mirrors it if inversion was requested at the time of the Start(), writes
// the result to the Sink and advances the position by one tick. When the
// end of the timeline is reached the position wraps to zero if looping is
// enabled, otherwise the engine enters the Finished state.
//
// The Sink is shared with the manual input arbiter. The engine leases the
// sink from the Lessor for the duration of a run and hands it back when the
// run is paused, stopped or finished. The sink is always left in a neutral
// state when it is handed back.
//
// Progress() can be called from any goroutine at any time. It never blocks and
// never returns a partially updated value.
//
// The service goroutine never logs. Events are posted to the Notices()
// channel for the caller to deal with.
package engine
