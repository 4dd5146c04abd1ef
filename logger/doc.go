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

// Package logger is the central log for the player. Entries are made up of a
// tag, identifying the area of the program making the entry, and a detail
// string. Consecutive identical entries are folded into one entry with a
// repeat count.
//
// The log is held in memory and is capped in length. The contents can be
// written to any io.Writer with Write() or Tail(). Entries can also be echoed
// as they are made with SetEcho().
//
// The playback engine never writes to the log from its tick loop. Events that
// need logging are passed out of the engine as notices and logged by whatever
// is draining the notice channel.
package logger
