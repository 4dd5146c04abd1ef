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


// Package remote exposes the control surface over a websocket connection.
//
// Clients send commands as text messages, one command per message. A command
// is a keyword followed by whitespace separated arguments:
//
//	list                      names of the sequences in the library
//	load <name>               load a single sequence
//	compose <step...>         load a sequence written in demo step notation
//	chain <name...>           load a chain of sequences
//	start, stop, pause, resume
//	seek <tick>
//	loop on|off
//	invert on|off
//	rate <hz>
//	manual <direction> [button...]
//	test <button>
//	clear
//	connect, disconnect
//	progress
//
// Every command is answered with a Reply message sent only to the client that
// issued it. Progress messages are broadcast to all clients whenever the
// engine's progress changes.
package remote
