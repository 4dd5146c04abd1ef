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


// Package modalflag wraps the flag package of the standard library to handle
// program modes. A mode is a keyword on the command line that selects a mode
// of operation, each mode having its own set of flags and arguments.
//
// Arguments are given with NewArgs() and parsed in layers. Each layer begins
// with NewMode(), declares its flags and sub-modes, and is parsed with
// Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubMode("DEMO", "play the built-in sequences")
//	md.AddSubMode("REMOTE", "websocket control")
//	if r, err := md.Parse(); r != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "REMOTE":
//		md.NewMode()
//		addr := md.AddString("addr", "localhost:12601", "listen address")
//		...
//	}
//
// The first sub-mode added is the default. It is selected when the next
// argument is not a sub-mode keyword. Sub-mode comparisons are case
// insensitive and Mode() always returns the upper case keyword.
package modalflag
