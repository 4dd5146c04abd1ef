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


// Package demo contains a library of hand-authored replay sequences. They
// are used by the DEMO mode of the padreplay command and as fixtures for
// the remote control surface.
//
// Sequences are written in a compact notation, one step per whitespace
// separated token:
//
//	<duration>x<direction>[+button...]
//
// The direction is the numpad digit, where 5 is neutral. For example, the
// token "3x6+button1" holds forward with button1 pressed for three ticks.
package demo
