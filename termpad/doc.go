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


// Package termpad uses the keyboard, through a terminal in raw mode, as a
// source of manual input.
//
// A terminal does not report key releases so input latches. The numpad
// digits set the direction, with 5 returning the direction to neutral. The
// button keys toggle the corresponding button:
//
//	u i o    button1 button2 button3
//	j k l    button4 button5 button6
//
// The space bar releases everything and q or ctrl-c ends input.
package termpad
