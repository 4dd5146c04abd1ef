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

// Package frame defines the unit of replay data. A Frame is the controller
// state that persists for a number of engine ticks: a direction, a set of named
// buttons and optional analog values.
//
// Directions use numpad notation. Looking at a numeric keypad, 5 is the centre
// (neutral) and the other digits point in the direction of their position
// relative to 5:
//
//	7 8 9
//	4 5 6
//	1 2 3
//
// Button names are opaque. The frame package attaches no meaning to them other
// than their left/right symmetry, which is needed for horizontal inversion.
//
// Frames are values. Functions that transform a frame return a new frame and
// never modify the button map of the original.
package frame
