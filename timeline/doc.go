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

// Package timeline implements an ordered sequence of frames with the
// cumulative-duration lookup needed for playback.
//
// A Timeline owns its frames. Frames are copied when they are added and when
// they are retrieved with Frame() or Frames(). The edit functions (Insert(),
// Append(), Remove(), Replace(), Move() and SetDuration()) are the only way of
// changing a timeline and each of them maintains the invariants: there is
// always at least one frame and every frame is valid.
//
// Playback uses a Cursor to resolve the active frame for a tick. Advancing the
// cursor by one tick is O(1) and seeking is O(log n).
package timeline
