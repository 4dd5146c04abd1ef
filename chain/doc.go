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

// Package chain concatenates timelines into a single flat timeline, recording
// the tick at which each included segment begins.
//
// The flattened timeline is the only thing handed to the playback engine. The
// step map is kept by the caller and ResolveActiveSegment() translates a
// playback position back to a segment for display purposes. The playback
// position is never derived from the step map.
package chain
