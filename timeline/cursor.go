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

package timeline

import "github.com/jetsetilly/padreplay/frame"

// Cursor tracks a tick position in a timeline and the frame active at that
// position. The timeline must not be edited while a cursor is in use.
type Cursor struct {
	tl *Timeline

	// current tick and the index of the frame containing it
	tick int
	idx  int

	// the tick at which the next frame begins
	next int
}

// NewCursor returns a cursor positioned at tick zero.
func (tl *Timeline) NewCursor() *Cursor {
	c := &Cursor{tl: tl}
	c.Seek(0)
	return c
}

// Seek moves the cursor to tick, clamped to the range of the timeline.
func (c *Cursor) Seek(tick int) {
	if tick < 0 {
		tick = 0
	} else if tick >= c.tl.total {
		tick = c.tl.total - 1
	}
	c.tick = tick
	c.idx = c.tl.Locate(tick)
	c.next = c.tl.starts[c.idx] + c.tl.frames[c.idx].Duration
}

// Advance the cursor by one tick. Returns false if the cursor was on the last
// tick of the timeline, in which case the position is unchanged.
func (c *Cursor) Advance() bool {
	if c.tick+1 >= c.tl.total {
		return false
	}
	c.tick++
	if c.tick >= c.next {
		c.idx++
		c.next += c.tl.frames[c.idx].Duration
	}
	return true
}

// Tick returns the current tick.
func (c *Cursor) Tick() int {
	return c.tick
}

// Index returns the index of the active frame.
func (c *Cursor) Index() int {
	return c.idx
}

// Frame returns the active frame. The Buttons map is shared with the timeline
// and must not be modified.
func (c *Cursor) Frame() frame.Frame {
	return c.tl.frames[c.idx]
}
