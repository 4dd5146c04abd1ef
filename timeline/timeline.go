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

import (
	"math"
	"sort"
	"strings"

	"github.com/jetsetilly/padreplay/curated"
	"github.com/jetsetilly/padreplay/frame"
)

// Sentinal errors.
const (
	EmptyTimeline   = "timeline: empty"
	IndexOutOfRange = "timeline: index out of range (%d)"
	LastFrame       = "timeline: cannot remove last frame"
	InvalidFrame    = "timeline: invalid frame at index %d: %v"
	TotalOverflow   = "timeline: total length overflow"
)

// Timeline is an ordered sequence of frames.
type Timeline struct {
	frames []frame.Frame

	// the tick at which each frame begins. starts[0] is always zero
	starts []int

	// sum of all frame durations
	total int
}

// New is the preferred method of initialisation for the Timeline type. The
// frames are copied and validated.
func New(frames []frame.Frame) (*Timeline, error) {
	if len(frames) == 0 {
		return nil, curated.Errorf(EmptyTimeline)
	}

	tl := &Timeline{
		frames: make([]frame.Frame, 0, len(frames)),
	}

	for i, f := range frames {
		if err := f.Validate(); err != nil {
			return nil, curated.Errorf(InvalidFrame, i, err)
		}
		if err := tl.fits(0, f.Duration); err != nil {
			return nil, err
		}
		tl.frames = append(tl.frames, f.Normalise())
		tl.total += f.Duration
	}

	tl.rebuild()

	return tl, nil
}

// fits returns an error if the total length of the timeline would overflow
// after removing less ticks and adding more ticks.
func (tl *Timeline) fits(less int, more int) error {
	if tl.total-less > math.MaxInt-more {
		return curated.Errorf(TotalOverflow)
	}
	return nil
}

// rebuild the starts table and total. must be called after every change to
// the frames slice.
func (tl *Timeline) rebuild() {
	tl.starts = tl.starts[:0]
	tl.total = 0
	for _, f := range tl.frames {
		tl.starts = append(tl.starts, tl.total)
		tl.total += f.Duration
	}
}

// Len returns the number of frames in the timeline.
func (tl *Timeline) Len() int {
	return len(tl.frames)
}

// TotalTicks returns the sum of every frame duration.
func (tl *Timeline) TotalTicks() int {
	return tl.total
}

// Frame returns a copy of the frame at index.
func (tl *Timeline) Frame(idx int) (frame.Frame, error) {
	if idx < 0 || idx >= len(tl.frames) {
		return frame.Frame{}, curated.Errorf(IndexOutOfRange, idx)
	}
	return tl.frames[idx].Clone(), nil
}

// Frames returns a copy of every frame in the timeline.
func (tl *Timeline) Frames() []frame.Frame {
	c := make([]frame.Frame, len(tl.frames))
	for i := range tl.frames {
		c[i] = tl.frames[i].Clone()
	}
	return c
}

// Start returns the tick at which the frame at index begins. Returns -1 if
// the index is out of range.
func (tl *Timeline) Start(idx int) int {
	if idx < 0 || idx >= len(tl.starts) {
		return -1
	}
	return tl.starts[idx]
}

// Locate returns the index of the frame whose interval contains the tick.
// Returns -1 if the tick is outside the timeline.
func (tl *Timeline) Locate(tick int) int {
	if tick < 0 || tick >= tl.total {
		return -1
	}
	return sort.Search(len(tl.starts), func(i int) bool {
		return tl.starts[i] > tick
	}) - 1
}

// ButtonNames returns the sorted list of every button name referenced by any
// frame in the timeline.
func (tl *Timeline) ButtonNames() []string {
	m := make(map[string]bool)
	for _, f := range tl.frames {
		for k := range f.Buttons {
			m[k] = true
		}
	}
	n := make([]string, 0, len(m))
	for k := range m {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

// Clone returns a deep copy of the timeline.
func (tl *Timeline) Clone() *Timeline {
	c := &Timeline{
		frames: tl.Frames(),
	}
	c.rebuild()
	return c
}

func (tl *Timeline) String() string {
	s := strings.Builder{}
	for i, f := range tl.frames {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(f.String())
	}
	return s.String()
}
