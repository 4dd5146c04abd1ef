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

package engine

import (
	"fmt"

	"github.com/jetsetilly/padreplay/chain"
)

// Progress is a snapshot of the engine's position.
type Progress struct {
	State State

	// the tick that will be emitted next. equal to Total when Finished
	Current int
	Total   int

	// index of the frame at Current. -1 if no timeline is loaded
	Frame int

	// index of the chain segment at Current. -1 if the timeline was not
	// loaded with LoadChain() or if the association has been removed
	Segment int

	Loop   bool
	Invert bool

	// the tick rate of the current run, or the tick rate of the next run if
	// not Running or Paused
	TickRate int

	// measured tick rate. zero if not available
	Measured float32
}

func (p Progress) String() string {
	return fmt.Sprintf("%s %d/%d", p.State, p.Current, p.Total)
}

// publish a new Progress value. must only be called from the service
// goroutine.
func (eng *Engine) publish() {
	p := Progress{
		State:    eng.state,
		Current:  eng.pos,
		Frame:    -1,
		Segment:  -1,
		Loop:     eng.loop,
		Invert:   eng.invert,
		TickRate: eng.tickRate,
	}

	if eng.state.Active() {
		p.Invert = eng.runInvert
		p.TickRate = eng.runRate
	}

	if eng.tl != nil {
		p.Total = eng.tl.TotalTicks()

		// the Finished position is one beyond the last tick. the last frame
		// and segment remain active for display purposes
		t := eng.pos
		if t >= p.Total {
			t = p.Total - 1
		}
		p.Frame = eng.tl.Locate(t)

		if len(eng.stepMap) > 0 {
			p.Segment = chain.ResolveActiveSegment(t, eng.stepMap)
		}
	}

	if m, ok := eng.pacer.(measurer); ok {
		p.Measured = m.Measured()
	}

	eng.progress.Store(p)
}

// Progress returns the most recent snapshot of the engine's position. Safe to
// call from any goroutine.
func (eng *Engine) Progress() Progress {
	return eng.progress.Load().(Progress)
}

// ActiveFrameIndex returns the index of the frame at the current position.
// Returns -1 if no timeline is loaded.
func (eng *Engine) ActiveFrameIndex() int {
	return eng.Progress().Frame
}
