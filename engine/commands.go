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
	"github.com/jetsetilly/padreplay/chain"
	"github.com/jetsetilly/padreplay/curated"
	"github.com/jetsetilly/padreplay/limiter"
	"github.com/jetsetilly/padreplay/timeline"
)

// Load replaces the current timeline. Any playback is stopped and the engine
// is Idle at tick zero. The engine keeps a copy of the timeline so later
// changes made by the caller have no effect. Use Edit() to make changes.
func (eng *Engine) Load(tl *timeline.Timeline) error {
	if tl == nil || tl.Len() == 0 {
		return curated.Errorf(NoSequenceLoaded)
	}
	tl = tl.Clone()
	return eng.do(func() error {
		eng.load(tl, nil)
		return nil
	})
}

// LoadChain is like Load() but also associates the chain's step map with the
// timeline so that Progress() can report the active segment.
func (eng *Engine) LoadChain(chn *chain.Chain) error {
	if chn == nil || chn.Timeline == nil {
		return curated.Errorf(NoSequenceLoaded)
	}
	tl := chn.Timeline.Clone()
	stepMap := make([]int, len(chn.StepMap))
	copy(stepMap, chn.StepMap)
	return eng.do(func() error {
		eng.load(tl, stepMap)
		return nil
	})
}

// Start playback from the first tick of the timeline. The tick rate and
// invert flag are captured for the duration of the run.
//
// Start is permitted when Idle or Finished.
func (eng *Engine) Start() error {
	return eng.do(func() error {
		if eng.state.Active() {
			return curated.Errorf(InvalidTransition, "start", eng.state)
		}
		if eng.tl == nil {
			return curated.Errorf(NoSequenceLoaded)
		}
		if !eng.sink.Connected() {
			return curated.Errorf(DeviceNotConnected)
		}

		if err := eng.acquire(eng.tickRate); err != nil {
			return err
		}

		eng.runRate = eng.tickRate
		eng.runInvert = eng.invert
		eng.mirroredIdx = -1
		eng.rewind()
		eng.state = Running
		eng.lastErr.Store(errorBox{})
		eng.post(NoticeStarted, nil)

		return nil
	})
}

// Stop playback. The position is reset to zero and the association with a
// chain's step map is removed. Stop is permitted when Running, Paused or
// Finished and does nothing when Idle.
func (eng *Engine) Stop() error {
	return eng.do(func() error {
		if eng.state == Idle {
			return nil
		}
		eng.halt(true)
		eng.state = Idle
		eng.stepMap = nil
		eng.rewind()
		eng.post(NoticeStopped, nil)
		return nil
	})
}

// Pause playback. The position is retained and the sink is handed back to
// the lessor in a neutral state.
func (eng *Engine) Pause() error {
	return eng.do(func() error {
		if eng.state != Running {
			return curated.Errorf(InvalidTransition, "pause", eng.state)
		}
		eng.halt(true)
		eng.state = Paused
		eng.post(NoticePaused, nil)
		return nil
	})
}

// Resume paused playback at the current position. The tick rate and invert
// flag captured by Start() remain in effect.
func (eng *Engine) Resume() error {
	return eng.do(func() error {
		if eng.state != Paused {
			return curated.Errorf(InvalidTransition, "resume", eng.state)
		}
		if !eng.sink.Connected() {
			return curated.Errorf(DeviceNotConnected)
		}
		if err := eng.acquire(eng.runRate); err != nil {
			return err
		}
		eng.state = Running
		eng.post(NoticeResumed, nil)
		return nil
	})
}

// Seek moves the position to tick. The value is clamped to the length of the
// timeline. The frame at the new position is used by the next tick.
//
// Seek is permitted in any state other than Idle and does not change the
// state.
func (eng *Engine) Seek(tick int) error {
	return eng.do(func() error {
		if eng.state == Idle {
			return curated.Errorf(InvalidTransition, "seek", eng.state)
		}
		eng.cursor.Seek(tick)
		eng.pos = eng.cursor.Tick()
		return nil
	})
}

// SetLoop sets whether playback wraps to the start of the timeline. Takes
// effect immediately.
func (eng *Engine) SetLoop(loop bool) error {
	return eng.do(func() error {
		eng.loop = loop
		return nil
	})
}

// SetInvert sets whether playback is mirrored horizontally. Takes effect at
// the next Start().
func (eng *Engine) SetInvert(invert bool) error {
	return eng.do(func() error {
		eng.invert = invert
		return nil
	})
}

// SetTickRate sets the number of ticks per second. Takes effect at the next
// Start(). Not permitted while Running.
func (eng *Engine) SetTickRate(hz int) error {
	if hz < 1 || hz > limiter.MaxRate {
		return curated.Errorf(InvalidTickRate, hz)
	}
	return eng.do(func() error {
		if eng.state == Running {
			return curated.Errorf(ConfigurationLocked)
		}
		eng.tickRate = hz
		return nil
	})
}

// Edit applies the function to the loaded timeline. The function is given a
// copy of the timeline and the copy replaces the loaded timeline only if the
// function returns no error. Not permitted while Running.
//
// The position is adjusted to fit the edited timeline and any association
// with a chain's step map is removed.
func (eng *Engine) Edit(f func(tl *timeline.Timeline) error) error {
	return eng.do(func() error {
		if eng.state == Running {
			return curated.Errorf(SequenceLocked)
		}
		if eng.tl == nil {
			return curated.Errorf(NoSequenceLoaded)
		}

		c := eng.tl.Clone()
		if err := f(c); err != nil {
			return err
		}

		eng.tl = c
		eng.stepMap = nil
		eng.mirroredIdx = -1

		pos := eng.pos
		eng.cursor = eng.tl.NewCursor()
		switch eng.state {
		case Paused:
			eng.cursor.Seek(pos)
			eng.pos = eng.cursor.Tick()
		case Finished:
			eng.cursor.Seek(eng.tl.TotalTicks())
			eng.pos = eng.tl.TotalTicks()
		default:
			eng.pos = 0
		}

		return nil
	})
}

// Timeline returns a copy of the loaded timeline. Returns nil if nothing is
// loaded.
func (eng *Engine) Timeline() *timeline.Timeline {
	var c *timeline.Timeline
	_ = eng.do(func() error {
		if eng.tl != nil {
			c = eng.tl.Clone()
		}
		return nil
	})
	return c
}
