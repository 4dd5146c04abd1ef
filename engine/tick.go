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
	"github.com/jetsetilly/padreplay/curated"
	"github.com/jetsetilly/padreplay/device"
	"github.com/jetsetilly/padreplay/frame"
)

// tick is called on every pulse of the pacer.
func (eng *Engine) tick() {
	if eng.state != Running {
		return
	}

	f := eng.cursor.Frame()
	if eng.runInvert {
		f = eng.mirror(f)
	}

	if err := eng.sink.Apply(device.FromFrame(f)); err != nil {
		eng.fail(err)
		return
	}
	eng.emitted = true

	if eng.cursor.Advance() {
		eng.pos = eng.cursor.Tick()
		return
	}

	// end of timeline
	if eng.loop {
		eng.cursor.Seek(0)
		eng.pos = 0
		eng.post(NoticeLooped, nil)
		return
	}

	eng.pos = eng.tl.TotalTicks()
	eng.state = Finished
	eng.halt(true)
	eng.post(NoticeFinished, nil)
}

// mirror returns the mirrored version of the active frame. the result is
// cached until the cursor moves to another frame.
func (eng *Engine) mirror(f frame.Frame) frame.Frame {
	idx := eng.cursor.Index()
	if idx != eng.mirroredIdx {
		eng.mirrored = f.Mirror()
		eng.mirroredIdx = idx
	}
	return eng.mirrored
}

// fail ends the run after a sink error. the sink is not written to again.
func (eng *Engine) fail(err error) {
	err = curated.Errorf(DeviceError, err)
	eng.lastErr.Store(errorBox{err: err})
	eng.halt(false)
	eng.state = Idle
	eng.post(NoticeDeviceError, err)
	eng.rewind()
}
