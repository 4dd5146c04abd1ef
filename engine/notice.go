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
)

// NoticeKind indicates the type of event described by a Notice.
type NoticeKind int

// List of valid NoticeKind values.
const (
	NoticeStarted NoticeKind = iota
	NoticePaused
	NoticeResumed
	NoticeStopped
	NoticeFinished
	NoticeLooped
	NoticeDeviceError
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeStarted:
		return "started"
	case NoticePaused:
		return "paused"
	case NoticeResumed:
		return "resumed"
	case NoticeStopped:
		return "stopped"
	case NoticeFinished:
		return "finished"
	case NoticeLooped:
		return "looped"
	case NoticeDeviceError:
		return "device error"
	}
	return "unknown notice"
}

// Notice is an event posted by the engine.
type Notice struct {
	Kind NoticeKind

	// the tick position at the time of the event
	Tick int

	// only used by NoticeDeviceError
	Err error
}

func (n Notice) String() string {
	if n.Err != nil {
		return fmt.Sprintf("%s at tick %d: %v", n.Kind, n.Tick, n.Err)
	}
	return fmt.Sprintf("%s at tick %d", n.Kind, n.Tick)
}

// the number of notices that can be waiting on the channel. notices are
// dropped if the channel is full
const noticeQueueLen = 64

// post a notice without blocking.
func (eng *Engine) post(kind NoticeKind, err error) {
	select {
	case eng.notices <- Notice{Kind: kind, Tick: eng.pos, Err: err}:
	default:
	}
}

// Notices returns the channel on which the engine posts events.
func (eng *Engine) Notices() <-chan Notice {
	return eng.notices
}
