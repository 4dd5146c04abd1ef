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
	"sync/atomic"
	"time"

	"github.com/jetsetilly/padreplay/curated"
	"github.com/jetsetilly/padreplay/device"
	"github.com/jetsetilly/padreplay/frame"
	"github.com/jetsetilly/padreplay/limiter"
	"github.com/jetsetilly/padreplay/logger"
	"github.com/jetsetilly/padreplay/timeline"
)

// Sentinal errors.
const (
	NoSequenceLoaded    = "engine: no sequence loaded"
	DeviceNotConnected  = "engine: device not connected"
	DeviceError         = "engine: device error: %v"
	ConfigurationLocked = "engine: configuration locked while running"
	SequenceLocked      = "engine: sequence locked while running"
	InvalidTickRate     = "engine: invalid tick rate (%d)"
	InvalidTransition   = "engine: cannot %s while %s"
	LeaseUnavailable    = "engine: sink lease unavailable: %v"
	Closed              = "engine: closed"
)

// DefaultTickRate is the tick rate of a new engine.
const DefaultTickRate = 60

// Sink is the virtual controller written to by the engine.
type Sink interface {
	Connected() bool

	// Claim is called by the engine's service goroutine once the lease has
	// been acquired and before the first call to Apply()
	Claim()

	Apply(device.Snapshot) error
}

// Lessor grants exclusive use of the Sink.
type Lessor interface {
	// Acquire blocks until no other writer is using the Sink. the lease is
	// not granted if an error is returned
	Acquire() error

	// Release hands the Sink back
	Release() error
}

type command struct {
	apply func() error
	resp  chan<- error
}

// Engine is the playback engine.
type Engine struct {
	sink   Sink
	lessor Lessor
	pacers PacerFactory

	commands chan command
	notices  chan Notice
	quit     chan struct{}
	done     chan struct{}

	// the most recent Progress value
	progress atomic.Value

	// the error that caused the most recent unrequested return to Idle
	lastErr atomic.Value // errorBox

	// the following fields are only accessed by the service goroutine

	tl      *timeline.Timeline
	stepMap []int
	cursor  *timeline.Cursor

	state State

	// position of the next tick to be emitted. equal to the total length of
	// the timeline when Finished
	pos int

	loop bool

	// requested invert flag and the value captured at the start of the run
	invert    bool
	runInvert bool

	// requested tick rate and the value captured at the start of the run
	tickRate int
	runRate  int

	pacer Pacer

	// whether the engine holds the lease and whether anything has been
	// written since the lease was acquired
	leased  bool
	emitted bool

	// the mirrored version of the frame at mirroredIdx
	mirrored    frame.Frame
	mirroredIdx int
}

type errorBox struct {
	err error
}

// NewEngine is the preferred method of initialisation for the Engine type.
// The lessor can be nil if the sink is not shared. A nil pacer factory will
// default to LimiterPacers.
func NewEngine(sink Sink, lessor Lessor, pacers PacerFactory) *Engine {
	if pacers == nil {
		pacers = LimiterPacers
	}

	eng := &Engine{
		sink:        sink,
		lessor:      lessor,
		pacers:      pacers,
		commands:    make(chan command),
		notices:     make(chan Notice, noticeQueueLen),
		quit:        make(chan struct{}),
		done:        make(chan struct{}),
		tickRate:    DefaultTickRate,
		mirroredIdx: -1,
	}
	eng.lastErr.Store(errorBox{})
	eng.publish()

	go eng.service()

	return eng
}

func (eng *Engine) service() {
	defer close(eng.done)

	for {
		// a nil channel is never ready so the pulse case is disabled when
		// there is no pacer
		var pulse <-chan time.Time
		if eng.pacer != nil {
			pulse = eng.pacer.C()
		}

		select {
		case <-eng.quit:
			eng.halt(true)
			eng.state = Idle
			eng.publish()
			return

		case cmd := <-eng.commands:
			cmd.resp <- cmd.apply()
			eng.publish()

		case <-pulse:
			eng.tick()
			eng.publish()
		}
	}
}

// do sends the function to the service goroutine and waits for the result.
func (eng *Engine) do(f func() error) error {
	resp := make(chan error, 1)
	select {
	case eng.commands <- command{apply: f, resp: resp}:
	case <-eng.done:
		return curated.Errorf(Closed)
	}
	return <-resp
}

// Close stops playback and ends the service goroutine. The sink is left in a
// neutral state if the engine was writing to it.
func (eng *Engine) Close() {
	select {
	case <-eng.quit:
	default:
		close(eng.quit)
	}
	<-eng.done
}

// Sync returns once every previously issued command has been applied and any
// tick that was in progress has completed.
func (eng *Engine) Sync() error {
	return eng.do(func() error { return nil })
}

// LastError returns the error that caused the most recent unrequested return
// to the Idle state. Returns nil if there has been no such error or if it has
// been cleared by a successful Start().
func (eng *Engine) LastError() error {
	return eng.lastErr.Load().(errorBox).err
}

// acquire the lease on the sink and start the pacer.
func (eng *Engine) acquire(hz int) error {
	p, err := eng.pacers(hz)
	if err != nil {
		return curated.Errorf(InvalidTickRate, hz)
	}

	if !eng.leased {
		if eng.lessor != nil {
			if err := eng.lessor.Acquire(); err != nil {
				p.Stop()
				return curated.Errorf(LeaseUnavailable, err)
			}
		}
		eng.sink.Claim()
		eng.leased = true
		eng.emitted = false
	}

	eng.pacer = p

	return nil
}

// halt stops the pacer and hands the sink back to the lessor. if neutral is
// true and anything has been written since the lease was acquired then a
// neutral state is written first.
func (eng *Engine) halt(neutral bool) {
	if eng.pacer != nil {
		eng.pacer.Stop()
		eng.pacer = nil
	}

	if !eng.leased {
		return
	}

	if neutral && eng.emitted {
		if err := eng.sink.Apply(device.Neutral()); err != nil {
			eng.post(NoticeDeviceError, curated.Errorf(DeviceError, err))
		}
	}

	eng.leased = false
	eng.emitted = false
	if eng.lessor != nil {
		if err := eng.lessor.Release(); err != nil {
			logger.Logf(logger.Allow, "engine", "release: %v", err)
		}
	}
}

// reset position to the start of the timeline.
func (eng *Engine) rewind() {
	eng.pos = 0
	if eng.tl != nil {
		eng.cursor = eng.tl.NewCursor()
	} else {
		eng.cursor = nil
	}
}

// load replaces the timeline. any run is stopped.
func (eng *Engine) load(tl *timeline.Timeline, stepMap []int) {
	eng.halt(true)
	eng.state = Idle
	eng.tl = tl
	eng.stepMap = stepMap
	eng.mirroredIdx = -1
	eng.rewind()
}

// ensure limiter.Pacer and limiter.Manual satisfy the Pacer interface
var _ Pacer = (*limiter.Pacer)(nil)
var _ Pacer = (*limiter.Manual)(nil)
