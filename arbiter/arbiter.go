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

package arbiter

import (
	"sync/atomic"
	"time"

	"github.com/jetsetilly/padreplay/curated"
	"github.com/jetsetilly/padreplay/device"
	"github.com/jetsetilly/padreplay/frame"
	"github.com/jetsetilly/padreplay/logger"
)

// Sentinal errors.
const (
	DeviceNotConnected = "arbiter: device not connected"
	InvalidCadence     = "arbiter: invalid cadence (%v)"
	Closed             = "arbiter: closed"
)

// DefaultCadence is the interval between writes of manual input.
const DefaultCadence = 10 * time.Millisecond

// Sink is the virtual controller.
type Sink interface {
	Connected() bool
	Claim()
	Apply(device.Snapshot) error
}

// Arbiter decides who writes to the sink.
type Arbiter struct {
	sink Sink

	requests chan func()
	quit     chan struct{}
	done     chan struct{}

	// mirrors the leased field below. it is read by Send() so that input can
	// be dropped without a round trip to the service goroutine
	isLeased atomic.Bool

	// the following fields are only accessed by the service goroutine

	cadence time.Duration
	pulse   *time.Ticker

	leased bool

	// the two input slots. only one will be non-nil at any one time
	primary *device.Snapshot
	test    *device.Snapshot

	// whether a non-neutral state has been written to the sink since the
	// last neutral state
	dirty bool

	// whether the most recent write failed. used to prevent the log filling
	// with the same error
	failing bool
}

// NewArbiter is the preferred method of initialisation for the Arbiter type.
func NewArbiter(sink Sink, cadence time.Duration) (*Arbiter, error) {
	if cadence <= 0 {
		return nil, curated.Errorf(InvalidCadence, cadence)
	}

	arb := &Arbiter{
		sink:     sink,
		requests: make(chan func()),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
		cadence:  cadence,
	}

	ready := make(chan struct{})
	go arb.service(ready)
	<-ready

	return arb, nil
}

func (arb *Arbiter) service(ready chan struct{}) {
	defer close(arb.done)

	arb.sink.Claim()
	arb.pulse = time.NewTicker(arb.cadence)
	defer arb.pulse.Stop()

	close(ready)

	for {
		select {
		case <-arb.quit:
			return
		case f := <-arb.requests:
			f()
		case <-arb.pulse.C:
			arb.push()
		}
	}
}

// run the function in the service goroutine and wait for it to complete.
func (arb *Arbiter) run(f func()) error {
	ack := make(chan struct{})
	select {
	case arb.requests <- func() {
		f()
		close(ack)
	}:
	case <-arb.done:
		return curated.Errorf(Closed)
	}
	<-ack
	return nil
}

// push the active slot to the sink.
func (arb *Arbiter) push() {
	if arb.leased {
		return
	}

	s := arb.primary
	if s == nil {
		s = arb.test
	}
	if s == nil {
		return
	}

	arb.write(*s)
}

func (arb *Arbiter) write(s device.Snapshot) {
	if !arb.sink.Connected() {
		return
	}

	if err := arb.sink.Apply(s); err != nil {
		if !arb.failing {
			logger.Logf(logger.Allow, "arbiter", "%v", err)
		}
		arb.failing = true
		return
	}

	if arb.failing {
		logger.Log(logger.Allow, "arbiter", "device writes restored")
	}
	arb.failing = false
	arb.dirty = true
}

// neutralise writes a neutral state to the sink if necessary.
func (arb *Arbiter) neutralise() {
	if !arb.dirty || !arb.sink.Connected() {
		return
	}
	if err := arb.sink.Apply(device.Neutral()); err == nil {
		arb.dirty = false
	}
}

// set a slot and write it immediately. returns false if the sink is leased.
func (arb *Arbiter) set(primary, test *device.Snapshot) (bool, error) {
	if arb.isLeased.Load() {
		return false, nil
	}
	if !arb.sink.Connected() {
		return false, curated.Errorf(DeviceNotConnected)
	}

	var accepted bool
	err := arb.run(func() {
		if arb.leased {
			return
		}
		accepted = true
		arb.primary = primary
		arb.test = test
		arb.push()
	})

	return accepted, err
}

// Send sets the primary slot and clears the test slot. Returns false if the
// sink is leased, in which case the input is dropped.
func (arb *Arbiter) Send(direction frame.Direction, buttons map[string]bool) (bool, error) {
	if !direction.Valid() {
		return false, curated.Errorf(frame.InvalidDirection, direction)
	}

	s := device.Snapshot{
		Direction: direction,
		Buttons:   make(map[string]bool, len(buttons)),
	}
	for k, v := range buttons {
		s.Buttons[k] = v
	}

	return arb.set(&s, nil)
}

// SendTest sets the test slot to the named button and clears the primary
// slot. Returns false if the sink is leased, in which case the input is
// dropped.
func (arb *Arbiter) SendTest(button string) (bool, error) {
	s := device.Snapshot{
		Direction: frame.Neutral,
		Buttons:   map[string]bool{button: true},
	}
	return arb.set(nil, &s)
}

// Clear both slots. The sink is set to a neutral state if the arbiter has
// been writing to it.
func (arb *Arbiter) Clear() error {
	return arb.run(func() {
		arb.primary = nil
		arb.test = nil
		if !arb.leased {
			arb.neutralise()
		}
	})
}

// SetCadence changes the interval between writes.
func (arb *Arbiter) SetCadence(cadence time.Duration) error {
	if cadence <= 0 {
		return curated.Errorf(InvalidCadence, cadence)
	}
	return arb.run(func() {
		arb.cadence = cadence
		arb.pulse.Reset(cadence)
	})
}

// Leased returns true if the sink is currently leased.
func (arb *Arbiter) Leased() bool {
	return arb.isLeased.Load()
}

// Acquire the sink. Any manual input is cleared and the sink is left in a
// neutral state. Blocks until the arbiter has stopped writing.
//
// Returns the Closed error if the arbiter has been closed. The lease is not
// granted in that case.
func (arb *Arbiter) Acquire() error {
	return arb.run(func() {
		arb.primary = nil
		arb.test = nil
		arb.neutralise()
		arb.leased = true
		arb.isLeased.Store(true)
	})
}

// Release the sink. The arbiter resumes ownership of the sink. Returns the
// Closed error if the arbiter has been closed.
func (arb *Arbiter) Release() error {
	return arb.run(func() {
		arb.leased = false
		arb.isLeased.Store(false)
		arb.sink.Claim()

		// whoever held the lease is responsible for the state of the sink
		arb.dirty = false
	})
}

// Close ends the service goroutine. Any manual input is cleared and the sink
// is left in a neutral state.
func (arb *Arbiter) Close() {
	_ = arb.Clear()
	select {
	case <-arb.quit:
	default:
		close(arb.quit)
	}
	<-arb.done
}
