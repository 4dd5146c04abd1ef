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

package limiter

import (
	"sync"
	"time"
)

// Manual is a pacer that only pulses when Pulse() is called. It is used to
// step the playback engine one tick at a time.
type Manual struct {
	hz  int
	now time.Time

	c        chan time.Time
	quit     chan struct{}
	stopOnce sync.Once
}

// NewManual is the preferred method of initialisation for the Manual type.
func NewManual(hz int) *Manual {
	return &Manual{
		hz:   hz,
		c:    make(chan time.Time),
		quit: make(chan struct{}),
	}
}

// C returns the pulse channel.
func (m *Manual) C() <-chan time.Time {
	return m.c
}

// Stop the pacer. Safe to call more than once.
func (m *Manual) Stop() {
	m.stopOnce.Do(func() {
		close(m.quit)
	})
}

// Rate returns the nominal pulse rate.
func (m *Manual) Rate() int {
	return m.hz
}

// Pulse blocks until the receiver has taken the pulse. Returns false if the
// pacer has been stopped.
func (m *Manual) Pulse() bool {
	select {
	case <-m.quit:
		return false
	default:
	}

	m.now = m.now.Add(time.Second / time.Duration(m.hz))

	select {
	case m.c <- m.now:
		return true
	case <-m.quit:
		return false
	}
}

// ManualFactory creates Manual pacers and keeps a reference to the most
// recent one.
type ManualFactory struct {
	crit    sync.Mutex
	current *Manual
	created int
}

// New creates a new Manual pacer. The signature is suitable for use as the
// playback engine's pacer factory.
func (f *ManualFactory) New(hz int) (*Manual, error) {
	f.crit.Lock()
	defer f.crit.Unlock()
	f.current = NewManual(hz)
	f.created++
	return f.current, nil
}

// Current returns the most recently created pacer. Returns nil if no pacer
// has been created.
func (f *ManualFactory) Current() *Manual {
	f.crit.Lock()
	defer f.crit.Unlock()
	return f.current
}

// Created returns the number of pacers created by the factory.
func (f *ManualFactory) Created() int {
	f.crit.Lock()
	defer f.crit.Unlock()
	return f.created
}

// Pulse the most recently created pacer n times. Returns the number of pulses
// that were taken.
func (f *ManualFactory) Pulse(n int) int {
	m := f.Current()
	if m == nil {
		return 0
	}
	for i := 0; i < n; i++ {
		if !m.Pulse() {
			return i
		}
	}
	return n
}
