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
	"sync/atomic"
	"time"

	"github.com/jetsetilly/padreplay/curated"
)

// MaxRate is the highest pulse rate accepted by NewPacer().
const MaxRate = 240

// Sentinal errors.
const (
	InvalidRate = "limiter: rate out of range (%d)"
)

// Pacer delivers a pulse on the channel returned by C() at a fixed rate.
//
// Pulses are never queued. If the receiver is not ready when the underlying
// ticker fires then that pulse is dropped.
type Pacer struct {
	hz int

	pulse *time.Ticker
	c     chan time.Time

	quit     chan struct{}
	stopOnce sync.Once

	// the measured pulse rate is the number of pulses delivered divided by the
	// amount of elapsed time since the previous measurement
	measuringPulse *time.Ticker
	measureTime    time.Time
	measureCt      int

	// the measured number of pulses per second
	measured atomic.Value // float32
}

// NewPacer is the preferred method of initialisation for the Pacer type. The
// pulse starts immediately.
func NewPacer(hz int) (*Pacer, error) {
	if hz < 1 || hz > MaxRate {
		return nil, curated.Errorf(InvalidRate, hz)
	}

	p := &Pacer{
		hz:             hz,
		pulse:          time.NewTicker(time.Second / time.Duration(hz)),
		c:              make(chan time.Time),
		quit:           make(chan struct{}),
		measuringPulse: time.NewTicker(time.Second),
		measureTime:    time.Now(),
	}
	p.measured.Store(float32(0.0))

	go p.service()

	return p, nil
}

func (p *Pacer) service() {
	defer p.pulse.Stop()
	defer p.measuringPulse.Stop()

	for {
		select {
		case <-p.quit:
			return

		case t := <-p.measuringPulse.C:
			m := float32(p.measureCt) / float32(t.Sub(p.measureTime).Seconds())
			p.measured.Store(m)

			// reset time and count ready for next measurement
			p.measureTime = t
			p.measureCt = 0

		case t := <-p.pulse.C:
			select {
			case p.c <- t:
				p.measureCt++
			case <-p.quit:
				return
			default:
				// receiver not ready. the pulse is dropped
			}
		}
	}
}

// C returns the pulse channel.
func (p *Pacer) C() <-chan time.Time {
	return p.c
}

// Stop the pulse. The channel returned by C() is not closed. Safe to call more
// than once.
func (p *Pacer) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
	})
}

// Rate returns the requested pulse rate.
func (p *Pacer) Rate() int {
	return p.hz
}

// Measured returns the most recent measurement of the delivered pulse rate.
// Returns zero until the first measurement has been taken.
func (p *Pacer) Measured() float32 {
	return p.measured.Load().(float32)
}
