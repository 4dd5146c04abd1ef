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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/padreplay/curated"
	"github.com/jetsetilly/padreplay/limiter"
	"github.com/jetsetilly/padreplay/test"
)

// tolerance of measurement
const measurementTolerance = 0.05
const numSecondsPerTest = 2

func TestRange(t *testing.T) {
	_, err := limiter.NewPacer(0)
	test.ExpectSuccess(t, curated.Is(err, limiter.InvalidRate))
	_, err = limiter.NewPacer(limiter.MaxRate + 1)
	test.ExpectSuccess(t, curated.Is(err, limiter.InvalidRate))
	test.ExpectEquality(t, err.Error(), "limiter: rate out of range (241)")

	p, err := limiter.NewPacer(limiter.MaxRate)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Rate(), limiter.MaxRate)
	test.ExpectEquality(t, p.Measured(), 0.0)
	p.Stop()
	p.Stop()
}

func TestPacer(t *testing.T) {
	for _, hz := range []int{60, 30} {
		p, err := limiter.NewPacer(hz)
		test.DemandSuccess(t, err)

		// the second of the two measurements covers pulses that were all
		// received promptly
		for i := 0; i < hz*numSecondsPerTest+hz/2; i++ {
			<-p.C()
		}

		rate := p.Measured()
		fhz := float32(hz)
		test.ExpectSuccess(t, rate >= fhz*(1.0-measurementTolerance) && rate <= fhz*(1.0+measurementTolerance), hz, rate)
		p.Stop()
	}
}

func TestStop(t *testing.T) {
	p, err := limiter.NewPacer(100)
	test.DemandSuccess(t, err)
	<-p.C()
	p.Stop()

	// no pulses are delivered after Stop()
	select {
	case <-p.C():
		// a pulse may have been mid-delivery at the moment of stopping but
		// there must not be a second one
		select {
		case <-p.C():
			t.Errorf("pulse delivered after Stop()")
		case <-time.After(50 * time.Millisecond):
		}
	case <-time.After(50 * time.Millisecond):
	}
}
