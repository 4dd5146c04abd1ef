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
	"time"

	"github.com/jetsetilly/padreplay/limiter"
)

// Pacer delivers the pulse that drives the tick loop.
type Pacer interface {
	C() <-chan time.Time
	Stop()
}

// measurer is implemented by pacers that can report the rate at which pulses
// are actually being delivered.
type measurer interface {
	Measured() float32
}

// PacerFactory creates a Pacer for the requested rate. A new pacer is created
// every time a run is started or resumed.
type PacerFactory func(hz int) (Pacer, error)

// LimiterPacers is the PacerFactory for real-time playback.
func LimiterPacers(hz int) (Pacer, error) {
	p, err := limiter.NewPacer(hz)
	if err != nil {
		return nil, err
	}
	return p, nil
}
