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

	"github.com/jetsetilly/padreplay/limiter"
	"github.com/jetsetilly/padreplay/test"
)

func TestManual(t *testing.T) {
	var f limiter.ManualFactory
	test.ExpectEquality(t, f.Pulse(1), 0)

	m, err := f.New(60)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, f.Current(), m)
	test.ExpectEquality(t, m.Rate(), 60)

	done := make(chan int)
	go func() {
		n := 0
		for range m.C() {
			n++
			if n == 3 {
				break
			}
		}
		done <- n
	}()

	test.ExpectEquality(t, f.Pulse(3), 3)
	test.ExpectEquality(t, <-done, 3)

	m.Stop()
	test.ExpectFailure(t, m.Pulse())
	test.ExpectEquality(t, f.Pulse(5), 0)

	_, _ = f.New(30)
	test.ExpectEquality(t, f.Created(), 2)
}
