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

package assert_test

import (
	"testing"

	"github.com/jetsetilly/padreplay/assert"
	"github.com/jetsetilly/padreplay/test"
)

func TestGoRoutineID(t *testing.T) {
	id := assert.GetGoRoutineID()
	test.ExpectInequality(t, id, 0)
	test.ExpectEquality(t, assert.GetGoRoutineID(), id)

	ch := make(chan uint64)
	go func() {
		ch <- assert.GetGoRoutineID()
	}()
	other := <-ch
	test.ExpectInequality(t, other, 0)
	test.ExpectInequality(t, other, id)
}
