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

package sdlpad

import (
	"errors"
	"testing"

	"github.com/jetsetilly/padreplay/curated"
	"github.com/jetsetilly/padreplay/test"
)

func TestInitFailed(t *testing.T) {
	cause := errors.New("joystick subsystem unavailable")
	err := curated.Errorf(InitFailed, cause)
	test.ExpectSuccess(t, curated.Is(err, InitFailed))
	test.ExpectSuccess(t, errors.Is(err, cause))
	test.ExpectEquality(t, err.Error(), "sdlpad: initialisation failed: joystick subsystem unavailable")
}
