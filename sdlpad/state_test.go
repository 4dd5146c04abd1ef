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
	"testing"

	"github.com/jetsetilly/padreplay/frame"
	"github.com/jetsetilly/padreplay/test"
)

type sender struct {
	direction frame.Direction
	buttons   map[string]bool
	cleared   int
	sent      int
}

func (snd *sender) SendManualInput(direction frame.Direction, buttons map[string]bool) (bool, error) {
	snd.direction = direction
	snd.buttons = buttons
	snd.sent++
	return true, nil
}

func (snd *sender) ClearManualInput() error {
	snd.direction = frame.Neutral
	snd.buttons = nil
	snd.cleared++
	return nil
}

func TestButtons(t *testing.T) {
	st := newState()
	test.ExpectSuccess(t, st.idle())

	test.ExpectSuccess(t, st.button(0, true))
	test.ExpectFailure(t, st.button(0, true))
	test.ExpectSuccess(t, st.button(5, true))

	// unknown raw button
	test.ExpectFailure(t, st.button(99, true))

	snd := &sender{}
	test.DemandSuccess(t, st.send(snd))
	test.ExpectEquality(t, snd.sent, 1)
	test.ExpectEquality(t, snd.direction, frame.Neutral)
	test.ExpectEquality(t, len(snd.buttons), 2)
	test.ExpectSuccess(t, snd.buttons["A"])
	test.ExpectSuccess(t, snd.buttons["RB"])

	test.ExpectSuccess(t, st.button(0, false))
	test.ExpectSuccess(t, st.button(5, false))
	test.ExpectSuccess(t, st.idle())
	test.DemandSuccess(t, st.send(snd))
	test.ExpectEquality(t, snd.cleared, 1)
}

func TestHat(t *testing.T) {
	st := newState()
	test.ExpectSuccess(t, st.hat(false, true, false, true))
	test.ExpectEquality(t, st.direction(), frame.DownRight)
	test.ExpectFailure(t, st.hat(false, true, false, true))
	test.ExpectSuccess(t, st.hat(false, false, false, false))
	test.ExpectEquality(t, st.direction(), frame.Neutral)
}

func TestStick(t *testing.T) {
	st := newState()

	// inside the deadzone
	test.ExpectFailure(t, st.axis(axisLeftX, StickDeadzone))
	test.ExpectEquality(t, st.direction(), frame.Neutral)

	test.ExpectSuccess(t, st.axis(axisLeftX, -20000))
	test.ExpectEquality(t, st.direction(), frame.Left)
	test.ExpectSuccess(t, st.axis(axisLeftY, -20000))
	test.ExpectEquality(t, st.direction(), frame.UpLeft)

	// the dpad takes priority over the stick
	test.ExpectSuccess(t, st.hat(false, false, false, true))
	test.ExpectEquality(t, st.direction(), frame.Right)
	test.ExpectSuccess(t, st.hat(false, false, false, false))
	test.ExpectEquality(t, st.direction(), frame.UpLeft)
}

func TestTriggers(t *testing.T) {
	st := newState()
	test.ExpectFailure(t, st.axis(axisLeftTrigger, TriggerThreshold))
	test.ExpectSuccess(t, st.axis(axisLeftTrigger, 32767))
	test.ExpectSuccess(t, st.axis(axisRightTrigger, 32767))
	test.ExpectFailure(t, st.axis(axisRightTrigger, 30000))

	p := st.pressed()
	test.ExpectSuccess(t, p["LT"])
	test.ExpectSuccess(t, p["RT"])

	test.ExpectSuccess(t, st.axis(axisLeftTrigger, 0))
	test.ExpectFailure(t, st.pressed()["LT"])
}
