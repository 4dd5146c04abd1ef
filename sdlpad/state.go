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
	"github.com/jetsetilly/padreplay/frame"
)

// StickDeadzone is the amount by which an analog stick must be displaced
// before it is treated as a direction.
const StickDeadzone = 10000

// TriggerThreshold is the amount by which an analog trigger must be pressed
// before it is treated as a button press.
const TriggerThreshold = 8192

// Sender is the destination for manual input.
type Sender interface {
	SendManualInput(direction frame.Direction, buttons map[string]bool) (bool, error)
	ClearManualInput() error
}

// list of raw joystick button indexes in the order used by xinput style
// gamepads. the names are the target names understood by the device mapping.
var buttonNames = map[uint8]string{
	0:  "A",
	1:  "B",
	2:  "X",
	3:  "Y",
	4:  "LB",
	5:  "RB",
	6:  "BACK",
	7:  "START",
	8:  "GUIDE",
	9:  "LTHUMB",
	10: "RTHUMB",
}

// list of raw joystick axis indexes.
const (
	axisLeftX        = 0
	axisLeftY        = 1
	axisLeftTrigger  = 2
	axisRightTrigger = 5
)

// state accumulates gamepad events into a direction and a set of pressed
// buttons.
type state struct {
	// direction components from the dpad
	hatUp, hatDown, hatLeft, hatRight bool

	// left stick position
	lx, ly int16

	buttons map[string]bool
}

func newState() *state {
	return &state{
		buttons: make(map[string]bool),
	}
}

// direction combines the dpad and the left stick. the dpad takes priority.
func (st *state) direction() frame.Direction {
	if st.hatUp || st.hatDown || st.hatLeft || st.hatRight {
		return frame.DirectionFromComponents(st.hatUp, st.hatDown, st.hatLeft, st.hatRight)
	}

	// SDL reports positive Y as down
	return frame.DirectionFromComponents(
		st.ly < -StickDeadzone,
		st.ly > StickDeadzone,
		st.lx < -StickDeadzone,
		st.lx > StickDeadzone,
	)
}

// pressed returns a copy of the pressed buttons.
func (st *state) pressed() map[string]bool {
	b := make(map[string]bool, len(st.buttons))
	for k, v := range st.buttons {
		if v {
			b[k] = true
		}
	}
	return b
}

// button sets the state of the raw button. returns true if the button is
// known and its state has changed.
func (st *state) button(idx uint8, down bool) bool {
	n, ok := buttonNames[idx]
	if !ok {
		return false
	}
	return st.setButton(n, down)
}

func (st *state) setButton(name string, down bool) bool {
	if st.buttons[name] == down {
		return false
	}
	if down {
		st.buttons[name] = true
	} else {
		delete(st.buttons, name)
	}
	return true
}

// hat sets the dpad components. returns true if the direction has changed.
func (st *state) hat(up, down, left, right bool) bool {
	before := st.direction()
	st.hatUp = up
	st.hatDown = down
	st.hatLeft = left
	st.hatRight = right
	return st.direction() != before
}

// axis sets the raw axis value. returns true if the direction or a trigger
// button has changed.
func (st *state) axis(idx uint8, value int16) bool {
	switch idx {
	case axisLeftX, axisLeftY:
		before := st.direction()
		if idx == axisLeftX {
			st.lx = value
		} else {
			st.ly = value
		}
		return st.direction() != before
	case axisLeftTrigger:
		return st.setButton("LT", value > TriggerThreshold)
	case axisRightTrigger:
		return st.setButton("RT", value > TriggerThreshold)
	}
	return false
}

// idle returns true if no input is active.
func (st *state) idle() bool {
	return st.direction() == frame.Neutral && len(st.buttons) == 0
}

// send the state to the sender. an idle state clears the manual input
// rather than sending a neutral frame.
func (st *state) send(snd Sender) error {
	if st.idle() {
		return snd.ClearManualInput()
	}
	_, err := snd.SendManualInput(st.direction(), st.pressed())
	return err
}
