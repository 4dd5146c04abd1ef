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


package termpad

import (
	"github.com/jetsetilly/padreplay/frame"
)

// Sender is the destination for manual input.
type Sender interface {
	SendManualInput(direction frame.Direction, buttons map[string]bool) (bool, error)
	ClearManualInput() error
}

var buttonKeys = map[byte]string{
	'u': "button1",
	'i': "button2",
	'o': "button3",
	'j': "button4",
	'k': "button5",
	'l': "button6",
}

const (
	keyRelease = ' '
	keyQuit    = 'q'
	keyCtrlC   = 0x03
)

// action is the result of a keypress.
type action int

const (
	actionNone action = iota
	actionSend
	actionClear
	actionQuit
)

// latch holds the latched input state.
type latch struct {
	direction frame.Direction
	buttons   map[string]bool
}

func newLatch() *latch {
	return &latch{
		direction: frame.Neutral,
		buttons:   make(map[string]bool),
	}
}

// key updates the latch with the key.
func (l *latch) key(b byte) action {
	switch b {
	case keyQuit, keyCtrlC:
		return actionQuit
	case keyRelease:
		l.direction = frame.Neutral
		clear(l.buttons)
		return actionClear
	}

	if b >= '1' && b <= '9' {
		d := frame.Direction(b - '0')
		if d == l.direction {
			return actionNone
		}
		l.direction = d
		return l.changed()
	}

	if n, ok := buttonKeys[b]; ok {
		if l.buttons[n] {
			delete(l.buttons, n)
		} else {
			l.buttons[n] = true
		}
		return l.changed()
	}

	return actionNone
}

func (l *latch) changed() action {
	if l.direction == frame.Neutral && len(l.buttons) == 0 {
		return actionClear
	}
	return actionSend
}

// perform the action with the sender.
func (l *latch) perform(a action, snd Sender) error {
	switch a {
	case actionSend:
		b := make(map[string]bool, len(l.buttons))
		for k := range l.buttons {
			b[k] = true
		}
		_, err := snd.SendManualInput(l.direction, b)
		return err
	case actionClear:
		return snd.ClearManualInput()
	}
	return nil
}
