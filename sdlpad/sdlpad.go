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
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/padreplay/curated"
	"github.com/jetsetilly/padreplay/logger"
)

// Sentinal errors.
const (
	InitFailed = "sdlpad: initialisation failed: %v"
)

// Pad reads events from every gamepad attached to the system and forwards
// the combined input to the Sender.
type Pad struct {
	snd  Sender
	st   *state
	pads []*sdl.GameController
}

// NewPad is the preferred method of initialisation for the Pad type. Must be
// called from the main thread.
func NewPad(snd Sender) (*Pad, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_JOYSTICK | sdl.INIT_GAMECONTROLLER)
	if err != nil {
		return nil, curated.Errorf(InitFailed, err)
	}

	pad := &Pad{
		snd: snd,
		st:  newState(),
	}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		pad.open(i)
	}

	if len(pad.pads) == 0 {
		logger.Log(logger.Allow, "sdlpad", "no gamepads found")
	}

	return pad, nil
}

func (pad *Pad) open(idx int) {
	if !sdl.IsGameController(idx) {
		return
	}
	gc := sdl.GameControllerOpen(idx)
	if gc == nil || !gc.Attached() {
		return
	}
	logger.Logf(logger.Allow, "sdlpad", "gamepad: %s", gc.Joystick().Name())
	pad.pads = append(pad.pads, gc)
}

// Count returns the number of open gamepads.
func (pad *Pad) Count() int {
	return len(pad.pads)
}

// Destroy closes all gamepads and releases SDL.
func (pad *Pad) Destroy() {
	for _, gc := range pad.pads {
		gc.Close()
	}
	pad.pads = pad.pads[:0]
	sdl.Quit()
}

// Service waits for up to timeout milliseconds for SDL events and forwards
// any change to the Sender. Returns false if SDL has been asked to quit.
//
// Must be called from the main thread.
func (pad *Pad) Service(timeout int) bool {
	changed := false

	for ev := sdl.WaitEventTimeout(timeout); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			return false

		case *sdl.ControllerDeviceEvent:
			if ev.Type == sdl.CONTROLLERDEVICEADDED {
				pad.open(int(ev.Which))
			}

		case *sdl.JoyButtonEvent:
			if pad.st.button(ev.Button, ev.State == sdl.PRESSED) {
				changed = true
			}

		case *sdl.JoyHatEvent:
			up := ev.Value&sdl.HAT_UP == sdl.HAT_UP
			down := ev.Value&sdl.HAT_DOWN == sdl.HAT_DOWN
			left := ev.Value&sdl.HAT_LEFT == sdl.HAT_LEFT
			right := ev.Value&sdl.HAT_RIGHT == sdl.HAT_RIGHT
			if pad.st.hat(up, down, left, right) {
				changed = true
			}

		case *sdl.JoyAxisEvent:
			if pad.st.axis(ev.Axis, ev.Value) {
				changed = true
			}
		}
	}

	if changed {
		if err := pad.st.send(pad.snd); err != nil {
			logger.Logf(logger.Allow, "sdlpad", "%v", err)
		}
	}

	return true
}
