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

package frame

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jetsetilly/padreplay/curated"
)

// Sentinal errors returned by Validate().
const (
	InvalidDuration  = "frame: invalid duration (%d)"
	InvalidDirection = "frame: invalid direction (%d)"
)

// Sentinal errors returned by ParseDirection().
const (
	UnparsableDirection = "frame: cannot parse direction (%q)"
)

// Frame is one discrete input record in a replay sequence. The state it
// describes persists for Duration engine ticks.
type Frame struct {
	Duration  int
	Direction Direction

	// button states keyed by button name. names that are not present are
	// considered to be released
	Buttons map[string]bool

	// analog sticks. values are in the symmetric range -32767 to 32767
	LX, LY int16
	RX, RY int16

	// analog triggers
	LT, RT uint8
}

// New is the preferred method of initialisation for the Frame type. The
// buttons map is copied.
func New(duration int, direction Direction, buttons map[string]bool) (Frame, error) {
	f := Frame{
		Duration:  duration,
		Direction: direction,
		Buttons:   cloneButtons(buttons),
	}
	if err := f.Validate(); err != nil {
		return Frame{}, err
	}
	return f, nil
}

// Validate checks the duration and direction invariants of the frame.
func (f Frame) Validate() error {
	if f.Duration < 1 {
		return curated.Errorf(InvalidDuration, f.Duration)
	}
	if !f.Direction.Valid() {
		return curated.Errorf(InvalidDirection, f.Direction)
	}
	return nil
}

// Normalise returns a copy of the frame with stick values restricted to the
// symmetric range. A value of -32768 becomes -32767.
func (f Frame) Normalise() Frame {
	f.Buttons = cloneButtons(f.Buttons)
	f.LX = symmetric(f.LX)
	f.LY = symmetric(f.LY)
	f.RX = symmetric(f.RX)
	f.RY = symmetric(f.RY)
	return f
}

func symmetric(v int16) int16 {
	if v == math.MinInt16 {
		return -math.MaxInt16
	}
	return v
}

func negate(v int16) int16 {
	return -symmetric(v)
}

func cloneButtons(b map[string]bool) map[string]bool {
	c := make(map[string]bool, len(b))
	for k, v := range b {
		c[k] = v
	}
	return c
}

// Clone returns a deep copy of the frame.
func (f Frame) Clone() Frame {
	f.Buttons = cloneButtons(f.Buttons)
	return f
}

// Pressed returns the sorted list of button names that are pressed.
func (f Frame) Pressed() []string {
	p := make([]string, 0, len(f.Buttons))
	for k, v := range f.Buttons {
		if v {
			p = append(p, k)
		}
	}
	sort.Strings(p)
	return p
}

// ButtonNames returns the sorted list of every button name referenced by the
// frame, pressed or not.
func (f Frame) ButtonNames() []string {
	n := make([]string, 0, len(f.Buttons))
	for k := range f.Buttons {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

// Equal returns true if both frames describe the same controller state for
// the same duration. A button that is absent is equal to a button that is
// present and released.
func (f Frame) Equal(g Frame) bool {
	if f.Duration != g.Duration {
		return false
	}
	return f.SameState(g)
}

// SameState is like Equal() but ignores the duration.
func (f Frame) SameState(g Frame) bool {
	if f.Direction != g.Direction {
		return false
	}
	if f.LX != g.LX || f.LY != g.LY || f.RX != g.RX || f.RY != g.RY {
		return false
	}
	if f.LT != g.LT || f.RT != g.RT {
		return false
	}
	for k, v := range f.Buttons {
		if g.Buttons[k] != v {
			return false
		}
	}
	for k, v := range g.Buttons {
		if f.Buttons[k] != v {
			return false
		}
	}
	return true
}

// Mirror returns the frame reflected in the vertical axis. The direction is
// mirrored, left/right button names are swapped, the X axes of both sticks are
// negated and the triggers are swapped.
//
// Mirror is pure and it is its own inverse for any normalised frame.
func (f Frame) Mirror() Frame {
	m := Frame{
		Duration:  f.Duration,
		Direction: f.Direction.Mirror(),
		Buttons:   make(map[string]bool, len(f.Buttons)),
		LX:        negate(f.LX),
		LY:        f.LY,
		RX:        negate(f.RX),
		RY:        f.RY,
		LT:        f.RT,
		RT:        f.LT,
	}

	for k, v := range f.Buttons {
		// a pressed button takes priority if two source names mirror to the
		// same name
		n := MirrorButtonName(k)
		m.Buttons[n] = m.Buttons[n] || v
	}

	return m
}

func (f Frame) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%d%s", f.Duration, f.Direction))
	if p := f.Pressed(); len(p) > 0 {
		s.WriteString(" ")
		s.WriteString(strings.Join(p, "+"))
	}
	if f.LX != 0 || f.LY != 0 {
		s.WriteString(fmt.Sprintf(" L(%d,%d)", f.LX, f.LY))
	}
	if f.RX != 0 || f.RY != 0 {
		s.WriteString(fmt.Sprintf(" R(%d,%d)", f.RX, f.RY))
	}
	if f.LT != 0 || f.RT != 0 {
		s.WriteString(fmt.Sprintf(" T(%d,%d)", f.LT, f.RT))
	}
	return s.String()
}
