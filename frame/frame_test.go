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

package frame_test

import (
	"math"
	"testing"

	"github.com/jetsetilly/padreplay/curated"
	"github.com/jetsetilly/padreplay/frame"
	"github.com/jetsetilly/padreplay/test"
)

func TestDirectionMirror(t *testing.T) {
	test.ExpectEquality(t, frame.DownLeft.Mirror(), frame.DownRight)
	test.ExpectEquality(t, frame.Left.Mirror(), frame.Right)
	test.ExpectEquality(t, frame.UpLeft.Mirror(), frame.UpRight)
	test.ExpectEquality(t, frame.Up.Mirror(), frame.Up)
	test.ExpectEquality(t, frame.Down.Mirror(), frame.Down)
	test.ExpectEquality(t, frame.Neutral.Mirror(), frame.Neutral)

	for d := frame.DownLeft; d <= frame.UpRight; d++ {
		test.ExpectEquality(t, d.Mirror().Mirror(), d, d)
	}
}

func TestDirectionComponents(t *testing.T) {
	for d := frame.DownLeft; d <= frame.UpRight; d++ {
		test.ExpectEquality(t, frame.DirectionFromComponents(d.Components()), d, d)
	}

	up, down, left, right := frame.UpLeft.Components()
	test.ExpectSuccess(t, up)
	test.ExpectFailure(t, down)
	test.ExpectSuccess(t, left)
	test.ExpectFailure(t, right)

	// opposing components cancel
	test.ExpectEquality(t, frame.DirectionFromComponents(true, true, false, true), frame.Right)
	test.ExpectEquality(t, frame.DirectionFromComponents(false, false, true, true), frame.Neutral)
}

func TestParseDirection(t *testing.T) {
	d, err := frame.ParseDirection("7")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, frame.UpLeft)

	_, err = frame.ParseDirection("0")
	test.ExpectSuccess(t, curated.Is(err, frame.UnparsableDirection))
	_, err = frame.ParseDirection("55")
	test.ExpectSuccess(t, curated.Is(err, frame.UnparsableDirection))
	test.ExpectEquality(t, err.Error(), `frame: cannot parse direction ("55")`)
}

func TestNew(t *testing.T) {
	_, err := frame.New(0, frame.Neutral, nil)
	test.ExpectSuccess(t, curated.Is(err, frame.InvalidDuration))

	_, err = frame.New(1, 0, nil)
	test.ExpectSuccess(t, curated.Is(err, frame.InvalidDirection))

	_, err = frame.New(1, 10, nil)
	test.ExpectSuccess(t, curated.Is(err, frame.InvalidDirection))

	// buttons are copied on creation
	b := map[string]bool{"A": true}
	f, err := frame.New(3, frame.Down, b)
	test.ExpectSuccess(t, err)
	b["A"] = false
	test.ExpectSuccess(t, f.Buttons["A"])
}

func TestMirror(t *testing.T) {
	f := frame.Frame{
		Duration:  4,
		Direction: frame.DownRight,
		Buttons:   map[string]bool{"A": true, "LB": true, "RB": false, "leftPaddle": true},
		LX:        1000,
		LY:        -200,
		RX:        -32767,
		RY:        55,
		LT:        255,
		RT:        10,
	}

	m := f.Mirror()
	test.ExpectEquality(t, m.Duration, 4)
	test.ExpectEquality(t, m.Direction, frame.DownLeft)
	test.ExpectSuccess(t, m.Buttons["A"])
	test.ExpectSuccess(t, m.Buttons["RB"])
	test.ExpectFailure(t, m.Buttons["LB"])
	test.ExpectSuccess(t, m.Buttons["rightPaddle"])
	test.ExpectFailure(t, m.Buttons["leftPaddle"])
	test.ExpectEquality(t, m.LX, -1000)
	test.ExpectEquality(t, m.LY, -200)
	test.ExpectEquality(t, m.RX, 32767)
	test.ExpectEquality(t, m.LT, 10)
	test.ExpectEquality(t, m.RT, 255)

	// the original is untouched
	test.ExpectEquality(t, f.Direction, frame.DownRight)
	test.ExpectSuccess(t, f.Buttons["LB"])
	test.ExpectEquality(t, f.LX, 1000)

	// mirroring twice returns the original
	test.ExpectSuccess(t, m.Mirror().Equal(f))
}

func TestMirrorExtremes(t *testing.T) {
	f := frame.Frame{Duration: 1, Direction: frame.Neutral, LX: math.MinInt16}.Normalise()
	test.ExpectEquality(t, f.LX, -math.MaxInt16)
	test.ExpectSuccess(t, f.Mirror().Mirror().Equal(f))
}

func TestMirrorButtonName(t *testing.T) {
	names := []string{"A", "LB", "RT", "L3", "DPadLeft", "leftright", "RIGHT_TRIGGER", "BACK"}
	for _, n := range names {
		test.ExpectEquality(t, frame.MirrorButtonName(frame.MirrorButtonName(n)), n, n)
	}
	test.ExpectEquality(t, frame.MirrorButtonName("DPadLeft"), "DPadRight")
	test.ExpectEquality(t, frame.MirrorButtonName("leftright"), "rightleft")
	test.ExpectEquality(t, frame.MirrorButtonName("BACK"), "BACK")
}

func TestEqual(t *testing.T) {
	f := frame.Frame{Duration: 2, Direction: frame.Up, Buttons: map[string]bool{"A": true, "B": false}}
	g := frame.Frame{Duration: 2, Direction: frame.Up, Buttons: map[string]bool{"A": true}}
	test.ExpectSuccess(t, f.Equal(g))

	g.Duration = 3
	test.ExpectFailure(t, f.Equal(g))
	test.ExpectSuccess(t, f.SameState(g))

	g.Buttons["C"] = true
	test.ExpectFailure(t, f.SameState(g))
}

func TestString(t *testing.T) {
	f := frame.Frame{Duration: 2, Direction: frame.Up, Buttons: map[string]bool{"B": true, "A": true}}
	test.ExpectEquality(t, f.String(), "2↑ A+B")
}
