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

	"github.com/jetsetilly/padreplay/curated"
)

// Direction is a numpad notation direction.
type Direction uint8

// List of valid Direction values.
const (
	DownLeft  Direction = 1
	Down      Direction = 2
	DownRight Direction = 3
	Left      Direction = 4
	Neutral   Direction = 5
	Right     Direction = 6
	UpLeft    Direction = 7
	Up        Direction = 8
	UpRight   Direction = 9
)

func (d Direction) String() string {
	switch d {
	case DownLeft:
		return "↙"
	case Down:
		return "↓"
	case DownRight:
		return "↘"
	case Left:
		return "←"
	case Neutral:
		return "•"
	case Right:
		return "→"
	case UpLeft:
		return "↖"
	case Up:
		return "↑"
	case UpRight:
		return "↗"
	}
	return fmt.Sprintf("invalid direction (%d)", uint8(d))
}

// Valid returns true if direction is in the range 1 to 9.
func (d Direction) Valid() bool {
	return d >= DownLeft && d <= UpRight
}

// Mirror returns the direction reflected in the vertical axis. Left becomes
// right and right becomes left. Directions without a horizontal component are
// returned unchanged, as are invalid directions.
func (d Direction) Mirror() Direction {
	switch d {
	case DownLeft:
		return DownRight
	case DownRight:
		return DownLeft
	case Left:
		return Right
	case Right:
		return Left
	case UpLeft:
		return UpRight
	case UpRight:
		return UpLeft
	}
	return d
}

// Components returns the individual up/down/left/right components of the
// direction. An invalid direction has no components.
func (d Direction) Components() (up, down, left, right bool) {
	if !d.Valid() {
		return
	}
	v := int(d) - 1
	switch v / 3 {
	case 0:
		down = true
	case 2:
		up = true
	}
	switch v % 3 {
	case 0:
		left = true
	case 2:
		right = true
	}
	return up, down, left, right
}

// DirectionFromComponents is the inverse of Components(). Opposing components
// cancel each other out.
func DirectionFromComponents(up, down, left, right bool) Direction {
	v := 4
	if up && !down {
		v += 3
	} else if down && !up {
		v -= 3
	}
	if left && !right {
		v--
	} else if right && !left {
		v++
	}
	return Direction(v + 1)
}

// ParseDirection converts a single numpad digit to a Direction.
func ParseDirection(s string) (Direction, error) {
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return 0, curated.Errorf(UnparsableDirection, s)
	}
	return Direction(s[0] - '0'), nil
}
