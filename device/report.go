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

package device

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/jetsetilly/padreplay/frame"
)

// Snapshot is the state of the controller at an instant.
type Snapshot struct {
	Direction frame.Direction
	Buttons   map[string]bool
	LX, LY    int16
	RX, RY    int16
	LT, RT    uint8
}

// Neutral returns a snapshot with no buttons pressed, the direction neutral
// and every axis centred.
func Neutral() Snapshot {
	return Snapshot{Direction: frame.Neutral}
}

// FromFrame returns the snapshot described by the frame. The Buttons map is
// shared with the frame.
func FromFrame(f frame.Frame) Snapshot {
	return Snapshot{
		Direction: f.Direction,
		Buttons:   f.Buttons,
		LX:        f.LX,
		LY:        f.LY,
		RX:        f.RX,
		RY:        f.RY,
		LT:        f.LT,
		RT:        f.RT,
	}
}

// Buttons is the digital button bitmask of a Report.
type Buttons uint16

// List of button bits. Values are the same as those used by XInput.
const (
	DPadUp    Buttons = 0x0001
	DPadDown  Buttons = 0x0002
	DPadLeft  Buttons = 0x0004
	DPadRight Buttons = 0x0008
	Start     Buttons = 0x0010
	Back      Buttons = 0x0020
	LThumb    Buttons = 0x0040
	RThumb    Buttons = 0x0080
	LB        Buttons = 0x0100
	RB        Buttons = 0x0200
	Guide     Buttons = 0x0400
	A         Buttons = 0x1000
	B         Buttons = 0x2000
	X         Buttons = 0x4000
	Y         Buttons = 0x8000
)

var buttonLabels = []struct {
	b Buttons
	s string
}{
	{DPadUp, "UP"}, {DPadDown, "DOWN"}, {DPadLeft, "LEFT"}, {DPadRight, "RIGHT"},
	{Start, "START"}, {Back, "BACK"}, {LThumb, "LTHUMB"}, {RThumb, "RTHUMB"},
	{LB, "LB"}, {RB, "RB"}, {Guide, "GUIDE"},
	{A, "A"}, {B, "B"}, {X, "X"}, {Y, "Y"},
}

func (b Buttons) String() string {
	s := strings.Builder{}
	for _, l := range buttonLabels {
		if b&l.b == l.b {
			if s.Len() > 0 {
				s.WriteString("+")
			}
			s.WriteString(l.s)
		}
	}
	if s.Len() == 0 {
		return "-"
	}
	return s.String()
}

// Report is the state of the virtual controller as seen by the Driver.
type Report struct {
	Buttons Buttons
	LT, RT  uint8
	LX, LY  int16
	RX, RY  int16
}

// ReportSize is the length of the slice returned by Report.Bytes().
const ReportSize = 12

// Bytes returns the report in the little-endian layout of the XInput gamepad
// structure.
func (r Report) Bytes() []byte {
	b := make([]byte, ReportSize)
	binary.LittleEndian.PutUint16(b[0:], uint16(r.Buttons))
	b[2] = r.LT
	b[3] = r.RT
	binary.LittleEndian.PutUint16(b[4:], uint16(r.LX))
	binary.LittleEndian.PutUint16(b[6:], uint16(r.LY))
	binary.LittleEndian.PutUint16(b[8:], uint16(r.RX))
	binary.LittleEndian.PutUint16(b[10:], uint16(r.RY))
	return b
}

func (r Report) String() string {
	return fmt.Sprintf("%s T(%d,%d) L(%d,%d) R(%d,%d)", r.Buttons, r.LT, r.RT, r.LX, r.LY, r.RX, r.RY)
}
