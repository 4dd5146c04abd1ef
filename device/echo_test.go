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

package device_test

import (
	"testing"

	"github.com/jetsetilly/padreplay/device"
	"github.com/jetsetilly/padreplay/frame"
	"github.com/jetsetilly/padreplay/test"
)

func TestEchoDriver(t *testing.T) {
	w := &test.Writer{}
	dev := device.NewDevice(device.NewEchoDriver(w), nil)

	test.DemandSuccess(t, dev.Connect())
	test.ExpectSuccess(t, dev.Apply(device.Neutral()))

	// unchanged reports are not echoed
	test.ExpectSuccess(t, dev.Apply(device.Neutral()))
	test.ExpectSuccess(t, dev.Apply(device.Snapshot{Direction: frame.Right, Buttons: map[string]bool{"A": true}}))
	test.ExpectSuccess(t, dev.Disconnect())

	test.ExpectSuccess(t, w.Compare("plug\n- T(0,0) L(0,0) R(0,0)\nRIGHT+A T(0,0) L(0,0) R(0,0)\nunplug\n"))
}
