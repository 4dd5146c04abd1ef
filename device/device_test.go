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
	"errors"
	"testing"

	"github.com/jetsetilly/padreplay/curated"
	"github.com/jetsetilly/padreplay/device"
	"github.com/jetsetilly/padreplay/device/capture"
	"github.com/jetsetilly/padreplay/frame"
	"github.com/jetsetilly/padreplay/test"
)

func TestReport(t *testing.T) {
	m := device.DefaultMapping()

	r := m.Report(device.Snapshot{
		Direction: frame.UpLeft,
		Buttons:   map[string]bool{"button1": true, "button5": true, "button7": true, "button2": false, "unknown": true},
		LX:        -2,
		RY:        0x1234,
		RT:        100,
	})
	test.ExpectEquality(t, r.Buttons, device.DPadUp|device.DPadLeft|device.A|device.LB)
	test.ExpectEquality(t, r.LT, 255)
	test.ExpectEquality(t, r.RT, 100)
	test.ExpectEquality(t, r.String(), "UP+LEFT+LB+A T(255,100) L(-2,0) R(0,4660)")

	b := r.Bytes()
	test.DemandEquality(t, len(b), device.ReportSize)
	test.ExpectEquality(t, b[0], 0x05)
	test.ExpectEquality(t, b[1], 0x11)
	test.ExpectEquality(t, b[2], 0xff)
	test.ExpectEquality(t, b[3], 100)
	test.ExpectEquality(t, b[4], 0xfe)
	test.ExpectEquality(t, b[5], 0xff)
	test.ExpectEquality(t, b[10], 0x34)
	test.ExpectEquality(t, b[11], 0x12)

	// neutral snapshot is an empty report
	test.ExpectEquality(t, m.Report(device.Neutral()), device.Report{})
	test.ExpectEquality(t, device.Report{}.Buttons.String(), "-")
}

func TestDefaultMapping(t *testing.T) {
	m := device.DefaultMapping()
	test.ExpectEquality(t, m["button1"], device.TargetA)
	test.ExpectEquality(t, m["button8"], device.TargetRT)
	test.ExpectEquality(t, m["button12"], device.TargetRThumb)
	test.ExpectEquality(t, m["LB"], device.TargetLB)
	test.ExpectEquality(t, m["START"], device.TargetStart)
}

func TestMappingParse(t *testing.T) {
	m := device.Mapping{"jump": device.TargetA, "dash": device.TargetRT}
	s := m.String()
	test.ExpectEquality(t, s, "dash=RT,jump=A")

	n := make(device.Mapping)
	test.ExpectSuccess(t, n.Parse(s))
	test.ExpectEquality(t, n.String(), s)

	// mapping is unchanged on error
	err := n.Parse("jump=A,kick")
	test.ExpectSuccess(t, curated.Is(err, device.MalformedMapping))
	err = n.Parse("jump=Q")
	test.ExpectSuccess(t, curated.Is(err, device.UnknownTarget))
	test.ExpectEquality(t, err.Error(), "device: unknown target (Q)")
	test.ExpectEquality(t, n.String(), s)

	test.ExpectSuccess(t, n.Parse(" kick = lthumb "))
	test.ExpectEquality(t, n.String(), "kick=LTHUMB")
}

func TestLifecycle(t *testing.T) {
	drv := capture.NewDriver()
	dev := device.NewDevice(drv, nil)

	err := dev.Apply(device.Neutral())
	test.ExpectSuccess(t, curated.Is(err, device.NotConnected))
	test.ExpectFailure(t, dev.Connected())

	test.ExpectSuccess(t, dev.Connect())
	test.ExpectSuccess(t, dev.Connected())
	test.ExpectSuccess(t, drv.Plugged())

	// connecting twice is harmless
	test.ExpectSuccess(t, dev.Connect())

	snap := device.Snapshot{Direction: frame.Down, Buttons: map[string]bool{"B": true}}
	test.ExpectSuccess(t, dev.Apply(snap))
	test.ExpectEquality(t, drv.Len(), 1)
	test.ExpectEquality(t, dev.Last().Buttons, device.DPadDown|device.B)

	test.ExpectSuccess(t, dev.Disconnect())
	test.ExpectFailure(t, drv.Plugged())
	test.ExpectSuccess(t, dev.Disconnect())
	err = dev.Apply(snap)
	test.ExpectSuccess(t, curated.Is(err, device.NotConnected))
}

func TestUpdateFailure(t *testing.T) {
	drv := capture.NewDriver()
	dev := device.NewDevice(drv, nil)
	test.DemandSuccess(t, dev.Connect())

	drv.Fail(errors.New("cable pulled"))
	err := dev.Apply(device.Neutral())
	test.ExpectSuccess(t, curated.Is(err, device.UpdateFailed))
	test.ExpectEquality(t, err.Error(), "device: update failed: cable pulled")
	test.ExpectEquality(t, errors.Unwrap(err).Error(), "cable pulled")
}

func TestController(t *testing.T) {
	dev := device.NewDevice(capture.NewDriver(), nil)
	test.ExpectEquality(t, dev.Controller(), device.ControllerXbox)

	err := dev.SetController(device.ControllerDualShock4)
	test.ExpectSuccess(t, curated.Is(err, device.UnsupportedController))
	test.ExpectEquality(t, dev.Controller(), device.ControllerXbox)

	test.ExpectSuccess(t, dev.SetController(" XBOX "))
}

func TestOwnership(t *testing.T) {
	drv := capture.NewDriver()
	dev := device.NewDevice(drv, nil)
	test.DemandSuccess(t, dev.Connect())
	dev.CheckOwnership(true)

	dev.Claim()
	test.ExpectSuccess(t, dev.Apply(device.Neutral()))

	// a write from another goroutine is refused
	ch := make(chan error)
	go func() {
		ch <- dev.Apply(device.Neutral())
	}()
	err := <-ch
	test.ExpectSuccess(t, curated.Is(err, device.OwnershipViolation))
	test.ExpectEquality(t, drv.Len(), 1)

	// the other goroutine can write once the claim is released
	dev.Release()
	go func() {
		ch <- dev.Apply(device.Neutral())
	}()
	test.ExpectSuccess(t, <-ch)
	test.ExpectEquality(t, drv.Len(), 2)
}

func TestOwnershipUnchecked(t *testing.T) {
	drv := capture.NewDriver()
	dev := device.NewDevice(drv, nil)
	test.DemandSuccess(t, dev.Connect())

	// the claim is not enforced unless checks are enabled
	dev.Claim()
	ch := make(chan error)
	go func() {
		ch <- dev.Apply(device.Neutral())
	}()
	test.ExpectSuccess(t, <-ch)
	test.ExpectEquality(t, drv.Len(), 1)

	// enabling checks applies to the existing claim
	dev.CheckOwnership(true)
	go func() {
		ch <- dev.Apply(device.Neutral())
	}()
	test.ExpectSuccess(t, curated.Is(<-ch, device.OwnershipViolation))
	test.ExpectSuccess(t, dev.Apply(device.Neutral()))
	test.ExpectEquality(t, drv.Len(), 2)

	dev.CheckOwnership(false)
	go func() {
		ch <- dev.Apply(device.Neutral())
	}()
	test.ExpectSuccess(t, <-ch)
	test.ExpectEquality(t, drv.Len(), 3)
}

func TestSetMapping(t *testing.T) {
	drv := capture.NewDriver()
	dev := device.NewDevice(drv, device.Mapping{"jump": device.TargetA})
	test.DemandSuccess(t, dev.Connect())

	test.ExpectSuccess(t, dev.Apply(device.Snapshot{Direction: frame.Neutral, Buttons: map[string]bool{"jump": true, "A": true}}))
	test.ExpectEquality(t, dev.Last().Buttons, device.A)

	// the returned mapping is a copy
	m := dev.Mapping()
	m["kick"] = device.TargetB
	test.ExpectEquality(t, len(dev.Mapping()), 1)

	dev.SetMapping(m)
	test.ExpectSuccess(t, dev.Apply(device.Snapshot{Direction: frame.Neutral, Buttons: map[string]bool{"kick": true}}))
	test.ExpectEquality(t, dev.Last().Buttons, device.B)

	// an empty mapping restores the default
	dev.SetMapping(nil)
	test.ExpectEquality(t, dev.Mapping()["button1"], device.TargetA)
}
