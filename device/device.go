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
	"strings"
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/padreplay/assert"
	"github.com/jetsetilly/padreplay/curated"
)

// Sentinal errors.
const (
	NotConnected          = "device: not connected"
	UpdateFailed          = "device: update failed: %v"
	ConnectFailed         = "device: connect failed: %v"
	DisconnectFailed      = "device: disconnect failed: %v"
	UnsupportedController = "device: unsupported controller (%s)"
	OwnershipViolation    = "device: write from goroutine %d while owned by goroutine %d"
	UnknownTarget         = "device: unknown target (%s)"
	MalformedMapping      = "device: mapping entry has no target (%s)"
)

// List of controller types.
const (
	ControllerXbox       = "xbox"
	ControllerDualShock4 = "dualshock4"
)

// Driver is the backend of a Device.
type Driver interface {
	// Plug makes the virtual controller visible to the system
	Plug() error

	// Unplug removes the virtual controller from the system
	Unplug() error

	// Update sets the state of the virtual controller
	Update(Report) error
}

// Device is the virtual controller.
type Device struct {
	// crit protects the driver and connection state. it does not arbitrate
	// between writers, that is the job of the owner
	crit      sync.Mutex
	driver    Driver
	connected atomic.Bool

	controller string
	mapping    Mapping

	// goroutine ID of the current writer. zero means unowned
	owner atomic.Uint64

	// finding the goroutine ID is expensive so Apply() only compares it with
	// the owner when checks are enabled
	checkOwner atomic.Bool

	// the most recent report sent to the driver
	last Report
}

// NewDevice is the preferred method of initialisation for the Device type.
// The device is not connected. A nil mapping is replaced by DefaultMapping().
func NewDevice(driver Driver, mapping Mapping) *Device {
	if mapping == nil {
		mapping = DefaultMapping()
	}
	return &Device{
		driver:     driver,
		mapping:    mapping,
		controller: ControllerXbox,
	}
}

// SetController selects the type of controller to present. The change takes
// effect on the next Connect().
func (dev *Device) SetController(controller string) error {
	controller = strings.ToLower(strings.TrimSpace(controller))
	if controller != ControllerXbox {
		return curated.Errorf(UnsupportedController, controller)
	}

	dev.crit.Lock()
	defer dev.crit.Unlock()
	dev.controller = controller

	return nil
}

// Controller returns the controller type.
func (dev *Device) Controller() string {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	return dev.controller
}

// Mapping returns a copy of the mapping used by the device.
func (dev *Device) Mapping() Mapping {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	m := make(Mapping, len(dev.mapping))
	for k, v := range dev.mapping {
		m[k] = v
	}
	return m
}

// SetMapping replaces the mapping used by the device. A nil or empty mapping
// is replaced by DefaultMapping().
func (dev *Device) SetMapping(mapping Mapping) {
	m := DefaultMapping()
	if len(mapping) > 0 {
		m = make(Mapping, len(mapping))
		for k, v := range mapping {
			m[k] = v
		}
	}

	dev.crit.Lock()
	defer dev.crit.Unlock()
	dev.mapping = m
}

// Connect plugs in the virtual controller. Does nothing if the device is
// already connected.
func (dev *Device) Connect() error {
	dev.crit.Lock()
	defer dev.crit.Unlock()

	if dev.connected.Load() {
		return nil
	}

	if err := dev.driver.Plug(); err != nil {
		return curated.Errorf(ConnectFailed, err)
	}
	dev.connected.Store(true)
	dev.last = Report{}

	return nil
}

// Disconnect unplugs the virtual controller. Does nothing if the device is
// not connected.
func (dev *Device) Disconnect() error {
	dev.crit.Lock()
	defer dev.crit.Unlock()

	if !dev.connected.Load() {
		return nil
	}

	dev.connected.Store(false)
	if err := dev.driver.Unplug(); err != nil {
		return curated.Errorf(DisconnectFailed, err)
	}

	return nil
}

// Connected returns true if the virtual controller is plugged in.
func (dev *Device) Connected() bool {
	return dev.connected.Load()
}

// CheckOwnership enables or disables the ownership test in Apply(). Checks
// are disabled by default.
func (dev *Device) CheckOwnership(on bool) {
	dev.checkOwner.Store(on)
}

// Claim makes the calling goroutine the only goroutine permitted to call
// Apply(). The claim is only enforced if CheckOwnership() has been enabled.
func (dev *Device) Claim() {
	dev.owner.Store(assert.GetGoRoutineID())
}

// Release removes the ownership claim. Any goroutine may call Apply() until
// the next call to Claim().
func (dev *Device) Release() {
	dev.owner.Store(0)
}

// Apply sets the state of the virtual controller.
func (dev *Device) Apply(s Snapshot) error {
	if dev.checkOwner.Load() {
		if owner := dev.owner.Load(); owner != 0 {
			if id := assert.GetGoRoutineID(); id != owner {
				return curated.Errorf(OwnershipViolation, id, owner)
			}
		}
	}

	dev.crit.Lock()
	defer dev.crit.Unlock()

	if !dev.connected.Load() {
		return curated.Errorf(NotConnected)
	}

	r := dev.mapping.Report(s)

	if err := dev.driver.Update(r); err != nil {
		return curated.Errorf(UpdateFailed, err)
	}
	dev.last = r

	return nil
}

// Last returns the most recent report successfully sent to the driver.
func (dev *Device) Last() Report {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	return dev.last
}
