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

// Package capture implements a device.Driver that records every report it is
// given.
package capture

import (
	"sync"
	"time"

	"github.com/jetsetilly/padreplay/device"
)

// Driver records reports. It is safe to read the recording while the driver
// is being updated.
type Driver struct {
	crit    sync.Mutex
	plugged bool
	reports []device.Report

	// if fail is not nil every call to Update() will return it
	fail error
}

// NewDriver is the preferred method of initialisation for the Driver type.
func NewDriver() *Driver {
	return &Driver{}
}

// Plug implements the device.Driver interface.
func (drv *Driver) Plug() error {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	drv.plugged = true
	return nil
}

// Unplug implements the device.Driver interface.
func (drv *Driver) Unplug() error {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	drv.plugged = false
	return nil
}

// Update implements the device.Driver interface.
func (drv *Driver) Update(r device.Report) error {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	if drv.fail != nil {
		return drv.fail
	}
	drv.reports = append(drv.reports, r)
	return nil
}

// Fail causes all future calls to Update() to return the error. A nil error
// restores normal operation.
func (drv *Driver) Fail(err error) {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	drv.fail = err
}

// Plugged returns true if the driver has been plugged in.
func (drv *Driver) Plugged() bool {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	return drv.plugged
}

// Reports returns a copy of the recording.
func (drv *Driver) Reports() []device.Report {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	c := make([]device.Report, len(drv.reports))
	copy(c, drv.reports)
	return c
}

// Len returns the number of reports recorded.
func (drv *Driver) Len() int {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	return len(drv.reports)
}

// Last returns the most recent report. The boolean is false if nothing has
// been recorded.
func (drv *Driver) Last() (device.Report, bool) {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	if len(drv.reports) == 0 {
		return device.Report{}, false
	}
	return drv.reports[len(drv.reports)-1], true
}

// Clear the recording.
func (drv *Driver) Clear() {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	drv.reports = drv.reports[:0]
}

// Wait until at least n reports have been recorded. Returns false if the
// timeout expires first.
func (drv *Driver) Wait(n int, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for drv.Len() < n {
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(time.Millisecond)
	}
	return true
}
