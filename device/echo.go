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
	"fmt"
	"io"
)

// EchoDriver writes a line to an io.Writer for every change of report. It is
// useful when no real backend is available.
type EchoDriver struct {
	w       io.Writer
	last    Report
	changed bool
}

// NewEchoDriver is the preferred method of initialisation for the EchoDriver
// type.
func NewEchoDriver(w io.Writer) *EchoDriver {
	return &EchoDriver{w: w}
}

// Plug implements the Driver interface.
func (drv *EchoDriver) Plug() error {
	drv.changed = true
	_, err := io.WriteString(drv.w, "plug\n")
	return err
}

// Unplug implements the Driver interface.
func (drv *EchoDriver) Unplug() error {
	_, err := io.WriteString(drv.w, "unplug\n")
	return err
}

// Update implements the Driver interface.
func (drv *EchoDriver) Update(r Report) error {
	if r == drv.last && !drv.changed {
		return nil
	}
	drv.changed = false
	drv.last = r
	_, err := fmt.Fprintln(drv.w, r.String())
	return err
}
