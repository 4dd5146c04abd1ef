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

// Package prefs facilitates the storage of preferences to disk. Preference
// values are declared as one of the types in this package (Bool, Int, String
// or Generic) and registered with a Disk instance under a key:
//
//	var rate prefs.Int
//	dsk, _ := prefs.NewDisk(pth)
//	_ = dsk.Add("playback.tickrate", &rate)
//	_ = dsk.Load()
//
// The values are safe to read and write from more than one goroutine.
//
// Each type supports pre and post hooks. A pre hook that returns an error
// prevents the value from being changed, which is how value ranges are
// enforced.
//
// Values can be overridden from the command line with PushCommandLineStack().
// The overrides are consumed by the next call to Disk.Load().
//
// The prefs file is a plain text file, one preference per line, in the form:
//
//	key :: value
package prefs
