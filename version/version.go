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


// Package version reports the version of the program as recorded in the
// build information.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name of the program.
const ApplicationName = "padreplay"

// set by the linker for release builds:
//
//	-ldflags "-X github.com/jetsetilly/padreplay/version.number=v1.0.0"
var number string

var revision string

var version string

// Version returns the version string and the revision. The release value is
// true if the program was built as a numbered release.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns a single line summary suitable for the -version flag.
func String() string {
	return fmt.Sprintf("%s %s (%s)", ApplicationName, version, revision)
}

func init() {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	switch {
	case vcsRevision == "":
		revision = "no revision information"
	case vcsModified:
		revision = fmt.Sprintf("%s+dirty", vcsRevision)
	default:
		revision = vcsRevision
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
