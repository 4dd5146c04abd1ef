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


package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter collects the usage message written by the flag package so that
// it can be rewritten with sub-mode information.
type helpWriter struct {
	buf strings.Builder
}

func (hw *helpWriter) Write(p []byte) (int, error) {
	return hw.buf.Write(p)
}

func (hw *helpWriter) write(output io.Writer, path string, subModes []subMode, additional string) {
	if output == nil {
		return
	}

	// the flag package always begins with a "Usage:" line
	_, flags, _ := strings.Cut(hw.buf.String(), "\n")

	if flags == "" && len(subModes) == 0 && additional == "" {
		if path == "" {
			fmt.Fprintln(output, "No help available")
		} else {
			fmt.Fprintf(output, "No help available for %s\n", path)
		}
		return
	}

	if path == "" {
		fmt.Fprintln(output, "Usage:")
	} else {
		fmt.Fprintf(output, "Usage for %s mode:\n", path)
	}

	io.WriteString(output, flags)

	if len(subModes) > 0 {
		if flags != "" {
			fmt.Fprintln(output)
		}

		w := 0
		for _, s := range subModes {
			w = max(w, len(s.name))
		}

		fmt.Fprintln(output, "  modes:")
		for i, s := range subModes {
			line := fmt.Sprintf("    %-*s  %s", w, s.name, s.summary)
			if i == 0 {
				line = fmt.Sprintf("%s (default)", line)
			}
			fmt.Fprintln(output, strings.TrimRight(line, " "))
		}
	}

	if additional != "" {
		fmt.Fprintln(output)
		fmt.Fprintln(output, additional)
	}
}
