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


package statsview

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// DefaultAddress is the address the server listens on if no other address
// is given to Launch().
const DefaultAddress = "localhost:12600"

const path = "/debug/statsview"

var launched sync.Once

// Launch the statistics server in the background and write its location to
// output. The server runs for the lifetime of the program. Only the first
// call has any effect.
func Launch(output io.Writer, addr string) {
	if addr == "" {
		addr = DefaultAddress
	}

	launched.Do(func() {
		viewer.SetConfiguration(viewer.WithAddr(addr))
		mgr := statsview.New()
		go mgr.Start()

		if output != nil {
			fmt.Fprintf(output, "stats server available at http://%s%s\n", addr, path)
		}
	})
}
