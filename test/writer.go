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

package test

import (
	"strings"
	"sync"
)

// Writer is an implementation of the io.Writer interface that collects
// everything written to it. It should be used to test output that would
// normally go to the terminal or to a log file.
type Writer struct {
	crit   sync.Mutex
	buffer strings.Builder
}

func (tw *Writer) Write(p []byte) (n int, err error) {
	tw.crit.Lock()
	defer tw.crit.Unlock()
	return tw.buffer.Write(p)
}

// Clear the contents of the buffer.
func (tw *Writer) Clear() {
	tw.crit.Lock()
	defer tw.crit.Unlock()
	tw.buffer.Reset()
}

// Compare buffered output with predefined string.
func (tw *Writer) Compare(s string) bool {
	return tw.String() == s
}

// String returns the current contents of the buffer.
func (tw *Writer) String() string {
	tw.crit.Lock()
	defer tw.crit.Unlock()
	return tw.buffer.String()
}
