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

// Package assert contains helpers for checking the goroutine that a function
// is running in.
package assert

import (
	"bytes"
	"runtime"
	"strconv"
)

// GetGoRoutineID returns an identifier for the calling goroutine. The result
// is different between goroutines and consistent for a given goroutine.
//
// The function is relatively expensive and should not be called more than a
// few hundred times a second.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}
