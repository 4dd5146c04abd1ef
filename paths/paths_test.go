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

package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/padreplay/paths"
	"github.com/jetsetilly/padreplay/test"
)

func TestPaths(t *testing.T) {
	// ResourcePath() creates directories relative to the working directory
	// so run the test from inside a temporary directory
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	defer func() {
		_ = os.Chdir(wd)
	}()

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".padreplay", "foo", "bar", "baz"))

	pth, err = paths.ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".padreplay", "foo", "bar"))

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".padreplay", "baz"))

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".padreplay")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("memviz", "demo")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "memviz_demo_"))

	fn = paths.UniqueFilename("memviz", " ")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "memviz_"))
	test.ExpectFailure(t, strings.Contains(fn, "__"))
}
