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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/padreplay/curated"
	"github.com/jetsetilly/padreplay/prefs"
	"github.com/jetsetilly/padreplay/test"
)

func getTmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "padreplay_prefs_test")
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	if expected != string(data) {
		t.Errorf("expected data and data in prefs file do not match")
		t.Logf("expected:\n%s", expected)
		t.Logf("in file:\n%s", string(data))
	}
}

func TestBool(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("true"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestInt(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))

	// test string conversion to int
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	// while we have a prefs.Int instance set up we'll test some
	// failure conditions
	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
}

func TestHookPre(t *testing.T) {
	var v prefs.Int
	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) < 1 || value.(int) > 240 {
			return fmt.Errorf("out of range")
		}
		return nil
	})

	test.ExpectSuccess(t, v.Set(60))
	test.ExpectFailure(t, v.Set(0))
	test.ExpectFailure(t, v.Set(241))
	test.ExpectEquality(t, v.Get().(int), 60)
}

func TestGeneric(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var w, h int

	v := prefs.NewGeneric(
		func(s string) error {
			_, err := fmt.Sscanf(s, "%d,%d", &w, &h)
			return err
		},
		func() string {
			return fmt.Sprintf("%d,%d", w, h)
		},
	)
	test.ExpectSuccess(t, dsk.Add("generic", v))

	w = 1
	h = 2
	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "generic :: 1,2\n")

	// reset values and reload them from disk
	w = 0
	h = 0
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, w, 1)
	test.ExpectEquality(t, h, 2)
}

// write bool and then a string from a different prefs.Disk instance. tests
// that the second writing doesn't clobber the results of the first write.
func TestBoolAndString(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	// start a new disk instance using the same file
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	cmpTmpFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestMissingFile(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectFailure(t, dsk.Add("number", &v))

	err = dsk.Load()
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))
}

func TestCommandLineStack(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Bool
	test.ExpectSuccess(t, dsk.Add("playback.tickrate", &v))
	test.ExpectSuccess(t, dsk.Add("playback.loop", &w))
	test.ExpectSuccess(t, v.Set(60))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("playback.tickrate::144; unknown::foo")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)

	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.Get().(int), 144)
	test.ExpectEquality(t, w.Get().(bool), false)

	// the override has been consumed and the unknown key remains
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unknown::foo")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}

func TestMaxStringLength(t *testing.T) {
	var s prefs.String
	test.ExpectSuccess(t, s.Set("123456789"))
	test.ExpectEquality(t, s.String(), "123456789")

	// setting maximum length will crop the existing string
	s.SetMaxLen(5)
	test.ExpectEquality(t, s.String(), "12345")

	// unsetting a maximum length will not result in cropped string
	// information reappearing
	s.SetMaxLen(0)
	test.ExpectEquality(t, s.String(), "12345")

	s.SetMaxLen(3)
	test.ExpectSuccess(t, s.Set("abcdefghi"))
	test.ExpectEquality(t, s.String(), "abc")
}
