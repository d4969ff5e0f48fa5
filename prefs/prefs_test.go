// This file is part of riscvemu.
//
// riscvemu is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// riscvemu is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with riscvemu.  If not, see <https://www.gnu.org/licenses/>.

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/ItsIronicIInsist/riscvEmu/prefs"
	"github.com/ItsIronicIInsist/riscvEmu/test"
)

func cmpPrefFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading prefs file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

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
	test.ExpectFailure(t, x.Set(10))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestIntAndUint64(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var i prefs.Int
	var u prefs.Uint64
	test.ExpectSuccess(t, dsk.Add("int", &i))
	test.ExpectSuccess(t, dsk.Add("uint64", &u))

	test.ExpectSuccess(t, i.Set("-10"))
	test.ExpectFailure(t, i.Set("ten"))
	test.ExpectSuccess(t, u.Set("0x100000"))
	test.ExpectEquality(t, u.Get().(uint64), uint64(1024*1024))
	test.ExpectFailure(t, u.Set(-1))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "int :: -10\nuint64 :: 0x100000\n")

	// reload into new values
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var j prefs.Int
	var v prefs.Uint64
	test.ExpectSuccess(t, dsk.Add("int", &j))
	test.ExpectSuccess(t, dsk.Add("uint64", &v))
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, j.Get().(int), -10)
	test.ExpectEquality(t, v.Get().(uint64), uint64(0x100000))
}

func TestPreserveUnknownKeys(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("other", &s))
	test.ExpectSuccess(t, s.Set("value"))
	test.DemandSuccess(t, dsk.Save())

	// a second disk instance with a different key
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var b prefs.Bool
	test.ExpectSuccess(t, dsk.Add("mine", &b))
	test.ExpectSuccess(t, b.Set(true))
	test.DemandSuccess(t, dsk.Save())

	cmpPrefFile(t, fn, "mine :: true\nother :: value\n")
}

func TestCommandLineOverride(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var b prefs.Bool
	test.ExpectSuccess(t, dsk.Add("trace", &b))

	prefs.PushCommandLineStack("trace::true")
	defer prefs.PopCommandLineStack()

	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, b.Get().(bool), true)
}

func TestHooks(t *testing.T) {
	var i prefs.Int

	var post int
	i.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return fmt.Errorf("negative")
		}
		return nil
	})
	i.SetHookPost(func(v prefs.Value) error {
		post = v.(int)
		return nil
	})

	test.ExpectSuccess(t, i.Set(5))
	test.ExpectEquality(t, post, 5)
	test.ExpectFailure(t, i.Set(-5))
	test.ExpectEquality(t, i.Get().(int), 5)
}

func TestIllegalKey(t *testing.T) {
	dsk, err := prefs.NewDisk(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)
	var b prefs.Bool
	test.ExpectFailure(t, dsk.Add("bad :: key", &b))
	test.ExpectFailure(t, dsk.Add("", &b))

	_, err = prefs.NewDisk("")
	test.ExpectFailure(t, err)
}
