// This file is part of trs80tape.
//
// trs80tape is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// trs80tape is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with trs80tape.  If not, see <https://www.gnu.org/licenses/>.

package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/trs80tape/logger"
	"github.com/jetsetilly/trs80tape/test"
)

func TestTail(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	test.ExpectFailure(t, log.Write(w))
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "lowspeed", "header found")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "lowspeed: header found\n")

	w.Reset()
	log.Log(logger.Allow, "tape", "1 program found")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "lowspeed: header found\ntape: 1 program found\n")

	// asking for too many entries is okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "lowspeed: header found\ntape: 1 program found\n")

	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "tape: 1 program found\n")

	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "lowspeed", "proof failed")
	log.Log(logger.Allow, "lowspeed", "proof failed")
	log.Log(logger.Allow, "lowspeed", "proof failed")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "lowspeed: proof failed (repeat x3)\n")
}

func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Logf(logger.Allow, "tag", "entry %d", 1)
	log.Logf(logger.Allow, "tag", "entry %d", 2)
	log.Logf(logger.Allow, "tag", "entry %d", 3)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: entry 2\ntag: entry 3\n")
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Deny, "tag", "detail")
	test.ExpectFailure(t, log.Write(w))

	log.Log(logger.Allow, "tag", "detail")
	test.ExpectSuccess(t, log.Write(w))
	test.ExpectEquality(t, w.String(), "tag: detail\n")
}

type stringerTest struct{}

func (_ stringerTest) String() string {
	return "stringer test"
}

func TestDetailTypes(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", errors.New("test error"))
	log.Log(logger.Allow, "tag", stringerTest{})
	log.Log(logger.Allow, "tag", 100)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\ntag: stringer test\ntag: 100\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	echo := &test.CompareWriter{}
	log.SetEcho(echo)

	log.Log(logger.Allow, "tag", "one\ntwo")
	test.ExpectSuccess(t, echo.Compare("tag: one two\n"))

	log.SetEcho(nil)
	log.Log(logger.Allow, "tag", "three")
	test.ExpectSuccess(t, echo.Compare("tag: one two\n"))
}
