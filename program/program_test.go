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

package program_test

import (
	"testing"

	"github.com/jetsetilly/trs80tape/program"
	"github.com/jetsetilly/trs80tape/test"
)

func TestNumbering(t *testing.T) {
	p := program.NewProgram("test", 10, 20, []uint8{1, 2, 3}, nil, nil)
	test.ExpectEquality(t, p.Track(), 0)
	test.ExpectEquality(t, p.Copy(), 0)

	n := p.WithNumbering(2, 3)
	test.ExpectEquality(t, n.Track(), 2)
	test.ExpectEquality(t, n.Copy(), 3)

	// original is unchanged
	test.ExpectEquality(t, p.Track(), 0)
	test.ExpectEquality(t, n.String(), "track 2 copy 3: 3 bytes [10, 20) (test)")
}

func TestSameBinary(t *testing.T) {
	a := program.NewProgram("test", 0, 0, []uint8{1, 2, 3}, nil, nil)
	b := program.NewProgram("test", 100, 200, []uint8{1, 2, 3}, nil, nil)
	c := program.NewProgram("test", 0, 0, []uint8{1, 2}, nil, nil)
	d := program.NewProgram("test", 0, 0, []uint8{1, 2, 4}, nil, nil)

	test.ExpectSuccess(t, a.SameBinary(b))
	test.ExpectFailure(t, a.SameBinary(c))
	test.ExpectFailure(t, a.SameBinary(d))
	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.ExpectInequality(t, a.Hash(), d.Hash())
}

func TestTiming(t *testing.T) {
	bits := []program.Bit{
		{Start: 0, End: 100, Kind: program.Zero},
		{Start: 100, End: 200, Kind: program.One},
		{Start: 200, End: 300, Kind: program.Zero},
		{Start: 300, End: 400, Kind: program.Bad},
	}
	p := program.NewProgram("test", 0, 400, nil, bits, nil)

	tm := p.Timing()
	test.ExpectEquality(t, tm.Bad, 1)
	test.ExpectEquality(t, tm.Mean, 100.0)
	test.ExpectEquality(t, tm.StdDev, 0.0)

	bits = []program.Bit{
		{Start: 0, Kind: program.Zero},
		{Start: 90, Kind: program.Zero},
		{Start: 200, Kind: program.Zero},
	}
	p = program.NewProgram("test", 0, 400, nil, bits, nil)
	tm = p.Timing()
	test.ExpectEquality(t, tm.Bad, 0)
	test.ExpectEquality(t, tm.Mean, 100.0)
	test.ExpectApproximate(t, tm.StdDev, 14.142, 0.001)
}
