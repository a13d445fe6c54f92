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

package lowspeed

import (
	"testing"

	"github.com/jetsetilly/trs80tape/test"
)

func TestReadBit(t *testing.T) {
	const sampleRate = 48000

	pt := test.NewPulseTrain(sampleRate)
	pt.Silence(1000)
	pt.Leader(10)
	pt.Bit(true)
	pt.Silence(1000)

	dec := NewDecoder(pt.Samples(), sampleRate)
	period := dec.Period()

	// the final bit is a one
	bit, clock, data := dec.readBit(NewContext(), 1000+period*9, false, false)
	test.ExpectSuccess(t, bit)
	c, ok := clock.Peak()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c.Frame, 1000+period*10)
	d, ok := data.Peak()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, d.Frame, 1000+period*10+pt.HalfPeriod())

	// the bit before is a zero
	bit, clock, data = dec.readBit(NewContext(), 1000+period*8, false, false)
	test.ExpectFailure(t, bit)
	test.ExpectEquality(t, clock.Class(), Pulse)
	test.ExpectEquality(t, data.Class(), Silence)

	// nothing after the final bit
	bit, clock, data = dec.readBit(NewContext(), 1000+period*10, false, false)
	test.ExpectFailure(t, bit)
	test.ExpectEquality(t, clock.Class(), Silence)
	test.ExpectEquality(t, data.Class(), Silence)
}

func TestReadBitLateClock(t *testing.T) {
	const sampleRate = 48000

	pt := test.NewPulseTrain(sampleRate)
	pt.Silence(1000)
	pt.Leader(2)
	pt.Silence(40)
	pt.Amplitude = -test.DefaultPulseAmplitude
	pt.Bit(true)
	pt.Silence(1000)

	dec := NewDecoder(pt.Samples(), sampleRate)
	period := dec.Period()

	_, clock, _ := dec.readBit(NewContext(), 1000+period, false, false)
	test.ExpectEquality(t, clock.Class(), Silence)

	// the late clock pulse has the opposite polarity to the previous clock
	bit, clock, _ := dec.readBit(NewContext(), 1000+period, true, false)
	test.ExpectSuccess(t, bit)
	c, ok := clock.Peak()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c.Frame, 1000+period*2+40)
	test.ExpectEquality(t, c.Value, -test.DefaultPulseAmplitude)
}
