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

package lowspeed_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/trs80tape/annotation"
	"github.com/jetsetilly/trs80tape/decoder/lowspeed"
	"github.com/jetsetilly/trs80tape/program"
	"github.com/jetsetilly/trs80tape/test"
	"pgregory.net/rapid"
)

func TestLoadData(t *testing.T) {
	pt := test.NewPulseTrain(sampleRate)
	pt.Silence(1000)
	pt.Leader(64)
	pt.Bytes(0xa5, 0x01, 0xff)
	pt.Silence(1000)

	var ann annotation.List
	dec := lowspeed.NewDecoder(pt.Samples(), sampleRate)
	prg := dec.LoadData(lowspeed.NewContext(), 1000, &ann)

	test.ExpectEquality(t, bytes.Equal(prg.Binary(), []uint8{0x01, 0xff}), true)
	test.ExpectEquality(t, prg.Start(), 1000)
	test.ExpectEquality(t, prg.End(), 1000+dec.Period()*87)

	// the first leader pulse is not a bit of its own
	test.ExpectEquality(t, len(prg.Bits()), 87)

	b := prg.Bytes()
	test.DemandEquality(t, len(b), 2)
	test.ExpectEquality(t, b[0].Value, uint8(0x01))
	test.ExpectEquality(t, b[1].Value, uint8(0xff))
	test.ExpectEquality(t, b[0].End, b[1].Start)
	test.ExpectEquality(t, b[1].End-b[1].Start, dec.Period()*8)

	bits := prg.Bits()
	for _, k := range bits[len(bits)-8:] {
		test.ExpectEquality(t, k.Kind, program.One)
	}

	var labels []string
	for _, l := range ann.Labels() {
		labels = append(labels, l.Text)
	}
	test.DemandEquality(t, len(labels), 2)
	test.ExpectEquality(t, labels[0], "Sync")
	test.ExpectEquality(t, labels[1], "Silence")
}

func TestLoadDataTrailingNoise(t *testing.T) {
	pt := test.NewPulseTrain(sampleRate)
	pt.Silence(1000)
	pt.Leader(64)
	pt.Bytes(0xa5, 0x01, 0xff)
	pt.Noise(pt.Period()*5, 1000)
	pt.Silence(1000)

	dec := lowspeed.NewDecoder(pt.Samples(), sampleRate)
	prg := dec.LoadData(lowspeed.NewContext(), 1000, nil)

	test.ExpectEquality(t, bytes.Equal(prg.Binary(), []uint8{0x01, 0xff}), true)
	test.ExpectEquality(t, len(prg.Bits()), 87)
	test.ExpectEquality(t, prg.Timing().Bad, 0)

	// the noise is still covered by the program
	test.ExpectEquality(t, prg.End() > 1000+dec.Period()*90, true)
}

func TestLoadDataNoiseBurst(t *testing.T) {
	pt := test.NewPulseTrain(sampleRate)
	pt.Silence(1000)
	pt.Leader(64)
	pt.Bytes(0xa5, 0x01)
	pt.Noise(pt.Period(), 1000)
	pt.Bytes(0x02)
	pt.Silence(1000)

	dec := lowspeed.NewDecoder(pt.Samples(), sampleRate)
	prg := dec.LoadData(lowspeed.NewContext(), 1000, nil)

	// the bad bit is recorded but does not count towards a byte
	test.ExpectEquality(t, prg.Timing().Bad, 1)
	test.ExpectEquality(t, bytes.Equal(prg.Binary(), []uint8{0x01, 0x02}), true)
}

func TestLoadDataNoSync(t *testing.T) {
	pt := test.NewPulseTrain(sampleRate)
	pt.Silence(1000)
	pt.Leader(64)
	pt.Bytes(0xa4, 0x01, 0xff)
	pt.Silence(1000)

	dec := lowspeed.NewDecoder(pt.Samples(), sampleRate)
	prg := dec.LoadData(lowspeed.NewContext(), 1000, nil)
	test.ExpectEquality(t, len(prg.Binary()), 0)
	test.ExpectEquality(t, len(prg.Bits()), 87)
}

func TestLoadDataLateClock(t *testing.T) {
	pt := test.NewPulseTrain(sampleRate)
	pt.Silence(1000)
	pt.Leader(64)
	pt.Byte(0xa5)
	pt.Silence(40)
	pt.Amplitude = -test.DefaultPulseAmplitude
	pt.Bytes(0x42, 0x43)
	pt.Silence(1000)

	dec := lowspeed.NewDecoder(pt.Samples(), sampleRate)
	prg := dec.LoadData(lowspeed.NewContext(), 1000, nil)
	test.ExpectEquality(t, bytes.Equal(prg.Binary(), []uint8{0x42, 0x43}), true)
}

func TestLoadDataLateClockPolarity(t *testing.T) {
	pt := test.NewPulseTrain(sampleRate)
	pt.Silence(1000)
	pt.Leader(64)
	pt.Byte(0xa5)
	pt.Silence(40)
	pt.Bytes(0x42, 0x43)
	pt.Silence(1000)

	// late clock pulse has the same polarity as the previous clock
	dec := lowspeed.NewDecoder(pt.Samples(), sampleRate)
	prg := dec.LoadData(lowspeed.NewContext(), 1000, nil)
	test.ExpectEquality(t, len(prg.Binary()), 0)
}

func TestLoadDataLateClockOnce(t *testing.T) {
	pt := test.NewPulseTrain(sampleRate)
	pt.Silence(1000)
	pt.Leader(64)
	pt.Bytes(0xa5, 0x42)
	pt.Silence(40)
	pt.Amplitude = -test.DefaultPulseAmplitude
	pt.Bytes(0x43)
	pt.Silence(1000)

	// a late clock is only allowed directly after the sync byte
	dec := lowspeed.NewDecoder(pt.Samples(), sampleRate)
	prg := dec.LoadData(lowspeed.NewContext(), 1000, nil)
	test.ExpectEquality(t, bytes.Equal(prg.Binary(), []uint8{0x42}), true)
}

func TestRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.SampledFrom([]int{0, 1, 8, 257}).Draw(t, "length")
		data := rapid.SliceOfN(rapid.Byte(), n, n).Draw(t, "data")
		alternate := rapid.Bool().Draw(t, "alternate")
		leader := rapid.IntRange(40, 256).Draw(t, "leader")

		pt := test.NewPulseTrain(sampleRate)
		pt.Alternate = alternate
		pt.Silence(1000)
		pt.Leader(leader)
		pt.Byte(0xa5)
		pt.Bytes(data...)
		pt.Silence(1000)

		dec := lowspeed.NewDecoder(pt.Samples(), sampleRate)
		prg := dec.LoadData(lowspeed.NewContext(), 1000, nil)

		if !bytes.Equal(prg.Binary(), data) {
			t.Fatalf("decoded %d bytes, expected %d bytes", len(prg.Binary()), len(data))
		}
		if len(prg.Bytes()) != len(data) {
			t.Fatalf("%d byte records for %d bytes", len(prg.Bytes()), len(data))
		}
	})
}
