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
	"github.com/jetsetilly/trs80tape/decoder"
	"github.com/jetsetilly/trs80tape/decoder/lowspeed"
	"github.com/jetsetilly/trs80tape/test"
)

func TestFindNextProgram(t *testing.T) {
	pt := test.NewPulseTrain(sampleRate)
	pt.Silence(4800)
	pt.Leader(256)
	pt.Bytes(0xa5, 0x01, 0x02, 0x03)
	pt.Silence(2000)

	var dec decoder.Decoder
	dec = lowspeed.NewDecoder(pt.Samples(), sampleRate)
	test.ExpectEquality(t, dec.State(), decoder.Undecided)
	test.ExpectFailure(t, dec.IsHighSpeed())

	var ann annotation.List
	prg, ok := dec.FindNextProgram(0, &ann)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, bytes.Equal(prg.Binary(), []uint8{0x01, 0x02, 0x03}), true)
	test.ExpectEquality(t, prg.Start(), 4800)
	test.ExpectEquality(t, prg.Decoder(), dec.Name())
	test.ExpectEquality(t, dec.State(), decoder.Detected)

	labels := ann.Labels()
	test.DemandEquality(t, len(labels), 3)
	test.ExpectEquality(t, labels[0].Text, "Proof")
	test.ExpectEquality(t, labels[1].Text, "Sync")
	test.ExpectEquality(t, labels[2].Text, "Silence")

	// nothing else on the tape. state does not change
	_, ok = dec.FindNextProgram(prg.End(), nil)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, dec.State(), decoder.Detected)
}

func TestFindNextProgramSkipsShortLeader(t *testing.T) {
	pt := test.NewPulseTrain(sampleRate)
	pt.Silence(4800)

	// too short to pass the proof
	pt.Leader(100)
	pt.Bytes(0xa5, 0x99)
	pt.Silence(20000)

	pt.Leader(256)
	pt.Bytes(0xa5, 0x42)
	pt.Silence(2000)

	dec := lowspeed.NewDecoder(pt.Samples(), sampleRate)
	prg, ok := dec.FindNextProgram(0, nil)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, bytes.Equal(prg.Binary(), []uint8{0x42}), true)
}

func TestFindNextProgramKeepsThreshold(t *testing.T) {
	pt := test.NewPulseTrain(sampleRate)
	pt.Amplitude = 8000
	pt.Silence(4800)

	// too short to pass the proof
	pt.Leader(50)
	pt.Silence(2000)

	dec := lowspeed.NewDecoder(pt.Samples(), sampleRate)
	test.ExpectEquality(t, dec.Context().Threshold(), lowspeed.DefaultThreshold)

	var ann annotation.List
	_, ok := dec.FindNextProgram(0, &ann)
	test.ExpectFailure(t, ok)

	labels := ann.Labels()
	test.DemandEquality(t, len(labels), 1)
	test.ExpectEquality(t, labels[0].Text, "Missing pulse")

	// the threshold from the last pulse of the failed leader is where the
	// next attempt starts
	test.ExpectEquality(t, dec.Context().Threshold(), 2000)

	_, ok = dec.FindNextProgram(0, nil)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, dec.Context().Threshold(), 2000)
}

func TestFindNextProgramEmpty(t *testing.T) {
	pt := test.NewPulseTrain(sampleRate)
	pt.Silence(4800)

	// leader without a sync byte decodes to nothing
	pt.Leader(256)
	pt.Silence(20000)

	dec := lowspeed.NewDecoder(pt.Samples(), sampleRate)
	_, ok := dec.FindNextProgram(0, nil)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, dec.State(), decoder.NotDetected)
}

func TestFindNextProgramSilence(t *testing.T) {
	dec := lowspeed.NewDecoder(make([]int16, 100000), sampleRate)
	_, ok := dec.FindNextProgram(0, nil)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, dec.State(), decoder.NotDetected)

	// an empty tape
	dec = lowspeed.NewDecoder(nil, sampleRate)
	_, ok = dec.FindNextProgram(0, nil)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, dec.State(), decoder.NotDetected)
}

func TestReadBits(t *testing.T) {
	pt := test.NewPulseTrain(sampleRate)
	pt.Silence(1000)
	pt.Leader(4)
	pt.Byte(0x5a)
	pt.Silence(1000)

	dec := lowspeed.NewDecoder(pt.Samples(), sampleRate)
	bits, ann, explanation := dec.ReadBits(lowspeed.NewContext(), 1000)
	test.ExpectEquality(t, bits, "00001011010")

	// two explanations for every bit and one for the failed clock pulse
	test.ExpectEquality(t, len(explanation), len(bits)*2+1)

	var labels []annotation.Label
	for _, a := range ann {
		if l, ok := a.(annotation.Label); ok {
			labels = append(labels, l)
		}
	}
	test.DemandEquality(t, len(labels), len(bits)+2)
	test.ExpectEquality(t, labels[0], annotation.Label{Text: "Previous", Left: 1000, Right: 1000, Detail: true})
	test.ExpectEquality(t, labels[1].Text, "0")
	test.ExpectEquality(t, labels[5].Text, "1")

	// the cell after the last clock pulse at 2056
	test.ExpectEquality(t, labels[len(labels)-1], annotation.Label{Text: "Silence", Left: 2128, Right: 2224, Detail: true})
}
