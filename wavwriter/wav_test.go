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

package wavwriter_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/trs80tape/curated"
	"github.com/jetsetilly/trs80tape/tapeloader"
	"github.com/jetsetilly/trs80tape/test"
	"github.com/jetsetilly/trs80tape/wavwriter"
)

func TestWriteRange(t *testing.T) {
	samples := []int16{0, 1, 2, -3, 4, 5000, -6000, 7}
	fn := filepath.Join(t.TempDir(), "clip.wav")

	err := wavwriter.WriteRange(fn, samples, 48000, 2, 7)
	test.DemandSuccess(t, err)

	tl := tapeloader.NewLoader(fn)
	p, err := tl.PCM()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.SampleRate, 48000)
	test.ExpectEquality(t, p.Channels, 1)
	test.ExpectEquality(t, fmt.Sprint(p.Samples), "[2 -3 4 5000 -6000]")
}

func TestWriteRangeClipped(t *testing.T) {
	samples := []int16{10, 20, 30}
	fn := filepath.Join(t.TempDir(), "clip.wav")

	test.DemandSuccess(t, wavwriter.WriteRange(fn, samples, 44100, -100, 100))

	tl := tapeloader.NewLoader(fn)
	p, err := tl.PCM()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fmt.Sprint(p.Samples), "[10 20 30]")

	err = wavwriter.WriteRange(fn, samples, 44100, 3, 3)
	test.ExpectSuccess(t, curated.Is(err, wavwriter.WavWriterError))
}

func TestWavWriter(t *testing.T) {
	_, err := wavwriter.New("", 0)
	test.ExpectFailure(t, err)

	fn := filepath.Join(t.TempDir(), "out.wav")
	aw, err := wavwriter.New(fn, 22050)
	test.DemandSuccess(t, err)
	aw.Write([]int16{1, 2})
	aw.Write([]int16{3})
	test.ExpectEquality(t, aw.Len(), 3)
	test.DemandSuccess(t, aw.Close())

	tl := tapeloader.NewLoader(fn)
	p, err := tl.PCM()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fmt.Sprint(p.Samples), "[1 2 3]")

	// directory doesn't exist
	aw, err = wavwriter.New(filepath.Join(t.TempDir(), "missing", "out.wav"), 22050)
	test.DemandSuccess(t, err)
	aw.Write([]int16{1})
	test.ExpectFailure(t, aw.Close())
}
