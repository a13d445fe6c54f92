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

// Package wavwriter allows writing of sample data to disk as a 16 bit mono WAV
// file. Sample data is buffered in memory in its entirity and written to disk
// when the WavWriter is closed.
package wavwriter

import (
	"os"

	"github.com/jetsetilly/trs80tape/curated"
	"github.com/jetsetilly/trs80tape/logger"
	"github.com/youpy/go-wav"
)

// tag string used in calls to logger.Log().
const logTag = "wavwriter"

// Sentinal error pattern returned by all wavwriter functions.
const WavWriterError = "wavwriter: %v"

// WavWriter buffers samples for writing to a WAV file.
type WavWriter struct {
	filename   string
	sampleRate int
	buffer     []wav.Sample
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, sampleRate int) (*WavWriter, error) {
	if sampleRate <= 0 {
		return nil, curated.Errorf(WavWriterError, "sample rate must be positive")
	}

	aw := &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		buffer:     make([]wav.Sample, 0),
	}

	return aw, nil
}

// Write adds samples to the end of the buffer.
func (aw *WavWriter) Write(samples []int16) {
	for _, s := range samples {
		w := wav.Sample{}
		w.Values[0] = int(s)
		aw.buffer = append(aw.buffer, w)
	}
}

// Len returns the number of samples in the buffer.
func (aw *WavWriter) Len() int {
	return len(aw.buffer)
}

// Close writes the buffered samples to disk.
func (aw *WavWriter) Close() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf(WavWriterError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(WavWriterError, err)
		}
	}()

	enc := wav.NewWriter(f, uint32(len(aw.buffer)), 1, uint32(aw.sampleRate), 16)
	if enc == nil {
		return curated.Errorf(WavWriterError, "bad parameters for wav encoding")
	}

	logger.Logf(logger.Allow, logTag, "writing %d samples to %s", len(aw.buffer), aw.filename)

	err = enc.WriteSamples(aw.buffer)
	if err != nil {
		return curated.Errorf(WavWriterError, err)
	}

	return nil
}

// WriteRange writes the frames from start (inclusive) to end (exclusive) to a
// new WAV file. The range is clipped to the sample buffer.
func WriteRange(filename string, samples []int16, sampleRate int, start int, end int) error {
	start = max(start, 0)
	end = min(end, len(samples))
	if start >= end {
		return curated.Errorf(WavWriterError, "empty range")
	}

	aw, err := New(filename, sampleRate)
	if err != nil {
		return err
	}
	aw.Write(samples[start:end])

	return aw.Close()
}
