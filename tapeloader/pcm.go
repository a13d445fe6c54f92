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

package tapeloader

import (
	"bytes"
	"encoding/binary"
	"io"
	"time"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/trs80tape/curated"
	"github.com/jetsetilly/trs80tape/logger"
)

// Sentinal error patterns.
const (
	UnsupportedFormat = "tapeloader: unsupported audio format (%s)"
	InvalidAudio      = "tapeloader: %s: %v"
	NoAudio           = "tapeloader: no audio data"
)

// PCM is the decoded audio of a recording.
type PCM struct {
	// mono samples. the left channel in the case of stereo recordings
	Samples []int16

	SampleRate int
	Duration   time.Duration

	// the format of the source file, either "wav" or "mp3"
	Format string

	// number of channels in the source file
	Channels int
}

// PCM decodes the loaded data. Load() will be called if necessary.
func (tl *Loader) PCM() (PCM, error) {
	var p PCM

	if err := tl.Load(); err != nil {
		return p, err
	}

	var err error

	switch tl.Ext() {
	case ".wav":
		p, err = decodeWAV(tl.Data)
	case ".mp3":
		p, err = decodeMP3(tl.Data)
	default:
		return p, curated.Errorf(UnsupportedFormat, tl.Ext())
	}
	if err != nil {
		return p, err
	}

	if len(p.Samples) == 0 || p.SampleRate <= 0 {
		return p, curated.Errorf(NoAudio)
	}

	p.Duration = time.Duration(len(p.Samples)) * time.Second / time.Duration(p.SampleRate)

	logger.Logf(logger.Allow, logTag, "%s: %d channels at %dHz", p.Format, p.Channels, p.SampleRate)
	logger.Logf(logger.Allow, logTag, "total time: %.02fs", p.Duration.Seconds())

	return p, nil
}

func decodeWAV(data []byte) (PCM, error) {
	p := PCM{Format: "wav"}

	dec := wav.NewDecoder(bytes.NewReader(data))
	if dec == nil {
		return p, curated.Errorf(InvalidAudio, p.Format, "error decoding")
	}

	if !dec.IsValidFile() {
		return p, curated.Errorf(InvalidAudio, p.Format, "not a valid wav file")
	}

	// load all data at once
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return p, curated.Errorf(InvalidAudio, p.Format, err)
	}

	p.Channels = int(dec.NumChans)
	p.SampleRate = int(dec.SampleRate)
	if p.Channels < 1 {
		return p, curated.Errorf(InvalidAudio, p.Format, "no channels")
	}

	// shift required to bring samples to 16 bits
	var scale func(int) int16
	switch dec.BitDepth {
	case 8:
		// 8 bit wav data is unsigned
		scale = func(v int) int16 { return int16((v - 128) << 8) }
	case 16:
		scale = func(v int) int16 { return int16(v) }
	case 24:
		scale = func(v int) int16 { return int16(v >> 8) }
	case 32:
		scale = func(v int) int16 { return int16(v >> 16) }
	default:
		return p, curated.Errorf(InvalidAudio, p.Format, "unsupported bit depth")
	}

	// copy first channel only of data stream
	p.Samples = make([]int16, 0, len(buf.Data)/p.Channels)
	for i := 0; i < len(buf.Data); i += p.Channels {
		p.Samples = append(p.Samples, scale(buf.Data[i]))
	}

	return p, nil
}

func decodeMP3(data []byte) (PCM, error) {
	p := PCM{Format: "mp3"}

	dec, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return p, curated.Errorf(InvalidAudio, p.Format, err)
	}

	// the decoded stream is always formatted as 16bit little endian with two
	// channels, even if the source is single channel
	raw, err := io.ReadAll(dec)
	if err != nil {
		return p, curated.Errorf(InvalidAudio, p.Format, err)
	}

	p.Channels = 2
	p.SampleRate = dec.SampleRate()

	// index increment of 4 because there are two bytes per sample per
	// channel and we only want the left channel
	p.Samples = make([]int16, 0, len(raw)/4)
	for i := 0; i+1 < len(raw); i += 4 {
		p.Samples = append(p.Samples, int16(binary.LittleEndian.Uint16(raw[i:])))
	}

	return p, nil
}
