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

// Package report writes the results of decoding a tape. Results can be
// written as plain text, as YAML, or as a hex dump of each program's binary.
package report

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/jetsetilly/trs80tape/curated"
	"github.com/jetsetilly/trs80tape/program"
	"github.com/jetsetilly/trs80tape/tape"
	"gopkg.in/yaml.v3"
)

// Sentinal error pattern returned by all report functions.
const ReportError = "report: %v"

// Decoder summarises the outcome of one decoder.
type Decoder struct {
	Name  string `yaml:"name"`
	State string `yaml:"state"`
}

// Program summarises a single program.
type Program struct {
	Track   int    `yaml:"track"`
	Copy    int    `yaml:"copy"`
	Decoder string `yaml:"decoder"`
	Start   int    `yaml:"start"`
	End     int    `yaml:"end"`
	Length  int    `yaml:"length"`
	SHA1    string `yaml:"sha1"`

	// width of bit cells in frames
	BitMean   float64 `yaml:"bit_mean"`
	BitStdDev float64 `yaml:"bit_stddev"`
	BadBits   int     `yaml:"bad_bits"`
}

// Summary of a decoded tape.
type Summary struct {
	Tape       string    `yaml:"tape"`
	SampleRate int       `yaml:"sample_rate"`
	Frames     int       `yaml:"frames"`
	Decoders   []Decoder `yaml:"decoders"`
	Programs   []Program `yaml:"programs"`
}

// NewSummary creates a summary from a tape after Decode() has been called.
func NewSummary(tp *tape.Tape) Summary {
	s := Summary{
		Tape:       tp.Name,
		SampleRate: tp.SampleRate,
		Frames:     len(tp.Samples()),
	}

	for _, dec := range tp.Decoders() {
		s.Decoders = append(s.Decoders, Decoder{
			Name:  dec.Name(),
			State: dec.State().String(),
		})
	}

	for _, prg := range tp.Programs() {
		tm := prg.Timing()
		s.Programs = append(s.Programs, Program{
			Track:     prg.Track(),
			Copy:      prg.Copy(),
			Decoder:   prg.Decoder(),
			Start:     prg.Start(),
			End:       prg.End(),
			Length:    len(prg.Binary()),
			SHA1:      prg.Hash(),
			BitMean:   tm.Mean,
			BitStdDev: tm.StdDev,
			BadBits:   tm.Bad,
		})
	}

	return s
}

// WriteYAML writes the summary as a YAML document.
func (s Summary) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return curated.Errorf(ReportError, err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf(ReportError, err)
	}
	return nil
}

// ReadYAML reads a summary previously written with WriteYAML().
func ReadYAML(r io.Reader) (Summary, error) {
	var s Summary
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return s, curated.Errorf(ReportError, err)
	}
	return s, nil
}

// WriteText writes the summary in a form suitable for the terminal.
func (s Summary) WriteText(w io.Writer) error {
	var err error
	write := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	write("%s: %d frames at %dHz\n", s.Tape, s.Frames, s.SampleRate)
	for _, p := range s.Programs {
		write("track %d copy %d: %d bytes [%d, %d) %s (%s)\n", p.Track, p.Copy, p.Length, p.Start, p.End, p.SHA1, p.Decoder)
		if p.BadBits > 0 {
			write("  %d bad bits\n", p.BadBits)
		}
	}
	if len(s.Programs) == 0 {
		write("no programs found\n")
	}

	if err != nil {
		return curated.Errorf(ReportError, err)
	}
	return nil
}

// HexDump writes the program's binary in the style of `hexdump -C`.
func HexDump(w io.Writer, prg *program.Program) error {
	if _, err := fmt.Fprintln(w, prg); err != nil {
		return curated.Errorf(ReportError, err)
	}

	d := hex.Dumper(w)
	if _, err := d.Write(prg.Binary()); err != nil {
		return curated.Errorf(ReportError, err)
	}
	if err := d.Close(); err != nil {
		return curated.Errorf(ReportError, err)
	}

	return nil
}
