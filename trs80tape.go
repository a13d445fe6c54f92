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

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/trs80tape/decoder/lowspeed"
	"github.com/jetsetilly/trs80tape/logger"
	"github.com/jetsetilly/trs80tape/modalflag"
	"github.com/jetsetilly/trs80tape/report"
	"github.com/jetsetilly/trs80tape/statsview"
	"github.com/jetsetilly/trs80tape/tape"
	"github.com/jetsetilly/trs80tape/tapeloader"
	"github.com/jetsetilly/trs80tape/version"
	"github.com/jetsetilly/trs80tape/wavwriter"
)

// default cut-off frequency for the high-pass filter applied before decoding.
const defaultHighPass = 500.0

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch runs the mode specified by the arguments and returns the exit value.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("DECODE", "EXPLAIN", "BITS", "VERSION")
	md.AdditionalHelp("Flags for each mode are listed with the -help flag after the mode name.")

	log := md.AddBool("log", false, "echo debugging log to output")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			fmt.Fprintf(output, "stats server available at %s\n", statsview.Launch(""))
		} else {
			fmt.Fprintln(output, "stats server not available in this build")
		}
	}

	switch md.Mode() {
	case "DECODE":
		err = decode(md, output)

	case "EXPLAIN":
		err = explain(md, output)

	case "BITS":
		err = bits(md, output)

	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// loadTape loads the file and prepares a tape for decoding.
func loadTape(filename string, highPass float64) (*tape.Tape, tapeloader.Loader, error) {
	tl := tapeloader.NewLoader(filename)
	pcm, err := tl.PCM()
	if err != nil {
		return nil, tl, err
	}
	return tape.NewTape(tl.ShortName(), pcm.Samples, pcm.SampleRate, highPass), tl, nil
}

// fileAndFrame returns the two arguments required by the EXPLAIN and BITS
// modes.
func fileAndFrame(md *modalflag.Modes) (string, int, error) {
	if len(md.RemainingArgs()) != 2 {
		return "", 0, fmt.Errorf("tape file and frame number required for %s mode", md)
	}
	frame, err := strconv.Atoi(md.GetArg(1))
	if err != nil {
		return "", 0, fmt.Errorf("frame must be a number: %s", md.GetArg(1))
	}
	return md.GetArg(0), frame, nil
}

func decode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	highPass := md.AddFloat64("highpass", defaultHighPass, "high-pass filter cut-off in Hz (0 for no filter)")
	yaml := md.AddBool("yaml", false, "print summary as YAML")
	dump := md.AddBool("dump", false, "hex dump of every program")
	clips := md.AddString("clips", "", "directory in which to save the audio of every program")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("tape file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	tp, tl, err := loadTape(md.GetArg(0), *highPass)
	if err != nil {
		return err
	}
	tp.Decode(lowspeed.Factory)

	s := report.NewSummary(tp)
	if *yaml {
		err = s.WriteYAML(output)
	} else {
		err = s.WriteText(output)
	}
	if err != nil {
		return err
	}

	if *dump {
		for _, prg := range tp.Programs() {
			if err := report.HexDump(output, prg); err != nil {
				return err
			}
		}
	}

	if *clips != "" {
		for _, prg := range tp.Programs() {
			fn := filepath.Join(*clips, fmt.Sprintf("%s_%d_%d.wav", tl.ShortName(), prg.Track(), prg.Copy()))
			err := wavwriter.WriteRange(fn, tp.Original(), tp.SampleRate, prg.Start(), prg.End())
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func explain(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	highPass := md.AddFloat64("highpass", defaultHighPass, "high-pass filter cut-off in Hz (0 for no filter)")
	threshold := md.AddInt("threshold", lowspeed.DefaultThreshold, "peak threshold")
	graph := md.AddString("memviz", "", "write graphviz rendering of the result to file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, frame, err := fileAndFrame(md)
	if err != nil {
		return err
	}

	tp, _, err := loadTape(filename, *highPass)
	if err != nil {
		return err
	}

	dec := lowspeed.NewDecoder(tp.Samples(), tp.SampleRate)
	r := dec.ClassifyAt(frame, float64(*threshold), true)

	if pk, ok := r.Peak(); ok {
		fmt.Fprintf(output, "%s: value %d at %d (range %d)\n", r.Class(), pk.Value, pk.Frame, pk.Range)
	} else {
		fmt.Fprintln(output, r.Class())
	}
	fmt.Fprintln(output, r.Explanation)
	for _, a := range r.Annotations {
		fmt.Fprintf(output, "  %s\n", a)
	}

	if *graph != "" {
		f, err := os.Create(*graph)
		if err != nil {
			return err
		}
		defer f.Close()
		memviz.Map(f, &r)
	}

	return nil
}

func bits(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	highPass := md.AddFloat64("highpass", defaultHighPass, "high-pass filter cut-off in Hz (0 for no filter)")
	verbose := md.AddBool("v", false, "print explanation for every pulse")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, frame, err := fileAndFrame(md)
	if err != nil {
		return err
	}

	tp, _, err := loadTape(filename, *highPass)
	if err != nil {
		return err
	}

	dec := lowspeed.NewDecoder(tp.Samples(), tp.SampleRate)
	s, ann, explanation := dec.ReadBits(lowspeed.NewContext(), frame)

	fmt.Fprintf(output, "%d bits: %s\n", len(s), s)
	if *verbose {
		for _, e := range explanation {
			fmt.Fprintf(output, "  %s\n", e)
		}
		for _, a := range ann {
			fmt.Fprintf(output, "  %s\n", a)
		}
	}

	return nil
}
