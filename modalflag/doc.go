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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("DECODE", "EXPLAIN", "BITS", "VERSION")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// After Parse() the Mode() function returns the sub-mode that was selected.
// The first sub-mode in the list is the default and is selected if the first
// argument after the flags is not the name of a sub-mode. Sub-mode
// comparisons are case insensitive.
//
// Flags for the selected mode are added after a call to NewMode(), followed
// by another call to Parse():
//
//	md.NewMode()
//	threshold := md.AddInt("threshold", 3000, "peak threshold")
//	p, err := md.Parse()
//
// Non-flag arguments are retrieved with the RemainingArgs() or GetArg()
// functions. The Path() function returns all the modes encountered so far,
// separated by a forward slash, and is used as the banner for help messages.
package modalflag
