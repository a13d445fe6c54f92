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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a formatting pattern and placeholder values.
//
// The pattern is the identity of the error. Sentinal patterns should be stored
// as exported const strings and tested for with the Is() or Has() functions:
//
//	const UnsupportedFormat = "tapeloader: unsupported format (%s)"
//
//	err := curated.Errorf(UnsupportedFormat, ".flac")
//	if curated.Is(err, UnsupportedFormat) {
//		...
//	}
//
// Has() is similar but looks for the pattern anywhere in the chain of curated
// errors that have been wrapped with the %v verb.
//
// The Error() function normalises the message such that adjacent parts of
// the chain (parts being separated by ": ") are not duplicated. This means
// that a function does not need to know whether the error it is wrapping has
// already been prefixed with the same context:
//
//	tapeloader: tapeloader: file not found
//
// becomes:
//
//	tapeloader: file not found
package curated
