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

// Package tapeloader is used to specify the recording that is to be decoded.
//
// Recordings can be loaded from a local file, from a file inside a zip
// archive, or over HTTP. The Load() function reads the raw file data and the
// PCM() function decodes it into a buffer of mono samples.
//
// The simplest instance of the Loader type:
//
//	tl := tapeloader.Loader{
//		Filename: "tapes/LOAD80-Feb82-s1.wav",
//	}
//
// It is preferred however that the NewLoader() function is used.
//
// A file inside a zip archive is specified by continuing the path after the
// name of the archive:
//
//	tl := tapeloader.NewLoader("tapes/collection.zip/side1.wav")
//
// Supported audio formats are WAV (8, 16, 24 and 32 bit integer PCM) and MP3.
// Stereo recordings are reduced to the left channel.
package tapeloader
