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
	"archive/zip"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/trs80tape/curated"
)

// Sentinal error patterns.
const (
	UnsupportedScheme = "tapeloader: unsupported URL scheme (%s)"
	UnexpectedHash    = "tapeloader: unexpected hash value"
	LoadError         = "tapeloader: %v"
)

// tag string used in calls to logger.Log().
const logTag = "tapeloader"

// Loader specifies the recording to load.
type Loader struct {
	// filename of recording to load. can be a URL
	Filename string

	// expected hash of the loaded file. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	//
	// the hash is of the file data not the decoded PCM data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
	}
}

// ShortName returns the name of the recording without the path or file
// extension.
func (tl Loader) ShortName() string {
	s := path.Base(tl.Filename)
	s = strings.TrimSuffix(s, path.Ext(tl.Filename))
	return s
}

// Ext returns the file extension of the recording in lower case. For a file
// in a zip archive this is the extension of the file in the archive.
func (tl Loader) Ext() string {
	return strings.ToLower(path.Ext(tl.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (tl Loader) HasLoaded() bool {
	return len(tl.Data) > 0
}

// splitArchive returns the path to the zip file and the path of the file
// inside the zip file. Returns false if the filename does not refer to a file
// in a zip file.
func splitArchive(filename string) (string, string, bool) {
	const ext = ".zip/"
	i := strings.Index(strings.ToLower(filename), ext)
	if i == -1 {
		return "", "", false
	}
	return filename[:i+len(ext)-1], filename[i+len(ext):], true
}

// Load the recording. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (tl *Loader) Load() error {
	if len(tl.Data) > 0 {
		return nil
	}

	scheme := "file"

	url, err := url.Parse(tl.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(tl.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(LoadError, resp.Status)
		}

		tl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	case "file":
		fallthrough

	case "":
		if zipPath, inZip, ok := splitArchive(tl.Filename); ok {
			tl.Data, err = loadFromArchive(zipPath, inZip)
		} else {
			tl.Data, err = os.ReadFile(tl.Filename)
		}
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	default:
		return curated.Errorf(UnsupportedScheme, scheme)
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(tl.Data))

	// check for hash consistency
	if tl.Hash != "" && tl.Hash != hash {
		tl.Data = nil
		return curated.Errorf(UnexpectedHash)
	}

	tl.Hash = hash

	return nil
}

func loadFromArchive(zipPath string, inZip string) ([]byte, error) {
	zf, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, err
	}
	defer zf.Close()

	f, err := zf.Open(inZip)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}
