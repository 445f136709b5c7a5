// This file is part of ls8.
//
// ls8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ls8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ls8.  If not, see <https://www.gnu.org/licenses/>.

package loader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/ls8/curated"
)

// Loader is used to specify the program to use when attaching to the LS-8.
type Loader struct {
	// filename of the program to load. can be a path or an HTTP URL
	Filename string

	// expected hash of the loaded program. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the program bytes
	Hash string

	// the program bytes. a program is always loaded at address zero
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// NewLoaderFromData creates a loader for a program that has already been
// parsed. The name is used in place of a filename.
func NewLoaderFromData(name string, data []byte) Loader {
	ld := Loader{
		Filename: name,
		Data:     make([]byte, len(data)),
	}
	copy(ld.Data, data)
	ld.Hash = fmt.Sprintf("%x", sha1.Sum(ld.Data))
	return ld
}

// ShortName returns a shortened version of the Loader filename.
func (ld Loader) ShortName() string {
	n := path.Base(ld.Filename)
	n = strings.TrimSuffix(n, path.Ext(ld.Filename))
	return n
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the program data. Subsequent calls to Load() will return nil without
// loading the data again.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	var r io.Reader

	u, err := url.Parse(ld.Filename)
	if err != nil {
		return curated.Errorf(LoadError, err)
	}

	switch u.Scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(LoadError, fmt.Sprintf("%s (%s)", resp.Status, ld.Filename))
		}

		r = resp.Body

	default:
		fn := ld.Filename
		if u.Scheme == "file" {
			fn = u.Path
		}

		f, err := os.Open(fn)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		defer f.Close()

		r = f
	}

	data, err := Parse(r)
	if err != nil {
		return err
	}

	if len(data) == 0 {
		return curated.Errorf(LoadError, fmt.Sprintf("no program in %s", ld.Filename))
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(data))

	// check for hash consistency
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(LoadError, "unexpected hash value")
	}

	ld.Hash = hash
	ld.Data = data

	return nil
}
