// This file is part of Gopher65816.
//
// Gopher65816 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher65816 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher65816.  If not, see <https://www.gnu.org/licenses/>.

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

	"github.com/jetsetilly/gopher65816/curated"
	"github.com/jetsetilly/gopher65816/hardware"
	"github.com/jetsetilly/gopher65816/logger"
)

// Failed is the sentinal error pattern for all loader errors.
const Failed = "loader: %v"

// size of the address space of the 65816
const addressSpace = 0x1000000

// Loader specifies a program file and where it should be placed in memory.
type Loader struct {
	Filename string

	// 24 bit address of the first byte of the program
	Origin uint32

	// expected hash of the data. an empty string means that the hash is not
	// checked. after Load() it is the hash of the loaded data
	Hash string

	// the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string, origin uint32) Loader {
	return Loader{
		Filename: filename,
		Origin:   origin & 0xffffff,
	}
}

// ShortName returns the filename without the path or extension.
func (ld Loader) ShortName() string {
	s := path.Base(ld.Filename)
	return strings.TrimSuffix(s, path.Ext(ld.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the program data. Filenames with a http or https scheme are fetched
// from the network.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(ld.Filename); err == nil && len(u.Scheme) > 1 {
		scheme = u.Scheme
	}

	var data []byte
	var err error

	switch scheme {
	case "http", "https":
		var resp *http.Response
		resp, err = http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf(Failed, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(Failed, fmt.Sprintf("%s: %s", ld.Filename, resp.Status))
		}
		data, err = io.ReadAll(resp.Body)

	case "file":
		data, err = os.ReadFile(ld.Filename)

	default:
		return curated.Errorf(Failed, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	if err != nil {
		return curated.Errorf(Failed, err)
	}

	if len(data) == 0 {
		return curated.Errorf(Failed, fmt.Sprintf("%s is empty", ld.Filename))
	}

	if int(ld.Origin)+len(data) > addressSpace {
		return curated.Errorf(Failed, fmt.Sprintf("%d bytes at $%06x exceeds the address space", len(data), ld.Origin))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(Failed, "unexpected hash value")
	}

	ld.Hash = hash
	ld.Data = data

	logger.Logf(logger.Allow, "loader", "%s: %d bytes at $%06x", ld.ShortName(), len(data), ld.Origin)

	return nil
}

// Attach the loaded data to the machine's memory. Load() is called if it has
// not been already.
func (ld *Loader) Attach(m *hardware.Machine) error {
	if err := ld.Load(); err != nil {
		return err
	}
	m.Mem.Load(ld.Origin, ld.Data)
	return nil
}
