// This file is part of vgm2electron.
//
// vgm2electron is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vgm2electron is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vgm2electron.  If not, see <https://www.gnu.org/licenses/>.

package conversion

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/vgm2electron/curated"
	"github.com/jetsetilly/vgm2electron/vgm"
)

// Sentinel error patterns.
const (
	WriteError = "conversion: write: %v"
)

// the extension added to the output filename for the ULA sidecar file
const sidecarExtension = ".ula.bin"

// DefaultOutput returns the output filename for the source filename. The
// extension of the source is replaced with ".electron.vgm".
func DefaultOutput(src string) string {
	return strings.TrimSuffix(src, filepath.Ext(src)) + ".electron.vgm"
}

// SidecarPath returns the filename of the ULA file for the output filename.
func SidecarPath(dst string) string {
	return dst + sidecarExtension
}

// WriteFiles writes the VGM file to dst and the ULA data to the sidecar file.
// Either both files are written or neither is. The VGM file is compressed if
// dst has the VGZ extension.
func WriteFiles(src *vgm.Stream, res *Result, dst string) error {
	vgmTmp, err := writeTemp(dst, func(f *os.File) error {
		return vgm.Write(f, src, res.Output(vgm.IsCompressed(dst)))
	})
	if err != nil {
		return curated.Errorf(WriteError, err)
	}

	ulaTmp, err := writeTemp(SidecarPath(dst), func(f *os.File) error {
		_, err := f.Write(res.ULA)
		return err
	})
	if err != nil {
		os.Remove(vgmTmp)
		return curated.Errorf(WriteError, err)
	}

	if err := os.Rename(vgmTmp, dst); err != nil {
		os.Remove(vgmTmp)
		os.Remove(ulaTmp)
		return curated.Errorf(WriteError, err)
	}

	if err := os.Rename(ulaTmp, SidecarPath(dst)); err != nil {
		os.Remove(ulaTmp)
		os.Remove(dst)
		return curated.Errorf(WriteError, err)
	}

	return nil
}

// writeTemp creates a temporary file in the same directory as path and
// writes to it with the supplied function. The name of the temporary file is
// returned. The temporary file is removed on error.
func writeTemp(path string, write func(f *os.File) error) (string, error) {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return "", err
	}

	if err := write(f); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}

	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}

	return f.Name(), nil
}
