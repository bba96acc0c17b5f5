// Package filesystem routes every file access through a swappable afero backend.
//
// Tests switch to an in-memory backend with SetMemMapFs.
package filesystem

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active backend.
func API() afero.Afero {
	return backend
}

// SetOsFs switches to the operating system filesystem.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs switches to a fresh in-memory filesystem.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// SetFs switches to fs.
func SetFs(fs afero.Fs) {
	backend = afero.Afero{Fs: fs}
}

// Create truncates or creates the file at path, making missing parent directories first.
func Create(path string) (afero.File, error) {
	if err := backend.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, err
	}

	return backend.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
}
