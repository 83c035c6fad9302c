// Package filesystem is the single access point to the disk. Config, logs and the query
// history all go through API, so tests can swap the backend for an in-memory one.
package filesystem

import "github.com/spf13/afero"

var backend = osFs()

func osFs() afero.Afero {
	return afero.Afero{Fs: afero.NewOsFs()}
}

// API returns the active filesystem.
func API() afero.Afero {
	return backend
}

// SetOsFs switches back to the operating system filesystem.
func SetOsFs() {
	backend = osFs()
}

// SetMemMapFs switches to a fresh in-memory filesystem.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}
