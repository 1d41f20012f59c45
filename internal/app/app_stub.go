//go:build !ebiten

package app

import "errors"

// ErrWindowUnavailable is returned by RunWindow in builds without the
// ebiten tag.
var ErrWindowUnavailable = errors.New("the window driver requires building with -tags ebiten")

// RunWindow reports that the GUI build tag is missing.
func RunWindow(*Session, *Config) error {
	return ErrWindowUnavailable
}
