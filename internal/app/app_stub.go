//go:build !ebiten

package app

import (
	"errors"

	"lifeview/internal/core"
)

// ErrNoGUI is returned by RunGUI in builds without the ebiten tag.
var ErrNoGUI = errors.New("app: the GUI requires the ebiten build tag; re-run with `go run -tags ebiten ./cmd/lifeview gui`")

// RunGUI always reports that the GUI build tag is missing.
func RunGUI(*Config, core.Engine, core.Factory) error {
	return ErrNoGUI
}
