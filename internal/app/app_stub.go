//go:build !ebiten

package app

import (
	"errors"
	"log/slog"

	"leaf-morphogenesis/internal/leaf"
)

// ErrHeadless is returned when the viewer is used in a build without the
// ebiten tag.
var ErrHeadless = errors.New("the viewer requires building with -tags ebiten")

// Game is the headless stand-in for the viewer.
type Game struct{}

// New returns a Game that cannot be run.
func New(*leaf.Leaf, Config, *slog.Logger) *Game { return &Game{} }

// Reset is a no-op.
func (g *Game) Reset() {}

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error { return ErrHeadless }

// Run reports ErrHeadless.
func Run(*Game) error { return ErrHeadless }
