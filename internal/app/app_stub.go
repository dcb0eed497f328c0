//go:build !ebiten

package app

import (
	"fmt"

	"entombed/internal/core"
)

// Game stands in for the maze viewer when ebiten is not compiled in.
type Game struct{}

// New panics: the maze viewer needs the ebiten build tag.
func New(core.Sim, *Config) *Game {
	panic("maze viewer requires building with the 'ebiten' tag")
}

// Reset does nothing without a viewer to reseed.
func (g *Game) Reset(int64) {}

// Update reports that the viewer was built without ebiten.
func (g *Game) Update() error {
	return fmt.Errorf("maze viewer requires building with the 'ebiten' tag")
}

// Draw has no window to paint maze rows into.
func (g *Game) Draw(any) {}

// Layout returns zeros; there is no maze window or HUD panel.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
