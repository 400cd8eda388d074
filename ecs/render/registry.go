// Package render owns the prebuilt image registry and the text rasterizer
// shared by the draw systems.
package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"pacman/assets"
	"pacman/ecs/component"
	"pacman/levels"
	"pacman/maze"
)

// Registry holds every image the game draws, built once at startup from the
// procedural asset generators.
type Registry struct {
	Board       *ebiten.Image
	BoardFlash  *ebiten.Image
	Pacman      *ebiten.Image
	Pellet      *ebiten.Image
	PowerPellet *ebiten.Image
	Eyes        *ebiten.Image
	LifeIcon    *ebiten.Image

	ghosts     map[component.GhostName]*ebiten.Image
	frightened *ebiten.Image
	flashing   *ebiten.Image
	fruits     map[levels.Symbol]*ebiten.Image
}

// NewRegistry rasterizes all sprites for the given board.
func NewRegistry(m *maze.Map) *Registry {
	r := &Registry{
		Board:       assets.BoardImage(m),
		BoardFlash:  assets.BoardFlashImage(m),
		Pacman:      assets.PacmanSheet(),
		Pellet:      assets.PelletImage(),
		PowerPellet: assets.PowerPelletImage(),
		Eyes:        assets.EyesImage(),
		LifeIcon:    assets.LifeIconImage(),
		ghosts:      make(map[component.GhostName]*ebiten.Image),
		frightened:  assets.FrightenedSheet(false),
		flashing:    assets.FrightenedSheet(true),
		fruits:      make(map[levels.Symbol]*ebiten.Image),
	}
	for _, name := range []component.GhostName{component.Blinky, component.Pinky, component.Inky, component.Clyde} {
		r.ghosts[name] = assets.GhostSheet(assets.GhostColor(int(name)))
	}
	for s := levels.Cherries; s <= levels.Key; s++ {
		r.fruits[s] = assets.FruitImage(s)
	}
	return r
}

// GhostSheet returns the 2-frame strip for a ghost in the given mode.
func (r *Registry) GhostSheet(name component.GhostName, mode component.GhostMode, flashing bool) *ebiten.Image {
	switch mode {
	case component.ModeFrightened:
		if flashing {
			return r.flashing
		}
		return r.frightened
	default:
		return r.ghosts[name]
	}
}

// Fruit returns the sprite for a bonus symbol.
func (r *Registry) Fruit(s levels.Symbol) *ebiten.Image {
	return r.fruits[s]
}
