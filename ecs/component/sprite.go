package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite draws an image centered on the entity's board position.
type Sprite struct {
	Image     *ebiten.Image
	Source    image.Rectangle
	UseSource bool
	// Rotation in radians around the sprite center.
	Rotation float64
	ScaleX   float64
	ScaleY   float64
	Hidden   bool
}

var SpriteComponent = NewComponent[Sprite]()
