package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"pacman/assets"
	"pacman/ecs"
	"pacman/ecs/component"
)

// Screen geometry in pixels: the 28x31 board plus three HUD rows above and
// two below.
const (
	ScreenWidth  = 28 * assets.TileSize
	ScreenHeight = 36 * assets.TileSize

	boardRows = 31
	topRows   = 3
)

// Renderer draws every sprite, ordered by render layer. It is called from
// the game's Draw, outside the fixed-tick scheduler.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (s *Renderer) Draw(w *ecs.World, screen *ebiten.Image) {
	type item struct {
		layer  int
		entity ecs.Entity
		sprite *component.Sprite
		loc    *component.Position
	}

	var items []item
	for _, e := range ecs.Query(w,
		component.SpriteComponent.ID(),
		component.PositionComponent.ID(),
		component.RenderLayerComponent.ID(),
	) {
		sprite, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		pos, _ := ecs.Get(w, e, component.PositionComponent.Kind())
		layer, _ := ecs.Get(w, e, component.RenderLayerComponent.Kind())
		if sprite == nil || pos == nil || layer == nil || sprite.Hidden || sprite.Image == nil {
			continue
		}
		items = append(items, item{layer: layer.Index, entity: e, sprite: sprite, loc: pos})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].layer != items[j].layer {
			return items[i].layer < items[j].layer
		}
		return items[i].entity < items[j].entity
	})

	for _, it := range items {
		img := it.sprite.Image
		if it.sprite.UseSource {
			img = img.SubImage(it.sprite.Source).(*ebiten.Image)
		}

		bounds := img.Bounds()
		sx, sy := it.sprite.ScaleX, it.sprite.ScaleY
		if sx == 0 {
			sx = 1
		}
		if sy == 0 {
			sy = 1
		}

		var op ebiten.DrawImageOptions
		op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
		op.GeoM.Rotate(it.sprite.Rotation)
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(screenX(it.loc.Loc.X), screenY(it.loc.Loc.Y))
		screen.DrawImage(img, &op)
	}
}

// screenX maps a board x (tile units, integer at centers) to pixels.
func screenX(x float64) float64 {
	return x*assets.TileSize + assets.TileSize/2
}

// screenY maps a board y (y grows upward) to pixels below the HUD rows.
func screenY(y float64) float64 {
	return (float64(topRows+boardRows-1)-y)*assets.TileSize + assets.TileSize/2
}
