package system

import (
	"pacman/ecs"
	"pacman/ecs/component"
	"pacman/ecs/render"
)

// Labels rasterizes dirty text labels into their sprites.
type Labels struct {
	text *render.TextCache
}

func NewLabels(text *render.TextCache) *Labels {
	return &Labels{text: text}
}

func (s *Labels) Update(w *ecs.World) {
	ecs.ForEach2(w, component.LabelComponent.Kind(), component.SpriteComponent.Kind(),
		func(_ ecs.Entity, l *component.Label, sprite *component.Sprite) {
			if !l.Dirty() {
				return
			}
			sprite.Image = s.text.Render(l.Text, l.Color)
			scale := l.Scale
			if scale == 0 {
				scale = 1
			}
			sprite.ScaleX = scale
			sprite.ScaleY = scale
			l.MarkRendered()
		})
}
