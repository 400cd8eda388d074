package system

import (
	"pacman/ecs"
	"pacman/ecs/component"
)

// Blinks toggles sprite visibility on a fixed interval (energizers, the
// 1UP label).
type Blinks struct{}

func NewBlinks() *Blinks {
	return &Blinks{}
}

func (s *Blinks) Update(w *ecs.World) {
	ecs.ForEach2(w, component.BlinkComponent.Kind(), component.SpriteComponent.Kind(),
		func(_ ecs.Entity, b *component.Blink, sprite *component.Sprite) {
			if b.IntervalTicks <= 0 {
				return
			}
			b.Timer++
			if b.Timer >= b.IntervalTicks {
				b.Timer = 0
				sprite.Hidden = !sprite.Hidden
			}
		})
}
