package system

import (
	"image"

	"pacman/ecs"
	"pacman/ecs/component"
	"pacman/ecs/render"
)

// Animations advances every playing clip and writes the current frame into
// the entity's sprite as a source rectangle.
type Animations struct{}

func NewAnimations() *Animations {
	return &Animations{}
}

func (s *Animations) Update(w *ecs.World) {
	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.SpriteComponent.Kind(),
		func(_ ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
			def, ok := anim.Defs[anim.Current]
			if !ok || anim.Sheet == nil {
				return
			}

			if anim.Playing && def.FPS > 0 {
				anim.FrameTimer++
				frameTicks := int(TicksPerSecond / def.FPS)
				if frameTicks < 1 {
					frameTicks = 1
				}
				if anim.FrameTimer >= frameTicks {
					anim.FrameTimer = 0
					anim.Frame++
					if anim.Frame >= def.FrameCount {
						if def.Loop {
							anim.Frame = 0
						} else {
							anim.Frame = def.FrameCount - 1
							anim.Playing = false
						}
					}
				}
			}

			x := (def.ColStart + anim.Frame) * def.FrameW
			y := def.Row * def.FrameH
			sprite.Image = anim.Sheet
			sprite.Source = image.Rect(x, y, x+def.FrameW, y+def.FrameH)
			sprite.UseSource = true
		})
}

// GhostSkins swaps each ghost's sheet for its mode: body color, frightened
// blue or flash white, bare eyes when eaten.
type GhostSkins struct {
	reg *render.Registry
}

func NewGhostSkins(reg *render.Registry) *GhostSkins {
	return &GhostSkins{reg: reg}
}

func (s *GhostSkins) Update(w *ecs.World) {
	ecs.ForEach(w, component.GhostComponent.Kind(), func(e ecs.Entity, g *component.Ghost) {
		anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
		if !ok {
			return
		}
		sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok {
			return
		}

		if g.Mode == component.ModeEyes {
			anim.Playing = false
			sprite.Image = s.reg.Eyes
			sprite.UseSource = false
			return
		}
		anim.Sheet = s.reg.GhostSheet(g.Name, g.Mode, g.Flashing)
		anim.Play("walk")
	})
}
