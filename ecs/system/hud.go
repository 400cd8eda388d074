package system

import (
	"pacman/ecs"
	"pacman/ecs/component"
)

// HUD keeps the spare-life icons in sync with the session. The displayed
// count excludes the life in play.
type HUD struct{}

func NewHUD() *HUD {
	return &HUD{}
}

func (s *HUD) Update(w *ecs.World) {
	session := currentSession(w)
	if session == nil {
		return
	}
	spare := session.Lives - 1
	ecs.ForEach2(w, component.LifeIconComponent.Kind(), component.SpriteComponent.Kind(),
		func(_ ecs.Entity, icon *component.LifeIcon, sprite *component.Sprite) {
			sprite.Hidden = icon.Index >= spare
		})
}
