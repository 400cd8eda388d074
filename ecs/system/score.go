package system

import (
	"fmt"

	"pacman/assets"
	"pacman/ecs"
	"pacman/ecs/component"
)

const extraLifePoints = 10000

// Score tracks the high score, awards the extra life, and pushes the live
// numbers into bound HUD labels.
type Score struct{}

func NewScore() *Score {
	return &Score{}
}

func (s *Score) Update(w *ecs.World) {
	session := currentSession(w)
	if session == nil {
		return
	}

	if session.Score > session.HighScore {
		session.HighScore = session.Score
	}
	if !session.ExtraLifeAwarded && session.Score >= extraLifePoints {
		session.ExtraLifeAwarded = true
		session.Lives++
		triggerPlayerSound(w, assets.SoundExtraLife)
		w.Events().Push(ecs.Event{Type: EventExtraLife})
	}

	ecs.ForEach2(w, component.ScoreBindingComponent.Kind(), component.LabelComponent.Kind(),
		func(_ ecs.Entity, b *component.ScoreBinding, l *component.Label) {
			value := session.Score
			if b.Kind == component.ScoreHigh {
				value = session.HighScore
			}
			l.Text = fmt.Sprintf("%6d", value)
		})
}
