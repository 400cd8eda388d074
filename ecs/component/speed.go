package component

// Speed realizes fractional speeds on the fixed tick by skipping ticks.
// A character with speed 0.8 advances on 80% of ticks; the hit/miss ledger
// keeps the realized rate converging on the target without drift.
type Speed struct {
	Value      float64
	advanced   float64
	missed     float64
	ShouldMiss bool
}

// NewSpeed creates a speed pacer. Values run 0..1.05 (Elroy 2 tops out the
// scale).
func NewSpeed(value float64) *Speed {
	s := &Speed{}
	s.Set(value)
	return s
}

// Set changes the target speed, resetting the ledger when it differs.
func (s *Speed) Set(value float64) {
	if value < 0 {
		value = 0
	}
	if value > 1.05 {
		value = 1.05
	}
	if value == s.Value {
		return
	}
	s.Value = value
	s.advanced = 0
	s.missed = 0
	s.ShouldMiss = false
}

// Tick advances the ledger one tick and updates ShouldMiss.
func (s *Speed) Tick() {
	s.advanced++

	percentMissed := s.missed / s.advanced
	percentHit := (1 - percentMissed) * 1.05

	if percentHit > s.Value {
		s.missed++
		s.ShouldMiss = true
	} else {
		s.ShouldMiss = false
	}
}

var SpeedComponent = NewComponent[Speed]()
