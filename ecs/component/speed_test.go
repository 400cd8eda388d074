package component

import "testing"

func TestSpeedPacing(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{name: "full", value: 1.05},
		{name: "player_level_1", value: 0.8},
		{name: "tunnel", value: 0.4},
	}

	const ticks = 1000
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSpeed(tt.value)
			hits := 0
			for i := 0; i < ticks; i++ {
				s.Tick()
				if !s.ShouldMiss {
					hits++
				}
			}
			// The ledger converges on value/1.05 of ticks advanced.
			want := tt.value / 1.05 * ticks
			if diff := float64(hits) - want; diff < -2 || diff > 2 {
				t.Fatalf("hits = %d, want about %.0f", hits, want)
			}
		})
	}
}

func TestSpeedSetClamps(t *testing.T) {
	s := NewSpeed(2)
	if s.Value != 1.05 {
		t.Fatalf("Value = %v, want 1.05", s.Value)
	}
	s.Set(-1)
	if s.Value != 0 {
		t.Fatalf("Value = %v, want 0", s.Value)
	}
}

func TestSpeedSetResetsLedger(t *testing.T) {
	s := NewSpeed(0.4)
	for i := 0; i < 100; i++ {
		s.Tick()
	}
	s.Set(1.05)
	s.Tick()
	if s.ShouldMiss {
		t.Fatal("full speed should never miss after reset")
	}
}
