package assets

import "testing"

func TestSirenForPellets(t *testing.T) {
	tests := []struct {
		eaten int
		want  string
	}{
		{eaten: 0, want: TrackSiren1},
		{eaten: 114, want: TrackSiren1},
		{eaten: 115, want: TrackSiren2},
		{eaten: 180, want: TrackSiren3},
		{eaten: 210, want: TrackSiren4},
		{eaten: 225, want: TrackSiren5},
		{eaten: 244, want: TrackSiren5},
	}
	for _, tt := range tests {
		if got := SirenForPellets(tt.eaten); got != tt.want {
			t.Errorf("SirenForPellets(%d) = %s, want %s", tt.eaten, got, tt.want)
		}
	}
}

func TestSoundBankComplete(t *testing.T) {
	names := []string{
		SoundWaka, SoundEnergizer, SoundGhostEat, SoundDeath, SoundFruit, SoundExtraLife,
		TrackSiren1, TrackSiren2, TrackSiren3, TrackSiren4, TrackSiren5,
		TrackFright, TrackEyes,
	}
	for _, name := range names {
		b, ok := soundBank[name]
		if !ok {
			t.Fatalf("missing clip %q", name)
		}
		if len(b) == 0 {
			t.Fatalf("clip %q is empty", name)
		}
		// 16-bit stereo frames.
		if len(b)%4 != 0 {
			t.Fatalf("clip %q has a partial frame", name)
		}
	}
}
