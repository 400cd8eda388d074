package assets

import (
	"bytes"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate is the shared audio context rate.
const SampleRate = 44100

var audioContext = audio.NewContext(SampleRate)

// Context returns the process-wide audio context.
func Context() *audio.Context {
	return audioContext
}

// Sound effect and track names.
const (
	SoundWaka      = "waka"
	SoundEnergizer = "energizer"
	SoundGhostEat  = "ghost_eaten"
	SoundDeath     = "death"
	SoundFruit     = "fruit"
	SoundExtraLife = "extra_life"

	TrackSiren1 = "siren_1"
	TrackSiren2 = "siren_2"
	TrackSiren3 = "siren_3"
	TrackSiren4 = "siren_4"
	TrackSiren5 = "siren_5"
	TrackFright = "frightened"
	TrackEyes   = "eyes"
)

var soundBank = map[string][]byte{}

func init() {
	soundBank[SoundWaka] = concat(
		sweep(480, 260, 0.055, 0.28),
		sweep(260, 480, 0.055, 0.28),
	)
	soundBank[SoundEnergizer] = concat(
		sweep(320, 780, 0.11, 0.3),
		sweep(780, 320, 0.11, 0.3),
		sweep(320, 960, 0.14, 0.3),
	)
	soundBank[SoundGhostEat] = sweep(220, 980, 0.35, 0.32)
	soundBank[SoundDeath] = concat(
		sweep(760, 240, 0.55, 0.3),
		sweep(520, 120, 0.55, 0.3),
		tone(90, 0.3, 0.3),
	)
	soundBank[SoundFruit] = concat(tone(660, 0.08, 0.3), tone(990, 0.12, 0.3))
	soundBank[SoundExtraLife] = concat(
		tone(880, 0.09, 0.3), silence(0.04),
		tone(880, 0.09, 0.3), silence(0.04),
		tone(1320, 0.18, 0.3),
	)

	for i := 0; i < 5; i++ {
		base := 260 + float64(i)*70
		soundBank[fmt.Sprintf("siren_%d", i+1)] = concat(
			sweep(base, base+120, 0.24, 0.22),
			sweep(base+120, base, 0.24, 0.22),
		)
	}
	soundBank[TrackFright] = concat(
		sweep(160, 420, 0.13, 0.22),
		sweep(420, 160, 0.13, 0.22),
	)
	soundBank[TrackEyes] = sweep(520, 1240, 0.22, 0.2)
}

// SirenForPellets picks the background siren track by pellets eaten this
// level; the pitch rises as the board empties.
func SirenForPellets(eaten int) string {
	switch {
	case eaten >= 225:
		return TrackSiren5
	case eaten >= 210:
		return TrackSiren4
	case eaten >= 180:
		return TrackSiren3
	case eaten >= 115:
		return TrackSiren2
	default:
		return TrackSiren1
	}
}

// Player returns a one-shot player for a named effect.
func Player(name string) (*audio.Player, error) {
	b, ok := soundBank[name]
	if !ok {
		return nil, fmt.Errorf("assets: unknown sound %q", name)
	}
	return audioContext.NewPlayerFromBytes(b), nil
}

// LoopPlayer returns an infinitely looping player for a named track.
func LoopPlayer(name string) (*audio.Player, error) {
	b, ok := soundBank[name]
	if !ok {
		return nil, fmt.Errorf("assets: unknown track %q", name)
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(b), int64(len(b)))
	p, err := audioContext.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("assets: loop player for %q: %w", name, err)
	}
	return p, nil
}

// tone synthesizes a square wave as 16-bit little-endian stereo PCM.
func tone(freq, seconds, volume float64) []byte {
	return sweep(freq, freq, seconds, volume)
}

// sweep synthesizes a square wave gliding from f0 to f1. A short linear
// fade at both ends keeps the clips click-free.
func sweep(f0, f1, seconds, volume float64) []byte {
	frames := int(seconds * SampleRate)
	out := make([]byte, frames*4)
	fade := SampleRate / 200 // 5ms

	phase := 0.0
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames)
		freq := f0 + (f1-f0)*t
		phase += freq / SampleRate
		phase -= math.Floor(phase)

		sample := volume
		if phase >= 0.5 {
			sample = -volume
		}
		if i < fade {
			sample *= float64(i) / float64(fade)
		}
		if frames-i < fade {
			sample *= float64(frames-i) / float64(fade)
		}

		v := int16(sample * math.MaxInt16)
		out[i*4] = byte(v)
		out[i*4+1] = byte(v >> 8)
		out[i*4+2] = byte(v)
		out[i*4+3] = byte(v >> 8)
	}
	return out
}

func silence(seconds float64) []byte {
	return make([]byte, int(seconds*SampleRate)*4)
}

func concat(clips ...[]byte) []byte {
	var out []byte
	for _, c := range clips {
		out = append(out, c...)
	}
	return out
}
