package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// cueStreamer returns a fresh finite streamer for c, or nil for an unknown cue.
func cueStreamer(c Cue) beep.Streamer {
	switch c {
	case CueJump:
		return beep.Take(sampleRate.N(90*time.Millisecond), NewChirpGenerator(sampleRate, 440, 880))
	case CuePowerUp:
		return beep.Seq(
			beep.Take(sampleRate.N(60*time.Millisecond), NewToneGenerator(sampleRate, 988)),
			beep.Take(sampleRate.N(120*time.Millisecond), NewToneGenerator(sampleRate, 1319)),
		)
	case CueCelebration:
		notes := []float64{523.25, 659.25, 783.99, 1046.5}
		parts := make([]beep.Streamer, 0, len(notes))
		for _, f := range notes {
			parts = append(parts, beep.Take(sampleRate.N(150*time.Millisecond), NewToneGenerator(sampleRate, f)))
		}
		return beep.Seq(parts...)
	default:
		return nil
	}
}

// ToneGenerator generates a sine tone with a short attack to avoid clicks.
type ToneGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewToneGenerator creates a tone generator at freq Hz.
func NewToneGenerator(sr beep.SampleRate, freq float64) *ToneGenerator {
	return &ToneGenerator{sr: sr, freq: freq}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	attack := float64(g.sr.N(5 * time.Millisecond))
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		env := math.Min(float64(g.pos)/attack, 1)
		sample := 0.25 * env * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// ChirpGenerator sweeps linearly from one frequency to another over 100ms
// and decays, which reads as a wing flap.
type ChirpGenerator struct {
	sr       beep.SampleRate
	from, to float64
	pos      int
	phase    float64
}

// NewChirpGenerator creates a chirp from `from` Hz to `to` Hz.
func NewChirpGenerator(sr beep.SampleRate, from, to float64) *ChirpGenerator {
	return &ChirpGenerator{sr: sr, from: from, to: to}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	span := float64(g.sr.N(100 * time.Millisecond))
	for i := range samples {
		progress := math.Min(float64(g.pos)/span, 1)
		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		sample := 0.2 * (1 - progress) * math.Sin(g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}
