package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep/effects"
)

func TestCueString(t *testing.T) {
	tests := []struct {
		cue  Cue
		want string
	}{
		{CueJump, "jump"},
		{CueCelebration, "celebration"},
		{CuePowerUp, "power-up"},
		{Cue(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.cue.String(); got != tt.want {
			t.Errorf("Cue(%d).String() = %q, want %q", tt.cue, got, tt.want)
		}
	}
}

func TestCueStreamersAreFiniteAndBounded(t *testing.T) {
	for _, c := range []Cue{CueJump, CueCelebration, CuePowerUp} {
		t.Run(c.String(), func(t *testing.T) {
			s := cueStreamer(c)
			if s == nil {
				t.Fatal("no streamer")
			}
			buf := make([][2]float64, 512)
			total := 0
			for {
				n, ok := s.Stream(buf)
				for _, smp := range buf[:n] {
					if math.Abs(smp[0]) > 1 || math.IsNaN(smp[0]) {
						t.Fatalf("sample out of range: %v", smp[0])
					}
				}
				total += n
				if !ok || n == 0 {
					break
				}
				if total > int(sampleRate) {
					t.Fatal("cue longer than one second")
				}
			}
			if total == 0 {
				t.Error("cue produced no samples")
			}
		})
	}
	if cueStreamer(Cue(42)) != nil {
		t.Error("unknown cue should have no streamer")
	}
}

func TestWithVolume(t *testing.T) {
	tests := []struct {
		in     int
		silent bool
		level  float64
	}{
		{0, true, 0},
		{-10, true, 0},
		{50, false, -1},
		{100, false, 0},
		{250, false, 0},
	}
	for _, tt := range tests {
		v, ok := withVolume(NewToneGenerator(sampleRate, 440), tt.in).(*effects.Volume)
		if !ok {
			t.Fatalf("withVolume(%d) did not return *effects.Volume", tt.in)
		}
		if v.Silent != tt.silent {
			t.Errorf("withVolume(%d).Silent = %v, want %v", tt.in, v.Silent, tt.silent)
		}
		if !tt.silent && math.Abs(v.Volume-tt.level) > 1e-9 {
			t.Errorf("withVolume(%d).Volume = %v, want %v", tt.in, v.Volume, tt.level)
		}
	}
}

func TestSpeakerUninitializedIsSilent(t *testing.T) {
	s := NewSpeaker(nil)
	// Without Initialize no device is touched.
	s.Play(CueJump)
	s.Play(Cue(7))
	s.SetVolume(130)
	if s.Volume() != 100 {
		t.Errorf("Volume = %d, want 100", s.Volume())
	}
	s.SetVolume(-1)
	if s.Volume() != 0 {
		t.Errorf("Volume = %d, want 0", s.Volume())
	}
	s.Close()
}

func TestNop(t *testing.T) {
	var p Player = Nop{}
	p.Play(CueCelebration)
	p.SetVolume(10)
}
