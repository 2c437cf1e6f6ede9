package audio

import (
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Speaker plays cues on the system audio device through a shared mixer.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      int
	initialized bool
	logger      *log.Logger
}

// NewSpeaker creates a speaker at volume 50. Call Initialize before use;
// until then Play is a no-op.
func NewSpeaker(logger *log.Logger) *Speaker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Speaker{
		mixer:  &beep.Mixer{},
		volume: 50,
		logger: logger,
	}
}

// Initialize opens the audio device.
func (s *Speaker) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play mixes the cue into the output at the current volume.
func (s *Speaker) Play(c Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	src := cueStreamer(c)
	if src == nil {
		s.logger.Warn("unknown audio cue", "cue", int(c))
		return
	}

	speaker.Lock()
	s.mixer.Add(withVolume(src, s.volume))
	speaker.Unlock()
}

// SetVolume sets the level for subsequent cues, clamped to [0, 100].
func (s *Speaker) SetVolume(v int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.volume = clampVolume(v)
}

// Volume returns the current level.
func (s *Speaker) Volume() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

// Close stops all sounds and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}

// withVolume scales src so that 100 is unity gain and 0 is silence.
func withVolume(src beep.Streamer, v int) beep.Streamer {
	v = clampVolume(v)
	if v == 0 {
		return &effects.Volume{Streamer: src, Base: 2, Silent: true}
	}
	return &effects.Volume{
		Streamer: src,
		Base:     2,
		Volume:   math.Log2(float64(v) / 100),
	}
}

func clampVolume(v int) int {
	return max(0, min(100, v))
}

var _ Player = (*Speaker)(nil)
