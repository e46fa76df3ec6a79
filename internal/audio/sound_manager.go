package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

const (
	sampleRate = beep.SampleRate(44100)
	bufferTime = 100 * time.Millisecond
)

// SoundManager turns simulation events into sounds on the system speaker.
// It is safe to use without Initialize; events are then dropped.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	logger      *log.Logger
}

// NewSoundManager creates a sound manager at the given master volume (0..1).
func NewSoundManager(volume float64, logger *log.Logger) *SoundManager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
	}
}

// Initialize opens the speaker. Calling it twice is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(bufferTime)); err != nil {
		return err
	}

	speaker.Play(newVolume(sm.mixer, sm.volume))
	sm.initialized = true
	sm.logger.Debug("audio ready", "rate", int(sampleRate))
	return nil
}

// Cleanup stops playback and closes the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.mixer.Clear()
	sm.initialized = false
}

// HandleEvent implements flappy.EventSink. It never blocks on playback.
func (sm *SoundManager) HandleEvent(ev flappy.Event) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := GetSoundEffect(ev, sampleRate)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Active returns the number of sounds still playing.
func (sm *SoundManager) Active() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return 0
	}
	speaker.Lock()
	defer speaker.Unlock()
	return sm.mixer.Len()
}

// Ensure SoundManager implements EventSink
var _ flappy.EventSink = (*SoundManager)(nil)
