// Package audio plays the game's sound effects and background music.
// Every operation is a no-op until Initialize succeeds, so the game runs
// silently when no audio device is available.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/sky-shooter/internal/core"
)

const (
	sampleRate = beep.SampleRate(48000)

	speakerBufferDurationMs = 100
	musicVolume             = -1.5 // Log2 gain applied to the background loop
)

// Sound identifies one of the game's sounds.
type Sound int

const (
	SoundCollision Sound = iota
	SoundMoveUp
	SoundMoveDown
	SoundMusic
)

// AllSounds lists every sound in load order.
var AllSounds = [...]Sound{SoundCollision, SoundMoveUp, SoundMoveDown, SoundMusic}

// String returns a human-readable name for the sound.
func (s Sound) String() string {
	switch s {
	case SoundCollision:
		return "collision"
	case SoundMoveUp:
		return "move-up"
	case SoundMoveDown:
		return "move-down"
	case SoundMusic:
		return "music"
	default:
		return "unknown"
	}
}

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *musicTrack
	assets      map[Sound]*beep.Buffer // Loaded WAV files; synthesized sounds are used when absent
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		assets: make(map[Sound]*beep.Buffer, len(AllSounds)),
	}
}

// Initialize opens the audio device and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*speakerBufferDurationMs))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.music != nil {
		sm.music.stopped = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no way to close the speaker; an empty mixer is silent
	sm.music = nil
	sm.initialized = false
}

// Initialized reports whether sounds will actually be heard.
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayCollision plays the crash sound.
func (sm *SoundManager) PlayCollision() {
	sm.play(SoundCollision)
}

// PlayMoveUp plays the rising putter.
func (sm *SoundManager) PlayMoveUp() {
	sm.play(SoundMoveUp)
}

// PlayMoveDown plays the falling putter.
func (sm *SoundManager) PlayMoveDown() {
	sm.play(SoundMoveDown)
}

// PlayMusic starts the looping background music. It does nothing if the
// music is already playing.
func (sm *SoundManager) PlayMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if sm.music != nil && !sm.music.stopped {
		return
	}

	var loop beep.Streamer
	if buf, ok := sm.assets[SoundMusic]; ok {
		loop = beep.Loop(-1, buf.Streamer(0, buf.Len()))
	} else {
		loop = NewMusicGenerator(sampleRate)
	}

	track := &musicTrack{Streamer: &effects.Volume{Streamer: loop, Base: 2, Volume: musicVolume}}
	sm.music = track
	sm.add(track)
}

// StopMusic stops the background music. The mixer drops the stopped track
// on its next pass.
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music != nil {
		speaker.Lock()
		sm.music.stopped = true
		speaker.Unlock()
	}
}

// HandleEvents plays the sound for each game event that has one.
func (sm *SoundManager) HandleEvents(events []core.Event) {
	for _, e := range events {
		switch e {
		case core.EventCollision:
			sm.PlayCollision()
		case core.EventMoveUp:
			sm.PlayMoveUp()
		case core.EventMoveDown:
			sm.PlayMoveDown()
		case core.EventGameOver:
			sm.StopMusic()
		}
	}
}

func (sm *SoundManager) play(s Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.add(sm.effect(s))
}

// effect returns a one-shot streamer for s, preferring a loaded asset.
func (sm *SoundManager) effect(s Sound) beep.Streamer {
	if buf, ok := sm.assets[s]; ok {
		return buf.Streamer(0, buf.Len())
	}

	switch s {
	case SoundCollision:
		return beep.Take(sampleRate.N(time.Millisecond*collisionDurationMs), NewCrashGenerator(sampleRate))
	case SoundMoveUp:
		return beep.Take(sampleRate.N(time.Millisecond*putterDurationMs),
			NewSweepGenerator(sampleRate, putterLowHz, putterHighHz, putterDurationMs))
	case SoundMoveDown:
		return beep.Take(sampleRate.N(time.Millisecond*putterDurationMs),
			NewSweepGenerator(sampleRate, putterHighHz, putterLowHz, putterDurationMs))
	default:
		return beep.Silence(0)
	}
}

// musicTrack is the endless background loop. Once stopped it reports itself
// drained. Guarded by the speaker lock.
type musicTrack struct {
	beep.Streamer
	stopped bool
}

func (t *musicTrack) Stream(samples [][2]float64) (int, bool) {
	if t.stopped {
		return 0, false
	}
	return t.Streamer.Stream(samples)
}

// add mixes a streamer in. The caller holds sm.mu.
func (sm *SoundManager) add(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
