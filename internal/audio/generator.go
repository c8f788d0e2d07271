package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const (
	collisionDurationMs  = 600
	crashNoiseAmplitude  = 0.35
	crashRumbleAmplitude = 0.3
	crashRumbleFreqHz    = 55.0
	crashDecayRate       = 6.0
	putterDurationMs     = 220
	putterLowHz          = 90.0
	putterHighHz         = 360.0
	putterAmplitude      = 0.2
	putterPulseHz        = 30.0 // Amplitude chop that gives the engine its putter
	musicStepDurationMs  = 150
	musicBassAmplitude   = 0.12
	musicLeadAmplitude   = 0.08
	musicBassFrequencyHz = 55.0
	musicLeadBaseFreqHz  = 220.0
)

// musicPattern is the lead arpeggio in semitones above musicLeadBaseFreqHz.
var musicPattern = [...]int{0, 7, 12, 7, 3, 10, 15, 10}

// CrashGenerator generates a noisy explosion with a low rumble.
type CrashGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed uint32
}

// NewCrashGenerator creates a crash sound generator
func NewCrashGenerator(sr beep.SampleRate) *CrashGenerator {
	return &CrashGenerator{sr: sr, seed: 0x2545f491}
}

func (g *CrashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * crashDecayRate)

		// xorshift noise keeps the sound identical across runs
		g.seed ^= g.seed << 13
		g.seed ^= g.seed >> 17
		g.seed ^= g.seed << 5
		noise := float64(g.seed)/float64(math.MaxUint32)*2 - 1

		rumble := crashRumbleAmplitude * math.Sin(2*math.Pi*crashRumbleFreqHz*t)
		sample := envelope * (crashNoiseAmplitude*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrashGenerator) Err() error {
	return nil
}

// SweepGenerator generates a pulsed tone gliding from one pitch to another.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	duration float64 // Seconds
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep from fromHz to toHz over durationMs.
func NewSweepGenerator(sr beep.SampleRate, fromHz, toHz float64, durationMs int) *SweepGenerator {
	return &SweepGenerator{
		sr:       sr,
		from:     fromHz,
		to:       toHz,
		duration: (time.Duration(durationMs) * time.Millisecond).Seconds(),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		progress := math.Min(t/g.duration, 1)

		freq := g.from + (g.to-g.from)*progress
		// Accumulate phase so the glide has no clicks
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		pulse := 0.5 + 0.5*math.Sin(2*math.Pi*putterPulseHz*t)
		envelope := 1 - progress
		sample := putterAmplitude * envelope * pulse * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// MusicGenerator generates an endless bass and arpeggio loop.
type MusicGenerator struct {
	sr   beep.SampleRate
	pos  int
	step int // Samples per arpeggio note
}

// NewMusicGenerator creates a background music generator
func NewMusicGenerator(sr beep.SampleRate) *MusicGenerator {
	return &MusicGenerator{
		sr:   sr,
		step: sr.N(time.Millisecond * musicStepDurationMs),
	}
}

func (g *MusicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		note := musicPattern[(g.pos/g.step)%len(musicPattern)]
		notePos := float64(g.pos%g.step) / float64(g.step)

		leadFreq := musicLeadBaseFreqHz * math.Pow(2, float64(note)/12)
		lead := musicLeadAmplitude * (1 - notePos) * math.Sin(2*math.Pi*leadFreq*t)
		bass := musicBassAmplitude * math.Sin(2*math.Pi*musicBassFrequencyHz*t)

		samples[i][0] = lead + bass
		samples[i][1] = lead + bass
		g.pos++
	}
	return len(samples), true
}

func (g *MusicGenerator) Err() error {
	return nil
}
