package audio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

const resampleQuality = 4

// AssetFiles maps each sound to its file under the assets directory.
var AssetFiles = map[Sound]string{
	SoundCollision: filepath.Join("sounds", "Collision.wav"),
	SoundMoveUp:    filepath.Join("sounds", "Rising_putter.wav"),
	SoundMoveDown:  filepath.Join("sounds", "Falling_putter.wav"),
	SoundMusic:     filepath.Join("sounds", "Apoxode_-_Electric_1.wav"),
}

// LoadAssets decodes every sound file under dir into memory, replacing the
// synthesized sounds. All files must be present; on error nothing is replaced.
func (sm *SoundManager) LoadAssets(dir string) error {
	loaded := make(map[Sound]*beep.Buffer, len(AllSounds))
	for _, s := range AllSounds {
		buf, err := loadWAV(filepath.Join(dir, AssetFiles[s]))
		if err != nil {
			return err
		}
		loaded[s] = buf
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.assets = loaded
	return nil
}

// loadWAV decodes a WAV file into a buffer at the mixer's sample rate.
func loadWAV(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: failed to open sound: %w", err)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("audio: failed to decode %s: %w", path, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	if format.SampleRate == sampleRate {
		buf.Append(streamer)
	} else {
		buf.Append(beep.Resample(resampleQuality, format.SampleRate, sampleRate, streamer))
	}
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("audio: failed to read %s: %w", path, err)
	}
	return buf, nil
}
