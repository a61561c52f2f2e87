//go:build ci

package sound

// SoundManager is silent in ci builds, which have no audio device.
type SoundManager struct{}

func NewSoundManager(string) *SoundManager {
	return &SoundManager{}
}

func (sm *SoundManager) Init() error { return nil }

func (sm *SoundManager) Play(string) {}

func (sm *SoundManager) Close() {}
