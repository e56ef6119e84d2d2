package systems

import (
	"sync"

	"github.com/automoto/ronin/assets"
	"github.com/automoto/ronin/components"
	cfg "github.com/automoto/ronin/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	sfxCache           map[cfg.SoundID][]byte
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the audio context and synthesizes every sound
// effect once. No audio assets are shipped; everything is generated.
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		sfxCache = make(map[cfg.SoundID][]byte, len(cfg.Sound.Tones))
		for id, spec := range cfg.Sound.Tones {
			sfxCache[id] = assets.SynthTone(spec, cfg.Audio.SampleRate)
		}
	})
}

// UpdateAudio drains the pending SFX queue. It is the only system that
// touches the audio device; leaving it out of a world keeps the rest of the
// systems runnable headless.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}
	pcm, ok := sfxCache[soundID]
	if !ok {
		return
	}
	player := globalAudioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(globalSFXVolume)
	player.Play()
}

// PlaySFX queues a sound effect; playback happens when UpdateAudio runs.
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS,
// creating it if needed.
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			SFXVolume:  globalSFXVolume,
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
