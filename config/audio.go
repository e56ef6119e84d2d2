package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundPunch
	SoundKick
	SoundHit
	SoundBlock
	SoundDeath
	// Encounter sounds
	SoundBow
	SoundHazard
	SoundWin
	SoundLose
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// ToneSpec describes a synthesized sound effect. All SFX are generated at
// startup instead of shipping audio assets.
type ToneSpec struct {
	FreqHz     float64
	EndFreqHz  float64 // sweep target; 0 means constant pitch
	DurationMS float64
	Volume     float64
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to synthesized tones
type SoundConfig struct {
	Tones map[SoundID]ToneSpec
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]ToneSpec{
			SoundPunch:        {FreqHz: 220, EndFreqHz: 140, DurationMS: 70, Volume: 0.5},
			SoundKick:         {FreqHz: 160, EndFreqHz: 90, DurationMS: 100, Volume: 0.6},
			SoundHit:          {FreqHz: 95, EndFreqHz: 55, DurationMS: 150, Volume: 0.8},
			SoundBlock:        {FreqHz: 480, EndFreqHz: 480, DurationMS: 60, Volume: 0.45},
			SoundDeath:        {FreqHz: 240, EndFreqHz: 40, DurationMS: 500, Volume: 0.7},
			SoundBow:          {FreqHz: 330, EndFreqHz: 392, DurationMS: 260, Volume: 0.4},
			SoundHazard:       {FreqHz: 700, EndFreqHz: 1050, DurationMS: 220, Volume: 0.5},
			SoundWin:          {FreqHz: 392, EndFreqHz: 784, DurationMS: 650, Volume: 0.6},
			SoundLose:         {FreqHz: 196, EndFreqHz: 65, DurationMS: 900, Volume: 0.6},
			SoundMenuNavigate: {FreqHz: 520, EndFreqHz: 520, DurationMS: 40, Volume: 0.3},
			SoundMenuSelect:   {FreqHz: 660, EndFreqHz: 660, DurationMS: 80, Volume: 0.35},
		},
	}
}
