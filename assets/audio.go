package assets

import (
	"encoding/binary"
	"math"

	cfg "github.com/automoto/ronin/config"
)

// SynthTone renders a tone spec to raw 16-bit LE stereo PCM at the given
// sample rate. All SFX are generated once at startup; no audio assets ship
// with the game.
func SynthTone(spec cfg.ToneSpec, sampleRate int) []byte {
	n := int(float64(sampleRate) * spec.DurationMS / 1000)
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n*4) // 2 channels x int16

	for i := 0; i < n; i++ {
		t := float64(i) / float64(n) // 0..1 through the tone

		freq := spec.FreqHz
		if spec.EndFreqHz > 0 {
			freq = spec.FreqHz + (spec.EndFreqHz-spec.FreqHz)*t
		}

		// Linear decay envelope with a short attack to avoid clicks.
		env := 1 - t
		if t < 0.02 {
			env = t / 0.02
		}

		phase := 2 * math.Pi * freq * float64(i) / float64(sampleRate)
		sample := math.Sin(phase) * env * spec.Volume
		v := int16(sample * math.MaxInt16)

		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}

	return buf
}
