package components

import (
	"github.com/automoto/ronin/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// StatusData is the externally-observable summary refreshed at the end of
// every tick for the presentation layer.
type StatusData struct {
	PlayerHealthFrac   float64
	OpponentHealthFrac float64 // 0 when no opponent

	MessageKey     config.MessageKey
	MessageOpacity float64

	// Fade drives MessageOpacity; rebuilt whenever the key changes.
	Fade *gween.Sequence
}

var Status = donburi.NewComponentType[StatusData]()
