package components

import (
	cfg "github.com/automoto/ronin/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions. Edge-triggered actions are read through JustPressed, which lasts
// exactly one tick; the buffer swap at the start of the next poll is the
// pruning step, so no action fires twice while held.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()
