package systems

import (
	cfg "github.com/automoto/ronin/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGlobal handles the session-level toggles and the reset request.
// Reset is only honored outside normal play; mid-fight the key does nothing.
func UpdateGlobal(e *ecs.ECS) {
	encounter := GetEncounter(e)
	if encounter == nil {
		return
	}
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionToggleFlurry).JustPressed && encounter.Global == cfg.Playing {
		encounter.FlurryEnabled = !encounter.FlurryEnabled
	}
	if GetAction(input, cfg.ActionToggleBoxes).JustPressed {
		cfg.Debug.ShowBoxes = !cfg.Debug.ShowBoxes
	}
	if GetAction(input, cfg.ActionReset).JustPressed && encounter.Global != cfg.Playing {
		encounter.ResetRequested = true
	}
}
